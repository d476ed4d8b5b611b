package render

import (
	"fmt"
	"io"

	"github.com/lixenwraith/phrase-evolver/genetic"
)

const (
	progressFormat = "Generation: %d produced this random phrase through mutation: %s"
	finalFormat    = "Generation: %d succeeded in producing the phrase: %s"
)

// FormatEvent renders an event as a single output line without trailing newline
func FormatEvent(e genetic.Event) string {
	if e.Final {
		return fmt.Sprintf(finalFormat, e.Generation, e.Phrase)
	}
	return fmt.Sprintf(progressFormat, e.Generation, e.Phrase)
}

// TextSink writes one line per event
// The first write error is kept and later events are dropped
type TextSink struct {
	w   io.Writer
	err error
}

// NewTextSink creates a sink writing to w
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// Observe implements genetic.Sink
func (s *TextSink) Observe(e genetic.Event) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, FormatEvent(e))
}

// Err returns the first write error
func (s *TextSink) Err() error {
	return s.err
}
