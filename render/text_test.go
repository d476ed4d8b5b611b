package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/phrase-evolver/genetic"
)

func TestFormatEvent(t *testing.T) {
	assert.Equal(t,
		"Generation: 3 produced this random phrase through mutation: a?c",
		FormatEvent(genetic.Event{Generation: 3, Phrase: "a?c"}))
	assert.Equal(t,
		"Generation: 41 succeeded in producing the phrase: abc",
		FormatEvent(genetic.Event{Generation: 41, Phrase: "abc", Final: true}))
}

func TestTextSink_WritesLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf)

	sink.Observe(genetic.Event{Generation: 1, Phrase: "xyz"})
	sink.Observe(genetic.Event{Generation: 2, Phrase: "abc", Final: true})

	assert.NoError(t, sink.Err())
	assert.Equal(t,
		"Generation: 1 produced this random phrase through mutation: xyz\n"+
			"Generation: 2 succeeded in producing the phrase: abc\n",
		buf.String())
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("broken pipe")
}

func TestTextSink_StopsAfterError(t *testing.T) {
	w := &failingWriter{}
	sink := NewTextSink(w)

	sink.Observe(genetic.Event{Generation: 1})
	sink.Observe(genetic.Event{Generation: 2})

	assert.Error(t, sink.Err())
	assert.Equal(t, 1, w.writes)
}
