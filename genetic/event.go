package genetic

import "github.com/gofrs/uuid"

// Event reports the outcome of one evaluated generation
// Progress events carry a sampled phrase, the final event carries the matched phrase
type Event struct {
	RunID       uuid.UUID
	Generation  int
	Phrase      string
	Best        string
	BestFitness float64
	Stats       Stats
	Final       bool
}

// Sink consumes evolution events
type Sink interface {
	Observe(Event)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(Event)

// Observe calls f(e)
func (f SinkFunc) Observe(e Event) {
	f(e)
}

// Sinks fans an event out to every non-nil sink in order
type Sinks []Sink

// Observe forwards e to each sink
func (s Sinks) Observe(e Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Observe(e)
		}
	}
}
