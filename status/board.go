package status

import (
	"sync/atomic"

	"github.com/lixenwraith/phrase-evolver/genetic"
)

// Board is the live state of a run
// The evolution goroutine writes through Observe; renderers read with View without locking
type Board struct {
	generation  atomic.Int64
	bestFitness atomicFloat
	meanFitness atomicFloat
	stdDev      atomicFloat
	phrase      atomic.Pointer[string]
	best        atomic.Pointer[string]
	runID       atomic.Pointer[string]
	final       atomic.Bool
	updates     atomic.Uint64
}

// View is a point-in-time copy of a Board
type View struct {
	RunID       string
	Generation  int
	Phrase      string
	Best        string
	BestFitness float64
	MeanFitness float64
	StdDev      float64
	Final       bool
	Updates     uint64
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Observe implements genetic.Sink
func (b *Board) Observe(e genetic.Event) {
	phrase, best, runID := e.Phrase, e.Best, e.RunID.String()

	b.generation.Store(int64(e.Generation))
	b.bestFitness.Set(e.BestFitness)
	b.meanFitness.Set(e.Stats.Mean)
	b.stdDev.Set(e.Stats.StdDev)
	b.phrase.Store(&phrase)
	b.best.Store(&best)
	b.runID.Store(&runID)
	b.final.Store(e.Final)
	// Published last so a reader seeing a new count sees the fields above
	b.updates.Add(1)
}

// View returns the current values
// Fields are loaded individually, a view taken mid-update may mix two generations
func (b *Board) View() View {
	return View{
		RunID:       loadString(&b.runID),
		Generation:  int(b.generation.Load()),
		Phrase:      loadString(&b.phrase),
		Best:        loadString(&b.best),
		BestFitness: b.bestFitness.Get(),
		MeanFitness: b.meanFitness.Get(),
		StdDev:      b.stdDev.Get(),
		Final:       b.final.Load(),
		Updates:     b.updates.Load(),
	}
}

func loadString(p *atomic.Pointer[string]) string {
	if s := p.Load(); s != nil {
		return *s
	}
	return ""
}
