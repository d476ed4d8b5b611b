package status

import (
	"sync"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/phrase-evolver/genetic"
)

func TestBoard_ZeroView(t *testing.T) {
	v := NewBoard().View()
	assert.Equal(t, View{}, v)
}

func TestBoard_ObserveUpdatesView(t *testing.T) {
	b := NewBoard()
	id := uuid.Must(uuid.NewV4())

	b.Observe(genetic.Event{
		RunID:       id,
		Generation:  12,
		Phrase:      "sampled",
		Best:        "best",
		BestFitness: 0.75,
		Stats:       genetic.Stats{Mean: 0.4, StdDev: 0.1},
	})

	v := b.View()
	assert.Equal(t, id.String(), v.RunID)
	assert.Equal(t, 12, v.Generation)
	assert.Equal(t, "sampled", v.Phrase)
	assert.Equal(t, "best", v.Best)
	assert.Equal(t, 0.75, v.BestFitness)
	assert.Equal(t, 0.4, v.MeanFitness)
	assert.Equal(t, 0.1, v.StdDev)
	assert.False(t, v.Final)
	assert.Equal(t, uint64(1), v.Updates)

	b.Observe(genetic.Event{Generation: 13, Phrase: "done", Best: "done", BestFitness: 1, Final: true})
	v = b.View()
	assert.True(t, v.Final)
	assert.Equal(t, uint64(2), v.Updates)
	assert.Equal(t, "done", v.Phrase)
}

func TestBoard_ConcurrentReadWrite(t *testing.T) {
	b := NewBoard()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= 1000; i++ {
			b.Observe(genetic.Event{Generation: i, Phrase: "p"})
		}
	}()
	go func() {
		defer wg.Done()
		for range 1000 {
			v := b.View()
			assert.GreaterOrEqual(t, v.Generation, 0)
		}
	}()
	wg.Wait()

	assert.Equal(t, 1000, b.View().Generation)
	assert.Equal(t, uint64(1000), b.View().Updates)
}
