package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/phrase-evolver/genetic"
	"github.com/lixenwraith/phrase-evolver/status"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 12)
	t.Cleanup(screen.Fini)
	return screen
}

func readRow(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestScreen_DrawShowsBoard(t *testing.T) {
	screen := newSimScreen(t)
	board := status.NewBoard()
	board.Observe(genetic.Event{Generation: 17, Phrase: "abz", Best: "abc", BestFitness: 1, Final: true})

	NewScreen(screen, board, "abc").Draw()

	assert.Contains(t, readRow(screen, 0), "phrase-evolver")
	assert.Equal(t, "Target      abc", readRow(screen, 2))
	assert.Equal(t, "Generation  17", readRow(screen, 3))
	assert.Equal(t, "Best        abc", readRow(screen, 4))
	assert.Equal(t, "Sample      abz", readRow(screen, 5))
	assert.Contains(t, readRow(screen, 6), "1.000")
	assert.Contains(t, readRow(screen, 8), "Converged")
}

func TestScreen_GeneColors(t *testing.T) {
	screen := newSimScreen(t)
	board := status.NewBoard()
	board.Observe(genetic.Event{Generation: 1, Phrase: "abz", Best: "abz"})

	NewScreen(screen, board, "abc").Draw()

	_, _, matchStyle, _ := screen.GetContent(labelWidth, 4)
	_, _, missStyle, _ := screen.GetContent(labelWidth+2, 4)
	matchFg, _, _ := matchStyle.Decompose()
	missFg, _, _ := missStyle.Decompose()
	assert.Equal(t, RgbGeneMatch, matchFg)
	assert.Equal(t, RgbGeneMismatch, missFg)
}

func TestScreen_ClipsLongPhrase(t *testing.T) {
	screen := newSimScreen(t)
	board := status.NewBoard()
	long := strings.Repeat("x", 300)
	board.Observe(genetic.Event{Generation: 1, Phrase: long, Best: long})

	assert.NotPanics(t, func() {
		NewScreen(screen, board, strings.Repeat("x", 300)).Draw()
	})
	assert.Len(t, readRow(screen, 4), 100)
}

func TestScreen_RunReturnsWhenDone(t *testing.T) {
	screen := newSimScreen(t)
	done := make(chan struct{})
	close(done)

	err := NewScreen(screen, status.NewBoard(), "abc").Run(context.Background(), done)
	assert.NoError(t, err)
}

func TestScreen_RunQuitKey(t *testing.T) {
	screen := newSimScreen(t)
	done := make(chan struct{})
	defer close(done)

	errCh := make(chan error, 1)
	go func() {
		errCh <- NewScreen(screen, status.NewBoard(), "abc").Run(context.Background(), done)
	}()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrQuit)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestScreen_RunContextCancelled(t *testing.T) {
	screen := newSimScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewScreen(screen, status.NewBoard(), "abc").Run(ctx, make(chan struct{}))
	assert.ErrorIs(t, err, context.Canceled)
}
