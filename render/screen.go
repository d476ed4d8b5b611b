package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/phrase-evolver/status"
)

const (
	frameInterval = 33 * time.Millisecond
	labelWidth    = 12
	barWidth      = 30
)

// ErrQuit is returned by Screen.Run when the user closes the view
var ErrQuit = errors.New("view closed by user")

// Screen draws a live status board onto a tcell screen
type Screen struct {
	screen tcell.Screen
	board  *status.Board
	target string
}

// NewScreen creates a view of board; screen must already be initialized
func NewScreen(screen tcell.Screen, board *status.Board, target string) *Screen {
	return &Screen{
		screen: screen,
		board:  board,
		target: target,
	}
}

// Run redraws on every frame until done is closed, ctx ends or the user quits
// A final frame is drawn when done closes so the converged phrase stays visible
func (s *Screen) Run(ctx context.Context, done <-chan struct{}) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-done:
			s.Draw()
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return ErrQuit
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}

		case <-ticker.C:
			s.Draw()
		}
	}
}

// Draw renders the current board view
func (s *Screen) Draw() {
	v := s.board.View()
	width, _ := s.screen.Size()

	bg := tcell.StyleDefault.Background(RgbBackground)
	label := bg.Foreground(RgbLabel)
	text := bg.Foreground(RgbText)

	s.screen.SetStyle(bg)
	s.screen.Clear()

	header := " phrase-evolver"
	if v.RunID != "" {
		header += "  run " + v.RunID
	}
	headerStyle := tcell.StyleDefault.Background(RgbHeaderBg).Foreground(RgbHeaderFg)
	s.drawText(0, 0, width, padRight(header, width), headerStyle)

	s.drawLabel(2, "Target", label)
	s.drawText(labelWidth, 2, width, s.target, text)

	s.drawLabel(3, "Generation", label)
	s.drawText(labelWidth, 3, width, fmt.Sprintf("%d", v.Generation), text)

	s.drawLabel(4, "Best", label)
	s.drawGenes(labelWidth, 4, width, v.Best, bg)

	s.drawLabel(5, "Sample", label)
	s.drawGenes(labelWidth, 5, width, v.Phrase, bg)

	s.drawLabel(6, "Fitness", label)
	x := s.drawBar(labelWidth, 6, width, v.BestFitness, bg)
	s.drawText(x+1, 6, width, fmt.Sprintf("%.3f  mean %.3f  sd %.3f", v.BestFitness, v.MeanFitness, v.StdDev), text)

	if v.Final {
		s.drawText(0, 8, width, "Converged.", bg.Foreground(RgbConverged))
	} else {
		s.drawText(0, 8, width, "Evolving... q / Esc to stop", label)
	}

	s.screen.Show()
}

func (s *Screen) drawLabel(y int, name string, style tcell.Style) {
	width, _ := s.screen.Size()
	s.drawText(0, y, width, name, style)
}

// drawText writes str from x, clipped at width, and returns the next column
func (s *Screen) drawText(x, y, width int, str string, style tcell.Style) int {
	for _, r := range str {
		if x >= width {
			break
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// drawGenes colors each gene by whether it matches the target at that position
func (s *Screen) drawGenes(x, y, width int, phrase string, bg tcell.Style) {
	match := bg.Foreground(RgbGeneMatch)
	miss := bg.Foreground(RgbGeneMismatch)

	for i := 0; i < len(phrase) && x < width; i++ {
		style := miss
		if i < len(s.target) && phrase[i] == s.target[i] {
			style = match
		}
		s.screen.SetContent(x, y, rune(phrase[i]), nil, style)
		x++
	}
}

func (s *Screen) drawBar(x, y, width int, fitness float64, bg tcell.Style) int {
	filled := int(fitness*barWidth + 0.5)
	fill := bg.Foreground(RgbBarFill)
	empty := bg.Foreground(RgbBarEmpty)

	for i := 0; i < barWidth && x < width; i++ {
		if i < filled {
			s.screen.SetContent(x, y, '█', nil, fill)
		} else {
			s.screen.SetContent(x, y, '░', nil, empty)
		}
		x++
	}
	return x
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
