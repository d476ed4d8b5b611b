package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/phrase-evolver/genetic"
	"github.com/lixenwraith/phrase-evolver/parameter"
)

// Player plays the convergence chime when a run reaches its target
type Player struct {
	rate beep.SampleRate
	play func(...beep.Streamer)

	once sync.Once
	done chan struct{}
}

// NewPlayer initializes the speaker
// Returns an error when no audio device is available; callers continue without sound
func NewPlayer() (*Player, error) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, err
	}
	return newPlayer(rate, speaker.Play), nil
}

func newPlayer(rate beep.SampleRate, play func(...beep.Streamer)) *Player {
	return &Player{
		rate: rate,
		play: play,
		done: make(chan struct{}),
	}
}

// Observe implements genetic.Sink; only the final event makes a sound
func (p *Player) Observe(e genetic.Event) {
	if !e.Final {
		return
	}
	p.once.Do(func() {
		p.play(beep.Seq(NewChime(p.rate), beep.Callback(func() {
			close(p.done)
		})))
	})
}

// Wait blocks until the chime finished or timeout elapsed
// Returns false on timeout or when no chime was started
func (p *Player) Wait(timeout time.Duration) bool {
	select {
	case <-p.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Close releases the speaker
func (p *Player) Close() {
	speaker.Close()
}
