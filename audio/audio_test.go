package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/phrase-evolver/genetic"
	"github.com/lixenwraith/phrase-evolver/parameter"
)

// drain consumes a streamer and returns all produced samples
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillator_Length(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(NewOscillator(440, 100*time.Millisecond, WaveSine, rate))
	assert.Len(t, samples, rate.N(100*time.Millisecond))
	for _, s := range samples {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
	}
}

func TestEnvelope_FadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 50 * time.Millisecond
	samples := drain(NewEnvelope(NewOscillator(100, d, WaveSquare, rate), d, 5*time.Millisecond, 20*time.Millisecond, rate))

	require.NotEmpty(t, samples)
	assert.Equal(t, 0.0, samples[0][0])
	assert.Less(t, abs(samples[len(samples)-1][0]), 0.01)
}

func TestNewChime_Duration(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(NewChime(rate))
	want := rate.N(parameter.ChimeNote1Duration) + rate.N(parameter.ChimeNote2Duration)
	assert.Len(t, samples, want)
}

func TestPlayer_ChimesOnceOnFinal(t *testing.T) {
	plays := 0
	p := newPlayer(beep.SampleRate(8000), func(s ...beep.Streamer) {
		plays++
		for _, st := range s {
			drain(st)
		}
	})

	p.Observe(genetic.Event{Generation: 1})
	assert.Equal(t, 0, plays)
	assert.False(t, p.Wait(10*time.Millisecond))

	p.Observe(genetic.Event{Generation: 2, Final: true})
	p.Observe(genetic.Event{Generation: 2, Final: true})
	assert.Equal(t, 1, plays)
	assert.True(t, p.Wait(time.Second))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
