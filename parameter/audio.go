package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDrainTimeout bounds how long exit waits for a playing chime
	AudioDrainTimeout = 2 * time.Second
)

// Convergence Chime (two rising notes)
const (
	ChimeNote1Freq     = 987.77  // B5
	ChimeNote2Freq     = 1318.51 // E6
	ChimeNote1Duration = 100 * time.Millisecond
	ChimeNote2Duration = 400 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 20 * time.Millisecond
	ChimeNote2Release  = 300 * time.Millisecond
	ChimeVolume        = 0.4
)
