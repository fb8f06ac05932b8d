package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume in [0,1]
	AudioDefaultVolume = 0.6
)

// Cue envelopes share a short click-free attack
const (
	CueAttack = 5 * time.Millisecond
)

// Move tick
const (
	MoveSoundDuration = 40 * time.Millisecond
	MoveSoundRelease  = 20 * time.Millisecond
)

// Eat chirp
const (
	EatSoundDuration = 90 * time.Millisecond
	EatSoundRelease  = 50 * time.Millisecond
)

// Wall hit buzz
const (
	HitSoundDuration = 350 * time.Millisecond
	HitSoundRelease  = 200 * time.Millisecond
)

// Door open, level finished and pause chimes: two notes in sequence
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 220 * time.Millisecond
	ChimeNote1Release  = 20 * time.Millisecond
	ChimeNote2Release  = 150 * time.Millisecond
)

// Hazard thud
const (
	SpawnSoundDuration = 160 * time.Millisecond
	SpawnSoundRelease  = 120 * time.Millisecond
)

// Heartbeat: two sine thumps
const (
	HeartbeatThump     = 90 * time.Millisecond
	HeartbeatGap       = 70 * time.Millisecond
	HeartbeatRelease   = 60 * time.Millisecond
	HeartbeatFrequency = 55.0
)
