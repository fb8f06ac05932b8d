package audio

import "github.com/lixenwraith/snek/parameter"

// Config holds playback settings
type Config struct {
	Enabled bool
	// MasterVolume scales every cue, clamped to [0,1]
	MasterVolume float64
	SampleRate   int
	// Seed drives per-cue pitch and gain jitter
	Seed uint64
}

// DefaultConfig returns enabled audio at the default volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultVolume,
		SampleRate:   parameter.AudioSampleRate,
		Seed:         1,
	}
}

// normalize clamps volume and fills a missing sample rate
func (c Config) normalize() Config {
	c.MasterVolume = min(max(c.MasterVolume, 0), 1)
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
	return c
}
