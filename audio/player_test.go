package audio

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/snek/event"
)

func TestPlayerQueuesCues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	p := NewPlayer(cfg, zerolog.Nop())

	p.Emit(event.CueEat)
	p.Emit(event.CueMove)

	if p.Played() != 2 {
		t.Errorf("Expected 2 cues played, got %d", p.Played())
	}
	if p.mixer.Len() != 2 {
		t.Errorf("Expected 2 streamers in mixer, got %d", p.mixer.Len())
	}
}

func TestPlayerDisabledDropsCues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg, zerolog.Nop())

	if err := p.Start(); err != nil {
		t.Fatalf("Expected disabled Start to succeed, got %v", err)
	}
	p.Emit(event.CueHitWall)

	if p.Enabled() {
		t.Error("Expected player disabled")
	}
	if p.Played() != 0 || p.mixer.Len() != 0 {
		t.Errorf("Expected no cues, got %d played", p.Played())
	}
	p.Close()
}

func TestPlayerMuteClearsMixer(t *testing.T) {
	p := NewPlayer(DefaultConfig(), zerolog.Nop())
	p.Emit(event.CueDoorOpen)

	p.SetMuted(true)
	if p.mixer.Len() != 0 {
		t.Errorf("Expected mixer cleared on mute, got %d", p.mixer.Len())
	}
	p.Emit(event.CueEat)
	if p.Played() != 1 {
		t.Errorf("Expected muted emit dropped, got %d played", p.Played())
	}

	p.SetMuted(false)
	p.Emit(event.CueEat)
	if p.Played() != 2 {
		t.Errorf("Expected emit after unmute, got %d played", p.Played())
	}
}

func TestConfigNormalize(t *testing.T) {
	c := Config{MasterVolume: 3}.normalize()
	if c.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", c.MasterVolume)
	}
	if c.SampleRate != DefaultConfig().SampleRate {
		t.Errorf("Expected default sample rate, got %d", c.SampleRate)
	}
	if c = (Config{MasterVolume: -1}).normalize(); c.MasterVolume != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", c.MasterVolume)
	}
}
