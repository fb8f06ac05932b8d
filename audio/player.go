package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/parameter"
)

// Player turns cues into sounds on the system speaker
// Emit never blocks on playback; a player that is disabled or failed to start drops cues
type Player struct {
	mu     sync.Mutex
	cfg    Config
	rng    *rand.Rand
	mixer  *beep.Mixer
	log    zerolog.Logger
	lock   func()
	unlock func()

	started atomic.Bool
	muted   atomic.Bool
	played  atomic.Int64
}

// NewPlayer creates a stopped player
func NewPlayer(cfg Config, logger zerolog.Logger) *Player {
	cfg = cfg.normalize()
	p := &Player{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		mixer:  &beep.Mixer{},
		log:    logger.With().Str("component", "audio").Logger(),
		lock:   func() {},
		unlock: func() {},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the speaker and begins streaming the mixer
// A disabled player stays silent and returns nil
func (p *Player) Start() error {
	if !p.cfg.Enabled {
		return nil
	}
	if p.started.Load() {
		return fmt.Errorf("audio: player already started")
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	p.mu.Lock()
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	p.mu.Unlock()

	speaker.Play(p.mixer)
	p.started.Store(true)
	p.log.Debug().Int("rate", p.cfg.SampleRate).Float64("volume", p.cfg.MasterVolume).Msg("speaker started")
	return nil
}

// Emit queues the sound for c; implements event.Sink
func (p *Player) Emit(c event.Cue) {
	if p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	s := CueSound(c, p.cfg, p.rng)
	if s == nil {
		return
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
	p.played.Add(1)
}

// SetMuted toggles output without stopping the speaker
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
	if muted {
		p.mu.Lock()
		p.lock()
		p.mixer.Clear()
		p.unlock()
		p.mu.Unlock()
	}
}

// Enabled reports whether cues are currently audible
func (p *Player) Enabled() bool {
	return !p.muted.Load()
}

// Played returns the number of cues queued so far
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Close stops all sounds and releases the speaker
func (p *Player) Close() {
	if !p.started.Swap(false) {
		return
	}
	p.mu.Lock()
	speaker.Clear()
	speaker.Close()
	p.lock, p.unlock = func() {}, func() {}
	p.mixer.Clear()
	p.mu.Unlock()
}

var _ event.Sink = (*Player)(nil)
