package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/input"
	"github.com/lixenwraith/snek/parameter"
	"github.com/lixenwraith/snek/render"
	"github.com/lixenwraith/snek/status"
)

// Drawer paints one frame
type Drawer interface {
	Draw(s render.Snapshot)
}

// Loop multiplexes terminal input and timer ticks into a single game goroutine
type Loop struct {
	screen tcell.Screen
	game   *game.Game
	ticker *Ticker
	drawer Drawer
	keys   *input.KeyTable
	log    zerolog.Logger

	ticks    *atomic.Int64
	interval *atomic.Int64
}

// NewLoop wires a loop; ticker must be the Timer the game was built with
func NewLoop(screen tcell.Screen, g *game.Game, ticker *Ticker, drawer Drawer, metrics *status.Registry, logger zerolog.Logger) *Loop {
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	return &Loop{
		screen:   screen,
		game:     g,
		ticker:   ticker,
		drawer:   drawer,
		keys:     input.DefaultKeyTable(),
		log:      logger.With().Str("component", "loop").Logger(),
		ticks:    metrics.Ints.Get(status.KeyTicks),
		interval: metrics.Ints.Get(status.KeyInterval),
	}
}

// Run blocks until ctx is cancelled, the quit key is pressed, or the screen closes
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer l.ticker.Stop()

	events := make(chan tcell.Event, parameter.KeyEventBuffer)
	core.Go(func() { l.poll(ctx, events) })

	l.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				l.log.Debug().Msg("screen closed")
				return nil
			}
			if !l.handleEvent(ev) {
				return nil
			}

		case <-l.ticker.C():
			l.ticks.Add(1)
			l.game.HandleTick()
		}
		l.draw()
	}
}

// poll forwards terminal events until the screen is finalised or ctx ends
func (l *Loop) poll(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent returns false when the loop should stop
func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := l.keys.Lookup(ev)
		if k == input.KeyQuit {
			l.log.Debug().Msg("quit requested")
			return false
		}
		if k != input.KeyNone {
			l.game.HandleKey(k)
		}

	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

func (l *Loop) draw() {
	l.interval.Store(int64(l.ticker.Interval() / time.Millisecond))
	if l.drawer != nil {
		l.drawer.Draw(render.Capture(l.game))
	}
}
