package game

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/board"
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/engine/fsm"
	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/input"
	"github.com/lixenwraith/snek/level"
	"github.com/lixenwraith/snek/parameter"
	"github.com/lixenwraith/snek/status"
)

// Timer is the periodic tick source owned by the game
// Start replaces any running interval; Stop guarantees no further ticks from it
type Timer interface {
	Start(interval time.Duration)
	Stop()
}

// Run is the session bookkeeping that survives level changes
type Run struct {
	Score      int
	LevelScore int
	Lives      int
}

// NewRun returns a fresh session
func NewRun() Run {
	return Run{Lives: parameter.MaxLives}
}

// Options configures a Game; zero fields take defaults from parameter
type Options struct {
	Loader  level.Loader
	Sink    event.Sink
	Timer   Timer
	Clock   core.TimeProvider
	Rand    *rand.Rand
	Hazards board.HazardConfig
	// Logger defaults to zerolog.Nop
	Logger  *zerolog.Logger
	Metrics *status.Registry

	TickInterval    time.Duration
	ExitingInterval time.Duration
	LateFraction    float64
	StartLevel      int
}

// Game is the top-level state machine driving boards across ticks and keys
// Not safe for concurrent use; the engine loop is the only caller
type Game struct {
	opts    Options
	machine *fsm.Machine[*Game]
	log     zerolog.Logger

	Board   *board.Board
	Run     Run
	LastKey input.Key

	lastTick time.Time

	// Cached metric pointers
	keys   *atomic.Int64
	late   *atomic.Int64
	skips  *atomic.Int64
	deaths *atomic.Int64
	levels *atomic.Int64
}

// New builds a game in the Menu state on the start level
func New(opts Options) (*Game, error) {
	if opts.Loader == nil {
		opts.Loader = level.Builtin{}
	}
	if opts.Sink == nil {
		opts.Sink = event.Discard
	}
	if opts.Timer == nil {
		return nil, fmt.Errorf("game: timer required")
	}
	if opts.Clock == nil {
		opts.Clock = core.NewMonotonicTimeProvider()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if opts.Hazards == (board.HazardConfig{}) {
		opts.Hazards = board.DefaultHazardConfig()
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = parameter.TickInterval
	}
	if opts.ExitingInterval <= 0 {
		opts.ExitingInterval = parameter.ExitingTickInterval
	}
	if opts.LateFraction <= 0 || opts.LateFraction >= 1 {
		opts.LateFraction = parameter.LateFraction
	}
	opts.StartLevel = level.Clamp(opts.StartLevel)

	g := &Game{
		opts:    opts,
		machine: buildMachine(),
		log:     opts.Logger.With().Str("component", "game").Logger(),
		Run:     NewRun(),
		LastKey: input.KeyNone,
		keys:    opts.Metrics.Ints.Get(status.KeyKeys),
		late:    opts.Metrics.Ints.Get(status.KeyLate),
		skips:   opts.Metrics.Ints.Get(status.KeySkips),
		deaths:  opts.Metrics.Ints.Get(status.KeyDeaths),
		levels:  opts.Metrics.Ints.Get(status.KeyLevels),
	}

	if err := g.loadLevel(opts.StartLevel); err != nil {
		return nil, err
	}
	if err := g.machine.CompilePaths(); err != nil {
		return nil, fmt.Errorf("game: state graph: %w", err)
	}
	if err := g.machine.Init(g, StateMenu); err != nil {
		return nil, fmt.Errorf("game: state graph: %w", err)
	}
	g.publishState()

	return g, nil
}

// State returns the active state
func (g *Game) State() fsm.StateID { return g.machine.Current() }

// StateName returns the active state's display name
func (g *Game) StateName() string { return g.machine.StateName() }

// Level returns the current level number
func (g *Game) Level() int { return g.Board.Level.Number }

// HandleKey applies one key press
// Unrecognised keys only update LastKey
func (g *Game) HandleKey(k input.Key) {
	g.LastKey = k
	g.keys.Add(1)

	switch g.machine.Current() {
	case StateMenu, StateDied, StateGameOver:
		if k == input.KeyStart || k == input.KeyConfirm {
			g.fire(evStart)
		}

	case StatePlay:
		if dir, ok := k.Direction(); ok {
			g.steer(dir)
			return
		}
		switch k {
		case input.KeyPause, input.KeyStart:
			g.fire(evPause)
		case input.KeyPrevLevel:
			g.jumpLevel(-1)
		case input.KeyNextLevel:
			g.jumpLevel(1)
		}

	case StatePaused:
		if k == input.KeyPause || k == input.KeyStart {
			g.fire(evResume)
		}
	}
}

// HandleTick advances the simulation by one timer tick
// Ticks arriving outside Play and Exiting are ignored
func (g *Game) HandleTick() {
	switch g.machine.Current() {
	case StatePlay:
		g.tickPlay()
	case StateExiting:
		g.tickExiting()
	}
}

// steer submits a direction, skipping the wait for the next tick when the look-ahead asks for it
func (g *Game) steer(dir core.Direction) {
	late := g.isLate()
	if late {
		g.late.Add(1)
	}

	if !g.Board.Submit(dir, late) {
		return
	}

	g.skips.Add(1)
	g.opts.Timer.Stop()
	g.HandleTick()
	if g.machine.Current() == StatePlay {
		g.opts.Timer.Start(g.opts.TickInterval)
	}
}

// isLate reports whether the current tick interval is mostly spent
func (g *Game) isLate() bool {
	threshold := time.Duration(float64(g.opts.TickInterval) * g.opts.LateFraction)
	return g.opts.Clock.Now().Sub(g.lastTick) > threshold
}

func (g *Game) tickPlay() {
	g.opts.Sink.Emit(event.CueMove)
	r := g.Board.Tick()

	switch {
	case r.Died:
		g.Run.Lives--
		g.deaths.Add(1)
		g.opts.Sink.Emit(event.CueHitWall)
		g.log.Debug().
			Int("level", g.Level()).
			Int("lives", g.Run.Lives).
			Interface("head", g.Board.Snake.Head()).
			Msg("snake died")
		if g.Run.Lives <= 0 {
			g.fire(evGameOver)
		} else {
			g.fire(evDied)
		}

	case r.Exited:
		g.opts.Sink.Emit(event.CueLevelFinished)
		g.fire(evExit)

	default:
		if r.Ate {
			g.Run.LevelScore++
		}
		g.lastTick = g.opts.Clock.Now()
	}
}

func (g *Game) tickExiting() {
	g.opts.Sink.Emit(event.CueMove)
	if g.Board.TickExiting() {
		g.fire(evLevelDone)
	}
}

// jumpLevel swaps the board for an adjacent level without touching state or timer
func (g *Game) jumpLevel(delta int) {
	n := level.Clamp(g.Level() + delta)
	if n != g.Level() {
		g.mustLoadLevel(n)
	}
}

// fire routes ev through the machine and logs the resulting state
func (g *Game) fire(ev fsm.Event) {
	from := g.machine.StateName()
	if !g.machine.HandleEvent(g, ev) {
		return
	}
	g.publishState()
	g.log.Debug().
		Str("from", from).
		Str("to", g.machine.StateName()).
		Int("level", g.Level()).
		Int("score", g.Run.Score).
		Msg("state transition")
}

func (g *Game) publishState() {
	g.opts.Metrics.Strings.Get(status.KeyState).Store(g.machine.StateName())
}

// loadLevel replaces the board with a fresh one for level n
func (g *Game) loadLevel(n int) error {
	p, err := g.opts.Loader.Load(n)
	if err != nil {
		return fmt.Errorf("game: load level %d: %w", n, err)
	}
	b, err := board.New(p, board.Options{
		Hazards: g.opts.Hazards,
		Sink:    g.opts.Sink,
		Rand:    g.opts.Rand,
	})
	if err != nil {
		return fmt.Errorf("game: build level %d: %w", n, err)
	}
	g.Board = b
	g.levels.Add(1)
	g.log.Debug().Int("level", p.Number).Int("walls", len(p.Walls)).Msg("level loaded")
	return nil
}

// mustLoadLevel is loadLevel for transitions, where bad level content is fatal
func (g *Game) mustLoadLevel(n int) {
	if err := g.loadLevel(n); err != nil {
		panic(err)
	}
}

// State hooks

func (g *Game) enterPlay() {
	g.lastTick = g.opts.Clock.Now()
	g.opts.Timer.Start(g.opts.TickInterval)
}

func (g *Game) enterExiting() {
	g.opts.Timer.Start(g.opts.ExitingInterval)
}

func (g *Game) stopTimer() {
	g.opts.Timer.Stop()
}

func (g *Game) enterPaused() {
	g.opts.Sink.Emit(event.CuePause)
}

func (g *Game) exitPaused() {
	g.opts.Sink.Emit(event.CueUnpause)
}

// Transition actions

func (g *Game) finishLevel() {
	g.Run.Score += g.Run.LevelScore
	g.Run.LevelScore = 0
	g.mustLoadLevel(g.Level() + 1)
}

func (g *Game) restartLevel() {
	g.mustLoadLevel(g.Level())
}

func (g *Game) restartGame() {
	g.Run = NewRun()
	g.mustLoadLevel(1)
}
