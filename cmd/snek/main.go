package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snek/audio"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/engine"
	"github.com/lixenwraith/snek/event"
	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/render"
	"github.com/lixenwraith/snek/status"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stderr)
		return nil
	}
	if err != nil {
		return err
	}

	session := uuid.New().String()
	logger, logFile := setupLogging(logDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger = logger.With().Str("session", session).Logger()

	metrics := status.NewRegistry()
	metrics.Strings.Get(status.KeySession).Store(session)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Audio failure degrades to silence
	player := audio.NewPlayer(cfg.Audio(), logger)
	if err := player.Start(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		player.SetMuted(true)
	}
	defer player.Close()
	metrics.Bools.Get(status.KeyAudio).Store(player.Enabled())

	// Cues cross to the player through a lock-free queue so the loop never waits on the speaker
	cues := event.NewQueue()
	core.Go(func() { cues.Pump(ctx, player) })

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	ticker := engine.NewTicker()
	g, err := game.New(game.Options{
		Sink:            cues,
		Timer:           ticker,
		Rand:            rand.New(rand.NewSource(seed)),
		Hazards:         cfg.Hazards(),
		Logger:          &logger,
		Metrics:         metrics,
		TickInterval:    cfg.TickInterval,
		ExitingInterval: cfg.ExitingInterval,
		LateFraction:    cfg.LateFraction,
		StartLevel:      cfg.StartLevel,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Uint64("seed", seed).
		Int("level", g.Level()).
		Dur("tick", cfg.TickInterval).
		Bool("audio", player.Enabled()).
		Msg("snek started")

	loop := engine.NewLoop(screen, g, ticker, render.NewRenderer(screen, metrics, cfg.Debug), metrics, logger)
	err = loop.Run(ctx)

	logger.Info().
		Int("score", g.Run.Score).
		Int("level", g.Level()).
		Str("state", g.StateName()).
		Msg("snek stopped")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
