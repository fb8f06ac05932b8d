package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/snek/audio"
	"github.com/lixenwraith/snek/board"
	"github.com/lixenwraith/snek/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Environment keys, also accepted in the .env file
const (
	EnvTick        = "SNEK_TICK_MS"
	EnvExitTick    = "SNEK_EXIT_TICK_MS"
	EnvLate        = "SNEK_LATE_FRACTION"
	EnvSpreadMin   = "SNEK_SPREAD_MIN"
	EnvSpreadMax   = "SNEK_SPREAD_MAX"
	EnvEarly       = "SNEK_EARLY_HAZARDS"
	EnvLevel       = "SNEK_LEVEL"
	EnvSeed        = "SNEK_SEED"
	EnvAudio       = "SNEK_AUDIO"
	EnvVolume      = "SNEK_VOLUME"
	EnvDebug       = "SNEK_DEBUG"
	EnvFile        = "SNEK_ENV_FILE"
	DefaultEnvFile = ".env"
)

// Config is the resolved runtime configuration
type Config struct {
	TickInterval    time.Duration
	ExitingInterval time.Duration
	LateFraction    float64

	SpreadMin    int
	SpreadMax    int
	EarlyHazards bool

	StartLevel int
	// Seed of zero means time-seeded
	Seed uint64

	AudioEnabled bool
	Volume       float64

	Debug bool
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		TickInterval:    parameter.TickInterval,
		ExitingInterval: parameter.ExitingTickInterval,
		LateFraction:    parameter.LateFraction,
		SpreadMin:       parameter.WallSpawnMin,
		SpreadMax:       parameter.WallSpawnMax,
		StartLevel:      1,
		AudioEnabled:    true,
		Volume:          parameter.AudioDefaultVolume,
	}
}

// Load resolves configuration from defaults, the .env file, the environment and flags, in rising precedence
// lookupEnv is usually os.LookupEnv; a missing .env file is not an error
func Load(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	envFile := DefaultEnvFile
	if v, ok := lookupEnv(EnvFile); ok && v != "" {
		envFile = v
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: read %s: %w", envFile, err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// applyEnv overlays every key present in lookup
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	parse := func(key string, set func(string) error) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		if err := set(v); err != nil {
			errs = append(errs, fmt.Errorf("config: %s=%q: %w", key, v, err))
		}
	}

	parse(EnvTick, millis(&c.TickInterval))
	parse(EnvExitTick, millis(&c.ExitingInterval))
	parse(EnvLate, float(&c.LateFraction))
	parse(EnvSpreadMin, integer(&c.SpreadMin))
	parse(EnvSpreadMax, integer(&c.SpreadMax))
	parse(EnvEarly, boolean(&c.EarlyHazards))
	parse(EnvLevel, integer(&c.StartLevel))
	parse(EnvSeed, unsigned(&c.Seed))
	parse(EnvAudio, boolean(&c.AudioEnabled))
	parse(EnvVolume, float(&c.Volume))
	parse(EnvDebug, boolean(&c.Debug))

	return errors.Join(errs...)
}

// applyFlags parses command-line flags over the current values
func (c *Config) applyFlags(args []string) error {
	if err := c.flagSet(io.Discard).Parse(args); err != nil {
		return fmt.Errorf("config: flags: %w", err)
	}
	return nil
}

// Usage writes the flag reference to w
func Usage(w io.Writer) {
	c := Default()
	set := c.flagSet(w)
	fmt.Fprintf(w, "Usage of snek:\n")
	set.PrintDefaults()
}

// flagSet binds every flag to c, defaulting to its current values
func (c *Config) flagSet(out io.Writer) *flag.FlagSet {
	set := flag.NewFlagSet("snek", flag.ContinueOnError)
	set.SetOutput(out)

	set.DurationVar(&c.TickInterval, "tick", c.TickInterval, "snake step interval")
	set.DurationVar(&c.ExitingInterval, "exit-tick", c.ExitingInterval, "exit walk step interval")
	set.Float64Var(&c.LateFraction, "late", c.LateFraction, "fraction of the tick after which input is late")
	set.IntVar(&c.SpreadMin, "spread-min", c.SpreadMin, "minimum hazard spread delay")
	set.IntVar(&c.SpreadMax, "spread-max", c.SpreadMax, "maximum hazard spread delay")
	set.BoolVar(&c.EarlyHazards, "early", c.EarlyHazards, "arm hazards from the first tick")
	set.IntVar(&c.StartLevel, "level", c.StartLevel, "starting level (1-5)")
	set.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time-based")
	set.BoolVar(&c.AudioEnabled, "audio", c.AudioEnabled, "enable sound")
	set.Float64Var(&c.Volume, "volume", c.Volume, "master volume (0-1)")
	set.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging and metrics")
	return set
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: tick interval %v", ErrInvalid, c.TickInterval))
	}
	if c.ExitingInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: exit tick interval %v", ErrInvalid, c.ExitingInterval))
	}
	if c.LateFraction <= 0 || c.LateFraction >= 1 {
		errs = append(errs, fmt.Errorf("%w: late fraction %v outside (0,1)", ErrInvalid, c.LateFraction))
	}
	if c.SpreadMin < 0 || c.SpreadMax <= c.SpreadMin {
		errs = append(errs, fmt.Errorf("%w: empty spread range [%d,%d)", ErrInvalid, c.SpreadMin, c.SpreadMax))
	}
	if c.StartLevel < 1 || c.StartLevel > parameter.LevelCount {
		errs = append(errs, fmt.Errorf("%w: level %d outside 1..%d", ErrInvalid, c.StartLevel, parameter.LevelCount))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Volume))
	}
	return errors.Join(errs...)
}

// Hazards returns the wall-spawn scheduler settings
func (c Config) Hazards() board.HazardConfig {
	return board.HazardConfig{
		SpreadMin: c.SpreadMin,
		SpreadMax: c.SpreadMax,
		Early:     c.EarlyHazards,
	}
}

// Audio returns the player settings; the sound seed follows the game seed
func (c Config) Audio() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.AudioEnabled
	a.MasterVolume = c.Volume
	if c.Seed != 0 {
		a.Seed = c.Seed
	}
	return a
}

func millis(d *time.Duration) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*d = time.Duration(n) * time.Millisecond
		return nil
	}
}

func integer(i *int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*i = n
		return nil
	}
}

func unsigned(u *uint64) func(string) error {
	return func(s string) error {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		*u = n
		return nil
	}
}

func float(f *float64) func(string) error {
	return func(s string) error {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = n
		return nil
	}
}

func boolean(b *bool) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*b = v
		return nil
	}
}
