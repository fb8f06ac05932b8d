package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// envMap builds a lookupEnv over m
func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.env")
	cfg, err := Load(nil, envMap(map[string]string{EnvFile: missing}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.TickInterval != 250*time.Millisecond || cfg.ExitingInterval != 50*time.Millisecond {
		t.Errorf("Unexpected intervals %v %v", cfg.TickInterval, cfg.ExitingInterval)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := writeEnvFile(t, "SNEK_TICK_MS=300\nSNEK_LEVEL=2\nSNEK_VOLUME=0.25\n")
	env := map[string]string{
		EnvFile:  path,
		EnvLevel: "3",
		EnvDebug: "true",
	}

	cfg, err := Load([]string{"-level", "4"}, envMap(env))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// .env over defaults
	if cfg.TickInterval != 300*time.Millisecond {
		t.Errorf("Expected tick from .env, got %v", cfg.TickInterval)
	}
	if cfg.Volume != 0.25 {
		t.Errorf("Expected volume from .env, got %v", cfg.Volume)
	}
	// environment over .env
	if !cfg.Debug {
		t.Error("Expected debug from environment")
	}
	// flags over everything
	if cfg.StartLevel != 4 {
		t.Errorf("Expected level 4 from flags, got %d", cfg.StartLevel)
	}
}

func TestLoadFlags(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.env")
	args := []string{"-tick", "100ms", "-early", "-seed", "42", "-audio=false", "-spread-min", "5", "-spread-max", "8"}
	cfg, err := Load(args, envMap(map[string]string{EnvFile: missing}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TickInterval != 100*time.Millisecond || !cfg.EarlyHazards || cfg.Seed != 42 || cfg.AudioEnabled {
		t.Errorf("Unexpected config %+v", cfg)
	}
	h := cfg.Hazards()
	if h.SpreadMin != 5 || h.SpreadMax != 8 || !h.Early {
		t.Errorf("Unexpected hazards %+v", h)
	}
	a := cfg.Audio()
	if a.Enabled || a.Seed != 42 {
		t.Errorf("Unexpected audio %+v", a)
	}
}

func TestLoadBadEnvValue(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.env")
	_, err := Load(nil, envMap(map[string]string{EnvFile: missing, EnvTick: "fast"}))
	if err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestLoadUnknownFlag(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.env")
	if _, err := Load([]string{"-nope"}, envMap(map[string]string{EnvFile: missing})); err == nil {
		t.Error("Expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, false},
		{"negative exit tick", func(c *Config) { c.ExitingInterval = -time.Millisecond }, false},
		{"late zero", func(c *Config) { c.LateFraction = 0 }, false},
		{"late one", func(c *Config) { c.LateFraction = 1 }, false},
		{"empty spread", func(c *Config) { c.SpreadMin, c.SpreadMax = 10, 10 }, false},
		{"level six", func(c *Config) { c.StartLevel = 6 }, false},
		{"loud", func(c *Config) { c.Volume = 1.5 }, false},
		{"silent", func(c *Config) { c.Volume = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestHelpFlag(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.env")
	_, err := Load([]string{"-h"}, envMap(map[string]string{EnvFile: missing}))
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Expected flag.ErrHelp, got %v", err)
	}

	var sb strings.Builder
	Usage(&sb)
	if !strings.Contains(sb.String(), "-tick") {
		t.Errorf("Expected usage to list -tick, got %q", sb.String())
	}
}
