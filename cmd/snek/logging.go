package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "snek.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns a logger writing to dir/snek.log when debug is set
// The terminal is in raw mode while playing, so logs never go to stdout or stderr
// Without debug, or if the file cannot be opened, the logger discards everything and the file is nil
func setupLogging(dir string, debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	path := filepath.Join(dir, logFileName)
	rotateLog(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	logger := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return logger, f
}

// rotateLog moves an oversized log aside under a timestamped name
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102-150405")
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], stamp, ext)
	_ = os.Rename(path, rotated)
}
