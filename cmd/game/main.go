package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/loop"
	"github.com/tomz197/polyroids/internal/telemetry"
	"golang.org/x/term"
)

func main() {
	score, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Score: %d\n", score)
}

func run() (int, error) {
	// The terminal is in raw mode while playing, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(config.GetEnv("ASTEROIDS_LOG_FILE", ""))
	if err != nil {
		return 0, err
	}
	defer closeLog()

	cfg, err := config.FromEnv()
	if err != nil {
		return 0, err
	}

	rec, err := telemetry.Create(cfg.Telemetry.Path, cfg.Telemetry.FlushEvery)
	if err != nil {
		return 0, err
	}
	if rec != nil {
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Error("closing telemetry", "err", err)
			}
		}()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Config:   cfg,
		Logger:   logger,
		Recorder: rec,
	})
}

// newLogger returns a logger writing to path, or a discarding logger if path is empty.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})
	if lvl, err := log.ParseLevel(config.GetEnv("ASTEROIDS_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, func() { _ = f.Close() }, nil
}
