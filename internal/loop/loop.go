// Package loop provides the game orchestrator and the terminal game loop.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/telemetry"
)

// Options configures a terminal game.
type Options struct {
	Config       *config.Config
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Recorder     *telemetry.Recorder // Optional per-frame CSV output
	Seed         int64               // 0 picks a time-based seed
}

// Run plays one game on a terminal with the standard Input → Update → Draw
// cycle. It returns the final score when the ship is hit, the player quits
// or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) (int, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cols, rows, err := sizeFunc()
	if err != nil {
		return 0, fmt.Errorf("reading terminal size: %w", err)
	}
	screen := Viewport(cfg, cols, rows)

	game := NewGame(cfg, screen, rand.New(rand.NewSource(seed)))
	canvas := draw.NewScaledCanvas(cols, rows, screen.Width, screen.Height)
	out := draw.NewChunkWriter(w)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	logger.Info("game started", "seed", seed, "width", screen.Width, "height", screen.Height)

	frameTime := cfg.FrameTime()
	start := time.Now()

	for game.State == GameStateRunning {
		frameStart := time.Now()

		if err := ctx.Err(); err != nil {
			return game.Score, err
		}

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		if inp.Quit {
			logger.Info("player quit", "score", game.Score, "frames", game.Frames)
			break
		}

		newCols, newRows, err := sizeFunc()
		if err != nil {
			return game.Score, fmt.Errorf("reading terminal size: %w", err)
		}
		if newCols != cols || newRows != rows {
			cols, rows = newCols, newRows
			logger.Debug("terminal resized", "cols", cols, "rows", rows)
		}
		screen = Viewport(cfg, cols, rows)
		canvas.Resize(cols, rows, screen.Width, screen.Height)

		// ===== UPDATE PHASE =====
		env := FixedEnv{Screen: screen, Time: time.Since(start).Seconds()}
		frame := game.Step(inp, env)

		if opts.Recorder != nil {
			if err := opts.Recorder.Record(game.Record(env)); err != nil {
				return game.Score, err
			}
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(out, canvas, frame); err != nil {
			return game.Score, fmt.Errorf("drawing frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	if game.State == GameStateTerminated {
		logger.Info("game over", "score", game.Score, "frames", game.Frames)
	}
	draw.ClearScreen(w)
	return game.Score, nil
}

// Viewport maps a terminal size to the logical screen the game plays on.
func Viewport(cfg *config.Config, cols, rows int) object.Screen {
	return object.Screen{
		Width:  float64(cols) * cfg.Terminal.UnitsPerColumn,
		Height: float64(rows*2) * cfg.Terminal.UnitsPerRow,
	}
}

// Record summarizes the current frame for telemetry.
func (g *Game) Record(env Environment) telemetry.FrameRecord {
	screen := env.Viewport()
	ship := g.Player.Centroid()
	return telemetry.FrameRecord{
		Frame:       g.Frames,
		Time:        env.Now(),
		Score:       g.Score,
		Asteroids:   len(g.Asteroids),
		Projectiles: len(g.Projectiles),
		ShipX:       ship.X,
		ShipY:       ship.Y,
		Facing:      g.Player.Facing,
		Width:       screen.Width,
		Height:      screen.Height,
	}
}
