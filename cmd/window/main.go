// Command window plays the game in a full-screen raylib window.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/loop"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/telemetry"
)

const lineThickness = 2

// raylibEnv answers the per-frame queries from the window.
type raylibEnv struct{}

func (raylibEnv) Viewport() object.Screen {
	return object.Screen{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
	}
}

func (raylibEnv) Now() float64 {
	return rl.GetTime()
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})

	score, err := run(logger)
	if err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Score: %d\n", score)
}

func run(logger *log.Logger) (int, error) {
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

	rl.SetConfigFlags(rl.FlagFullscreenMode)
	rl.InitWindow(0, 0, "Asteroids")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Loop.TargetFPS))

	env := raylibEnv{}
	seed := time.Now().UnixNano()
	game := loop.NewGame(cfg, env.Viewport(), rand.New(rand.NewSource(seed)))
	logger.Info("game started", "seed", seed, "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())

	for game.State == loop.GameStateRunning && !rl.WindowShouldClose() {
		inp := object.Input{
			Right:  rl.IsKeyDown(rl.KeyRight),
			Left:   rl.IsKeyDown(rl.KeyLeft),
			Thrust: rl.IsKeyDown(rl.KeyUp),
			Fire:   rl.IsKeyPressed(rl.KeySpace),
		}

		frame := game.Step(inp, env)
		if rec != nil {
			if err := rec.Record(game.Record(env)); err != nil {
				return game.Score, err
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		drawFrame(frame)
		rl.EndDrawing()
	}

	logger.Info("game over", "score", game.Score, "frames", game.Frames)
	return game.Score, nil
}

// drawFrame draws the outlines and the score.
func drawFrame(frame loop.Frame) {
	h := frame.Hull
	rl.DrawTriangleLines(
		rl.NewVector2(float32(h[0].X), float32(h[0].Y)),
		rl.NewVector2(float32(h[1].X), float32(h[1].Y)),
		rl.NewVector2(float32(h[2].X), float32(h[2].Y)),
		rl.Green,
	)

	for _, p := range frame.Projectiles {
		rl.DrawRectangleLinesEx(
			rl.NewRectangle(float32(p.Position.X), float32(p.Position.Y), float32(p.Width), float32(p.Height)),
			lineThickness,
			rl.Purple,
		)
	}

	for _, a := range frame.Asteroids {
		rl.DrawPolyLinesEx(
			rl.NewVector2(float32(a.Center.X), float32(a.Center.Y)),
			int32(a.Sides),
			float32(a.Radius),
			float32(a.Rotation),
			lineThickness,
			rl.Green,
		)
	}

	rl.DrawText(fmt.Sprintf("%d", frame.Score), 100, 100, 50, rl.Green)
}
