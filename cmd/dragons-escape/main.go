// Package main provides the Dragon's Escape console game.
// It wires together configuration, logging, the castle, and the console renderer.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dragons-escape/internal/config"
	"github.com/cory-johannsen/dragons-escape/internal/frontend/console"
	"github.com/cory-johannsen/dragons-escape/internal/game/engine"
	"github.com/cory-johannsen/dragons-escape/internal/game/world"
	"github.com/cory-johannsen/dragons-escape/internal/observability"
	"github.com/cory-johannsen/dragons-escape/internal/server"
)

var _ engine.Presenter = (*console.Renderer)(nil)

func main() {
	start := time.Now()

	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	lifecycle, err := newLifecycle(cfg, os.Stdin, os.Stdout, logger, console.SystemSleeper)
	if err != nil {
		logger.Fatal("building game", zap.Error(err))
	}

	logger.Info("game initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("color", cfg.Display.Color),
		zap.Bool("animation", cfg.Animation.Enabled),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("game error", zap.Error(err))
	}
}

// newLifecycle loads the castle and registers one play session reading from in
// and rendering to out.
//
// Postcondition: Returns a Lifecycle ready to Run, or an error if the castle is invalid.
func newLifecycle(cfg config.Config, in io.Reader, out io.Writer, logger *zap.Logger, sleeper console.Sleeper) (*server.Lifecycle, error) {
	castle, err := world.LoadCastle()
	if err != nil {
		return nil, err
	}
	logger.Debug("castle loaded",
		zap.String("zone", castle.Zone().ID),
		zap.Int("rooms", castle.RoomCount()),
		zap.String("start", castle.StartRoom().ID),
	)

	renderer := console.NewRenderer(out, cfg.Display, cfg.Animation, console.WithSleeper(sleeper))
	game := engine.NewGame(castle, renderer, in, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("game", &server.FuncService{
		StartFn: func(ctx context.Context) error {
			if err := game.Run(ctx); err != nil {
				return err
			}
			if err := renderer.Err(); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			return nil
		},
	})
	return lifecycle, nil
}
