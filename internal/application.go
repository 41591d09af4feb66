package application

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the console game on in/out until the operator quits.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	cons, err := console.New(in, out, conf.Color)
	if err != nil {
		return fmt.Errorf("could not create console: %w", err)
	}

	rng := newRand(conf.Seed)

	players := service.Factory{
		Logger:   logger,
		Console:  cons,
		Rand:     rng,
		ReportAI: !conf.QuietAI,
	}

	gameManager := usecase.NewGameManager(logger, cons, rng, players)

	log.Info("Starting game session", "color", conf.Color, "seeded", conf.Seed != 0)

	if err = gameManager.Run(); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	score := gameManager.Score()
	log.Info("Game session finished", "x_wins", score.X, "o_wins", score.O, "draws", score.Draws)

	return nil
}

// newRand seeds from entropy when seed is zero.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // it's ok
	}

	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // it's ok
}
