package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	return config.MustLoad(config.SearchFile())
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	// validated by config.Load
	level, _ := conf.SlogLevel()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return logger.With("session", uuid.NewString())
}
