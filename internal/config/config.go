package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"
)

// FileName is looked up relative to the XDG config directories.
const FileName = "tictactoe/config.yml"

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidColor    = errors.New("invalid color mode")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Color    string `yaml:"color" env:"TICTACTOE_COLOR" env-default:"auto"`
	Seed     uint64 `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	QuietAI  bool   `yaml:"quiet-ai" env:"TICTACTOE_QUIET_AI" env-default:"false"`
}

// MustLoad - load configuration from path, or from the environment only when path is empty.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SearchFile returns the config file path, or "" when none exists.
func SearchFile() string {
	path, err := xdg.SearchConfigFile(FileName)
	if err != nil {
		return ""
	}

	return path
}

func (that *Config) Validate() error {
	var result *multierror.Error

	if _, err := that.SlogLevel(); err != nil {
		result = multierror.Append(result, err)
	}

	switch that.Color {
	case "auto", "always", "never":
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidColor, that.Color))
	}

	return result.ErrorOrNil()
}

func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}
}
