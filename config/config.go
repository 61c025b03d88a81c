package config

import (
	"fmt"

	"checkers/game"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the settings shared by the command line entry points.
type Config struct {
	Size               int    `env:"CHECKERS_SIZE" envDefault:"8"`
	Difficulty         int    `env:"CHECKERS_DIFFICULTY" envDefault:"3"`
	OpponentDifficulty int    `env:"CHECKERS_OPPONENT_DIFFICULTY" envDefault:"1"`
	StaleThreshold     int    `env:"CHECKERS_STALE_THRESHOLD" envDefault:"40"`
	MaxTurns           int    `env:"CHECKERS_MAX_TURNS" envDefault:"300"`
	Games              int    `env:"CHECKERS_GAMES" envDefault:"10"`
	Seed               uint64 `env:"CHECKERS_SEED" envDefault:"0"`
	OutputDir          string `env:"CHECKERS_OUTPUT_DIR" envDefault:"experiments"`
	LogLevel           string `env:"CHECKERS_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration from the environment, defaults filled in.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings a board or an engine would refuse.
func (c Config) Validate() error {
	if c.Size < game.MinSize || c.Size%2 != 0 {
		return fmt.Errorf("%w: size %d must be even and at least %d", game.ErrInvalidConfig, c.Size, game.MinSize)
	}
	for _, d := range []int{c.Difficulty, c.OpponentDifficulty} {
		if d < game.MinDifficulty || d > game.MaxDifficulty {
			return fmt.Errorf("%w: difficulty %d must be between %d and %d", game.ErrInvalidConfig, d, game.MinDifficulty, game.MaxDifficulty)
		}
	}
	if c.StaleThreshold <= 0 || c.MaxTurns <= 0 || c.Games <= 0 {
		return fmt.Errorf("%w: stale threshold, max turns and games must be positive", game.ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", game.ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
