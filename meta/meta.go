// meta/meta.go
package meta

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"focus/game"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the command line configuration of a local match.
type Config struct {
	// Players lists "name:color" entries in seat order.
	Players  []string `env:"FOCUS_PLAYERS" envSeparator:"," envDefault:"Player1:R,Player2:G"`
	Seed     uint64   `env:"FOCUS_SEED"` // 0 picks a time based seed
	LogLevel string   `env:"FOCUS_LOG_LEVEL" envDefault:"info"`
	Pretty   bool     `env:"FOCUS_LOG_PRETTY" envDefault:"true"`
}

// ParseConfig reads an optional .env file, then the environment, then flags.
// Flags win over the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.Func("players", "Comma separated name:color seats, e.g. Tim:R,Kyle:G", func(s string) error {
		cfg.Players = splitList(s)
		return nil
	})
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for picking the first player (0 for random)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Human friendly log output")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}

// loadDotEnv copies path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// Seats converts the player list into game seats.
func (c Config) Seats() ([]game.Seat, error) {
	seats := make([]game.Seat, 0, len(c.Players))
	for _, entry := range c.Players {
		name, color, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("player %q should look like name:color", entry)
		}
		seats = append(seats, game.Seat{Name: strings.TrimSpace(name), Color: strings.TrimSpace(color)})
	}
	return seats, nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
