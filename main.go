package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"focus/communication"
	"focus/engine"
	"focus/game"
	"focus/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := meta.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	seats, err := cfg.Seats()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid players")
	}
	options := []game.Option{}
	if cfg.Seed != 0 {
		options = append(options, game.WithSeed(cfg.Seed))
	}
	g, err := game.New(seats, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	e := engine.LocalEngine(g, communication.NewConsole(os.Stdin, os.Stdout), log.Logger)
	winner, err := e.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
	if winner != "" {
		fmt.Printf("Game over! Winner: %s\n", winner)
	}
}
