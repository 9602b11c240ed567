package engine

import (
	"context"
	"errors"
	"fmt"

	"focus/communication"
	"focus/game"
	"focus/gamemaster"

	"github.com/rs/zerolog"
)

// Engine runs one match at a single console: it prompts whoever holds the
// turn and feeds their commands to the game master.
type Engine struct {
	Game   *game.Game
	Master *gamemaster.GameMaster
	Comm   communication.Communicator
	Logger zerolog.Logger
}

func LocalEngine(g *game.Game, comm communication.Communicator, logger zerolog.Logger) *Engine {
	e := &Engine{
		Game:   g,
		Master: gamemaster.NewGameMaster(g),
		Comm:   comm,
		Logger: logger,
	}
	g.Listen(e.logEvent)
	return e
}

func (e *Engine) logEvent(ev game.Event) {
	p, _ := e.Game.Player(ev.Player)
	e.Logger.Info().
		Str("event", ev.Type.String()).
		Int("player", ev.Player).
		Str("name", p.Name()).
		Msg("game event")
}

// Run plays until somebody wins, a player quits or input runs out. It
// returns the winner's name, or "" when the match was abandoned.
func (e *Engine) Run(ctx context.Context) (string, error) {
	if _, ok := e.Game.Turn(); !ok && !e.Game.Over() {
		first := e.Game.SelectFirstPlayer()
		if err := e.Game.Start(first); err != nil {
			return "", err
		}
		p, _ := e.Game.Player(first)
		e.Logger.Info().Int("player", first).Str("name", p.Name()).Msg("starting player selected")
		if err := e.Comm.Send(p.Name() + "'s piece was chosen randomly to go first!"); err != nil {
			return "", err
		}
	}

	turnCount := 1
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		turn, ok := e.Game.Turn()
		if !ok {
			break
		}
		p, _ := e.Game.Player(turn)
		prompt := fmt.Sprintf("%s\n%s (%s)'s turn. Type 'help' for commands.\n> ",
			gamemaster.Render(e.Game), p.Name(), p.Color())
		if err := e.Comm.Send(prompt); err != nil {
			return "", err
		}

		line, err := e.Comm.ReadLine()
		if errors.Is(err, communication.ErrClosed) {
			e.Logger.Info().Int("turn", turnCount).Msg("input closed, abandoning match")
			return "", nil
		}
		if err != nil {
			return "", err
		}

		reply, err := e.execute(line)
		if err != nil {
			e.Logger.Debug().Err(err).Str("input", line).Int("player", turn).Msg("command rejected")
			if err := e.Comm.Send(gamemaster.Explain(err)); err != nil {
				return "", err
			}
			continue
		}
		if err := e.Comm.Send(reply.Text); err != nil {
			return "", err
		}
		if reply.Quit {
			e.Logger.Info().Int("turn", turnCount).Msg("player quit")
			return "", nil
		}
		if reply.Outcome != nil {
			e.Logger.Debug().Int("turn", turnCount).Int("player", turn).Str("input", line).Msg("move applied")
			turnCount++
		}
	}

	winner, ok := e.Game.Winner()
	if !ok {
		return "", nil
	}
	p, _ := e.Game.Player(winner)
	e.Logger.Info().Int("player", winner).Str("name", p.Name()).Int("turns", turnCount).Msg("game over")
	return p.Name(), nil
}

func (e *Engine) execute(line string) (gamemaster.Reply, error) {
	cmd, err := gamemaster.Parse(line)
	if err != nil {
		return gamemaster.Reply{}, err
	}
	return e.Master.Execute(cmd)
}
