package gamemaster

import (
	"errors"
	"fmt"
	"strings"

	"focus/game"
)

// ErrNotInProgress means there is no current player to act for.
var ErrNotInProgress = errors.New("no game in progress")

const Help = `Commands:
  1, move r,c r,c n    move n pieces from one cell to another
  2, reserve r,c       place a reserve piece
  3, captured          show your captured pieces
  4, reserves          show your reserve pieces
  5, quit              leave the game
  show r,c             show the stack at a cell
  board                redraw the board`

// GameMaster turns player commands into game calls on behalf of whoever
// holds the turn. It holds no rules of its own.
type GameMaster struct {
	Game *game.Game
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(g *game.Game) *GameMaster {
	return &GameMaster{Game: g}
}

// Reply is what the player sees after a command.
type Reply struct {
	Text    string
	Outcome *game.Outcome // set when a move was applied
	Quit    bool
}

// Execute runs cmd for the current player. Rejected moves come back as
// errors wrapping game.ErrInvalidMove.
func (gm *GameMaster) Execute(cmd Command) (Reply, error) {
	g := gm.Game
	switch cmd.Type {
	case QuitCommand:
		return Reply{Text: "Thanks for playing! Goodbye.", Quit: true}, nil
	case HelpCommand:
		return Reply{Text: Help}, nil
	case BoardCommand:
		return Reply{Text: Render(g)}, nil
	case ShowCommand:
		pieces, err := g.StackAt(cmd.From)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("(%d,%d): %s", cmd.From.Row, cmd.From.Col, stackText(pieces))}, nil
	}

	turn, ok := g.Turn()
	if !ok {
		return Reply{}, ErrNotInProgress
	}
	p, _ := g.Player(turn)

	switch cmd.Type {
	case CapturedCommand:
		n, _ := g.CapturedCount(turn)
		return Reply{Text: fmt.Sprintf("%s has captured %d pieces.", p.Name(), n)}, nil
	case ReservesCommand:
		n, _ := g.ReserveCount(turn)
		return Reply{Text: fmt.Sprintf("%s has %d reserved pieces.", p.Name(), n)}, nil
	case MoveCommand:
		out, err := g.Move(turn, cmd.From, cmd.To, cmd.Count)
		if err != nil {
			return Reply{}, err
		}
		return gm.reply(out, "Successfully moved!"), nil
	case ReserveCommand:
		out, err := g.ReservedMove(turn, cmd.To)
		if err != nil {
			return Reply{}, err
		}
		return gm.reply(out, "Successfully placed a reserve piece!"), nil
	}
	return Reply{}, fmt.Errorf("%w: %d", ErrUnknownCommand, cmd.Type)
}

func (gm *GameMaster) reply(out game.Outcome, done string) Reply {
	lines := make([]string, 0, len(out.Events)+1)
	for _, e := range out.Events {
		lines = append(lines, Describe(gm.Game, e))
	}
	if !out.Over {
		lines = append(lines, done)
	}
	return Reply{Text: strings.Join(lines, "\n"), Outcome: &out}
}

// Describe phrases an event for the players.
func Describe(g *game.Game, e game.Event) string {
	name := fmt.Sprintf("player %d", e.Player)
	if p, ok := g.Player(e.Player); ok {
		name = p.Name()
	}
	switch e.Type {
	case game.PieceCaptured:
		return name + " captured a piece!"
	case game.PieceReclaimed:
		return name + " gained a reserve piece!"
	case game.PlayerDominated:
		return name + " has been dominated!"
	case game.PlayerWon:
		return name + " wins!"
	}
	return name + ": " + e.Type.String()
}

// Explain turns a command or move error into a one-line message.
func Explain(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidMove):
		return "Invalid move! " + reason(err)
	case errors.Is(err, game.ErrInvalidCell):
		return "Invalid location."
	case errors.Is(err, ErrUnknownCommand), errors.Is(err, ErrBadArguments):
		return err.Error() + ". Type 'help' for commands."
	}
	return err.Error()
}

func reason(err error) string {
	for _, r := range []error{
		game.ErrGameOver, game.ErrNotYourTurn, game.ErrBadSource,
		game.ErrBadDestination, game.ErrBadDistance, game.ErrNoReserve,
	} {
		if errors.Is(err, r) {
			s := r.Error()
			return strings.ToUpper(s[:1]) + s[1:] + "."
		}
	}
	return ""
}
