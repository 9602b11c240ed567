package gamemaster

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"focus/game"
)

// CommandType is what the player asked for.
type CommandType int

const (
	MoveCommand CommandType = iota
	ReserveCommand
	CapturedCommand
	ReservesCommand
	QuitCommand
	ShowCommand
	BoardCommand
	HelpCommand
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

// Command is one parsed line of player input. From, To and Count are only
// meaningful for the commands that take them.
type Command struct {
	Type  CommandType
	From  game.Coord
	To    game.Coord
	Count int
}

var commandNames = map[string]CommandType{
	"1":        MoveCommand,
	"move":     MoveCommand,
	"2":        ReserveCommand,
	"reserve":  ReserveCommand,
	"3":        CapturedCommand,
	"captured": CapturedCommand,
	"4":        ReservesCommand,
	"reserves": ReservesCommand,
	"5":        QuitCommand,
	"quit":     QuitCommand,
	"exit":     QuitCommand,
	"show":     ShowCommand,
	"board":    BoardCommand,
	"help":     HelpCommand,
	"?":        HelpCommand,
}

// commaSpace lets coordinates be typed as "3, 4" as well as "3,4".
var commaSpace = regexp.MustCompile(`\s*,\s*`)

// Parse reads a command line such as "move 3,3 3,4 1" or "reserve 0,2".
func Parse(line string) (Command, error) {
	fields := strings.Fields(commaSpace.ReplaceAllString(strings.TrimSpace(line), ","))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	kind, ok := commandNames[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	cmd := Command{Type: kind}

	switch kind {
	case MoveCommand:
		if len(args) != 3 {
			return Command{}, fmt.Errorf("%w: move takes 'from to count'", ErrBadArguments)
		}
		var err error
		if cmd.From, err = ParseCoord(args[0]); err != nil {
			return Command{}, err
		}
		if cmd.To, err = ParseCoord(args[1]); err != nil {
			return Command{}, err
		}
		if cmd.Count, err = strconv.Atoi(args[2]); err != nil {
			return Command{}, fmt.Errorf("%w: count %q is not a number", ErrBadArguments, args[2])
		}
	case ReserveCommand, ShowCommand:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: %s takes one 'row,column'", ErrBadArguments, fields[0])
		}
		c, err := ParseCoord(args[0])
		if err != nil {
			return Command{}, err
		}
		if kind == ReserveCommand {
			cmd.To = c
		} else {
			cmd.From = c
		}
	default:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadArguments, fields[0])
		}
	}
	return cmd, nil
}

// ParseCoord reads "row,column". Range is left to the game to judge.
func ParseCoord(s string) (game.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return game.Coord{}, fmt.Errorf("%w: %q is not 'row,column'", ErrBadArguments, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return game.Coord{}, fmt.Errorf("%w: row %q is not a number", ErrBadArguments, parts[0])
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return game.Coord{}, fmt.Errorf("%w: column %q is not a number", ErrBadArguments, parts[1])
	}
	return game.Coord{Row: row, Col: col}, nil
}
