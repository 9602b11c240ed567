package game

import "focus/player"

const (
	BoardSize    = 8 // fixed by the rules
	MaxStack     = 5 // pieces a cell holds once a move resolves
	MaxMove      = MaxStack
	CaptureToWin = 6
	MinPlayers   = 2
	MaxPlayers   = 4
)

// NoPlayer marks an empty turn cursor: the game has not started or is over.
const NoPlayer = -1

// Piece is the color token stacked on a cell.
type Piece = player.Color

// Coord addresses a cell by row and column, both in [0, BoardSize).
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Seat is a requested player: a name and a palette letter.
type Seat struct {
	Name  string
	Color string
}
