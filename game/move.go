package game

import "fmt"

// Move is a regular move: Count pieces off the top of From, carried Count
// cells in a straight line to To.
type Move struct {
	Player int
	From   Coord
	To     Coord
	Count  int
}

func (m Move) String() string {
	return fmt.Sprintf("player %d: %d from (%d,%d) to (%d,%d)",
		m.Player, m.Count, m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

// ReservedMove places one reserve piece of Player's color on To.
type ReservedMove struct {
	Player int
	To     Coord
}

func (m ReservedMove) String() string {
	return fmt.Sprintf("player %d: reserve to (%d,%d)", m.Player, m.To.Row, m.To.Col)
}
