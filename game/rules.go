package game

import "fmt"

// Each check below is one independent legality predicate. A move is legal
// only when all of them hold.

func (g *Game) checkTurn(playerID int) error {
	if g.turn == NoPlayer {
		return ErrGameOver
	}
	if _, ok := g.players.Get(playerID); !ok || playerID != g.turn {
		return ErrNotYourTurn
	}
	return nil
}

func (g *Game) checkSource(from Coord) error {
	if !from.InBounds() {
		return ErrBadSource
	}
	p, _ := g.players.Get(g.turn)
	top, ok := g.board.at(from).Top()
	if !ok || top != p.Color() {
		return ErrBadSource
	}
	return nil
}

func (g *Game) checkDestination(to Coord) error {
	if !to.InBounds() || g.board.at(to).Kind() == Invalid {
		return ErrBadDestination
	}
	return nil
}

// checkDistance assumes from is in bounds.
func (g *Game) checkDistance(from, to Coord, n int) error {
	if n < 1 || n > MaxMove {
		return ErrBadDistance
	}
	if g.board.at(from).Len() < n {
		return ErrBadDistance
	}
	dr, dc := abs(from.Row-to.Row), abs(from.Col-to.Col)
	if !(dr == 0 && dc == n) && !(dc == 0 && dr == n) {
		return ErrBadDistance
	}
	return nil
}

func (g *Game) validate(m Move) error {
	if err := g.checkTurn(m.Player); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if err := g.checkSource(m.From); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if err := g.checkDestination(m.To); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if err := g.checkDistance(m.From, m.To, m.Count); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	return nil
}

func (g *Game) validateReserved(m ReservedMove) error {
	if err := g.checkTurn(m.Player); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if err := g.checkDestination(m.To); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if p, _ := g.players.Get(m.Player); p.Reserve() <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMove, ErrNoReserve)
	}
	return nil
}

// isDominated reports whether color owns no stack top anywhere. Reserve
// pieces do not count.
func (g *Game) isDominated(color Piece) bool {
	return g.board.Tops(color) == 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
