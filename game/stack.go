package game

// CellKind discriminates what a board cell holds.
type CellKind uint8

const (
	Invalid CellKind = iota // permanently unplayable cutout
	Empty
	Occupied
)

func (k CellKind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Empty:
		return "empty"
	default:
		return "occupied"
	}
}

// Stack is the pile of pieces on one cell, bottom first. The zero value is an
// unplayable cell.
type Stack struct {
	playable bool
	n        int
	pieces   [MaxStack]Piece
}

func emptyStack() Stack {
	return Stack{playable: true}
}

func (s *Stack) Kind() CellKind {
	switch {
	case !s.playable:
		return Invalid
	case s.n == 0:
		return Empty
	default:
		return Occupied
	}
}

func (s *Stack) Len() int { return s.n }

// Top returns the piece that decides who may move this stack.
func (s *Stack) Top() (Piece, bool) {
	if s.n == 0 {
		return 0, false
	}
	return s.pieces[s.n-1], true
}

// Pieces returns a copy of the stack bottom to top.
func (s *Stack) Pieces() []Piece {
	out := make([]Piece, s.n)
	copy(out, s.pieces[:s.n])
	return out
}

// take removes the top n pieces and returns them in stack order.
func (s *Stack) take(n int) []Piece {
	moved := make([]Piece, n)
	copy(moved, s.pieces[s.n-n:s.n])
	s.n -= n
	s.clearAbove()
	return moved
}

// put stacks pieces on top and trims the bottom back down to MaxStack. The
// trimmed pieces are returned bottom first.
func (s *Stack) put(pieces ...Piece) (trimmed []Piece) {
	all := make([]Piece, 0, s.n+len(pieces))
	all = append(all, s.pieces[:s.n]...)
	all = append(all, pieces...)
	if over := len(all) - MaxStack; over > 0 {
		trimmed = all[:over]
		all = all[over:]
	}
	s.n = copy(s.pieces[:], all)
	s.clearAbove()
	return trimmed
}

// set replaces the whole stack; the caller guarantees len(pieces) <= MaxStack.
func (s *Stack) set(pieces []Piece) {
	s.n = copy(s.pieces[:], pieces)
	s.clearAbove()
}

// clearAbove zeroes unused slots so equal stacks compare equal.
func (s *Stack) clearAbove() {
	for i := s.n; i < MaxStack; i++ {
		s.pieces[i] = 0
	}
}
