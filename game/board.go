package game

import (
	"focus/utils"
)

// Board is the fixed grid of stacks. Being an array, assigning a Board copies
// every stack.
type Board [BoardSize][BoardSize]Stack

// NewBoard lays out the starting position for the given seat colors. The
// partition depends only on the number of colors and their order.
func NewBoard(colors []Piece) Board {
	var b Board
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			b[i][j] = startingStack(len(colors), colors, i, j)
		}
	}
	return b
}

func startingStack(players int, colors []Piece, i, j int) Stack {
	if players == 4 {
		return fourPlayerStack(colors, i, j)
	}
	// the whole outer ring is cut out
	if isBorder(i) || isBorder(j) {
		return Stack{}
	}
	var c Piece
	switch players {
	case 2:
		// checkerboard in pairs of columns
		if ((i-1)+(j-1)/2)%2 == 1 {
			c = colors[1]
		} else {
			c = colors[0]
		}
	case 3:
		band := (j - 1) / 2
		switch {
		case (i-1)%3 == band%3:
			c = colors[0]
		case (i-1)%3 == utils.FloorMod(band-1, 3):
			c = colors[2]
		default:
			c = colors[1]
		}
	default:
		return emptyStack()
	}
	s := emptyStack()
	s.put(c)
	return s
}

// fourPlayerStack fills the board by quadrant, starting bottom-right and
// rotating clockwise. Only the three-cell corner notches are cut out.
func fourPlayerStack(colors []Piece, i, j int) Stack {
	if (i == 0 || i == BoardSize-1) && (j < 2 || j >= BoardSize-2) {
		return Stack{}
	}
	if (i == 1 || i == BoardSize-2) && (j == 0 || j == BoardSize-1) {
		return Stack{}
	}
	half := BoardSize / 2
	var c Piece
	switch {
	case i >= half && j >= half:
		c = pick(i%2 == 1, colors[0], colors[1])
	case i >= half && j < half:
		c = pick(j%2 == 1, colors[2], colors[1])
	case i < half && j < half:
		c = pick(i%2 == 1, colors[3], colors[2])
	default:
		c = pick(j%2 == 1, colors[3], colors[0])
	}
	s := emptyStack()
	s.put(c)
	return s
}

func pick(cond bool, a, b Piece) Piece {
	if cond {
		return a
	}
	return b
}

func isBorder(x int) bool { return x == 0 || x == BoardSize-1 }

// at returns the stack at c; c must be in bounds.
func (b *Board) at(c Coord) *Stack {
	return &b[c.Row][c.Col]
}

// Tops counts the cells whose top piece is color.
func (b *Board) Tops(color Piece) int {
	count := 0
	for i := range b {
		for j := range b[i] {
			if top, ok := b[i][j].Top(); ok && top == color {
				count++
			}
		}
	}
	return count
}
