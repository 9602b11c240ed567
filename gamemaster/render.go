package gamemaster

import (
	"fmt"
	"strings"

	"focus/game"
)

const cellWidth = game.MaxStack + 2

// Render draws the board with row and column numbers. Each cell lists its
// pieces bottom to top; '*' marks an unplayable cell and '.' an empty one.
func Render(g *game.Game) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for j := 0; j < game.BoardSize; j++ {
		fmt.Fprintf(&sb, "%-*d", cellWidth, j)
	}
	sb.WriteString("\n")
	for i := 0; i < game.BoardSize; i++ {
		fmt.Fprintf(&sb, "%d ", i)
		for j := 0; j < game.BoardSize; j++ {
			c := game.Coord{Row: i, Col: j}
			text := "*"
			if pieces, err := g.StackAt(c); err == nil {
				text = stackText(pieces)
			}
			fmt.Fprintf(&sb, "%-*s", cellWidth, text)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func stackText(pieces []game.Piece) string {
	if len(pieces) == 0 {
		return "."
	}
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteString(p.String())
	}
	return sb.String()
}
