package game

import (
	"testing"

	"focus/player"

	"github.com/stretchr/testify/require"
)

// layout draws the board one string per row: '*' unplayable, '.' empty,
// otherwise the top piece.
func layout(b Board) []string {
	rows := make([]string, BoardSize)
	for i := range b {
		row := make([]byte, BoardSize)
		for j := range b[i] {
			s := b[i][j]
			switch s.Kind() {
			case Invalid:
				row[j] = '*'
			case Empty:
				row[j] = '.'
			default:
				top, _ := s.Top()
				row[j] = byte(top)
			}
		}
		rows[i] = string(row)
	}
	return rows
}

func TestNewBoardTwoPlayers(t *testing.T) {
	b := NewBoard([]Piece{player.Red, player.Green})

	require.Equal(t, []string{
		"********",
		"*RRGGRR*",
		"*GGRRGG*",
		"*RRGGRR*",
		"*GGRRGG*",
		"*RRGGRR*",
		"*GGRRGG*",
		"********",
	}, layout(b))
	require.Equal(t, 18, b.Tops(player.Red))
	require.Equal(t, 18, b.Tops(player.Green))
}

func TestNewBoardThreePlayers(t *testing.T) {
	b := NewBoard([]Piece{player.Red, player.Green, player.Yellow})

	require.Equal(t, []string{
		"********",
		"*RRYYGG*",
		"*GGRRYY*",
		"*YYGGRR*",
		"*RRYYGG*",
		"*GGRRYY*",
		"*YYGGRR*",
		"********",
	}, layout(b))
	for _, c := range []Piece{player.Red, player.Green, player.Yellow} {
		require.Equal(t, 12, b.Tops(c), "Each of three players starts with 12 pieces")
	}
}

func TestNewBoardFourPlayers(t *testing.T) {
	b := NewBoard([]Piece{player.Red, player.Green, player.Yellow, player.Blue})

	require.Equal(t, []string{
		"**YYRB**",
		"*BBBRBR*",
		"YYYYRBRB",
		"BBBBRBRB",
		"GYGYGGGG",
		"GYGYRRRR",
		"*YGYGGG*",
		"**GYRR**",
	}, layout(b))
	for _, c := range []Piece{player.Red, player.Green, player.Yellow, player.Blue} {
		require.Equal(t, 13, b.Tops(c), "Each of four players starts with 13 pieces")
	}
}

func TestNewBoardBorderIsUnplayable(t *testing.T) {
	for _, colors := range [][]Piece{
		{player.Red, player.Green},
		{player.Red, player.Green, player.Yellow},
	} {
		b := NewBoard(colors)
		for i := 0; i < BoardSize; i++ {
			for j := 0; j < BoardSize; j++ {
				if i == 0 || j == 0 || i == BoardSize-1 || j == BoardSize-1 {
					require.Equal(t, Invalid, b[i][j].Kind(), "%d players, cell (%d,%d)", len(colors), i, j)
				} else {
					require.Equal(t, Occupied, b[i][j].Kind(), "%d players, cell (%d,%d)", len(colors), i, j)
				}
			}
		}
	}
}

func TestNewBoardFollowsSeatOrder(t *testing.T) {
	a := NewBoard([]Piece{player.Red, player.Green})
	b := NewBoard([]Piece{player.Green, player.Red})

	top, _ := a[1][1].Top()
	require.Equal(t, player.Red, top)
	top, _ = b[1][1].Top()
	require.Equal(t, player.Green, top, "First seat's color fills the same cells")
}

func TestStackPut(t *testing.T) {
	t.Run("within capacity", func(t *testing.T) {
		s := emptyStack()
		trimmed := s.put(player.Red, player.Green)
		require.Empty(t, trimmed)
		require.Equal(t, []Piece{player.Red, player.Green}, s.Pieces())
		require.Equal(t, Occupied, s.Kind())
	})

	t.Run("trims from the bottom", func(t *testing.T) {
		s := emptyStack()
		s.put(player.Red, player.Green, player.Green, player.Yellow)
		trimmed := s.put(player.Blue, player.Blue, player.Blue)
		require.Equal(t, []Piece{player.Red, player.Green}, trimmed)
		require.Equal(t, []Piece{player.Green, player.Yellow, player.Blue, player.Blue, player.Blue}, s.Pieces())
		require.Equal(t, MaxStack, s.Len())
	})

	t.Run("take keeps order", func(t *testing.T) {
		s := emptyStack()
		s.put(player.Red, player.Green, player.Yellow)
		require.Equal(t, []Piece{player.Green, player.Yellow}, s.take(2))
		require.Equal(t, []Piece{player.Red}, s.Pieces())
		s.take(1)
		require.Equal(t, Empty, s.Kind())
	})

	t.Run("zero value is unplayable", func(t *testing.T) {
		var s Stack
		require.Equal(t, Invalid, s.Kind())
		_, ok := s.Top()
		require.False(t, ok)
	})
}
