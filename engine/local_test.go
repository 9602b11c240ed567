package engine

import (
	"context"
	"strings"
	"testing"

	"focus/communication"
	"focus/game"
	"focus/player"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type scriptedComm struct {
	lines []string
	sent  []string
}

func (s *scriptedComm) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", communication.ErrClosed
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedComm) Send(msg string) error {
	s.sent = append(s.sent, msg)
	return nil
}

func (s *scriptedComm) saw(text string) bool {
	for _, msg := range s.sent {
		if strings.Contains(msg, text) {
			return true
		}
	}
	return false
}

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New([]game.Seat{{Name: "Tim", Color: "R"}, {Name: "Kyle", Color: "G"}}, game.WithSeed(1))
	require.NoError(t, err)
	return g
}

func TestRunToCaptureVictory(t *testing.T) {
	g := newGame(t)
	require.NoError(t, g.Start(0))
	require.NoError(t, g.SetStack(game.Coord{Row: 3, Col: 1}, []game.Piece{player.Red, player.Red, player.Red, player.Red, player.Red}))
	require.NoError(t, g.SetStack(game.Coord{Row: 3, Col: 6}, []game.Piece{player.Green, player.Green, player.Green, player.Green, player.Green}))
	require.NoError(t, g.SetStack(game.Coord{Row: 1, Col: 2}, []game.Piece{player.Green, player.Red, player.Red, player.Red, player.Red}))

	comm := &scriptedComm{lines: []string{
		"move 3,1 3,6 5",
		"bogus",
		"move 2,1 2,3 1",
		"1 2,1 3,1 1",
		"3",
		"move 1,1 1,2 1",
		"never read",
	}}
	e := LocalEngine(g, comm, zerolog.Nop())

	winner, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Tim", winner)
	require.True(t, comm.saw("Tim captured a piece!"))
	require.True(t, comm.saw("unknown command"))
	require.True(t, comm.saw("Invalid move! Distance does not match piece count."))
	require.True(t, comm.saw("Tim has captured 5 pieces."))
	require.True(t, comm.saw("Tim wins!"))
	require.Equal(t, []string{"never read"}, comm.lines, "Loop stops once the game is over")
}

func TestRunSelectsFirstPlayer(t *testing.T) {
	g := newGame(t)
	comm := &scriptedComm{lines: []string{"quit"}}
	e := LocalEngine(g, comm, zerolog.Nop())

	winner, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, winner)
	require.True(t, comm.saw("was chosen randomly to go first!"))
	require.True(t, comm.saw("Goodbye"))
	_, ok := g.Turn()
	require.True(t, ok, "Quitting leaves the match where it was")
}

func TestRunStopsOnClosedInput(t *testing.T) {
	g := newGame(t)
	e := LocalEngine(g, &scriptedComm{}, zerolog.Nop())

	winner, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, winner)
}

func TestRunHonorsContext(t *testing.T) {
	g := newGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := LocalEngine(g, &scriptedComm{lines: []string{"board"}}, zerolog.Nop())

	_, err := e.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
