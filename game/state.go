package game

import (
	"fmt"
	"time"

	"focus/player"

	"golang.org/x/exp/rand"
)

// Game is one match: the board, the players and whose turn it is. It is not
// safe for concurrent use.
type Game struct {
	board     Board
	players   *player.Registry
	turn      int // NoPlayer before Start and after game over
	winner    int
	rng       *rand.Rand
	listeners []Listener
}

type Option func(g *Game)

// WithRand sets the source used to pick the first player.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds the first-player source deterministically.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithListener registers l for every event the game emits.
func WithListener(l Listener) Option {
	return func(g *Game) {
		g.Listen(l)
	}
}

// Listen registers l for every event from now on.
func (g *Game) Listen(l Listener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

// New validates the seats and sets up the starting position. Names must be
// distinct and colors distinct members of player.Palette.
func New(seats []Seat, options ...Option) (*Game, error) {
	if len(seats) < MinPlayers || len(seats) > MaxPlayers {
		return nil, fmt.Errorf("%w: need %d to %d players, got %d", ErrInitialization, MinPlayers, MaxPlayers, len(seats))
	}
	names := make(map[string]bool, len(seats))
	colors := make(map[player.Color]bool, len(seats))
	registered := make([]player.Seat, 0, len(seats))
	for _, s := range seats {
		if names[s.Name] {
			return nil, fmt.Errorf("%w: duplicate player name %q", ErrInitialization, s.Name)
		}
		names[s.Name] = true

		c, ok := player.ParseColor(s.Color)
		if !ok {
			return nil, fmt.Errorf("%w: color %q is not one of %v", ErrInitialization, s.Color, player.Palette)
		}
		if colors[c] {
			return nil, fmt.Errorf("%w: color %s taken twice", ErrInitialization, c)
		}
		colors[c] = true
		registered = append(registered, player.Seat{Name: s.Name, Color: c})
	}

	g := &Game{
		players: player.NewRegistry(registered),
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(g)
	}
	g.Reset()
	return g, nil
}

// Reset restores the starting layout and counters and clears the turn.
// Three-player games start everybody with one reserve piece.
func (g *Game) Reset() {
	g.board = NewBoard(g.players.Colors())
	reserve := 0
	if g.players.Len() == 3 {
		reserve = 1
	}
	g.players.Reset(reserve)
	g.turn = NoPlayer
	g.winner = NoPlayer
}

// SelectFirstPlayer returns a uniformly random active player index.
func (g *Game) SelectFirstPlayer() int {
	active := g.players.Active()
	return active[g.rng.Intn(len(active))]
}

// Start hands the first turn to playerID. It returns ErrAlreadyStarted when a
// turn is set or a winner has been declared, and ErrUnknownPlayer when
// playerID is not an active player.
func (g *Game) Start(playerID int) error {
	if g.turn != NoPlayer || g.winner != NoPlayer {
		return ErrAlreadyStarted
	}
	p, ok := g.players.Get(playerID)
	if !ok || !p.Active() {
		return fmt.Errorf("%w: cannot start with player %d", ErrUnknownPlayer, playerID)
	}
	g.turn = playerID
	return nil
}

// Turn returns the player to move; ok is false when nobody may move.
func (g *Game) Turn() (playerID int, ok bool) {
	return g.turn, g.turn != NoPlayer
}

// Winner returns the winning player once the game is over.
func (g *Game) Winner() (playerID int, ok bool) {
	return g.winner, g.winner != NoPlayer
}

func (g *Game) Over() bool { return g.winner != NoPlayer }

// Validate reports whether the regular move would be accepted, without
// changing anything.
func (g *Game) Validate(playerID int, from, to Coord, n int) error {
	return g.validate(Move{Player: playerID, From: from, To: to, Count: n})
}

// ValidateReserved is Validate for a reserved move.
func (g *Game) ValidateReserved(playerID int, to Coord) error {
	return g.validateReserved(ReservedMove{Player: playerID, To: to})
}

// Move carries n pieces from the top of from onto to. A rejected move
// returns an error wrapping ErrInvalidMove and leaves the game untouched.
func (g *Game) Move(playerID int, from, to Coord, n int) (Outcome, error) {
	m := Move{Player: playerID, From: from, To: to, Count: n}
	if err := g.validate(m); err != nil {
		return Outcome{Winner: NoPlayer}, err
	}
	var events []Event
	moved := g.board.at(from).take(n)
	for _, piece := range g.board.at(to).put(moved...) {
		events = g.captureOrReserve(events, playerID, piece)
	}
	return g.resolve(playerID, events), nil
}

// ReservedMove drops one of the player's reserve pieces on to.
func (g *Game) ReservedMove(playerID int, to Coord) (Outcome, error) {
	m := ReservedMove{Player: playerID, To: to}
	if err := g.validateReserved(m); err != nil {
		return Outcome{Winner: NoPlayer}, err
	}
	p, _ := g.players.Get(playerID)
	g.players.SpendReserve(playerID)
	var events []Event
	for _, piece := range g.board.at(to).put(p.Color()) {
		events = g.captureOrReserve(events, playerID, piece)
	}
	return g.resolve(playerID, events), nil
}

// captureOrReserve credits one trimmed piece to the player who caused the
// overflow.
func (g *Game) captureOrReserve(events []Event, playerID int, piece Piece) []Event {
	p, _ := g.players.Get(playerID)
	if piece == p.Color() {
		g.players.Reclaim(playerID)
		return g.emit(events, Event{Type: PieceReclaimed, Player: playerID})
	}
	g.players.Capture(playerID)
	return g.emit(events, Event{Type: PieceCaptured, Player: playerID})
}

// resolve runs the post-move sequence: domination of opponents, then the
// mover's victory, then turn rotation.
func (g *Game) resolve(mover int, events []Event) Outcome {
	for i := 0; i < g.players.Len(); i++ {
		p, _ := g.players.Get(i)
		if i == mover || !p.Active() {
			continue
		}
		if g.isDominated(p.Color()) && g.players.Deactivate(i) {
			events = g.emit(events, Event{Type: PlayerDominated, Player: i})
		}
	}

	p, _ := g.players.Get(mover)
	if p.Captured() >= CaptureToWin || g.players.ActiveCount() == 1 {
		g.turn = NoPlayer
		g.winner = mover
		events = g.emit(events, Event{Type: PlayerWon, Player: mover})
		return Outcome{Events: events, Over: true, Winner: mover}
	}
	g.turn = g.players.Next(g.turn)
	return Outcome{Events: events, Winner: NoPlayer}
}

func (g *Game) emit(events []Event, e Event) []Event {
	for _, l := range g.listeners {
		l(e)
	}
	return append(events, e)
}

// StackAt returns the pieces at c bottom to top. It fails with ErrInvalidCell
// both for out-of-range coordinates and for unplayable cells inside the grid;
// use Kind to tell an unplayable cell from an empty one.
func (g *Game) StackAt(c Coord) ([]Piece, error) {
	if !c.InBounds() {
		return nil, fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidCell, c.Row, c.Col)
	}
	s := g.board.at(c)
	if s.Kind() == Invalid {
		return nil, fmt.Errorf("%w: (%d,%d) is not playable", ErrInvalidCell, c.Row, c.Col)
	}
	return s.Pieces(), nil
}

// Kind reports what the cell at c holds; out-of-range cells are Invalid.
// Unlike StackAt it never fails, so an unplayable cell reads as Invalid and
// a playable cell with no pieces as Empty.
func (g *Game) Kind(c Coord) CellKind {
	if !c.InBounds() {
		return Invalid
	}
	return g.board.at(c).Kind()
}

// ReserveCount returns the player's reserve; ok is false for an unknown index.
func (g *Game) ReserveCount(playerID int) (int, bool) {
	p, ok := g.players.Get(playerID)
	if !ok {
		return 0, false
	}
	return p.Reserve(), true
}

// CapturedCount returns the player's captures; ok is false for an unknown index.
func (g *Game) CapturedCount(playerID int) (int, bool) {
	p, ok := g.players.Get(playerID)
	if !ok {
		return 0, false
	}
	return p.Captured(), true
}

// Player returns a snapshot of the player at index playerID.
func (g *Game) Player(playerID int) (player.Player, bool) {
	p, ok := g.players.Get(playerID)
	if !ok {
		return player.Player{}, false
	}
	return *p, true
}

func (g *Game) Players() int { return g.players.Len() }

func (g *Game) ActivePlayers() int { return g.players.ActiveCount() }

// Board returns a copy of the current board.
func (g *Game) Board() Board { return g.board }

// SetStack replaces the pieces on a playable cell. It lets callers set up
// positions directly instead of playing them out.
func (g *Game) SetStack(c Coord, pieces []Piece) error {
	if !c.InBounds() || g.board.at(c).Kind() == Invalid {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCell, c.Row, c.Col)
	}
	if len(pieces) > MaxStack {
		return fmt.Errorf("%w: %d pieces exceed stack capacity %d", ErrInvalidCell, len(pieces), MaxStack)
	}
	for _, piece := range pieces {
		if _, ok := player.ParseColor(piece.String()); !ok {
			return fmt.Errorf("%w: piece %q is not a palette color", ErrInvalidCell, piece)
		}
	}
	g.board.at(c).set(pieces)
	return nil
}
