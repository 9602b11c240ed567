package game

// EventType names something that happened while a move resolved.
type EventType int

const (
	PieceCaptured EventType = iota
	PieceReclaimed
	PlayerDominated
	PlayerWon
)

func (t EventType) String() string {
	switch t {
	case PieceCaptured:
		return "piece_captured"
	case PieceReclaimed:
		return "piece_reclaimed"
	case PlayerDominated:
		return "player_dominated"
	case PlayerWon:
		return "player_won"
	default:
		return "unknown"
	}
}

// Event is attributed to a single player index.
type Event struct {
	Type   EventType
	Player int
}

// Listener observes events synchronously, in emission order.
type Listener func(Event)

// Outcome reports what an accepted move caused.
type Outcome struct {
	Events []Event
	Over   bool
	Winner int // NoPlayer unless Over
}
