package game

// Error is a constant sentinel error.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInitialization Error = "invalid initialization"
	ErrInvalidMove    Error = "invalid move"
	ErrInvalidCell    Error = "invalid cell"
	ErrAlreadyStarted Error = "game already started"
	ErrUnknownPlayer  Error = "unknown player"
)

// Reasons a move is rejected. Each is reported wrapped in ErrInvalidMove.
const (
	ErrGameOver       Error = "game is not in progress"
	ErrNotYourTurn    Error = "not this player's turn"
	ErrBadSource      Error = "source is not the player's stack"
	ErrBadDestination Error = "destination is not playable"
	ErrBadDistance    Error = "distance does not match piece count"
	ErrNoReserve      Error = "no pieces in reserve"
)
