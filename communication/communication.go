package communication

import "errors"

// ErrClosed is returned by ReadLine once the input is exhausted.
var ErrClosed = errors.New("communication: input closed")

// Communicator is an interface that abstracts the communication mechanism
// between a match and the people playing it.
type Communicator interface {
	// ReadLine blocks for the next line of input, without its newline.
	ReadLine() (string, error)
	Send(msg string) error
}
