package communication

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console reads commands line by line and writes replies as text.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrClosed
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

func (c *Console) Send(msg string) error {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	if _, err := io.WriteString(c.out, msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
