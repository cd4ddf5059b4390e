// Package prompt reads guesses and game settings from an interactive console.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Console prompts on out and reads lines from in. A single background
// goroutine scans in, so reads can be abandoned when the context is done.
// End of input is reported as io.EOF.
type Console struct {
	out   io.Writer
	lines chan string
	err   error // scanner error, valid once lines is closed
}

// NewConsole starts reading in.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{out: out, lines: make(chan string)}
	go func() {
		defer close(c.lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			c.lines <- sc.Text()
		}
		c.err = sc.Err()
	}()
	return c
}

// NextGuess implements game.GuessProvider.
func (c *Console) NextGuess(ctx context.Context, prompt string) (string, error) {
	return c.ReadLine(ctx, prompt)
}

// ReadLine writes prompt and waits for the next line.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.err != nil {
				return "", c.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// Println writes a message line.
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}
