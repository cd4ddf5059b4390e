package game

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned by New for out-of-range settings or a
	// dictionary too small to sample from.
	ErrConfiguration = errors.New("invalid game configuration")

	// ErrInvalidGuess marks a rejected guess. It never escapes AdvanceRound.
	ErrInvalidGuess = errors.New("invalid guess")
	ErrWrongLength  = fmt.Errorf("please enter a %d-letter word", WordLength)
	ErrUnknownWord  = errors.New("unknown word, try again")

	// ErrAbandoned is returned when the guess provider cannot supply more input.
	ErrAbandoned = errors.New("game abandoned")

	// ErrGameOver is returned by AdvanceRound once the game has finished.
	ErrGameOver = errors.New("game finished")
)

// GuessError describes why a guess was rejected. It matches both
// ErrInvalidGuess and its reason with errors.Is.
type GuessError struct {
	Guess  string
	Reason error
}

func (e *GuessError) Error() string {
	return fmt.Sprintf("%q: %v", e.Guess, e.Reason)
}

func (e *GuessError) Unwrap() []error {
	return []error{ErrInvalidGuess, e.Reason}
}
