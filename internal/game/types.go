// internal/game/types.go
//
// Core type definitions for the multi-word game engine.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - Judgment, Record: one letter's result and one evaluated guess.
//   - State: playing → won | lost, plus abandoned when input runs out.
//   - Slot: one hidden word with its own guess history.
//   - Settings: the three construction parameters.
//   - GuessProvider, Renderer, Lexicon: the collaborators a Game talks to.

package game

import (
	"context"
	"strings"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the solution but in a different position.
//   - "absent":  letter does not exist in the solution, or all of its
//     occurrences are already accounted for.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Judgment pairs a guessed letter with its mark.
type Judgment struct {
	Letter rune `json:"letter"`
	Mark   Mark `json:"mark"`
}

// Record is the ordered list of judgments for one guess against one solution.
type Record []Judgment

// Solved reports whether every letter of the record is exact.
func (r Record) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, j := range r {
		if j.Mark != MarkExact {
			return false
		}
	}
	return true
}

// Word returns the guess the record was produced from.
func (r Record) Word() string {
	var b strings.Builder
	for _, j := range r {
		b.WriteRune(j.Letter)
	}
	return b.String()
}

// State is the coarse lifecycle state of a Game.
type State string

const (
	StatePlaying   State = "playing"
	StateWon       State = "won"
	StateLost      State = "lost"
	StateAbandoned State = "abandoned"
)

// Slot holds one of the concurrently guessed solution words.
type Slot struct {
	solution string
	history  []Record
	solved   bool
}

// Solution returns the hidden word of the slot.
func (s Slot) Solution() string { return s.solution }

// Solved reports whether the slot's latest record was all exact.
func (s Slot) Solved() bool { return s.solved }

// History returns a copy of the slot's records in guess order.
func (s Slot) History() []Record {
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// Settings are the construction parameters of a Game.
type Settings struct {
	Words       int  // number of hidden words guessed at the same time (1..6)
	MaxAttempts int  // attempt budget shared by all words (1..10)
	Cheat       bool // reveal the solutions up front
}

// GuessProvider supplies raw guesses. It is asked again after every rejected
// guess; an error means no further input can be supplied.
type GuessProvider interface {
	NextGuess(ctx context.Context, prompt string) (string, error)
}

// Renderer displays game events. Errors are logged and otherwise ignored.
type Renderer interface {
	// Render shows one evaluated guess for the slot.
	Render(slot int, rec Record) error
	// Reject reports an invalid guess for the slot.
	Reject(slot int, err error) error
	// Solved announces that the slot was solved on the given attempt.
	Solved(slot, attempt int) error
}

// Lexicon is the dictionary a Game samples solutions from and validates guesses
// against. Words must be distinct, lowercase and WordLength letters long.
type Lexicon interface {
	Words() []string
	Contains(w string) bool
}
