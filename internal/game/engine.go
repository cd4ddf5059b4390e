// internal/game/engine.go
//
// Core game engine for a multi-word session.
// Responsibilities:
//   - Create new games: validate settings, sample distinct solutions.
//   - Run rounds: one guess per unsolved word, in slot order.
//   - Validate guesses (length, dictionary membership) and re-ask on rejection.
//   - Track state transitions: playing → won/lost, or abandoned on lost input.
//
// Notes:
//   - Scoring lives in score.go (Evaluate).
//   - The attempt budget is shared: one round costs one attempt no matter how
//     many words are still open or how many guesses were rejected.
package game

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	WordLength  = 5
	MinWords    = 1
	MaxWords    = 6
	MinAttempts = 1
	MaxAttempts = 10
)

// Game holds the state of a single session.
type Game struct {
	ID string // unique identifier, used to correlate log lines

	lex         Lexicon
	slots       []*Slot
	attempt     int
	maxAttempts int
	cheat       bool
	state       State
}

// Validate checks the settings against their bounds.
func (s Settings) Validate() error {
	if s.Words < MinWords || s.Words > MaxWords {
		return fmt.Errorf("%w: words must be %d–%d, got %d", ErrConfiguration, MinWords, MaxWords, s.Words)
	}
	if s.MaxAttempts < MinAttempts || s.MaxAttempts > MaxAttempts {
		return fmt.Errorf("%w: attempts must be %d–%d, got %d", ErrConfiguration, MinAttempts, MaxAttempts, s.MaxAttempts)
	}
	return nil
}

// New constructs a game with s.Words distinct solutions drawn from lex.
// A nil picker falls back to FastPicker.
func New(lex Lexicon, s Settings, p Picker) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	pool := lex.Words()
	if len(pool) < s.Words {
		return nil, fmt.Errorf("%w: dictionary has %d words, need at least %d", ErrConfiguration, len(pool), s.Words)
	}
	if p == nil {
		p = FastPicker{}
	}

	g := &Game{
		ID:          uuid.NewString(),
		lex:         lex,
		maxAttempts: s.MaxAttempts,
		cheat:       s.Cheat,
		state:       StatePlaying,
	}
	for _, w := range sample(pool, s.Words, p) {
		if utf8.RuneCountInString(w) != WordLength {
			return nil, fmt.Errorf("%w: dictionary word %q is not %d letters", ErrConfiguration, w, WordLength)
		}
		g.slots = append(g.slots, &Slot{solution: w})
	}
	return g, nil
}

// State reports the current state.
func (g *Game) State() State { return g.state }

// Done reports whether the game has left the playing state.
func (g *Game) Done() bool { return g.state != StatePlaying }

// Attempt is the number of rounds started so far.
func (g *Game) Attempt() int { return g.attempt }

// MaxAttempts is the attempt budget.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// Slots returns snapshots of all word slots in slot order.
func (g *Game) Slots() []Slot {
	out := make([]Slot, len(g.slots))
	for i, s := range g.slots {
		out[i] = Slot{solution: s.solution, history: s.History(), solved: s.solved}
	}
	return out
}

// Solutions returns the hidden words in slot order.
func (g *Game) Solutions() []string {
	out := make([]string, len(g.slots))
	for i, s := range g.slots {
		out[i] = s.solution
	}
	return out
}

// Revealed returns the solutions when the game was created with cheat set,
// nil otherwise.
func (g *Game) Revealed() []string {
	if !g.cheat {
		return nil
	}
	return g.Solutions()
}

// Validate normalizes a raw guess and checks it is a dictionary word of the
// right length. The returned error is a *GuessError.
func (g *Game) Validate(raw string) (string, error) {
	guess := strings.ToLower(strings.TrimSpace(raw))
	if utf8.RuneCountInString(guess) != WordLength {
		return "", &GuessError{Guess: raw, Reason: ErrWrongLength}
	}
	if !g.lex.Contains(guess) {
		return "", &GuessError{Guess: raw, Reason: ErrUnknownWord}
	}
	return guess, nil
}

// AdvanceRound plays one attempt: every unsolved slot, in ascending order,
// gets one valid guess which is evaluated, recorded and rendered.
//
// State transitions after the round:
//   - All slots solved → won (also on the last permitted attempt).
//   - Else attempt == max attempts → lost.
//
// If the provider fails the round is aborted and the game is abandoned; the
// returned error wraps both ErrAbandoned and the provider's error.
func (g *Game) AdvanceRound(ctx context.Context, in GuessProvider, out Renderer) (State, error) {
	if g.Done() {
		return g.state, ErrGameOver
	}
	logger := zerolog.Ctx(ctx)

	g.attempt++
	logger.Debug().Int("attempt", g.attempt).Int("max", g.maxAttempts).Msg("round started")

	for i, slot := range g.slots {
		if slot.solved {
			continue
		}
		guess, err := g.readGuess(ctx, i, in, out)
		if err != nil {
			g.state = StateAbandoned
			logger.Info().Err(err).Int("attempt", g.attempt).Msg("game abandoned")
			return g.state, fmt.Errorf("%w: %w", ErrAbandoned, err)
		}

		rec := Evaluate(guess, slot.solution)
		slot.history = append(slot.history, rec)
		if err := out.Render(i, rec); err != nil {
			logger.Warn().Err(err).Int("slot", i).Msg("render guess")
		}
		if rec.Solved() {
			slot.solved = true
			logger.Debug().Int("slot", i).Int("attempt", g.attempt).Msg("slot solved")
			if err := out.Solved(i, g.attempt); err != nil {
				logger.Warn().Err(err).Int("slot", i).Msg("render solved")
			}
		}
	}

	g.state = g.settle()
	if g.Done() {
		logger.Info().Str("state", string(g.state)).Int("attempts", g.attempt).Msg("game finished")
	}
	return g.state, nil
}

// Play runs rounds until the game is won, lost or abandoned.
func (g *Game) Play(ctx context.Context, in GuessProvider, out Renderer) (State, error) {
	for !g.Done() {
		if _, err := g.AdvanceRound(ctx, in, out); err != nil {
			return g.state, err
		}
	}
	return g.state, nil
}

// readGuess asks the provider until it returns a valid guess for the slot.
// Rejections are reported to the renderer and do not cost an attempt.
func (g *Game) readGuess(ctx context.Context, slot int, in GuessProvider, out Renderer) (string, error) {
	prompt := g.prompt(slot)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		raw, err := in.NextGuess(ctx, prompt)
		if err != nil {
			return "", err
		}
		guess, err := g.Validate(raw)
		if err == nil {
			return guess, nil
		}
		zerolog.Ctx(ctx).Debug().Err(err).Int("slot", slot).Msg("guess rejected")
		if rerr := out.Reject(slot, err); rerr != nil {
			zerolog.Ctx(ctx).Warn().Err(rerr).Int("slot", slot).Msg("render rejection")
		}
	}
}

func (g *Game) prompt(slot int) string {
	if len(g.slots) == 1 {
		return fmt.Sprintf("[Attempt %d/%d] ", g.attempt, g.maxAttempts)
	}
	return fmt.Sprintf("[Attempt %d/%d] word %d/%d: ", g.attempt, g.maxAttempts, slot+1, len(g.slots))
}

func (g *Game) settle() State {
	solved := 0
	for _, s := range g.slots {
		if s.solved {
			solved++
		}
	}
	switch {
	case solved == len(g.slots):
		return StateWon
	case g.attempt >= g.maxAttempts:
		return StateLost
	default:
		return StatePlaying
	}
}
