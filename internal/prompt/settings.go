package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/eldrow/internal/game"
)

// Preset holds settings fixed on the command line. Zero values (nil for
// Cheat) are asked for interactively.
type Preset struct {
	Words    int
	Attempts int
	Cheat    *bool
}

// Collector asks for the game settings, re-asking until the answer is valid.
type Collector struct {
	c *Console
}

func NewCollector(c *Console) *Collector { return &Collector{c: c} }

// Collect returns the settings, asking only for what p leaves open.
// Preset values are not range-checked here; game.New does that.
func (s *Collector) Collect(ctx context.Context, p Preset) (game.Settings, error) {
	var (
		out game.Settings
		err error
	)
	if p.Words == 0 || p.Attempts == 0 || p.Cheat == nil {
		s.c.Println("Let's play wordle!")
	}

	out.Words = p.Words
	if out.Words == 0 {
		q := fmt.Sprintf("How many words do you want to guess at the same time? (up to %d) ", game.MaxWords)
		if out.Words, err = s.Int(ctx, q, game.MinWords, game.MaxWords); err != nil {
			return out, err
		}
	}

	out.MaxAttempts = p.Attempts
	if out.MaxAttempts == 0 {
		q := fmt.Sprintf("How many attempts would you like to have? (up to %d) ", game.MaxAttempts)
		if out.MaxAttempts, err = s.Int(ctx, q, game.MinAttempts, game.MaxAttempts); err != nil {
			return out, err
		}
	}

	if p.Cheat != nil {
		out.Cheat = *p.Cheat
	} else if out.Cheat, err = s.YesNo(ctx, "Do you want to cheat? [yes/no] "); err != nil {
		return out, err
	}
	return out, nil
}

// Int asks question until the answer is an integer in [lo, hi].
func (s *Collector) Int(ctx context.Context, question string, lo, hi int) (int, error) {
	for {
		line, err := s.c.ReadLine(ctx, question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			s.c.Println(fmt.Sprintf("'%s' is not an integer.", strings.TrimSpace(line)))
		case n < lo:
			s.c.Println(fmt.Sprintf("Number must be at minimum %d.", lo))
		case n > hi:
			s.c.Println(fmt.Sprintf("Number must be at maximum %d.", hi))
		default:
			return n, nil
		}
	}
}

// YesNo asks question until the answer is y, yes, n or no (any case).
func (s *Collector) YesNo(ctx context.Context, question string) (bool, error) {
	for {
		line, err := s.c.ReadLine(ctx, question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		s.c.Println(fmt.Sprintf("'%s' is not a valid yes/no response.", strings.TrimSpace(line)))
	}
}
