// internal/render/terminal.go
//
// Terminal output for the game.
// Responsibilities:
//   - Show evaluated guesses, coloured like the classic board when the output
//     is a terminal, with bracket marks otherwise.
//   - Optional emoji row (🟩🟨⬛) after each guess.
//   - Rejection, solved, reveal and end-of-game messages.
//
// Colour handling:
//   - auto:   colour only if the output is a terminal (go-isatty).
//   - always: colour regardless; go-colorable translates ANSI on Windows.
//   - never:  plain text.
//   - SGR sequences come from fatih/color, enabled per Terminal so the
//     package-wide color.NoColor switch is never consulted.

package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/enescakir/emoji"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/eldrow/internal/game"
)

// ColorMode selects when ANSI colours are written.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always or never (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("unknown colour mode %q (want auto, always or never)", s)
}

// Tile backgrounds; letters are bold bright white on top.
var tileBackground = map[game.Mark]color.Attribute{
	game.MarkExact:   color.BgGreen,
	game.MarkPresent: color.BgYellow,
	game.MarkAbsent:  color.BgBlack,
}

// styles are the colours of one Terminal.
type styles struct {
	tiles  map[game.Mark]*color.Color
	solved *color.Color
	won    *color.Color
}

func newStyles(enabled bool) styles {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	st := styles{
		tiles:  make(map[game.Mark]*color.Color, len(tileBackground)),
		solved: mk(color.FgCyan),
		won:    mk(color.FgMagenta),
	}
	for m, bg := range tileBackground {
		st.tiles[m] = mk(bg, color.FgHiWhite, color.Bold)
	}
	return st
}

var squares = map[game.Mark]emoji.Emoji{
	game.MarkExact:   emoji.GreenSquare,
	game.MarkPresent: emoji.YellowSquare,
	game.MarkAbsent:  emoji.BlackLargeSquare,
}

// Terminal writes game output to a terminal or any io.Writer.
// It implements game.Renderer.
type Terminal struct {
	out    io.Writer
	color  bool
	emoji  bool
	multi  bool // prefix rows with the word number
	styles styles
}

var _ game.Renderer = (*Terminal)(nil)

// New returns a Terminal on w, resolving mode against w. Only an *os.File
// can be a terminal, so auto mode leaves any other writer uncoloured.
func New(w io.Writer, mode ColorMode, withEmoji bool, words int) *Terminal {
	f, isFile := w.(*os.File)
	colored := mode == ColorAlways
	if mode == ColorAuto {
		colored = isFile && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	if colored && isFile {
		w = colorable.NewColorable(f)
	}
	return NewWriter(w, colored, withEmoji, words)
}

// NewWriter returns a Terminal on w with colour decided by the caller.
func NewWriter(w io.Writer, colored, withEmoji bool, words int) *Terminal {
	return &Terminal{
		out:    w,
		color:  colored,
		emoji:  withEmoji,
		multi:  words > 1,
		styles: newStyles(colored),
	}
}

// Render prints one evaluated guess.
func (t *Terminal) Render(slot int, rec game.Record) error {
	var b strings.Builder
	if t.multi {
		fmt.Fprintf(&b, "#%d ", slot+1)
	}
	for _, j := range rec {
		letter := string(unicode.ToUpper(j.Letter))
		if t.color {
			b.WriteString(t.styles.tiles[j.Mark].Sprint(" " + letter + " "))
			continue
		}
		switch j.Mark {
		case game.MarkExact:
			b.WriteString("[" + letter + "]")
		case game.MarkPresent:
			b.WriteString("(" + letter + ")")
		default:
			b.WriteString(" " + letter + " ")
		}
	}
	if t.emoji {
		b.WriteString("  ")
		for _, j := range rec {
			b.WriteString(squares[j.Mark].String())
		}
	}
	b.WriteString("\n")
	_, err := io.WriteString(t.out, b.String())
	return err
}

// Reject explains why a guess was not accepted.
func (t *Terminal) Reject(slot int, err error) error {
	msg := err.Error()
	var ge *game.GuessError
	if errors.As(err, &ge) {
		msg = ge.Reason.Error()
	}
	_, werr := fmt.Fprintln(t.out, capitalize(msg))
	return werr
}

// Solved announces a solved word.
func (t *Terminal) Solved(slot, attempt int) error {
	msg := "You solved a word!"
	if t.multi {
		msg = fmt.Sprintf("You solved word #%d on attempt %d!", slot+1, attempt)
	}
	return t.line(t.styles.solved, msg)
}

// Reveal prints the solutions up front (cheat mode).
func (t *Terminal) Reveal(solutions []string) error {
	return t.line(nil, "Solutions: "+strings.ToUpper(strings.Join(solutions, ", ")))
}

// Outcome prints the end-of-game message for state.
func (t *Terminal) Outcome(state game.State, maxAttempts int, solutions []string) error {
	switch state {
	case game.StateWon:
		msg := "CONGRATULATIONS!!"
		if t.emoji {
			msg += " " + emoji.PartyPopper.String()
		}
		return t.line(t.styles.won, msg)
	case game.StateLost:
		return t.line(nil, fmt.Sprintf(
			"You already had %d guesses!\nSo I guess you lost...\nMaybe make it a bit easier next time\nThe words were: %s",
			maxAttempts, strings.ToUpper(strings.Join(solutions, ", "))))
	case game.StateAbandoned:
		return t.line(nil, "\nGame abandoned. The words were: "+strings.ToUpper(strings.Join(solutions, ", ")))
	}
	return nil
}

func (t *Terminal) line(style *color.Color, msg string) error {
	if style != nil {
		msg = style.Sprint(msg)
	}
	_, err := fmt.Fprintln(t.out, msg)
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
