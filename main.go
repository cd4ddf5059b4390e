package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robalobadob/eldrow/internal/config"
	"github.com/robalobadob/eldrow/internal/daily"
	"github.com/robalobadob/eldrow/internal/game"
	"github.com/robalobadob/eldrow/internal/logging"
	"github.com/robalobadob/eldrow/internal/prompt"
	"github.com/robalobadob/eldrow/internal/render"
	"github.com/robalobadob/eldrow/internal/words"
)

// Exit codes. Winning and losing are both normal completions.
const (
	exitOK        = 0
	exitFailure   = 1
	exitAbandoned = 2
)

// options are the command-line flags.
type options struct {
	preset   prompt.Preset
	language string
	daily    bool
	offline  bool
}

func parseFlags(args []string, cfg *config.Config) (options, error) {
	var o options
	fs := flag.NewFlagSet("eldrow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&o.preset.Words, "words", 0, "number of words to guess at the same time (1-6, 0 asks)")
	fs.IntVar(&o.preset.Attempts, "attempts", 0, "number of attempts (1-10, 0 asks)")
	cheat := fs.Bool("cheat", false, "show the solutions before the first guess")
	fs.StringVar(&o.language, "lang", cfg.Language, "language of the word list")
	fs.BoolVar(&o.daily, "daily", false, "play the words of the day")
	fs.BoolVar(&o.offline, "offline", cfg.Offline, "do not download the word list")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "cheat" {
			o.preset.Cheat = cheat
		}
	})
	return o, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run plays one game reading guesses from in and drawing the board on out.
// Diagnostics go to stderr.
func run(args []string, in io.Reader, out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	logger := logging.Setup(cfg.LogLevel, os.Stderr)

	opts, err := parseFlags(args, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tag, err := words.Resolve(opts.language)
	if err != nil {
		logger.Error().Err(err).Msg("resolve language")
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}

	var cache *sql.DB
	if cfg.CacheDB != "" {
		if db, err := openWordCache(ctx, cfg.CacheDB); err != nil {
			logger.Warn().Err(err).Str("path", cfg.CacheDB).Msg("word cache disabled")
		} else {
			cache = db
			defer db.Close()
		}
	}

	dict, err := words.Load(ctx, buildSource(cfg, tag, opts.offline, cache), tag)
	if err != nil {
		logger.Error().Err(err).Str("lang", tag.String()).Msg("load word list")
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	logger.Debug().Int("words", dict.Len()).Str("lang", tag.String()).Msg("word list loaded")

	console := prompt.NewConsole(in, out)
	settings, err := prompt.NewCollector(console).Collect(ctx, opts.preset)
	if err != nil {
		logger.Info().Err(err).Msg("settings abandoned")
		return exitAbandoned
	}

	var picker game.Picker
	if opts.daily {
		dp := daily.NewPicker(time.Now(), cfg.DailySalt)
		logger.Debug().Str("date", dp.Date()).Msg("daily words")
		picker = dp
	}

	g, err := game.New(dict, settings, picker)
	if err != nil {
		logger.Error().Err(err).Msg("new game")
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	logger = logger.With().Str("game", g.ID).Logger()
	ctx = logger.WithContext(ctx)

	term := render.New(out, cfg.ColorMode(), cfg.Emoji, settings.Words)
	if sols := g.Revealed(); sols != nil {
		if err := term.Reveal(sols); err != nil {
			logger.Warn().Err(err).Msg("reveal solutions")
		}
	}

	state, err := g.Play(ctx, console, term)
	if err := term.Outcome(state, g.MaxAttempts(), g.Solutions()); err != nil {
		logger.Warn().Err(err).Msg("render outcome")
	}
	return exitCode(state, err)
}

// exitCode maps the end of a game onto the process exit status.
func exitCode(state game.State, err error) int {
	switch {
	case errors.Is(err, game.ErrAbandoned) || state == game.StateAbandoned:
		return exitAbandoned
	case err != nil:
		return exitFailure
	default:
		return exitOK
	}
}
