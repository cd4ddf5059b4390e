package words

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/robalobadob/eldrow/assets"
)

// FileSource reads a local list, one word per line, for a single language.
type FileSource struct {
	Path     string
	Language string // ISO 639 code the file is for, e.g. "en"
}

func (s FileSource) LoadWords(ctx context.Context, tag language.Tag) ([]string, error) {
	if baseOf(tag) != s.Language {
		return nil, fmt.Errorf("%w: %s (file %s is %s)", ErrUnsupportedLanguage, tag, s.Path, s.Language)
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	list, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSourceUnavailable, s.Path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s has no %d-letter words", ErrSourceUnavailable, s.Path, Length)
	}
	return list, nil
}

// EmbeddedSource serves the small lists compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) LoadWords(ctx context.Context, tag language.Tag) ([]string, error) {
	lines, err := assets.WordList(baseOf(tag))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, tag)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: embedded list: %w", ErrSourceUnavailable, err)
	}
	var out []string
	for _, l := range lines {
		if w, ok := normalize(l); ok {
			out = append(out, w)
		}
	}
	return out, nil
}

// Chain tries each source in order and returns the first list that loads.
// The error is ErrUnsupportedLanguage only when every source reports it.
type Chain []Source

func (c Chain) LoadWords(ctx context.Context, tag language.Tag) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	var errs []error
	unsupported := 0
	for i, src := range c {
		list, err := src.LoadWords(ctx, tag)
		if err == nil {
			return list, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, ctxErr)
		}
		logger.Warn().Err(err).Int("source", i).Str("lang", tag.String()).Msg("word source failed")
		if errors.Is(err, ErrUnsupportedLanguage) {
			unsupported++
		}
		errs = append(errs, err)
	}
	if unsupported == len(c) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, tag)
	}
	return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, errors.Join(errs...))
}
