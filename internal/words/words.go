// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Define the Source contract: load the word list for a language tag.
//   - Build an immutable Dictionary (ordered list + lookup set) from a source.
//   - Normalize raw lists: lowercase, trimmed, exactly Length letters a–z.
//
// Sources (see source.go, http.go, cache.go):
//   - HTTPSource:     remote list per language (the default for English).
//   - CachedSource:   SQLite-backed cache in front of another source.
//   - FileSource:     local file, one word per line (WORDS_ALLOWED_FILE).
//   - EmbeddedSource: small lists compiled into the binary.
//   - Chain:          first source that succeeds.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
)

// Length is the fixed number of letters of every word.
const Length = 5

var (
	// ErrUnsupportedLanguage is returned for tags no source has a list for.
	ErrUnsupportedLanguage = errors.New("words: unsupported language")
	// ErrSourceUnavailable is returned when a list cannot be read or is empty.
	ErrSourceUnavailable = errors.New("words: source unavailable")
)

// Source loads the raw word list for a language.
type Source interface {
	LoadWords(ctx context.Context, tag language.Tag) ([]string, error)
}

// Dictionary is a loaded, normalized word list. It is safe for concurrent reads.
type Dictionary struct {
	tag  language.Tag
	list []string            // distinct words in source order
	set  map[string]struct{} // lookup set for list
}

// NewDictionary normalizes list and builds a dictionary from it.
// Returns ErrSourceUnavailable if nothing usable remains.
func NewDictionary(tag language.Tag, list []string) (*Dictionary, error) {
	d := &Dictionary{tag: tag, set: make(map[string]struct{}, len(list))}
	for _, raw := range list {
		w, ok := normalize(raw)
		if !ok {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	if len(d.list) == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words for %s", ErrSourceUnavailable, Length, tag)
	}
	return d, nil
}

// Load reads the list for tag from src once and wraps it in a Dictionary.
func Load(ctx context.Context, src Source, tag language.Tag) (*Dictionary, error) {
	list, err := src.LoadWords(ctx, tag)
	if err != nil {
		return nil, err
	}
	return NewDictionary(tag, list)
}

// Language is the tag the dictionary was loaded for.
func (d *Dictionary) Language() language.Tag { return d.tag }

// Len is the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }

// Words returns a copy of the word list in source order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.list))
	copy(out, d.list)
	return out
}

// Contains reports whether w (any case) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// readWords reads one word per line, skipping blanks, "#" comments and
// anything that is not Length letters a–z.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func normalize(raw string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(raw))
	if len(w) != Length || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
