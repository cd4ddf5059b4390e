package words

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// DefaultURLs maps ISO 639 codes to remote word lists.
var DefaultURLs = map[string]string{
	"en": "https://raw.githubusercontent.com/jason-chao/wordle-solver/main/english_words_original_wordle.txt",
}

// HTTPSource downloads a plain-text list, one word per line.
type HTTPSource struct {
	Client *http.Client
	URLs   map[string]string // ISO 639 code → list URL
}

// NewHTTPSource returns a source over urls with a per-request timeout.
func NewHTTPSource(urls map[string]string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{Client: &http.Client{Timeout: timeout}, URLs: urls}
}

func (s *HTTPSource) LoadWords(ctx context.Context, tag language.Tag) ([]string, error) {
	url, ok := s.URLs[baseOf(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, tag)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrSourceUnavailable, url, resp.StatusCode)
	}
	list, err := readWords(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSourceUnavailable, url, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s has no %d-letter words", ErrSourceUnavailable, url, Length)
	}

	zerolog.Ctx(ctx).Debug().
		Str("url", url).
		Int("words", len(list)).
		Dur("took", time.Since(start)).
		Msg("fetched word list")
	return list, nil
}
