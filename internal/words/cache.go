package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Entry is a cached word list.
type Entry struct {
	Language  string
	Words     []string
	FetchedAt time.Time
}

// Cache stores fetched word lists in the word_lists table
// (see assets/sql/001_word_lists.sql).
type Cache struct{ db *sql.DB }

func NewCache(db *sql.DB) *Cache { return &Cache{db: db} }

// Get returns the entry for lang, or nil if there is none.
func (c *Cache) Get(ctx context.Context, lang string) (*Entry, error) {
	var body, fetched string
	err := c.db.QueryRowContext(ctx,
		`SELECT words, fetched_at FROM word_lists WHERE language=?`, lang,
	).Scan(&body, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query word_lists: %w", err)
	}
	t, err := time.Parse(time.RFC3339, fetched)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at %q: %w", fetched, err)
	}
	return &Entry{Language: lang, Words: strings.Split(body, "\n"), FetchedAt: t}, nil
}

// Put inserts or replaces the entry for lang.
func (c *Cache) Put(ctx context.Context, lang string, list []string, at time.Time) error {
	_, err := c.db.ExecContext(ctx, `
        INSERT INTO word_lists (language, words, fetched_at)
        VALUES (?, ?, ?)
        ON CONFLICT(language) DO UPDATE SET words=excluded.words, fetched_at=excluded.fetched_at`,
		lang, strings.Join(list, "\n"), at.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert word_lists: %w", err)
	}
	return nil
}

// CachedSource serves lists from the cache while they are younger than TTL,
// refreshes them from Next otherwise, and falls back to a stale entry when
// Next fails. With a nil Next (offline) any entry is served regardless of age.
// Cache errors are logged and never fail a load.
type CachedSource struct {
	Next  Source
	Cache *Cache
	TTL   time.Duration
	Now   func() time.Time // defaults to time.Now
}

func (s *CachedSource) LoadWords(ctx context.Context, tag language.Tag) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	lang := baseOf(tag)

	entry, err := s.Cache.Get(ctx, lang)
	if err != nil {
		logger.Warn().Err(err).Str("lang", lang).Msg("read word cache")
	}
	if entry != nil && now().Sub(entry.FetchedAt) < s.TTL {
		logger.Debug().Str("lang", lang).Time("fetchedAt", entry.FetchedAt).Msg("word cache hit")
		return entry.Words, nil
	}

	if s.Next == nil {
		if entry == nil {
			return nil, fmt.Errorf("%w: no cached list for %s", ErrSourceUnavailable, lang)
		}
		return entry.Words, nil
	}

	list, err := s.Next.LoadWords(ctx, tag)
	if err != nil {
		if entry != nil && !errors.Is(err, ErrUnsupportedLanguage) {
			logger.Warn().Err(err).Str("lang", lang).Time("fetchedAt", entry.FetchedAt).Msg("serving stale word list")
			return entry.Words, nil
		}
		return nil, err
	}

	if err := s.Cache.Put(ctx, lang, list, now()); err != nil {
		logger.Warn().Err(err).Str("lang", lang).Msg("write word cache")
	}
	return list, nil
}
