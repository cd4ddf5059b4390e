// db.go
//
// Word source wiring for the CLI.
// Responsibilities:
//   - Opening the SQLite word-list cache and applying the embedded migrations.
//   - Assembling the source chain: local file → (cached) remote list → embedded list.
//
// Note: a cache that cannot be opened is logged and skipped; the game still
// starts from the remote or embedded list.

package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/robalobadob/eldrow/assets"
	"github.com/robalobadob/eldrow/internal/config"
	"github.com/robalobadob/eldrow/internal/store"
	"github.com/robalobadob/eldrow/internal/words"
)

// openWordCache opens the cache database at path and migrates it.
func openWordCache(ctx context.Context, path string) (*sql.DB, error) {
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := store.Migrate(ctx, db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return db, nil
}

// buildSource assembles the word sources for tag. db may be nil (no cache).
func buildSource(cfg *config.Config, tag language.Tag, offline bool, db *sql.DB) words.Source {
	base, _ := tag.Base()
	var chain words.Chain

	if cfg.WordsFile != "" {
		chain = append(chain, words.FileSource{Path: cfg.WordsFile, Language: base.String()})
	}

	var remote words.Source
	if !offline {
		urls := make(map[string]string, len(words.DefaultURLs))
		for k, v := range words.DefaultURLs {
			urls[k] = v
		}
		if cfg.WordsURL != "" {
			urls[base.String()] = cfg.WordsURL
		}
		remote = words.NewHTTPSource(urls, cfg.FetchTimeout)
	}

	switch {
	case db != nil:
		chain = append(chain, &words.CachedSource{Next: remote, Cache: words.NewCache(db), TTL: cfg.CacheTTL})
	case remote != nil:
		chain = append(chain, remote)
	}

	chain = append(chain, words.EmbeddedSource{})
	log.Debug().Int("sources", len(chain)).Bool("offline", offline).Bool("cache", db != nil).Msg("word sources ready")
	return chain
}
