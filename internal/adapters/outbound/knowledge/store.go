// Package knowledge persists scored sources in a local SQLite database,
// the knowledge store consulted by later analysis runs.
package knowledge

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/modsentry/modsentry/internal/domain"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store implements domain.KnowledgeStore over SQLite.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (or creates) the database at path and applies migrations.
func Open(ctx context.Context, path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening knowledge db: %w", err)
	}
	s := &Store{db: db, log: log}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// migrate executes the embedded SQL files in lexical order
// (001_xxx.sql, 002_xxx.sql, ...).
func (s *Store) migrate(ctx context.Context) error {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading embedded migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		raw, err := migrationFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.ExecContext(ctx, string(raw)); err != nil {
			return fmt.Errorf("applying migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// SaveSource upserts a scored source, keyed by its URL (or a content hash
// when the record has no URL).
func (s *Store) SaveSource(ctx context.Context, scored domain.ScoredSource) error {
	payload, err := json.Marshal(scored)
	if err != nil {
		return fmt.Errorf("encoding scored source: %w", err)
	}

	var lastUpdated any
	if scored.Score.LastUpdated != nil {
		lastUpdated = scored.Score.LastUpdated.Format(time.RFC3339)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sources(
			source_key, url, source_type, game_version,
			overall_score, confidence, flags, payload_json, last_updated, scored_at
		)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_key) DO UPDATE SET
			overall_score=excluded.overall_score,
			confidence=excluded.confidence,
			flags=excluded.flags,
			payload_json=excluded.payload_json,
			last_updated=excluded.last_updated,
			scored_at=excluded.scored_at
	`,
		keyFor(scored.Source, payload),
		scored.Source.URL,
		scored.Score.SourceType,
		scored.Score.GameVersion,
		scored.Score.Overall,
		scored.Score.Confidence,
		strings.Join(scored.Score.Flags, ","),
		string(payload),
		lastUpdated,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upserting source: %w", err)
	}

	s.log.Debug().
		Str("url", scored.Source.URL).
		Float64("score", scored.Score.Overall).
		Msg("source saved to knowledge store")
	return nil
}

// ListSources returns stored sources with an overall score of at least
// minScore, best first.
func (s *Store) ListSources(ctx context.Context, minScore float64) ([]domain.ScoredSource, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload_json
		FROM sources
		WHERE overall_score >= ?
		ORDER BY overall_score DESC
	`, minScore)
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	var out []domain.ScoredSource
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning source row: %w", err)
		}
		var scored domain.ScoredSource
		if err := json.Unmarshal([]byte(payload), &scored); err != nil {
			return nil, fmt.Errorf("decoding stored source: %w", err)
		}
		out = append(out, scored)
	}
	return out, rows.Err()
}

func keyFor(src domain.SourceRecord, payload []byte) string {
	if src.URL != "" {
		return src.URL
	}
	sum := sha256.Sum256(payload)
	return "sha256:" + hex.EncodeToString(sum[:])
}
