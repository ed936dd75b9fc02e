// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists RecommendationEntries in a local SQLite database.
// Each entry is kept whole as a JSON payload; a few columns are lifted out
// of it for filtering and ordering.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "seal-advisor.db"
)

var (
	// ErrNotFound is returned when no entry has the requested ID.
	ErrNotFound = errors.New("entry not found")

	// ErrAmbiguous is returned by Find when an ID prefix matches more than
	// one entry.
	ErrAmbiguous = errors.New("ambiguous entry ID prefix")
)

// Store manages the entry database. created_at holds Unix nanoseconds so
// ordering is numeric.
type Store struct {
	db  *sql.DB
	dir string
}

// NewStore opens or creates the database at dir/index/seal-advisor.db and
// creates the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "data"
	}
	dbDir := filepath.Join(dir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the base directory the store writes under.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			created_at INTEGER NOT NULL,
			fluid_type TEXT NOT NULL,
			category TEXT NOT NULL,
			arrangement TEXT NOT NULL,
			flush_plan TEXT NOT NULL,
			cavitation_risk TEXT NOT NULL,
			payload TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_fluid_type ON entries(fluid_type)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save inserts e. Saving an ID that already exists replaces the stored
// entry.
func (s *Store) Save(ctx context.Context, e types.RecommendationEntry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding entry %s: %w", e.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO entries (id, created_at, fluid_type, category, arrangement, flush_plan, cavitation_risk, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			created_at=excluded.created_at, fluid_type=excluded.fluid_type,
			category=excluded.category, arrangement=excluded.arrangement,
			flush_plan=excluded.flush_plan, cavitation_risk=excluded.cavitation_risk,
			payload=excluded.payload`,
		e.ID, e.CreatedAt.UnixNano(), e.Profile.FluidType,
		string(e.Recommendation.Category), string(e.Recommendation.Arrangement),
		string(e.Recommendation.FlushPlan), string(e.Hydraulics.CavitationRisk),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("inserting entry %s: %w", e.ID, err)
	}
	return nil
}

// Get returns the entry with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (types.RecommendationEntry, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM entries WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return types.RecommendationEntry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.RecommendationEntry{}, fmt.Errorf("querying entry %s: %w", id, err)
	}
	return decode(payload)
}

// Find returns the entry whose ID equals ref or, failing that, the single
// entry whose ID starts with ref.
func (s *Store) Find(ctx context.Context, ref string) (types.RecommendationEntry, error) {
	e, err := s.Get(ctx, ref)
	if !errors.Is(err, ErrNotFound) || ref == "" {
		return e, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM entries WHERE substr(id, 1, ?) = ? LIMIT 2`, len(ref), ref)
	if err != nil {
		return types.RecommendationEntry{}, fmt.Errorf("querying entry %s: %w", ref, err)
	}
	defer rows.Close()

	var payloads []string
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return types.RecommendationEntry{}, fmt.Errorf("scanning entry: %w", err)
		}
		payloads = append(payloads, payload)
	}
	if err := rows.Err(); err != nil {
		return types.RecommendationEntry{}, fmt.Errorf("querying entry %s: %w", ref, err)
	}

	switch len(payloads) {
	case 0:
		return types.RecommendationEntry{}, fmt.Errorf("%s: %w", ref, ErrNotFound)
	case 1:
		return decode(payloads[0])
	default:
		return types.RecommendationEntry{}, fmt.Errorf("%s: %w", ref, ErrAmbiguous)
	}
}

// ListOptions filters List.
type ListOptions struct {
	// FluidType matches the profile's fluid name, case-insensitively.
	FluidType string

	// Category filters by recommended category.
	Category types.Category

	// Limit caps the result count. Zero returns every match.
	Limit int
}

// List returns stored entries, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.RecommendationEntry, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT payload FROM entries WHERE 1=1`)

	if opts.FluidType != "" {
		qb.WriteString(` AND lower(fluid_type) = lower(?)`)
		args = append(args, opts.FluidType)
	}
	if opts.Category != "" {
		qb.WriteString(` AND category = ?`)
		args = append(args, string(opts.Category))
	}

	qb.WriteString(` ORDER BY created_at DESC, seq DESC`)
	if opts.Limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var out []types.RecommendationEntry
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e, err := decode(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("clearing entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared entries: %w", err)
	}
	return int(n), nil
}

// Prune keeps the newest keep entries and deletes the rest. It returns how
// many were removed. keep <= 0 is a no-op.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM entries WHERE seq NOT IN (
			SELECT seq FROM entries ORDER BY created_at DESC, seq DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned entries: %w", err)
	}
	return int(n), nil
}

func decode(payload string) (types.RecommendationEntry, error) {
	var e types.RecommendationEntry
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return types.RecommendationEntry{}, fmt.Errorf("decoding entry: %w", err)
	}
	return e, nil
}
