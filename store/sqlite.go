package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/automata-xyz/go-automata/automaton"
)

const schema = `
CREATE TABLE IF NOT EXISTS models (
	name       TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	definition TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	model      TEXT NOT NULL,
	kind       TEXT NOT NULL,
	word       TEXT NOT NULL,
	accepted   INTEGER NOT NULL,
	reason     TEXT NOT NULL,
	steps      INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model);
`

// SQLiteStore persists models and runs in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite store at path.
// Use ":memory:" for an ephemeral database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveModel stores a definition under a name, replacing any previous one.
func (s *SQLiteStore) SaveModel(ctx context.Context, name string, kind automaton.Kind, def *automaton.Definition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshal definition: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO models (name, kind, definition, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET kind = excluded.kind, definition = excluded.definition`,
		name, string(kind), string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}

// LoadModel retrieves a stored definition by name.
func (s *SQLiteStore) LoadModel(ctx context.Context, name string) (automaton.Kind, *automaton.Definition, error) {
	var kind, data string
	err := s.db.QueryRowContext(ctx,
		`SELECT kind, definition FROM models WHERE name = ?`, name).Scan(&kind, &data)
	if err == sql.ErrNoRows {
		return "", nil, ErrModelNotFound
	}
	if err != nil {
		return "", nil, fmt.Errorf("load model: %w", err)
	}
	var def automaton.Definition
	if err := json.Unmarshal([]byte(data), &def); err != nil {
		return "", nil, fmt.Errorf("decode definition: %w", err)
	}
	return automaton.Kind(kind), &def, nil
}

// ListModels returns the stored model names in sorted order.
func (s *SQLiteStore) ListModels(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM models ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// RecordRun appends a run record.
func (s *SQLiteStore) RecordRun(ctx context.Context, run *Run) error {
	accepted := 0
	if run.Accepted {
		accepted = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, model, kind, word, accepted, reason, steps, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Model, string(run.Kind), run.Word, accepted, run.Reason, run.Steps,
		run.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// ListRuns returns runs for a model in recording order.
func (s *SQLiteStore) ListRuns(ctx context.Context, model string) ([]*Run, error) {
	query := `SELECT id, model, kind, word, accepted, reason, steps, created_at FROM runs`
	args := []interface{}{}
	if model != "" {
		query += ` WHERE model = ?`
		args = append(args, model)
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var kind, createdAt string
		var accepted int
		if err := rows.Scan(&run.ID, &run.Model, &kind, &run.Word, &accepted, &run.Reason, &run.Steps, &createdAt); err != nil {
			return nil, err
		}
		run.Kind = automaton.Kind(kind)
		run.Accepted = accepted != 0
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("decode run timestamp: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
