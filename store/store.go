// Package store persists automaton definitions and run outcomes.
// Two implementations are provided: an in-memory store for tests and
// ephemeral use, and a SQLite-backed store for keeping a run log across
// CLI invocations.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/automata-xyz/go-automata/automaton"
	"github.com/automata-xyz/go-automata/engine"
)

var (
	// ErrModelNotFound is returned when a model name is not in the store.
	ErrModelNotFound = errors.New("store: model not found")
)

// Run is one recorded word-processing outcome.
type Run struct {
	ID        string         `json:"id"`
	Model     string         `json:"model"`
	Kind      automaton.Kind `json:"kind"`
	Word      string         `json:"word"`
	Accepted  bool           `json:"accepted"`
	Reason    string         `json:"reason,omitempty"`
	Steps     int            `json:"steps"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewRun builds a Run record from an engine result, assigning a fresh ID.
func NewRun(model string, kind automaton.Kind, word string, res *engine.Result) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Model:     model,
		Kind:      kind,
		Word:      word,
		Accepted:  res.Accepted,
		Reason:    res.Reason,
		Steps:     len(res.Steps),
		CreatedAt: time.Now().UTC(),
	}
}

// Store persists models and their run log.
type Store interface {
	// SaveModel stores a definition under a name, replacing any previous one.
	SaveModel(ctx context.Context, name string, kind automaton.Kind, def *automaton.Definition) error

	// LoadModel retrieves a stored definition by name.
	LoadModel(ctx context.Context, name string) (automaton.Kind, *automaton.Definition, error)

	// ListModels returns the stored model names in sorted order.
	ListModels(ctx context.Context) ([]string, error)

	// RecordRun appends a run record.
	RecordRun(ctx context.Context, run *Run) error

	// ListRuns returns runs for a model in recording order. An empty
	// model name returns all runs.
	ListRuns(ctx context.Context, model string) ([]*Run, error)

	// Close releases underlying resources.
	Close() error
}
