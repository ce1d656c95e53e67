// Package store provides the activity library interface and SQLite
// implementation.
package store

import (
	"context"

	"github.com/tcxtools/tcxedit/internal/model"
)

// ImportParams holds parameters for importing an activity file.
type ImportParams struct {
	Name string
	XML  string
}

// ListParams holds parameters for listing stored activities.
type ListParams struct {
	Sport string
	Limit int
}

// Store defines the activity library interface.
type Store interface {
	// Import parses and summarizes a TCX file and stores it. A file
	// already in the library (same content hash) is replaced.
	Import(ctx context.Context, p ImportParams) (*model.StoredActivity, error)

	// List lists stored activities, newest first.
	List(ctx context.Context, p ListParams) ([]model.StoredActivity, error)

	// Get retrieves one activity by id, including its raw XML.
	Get(ctx context.Context, id string) (*model.StoredActivity, error)

	// Rm deletes an activity.
	Rm(ctx context.Context, id string) error

	// Close closes the store.
	Close() error
}
