package repository

import (
	"context"
	"fmt"

	"github.com/threadchain/threadchain/internal/models"
)

// RemoteStore is the contract against the remote posts table.
// Implementations return posts newest first and support
// case-insensitive substring search.
type RemoteStore interface {
	// ListPosts fetches the canonical post collection, newest first.
	ListPosts(ctx context.Context) ([]models.Post, error)
	// SearchPosts runs a text search against post content, newest
	// first, length-bounded by the implementation's search limit.
	SearchPosts(ctx context.Context, query string) ([]models.Post, error)
	// SearchProfiles searches profiles by username or display name.
	SearchProfiles(ctx context.Context, query string) ([]models.User, error)
}

// Error wraps a transport or transform failure of the remote store.
// Callers treat it as "no remote data available" and fall back to
// seed data rather than surfacing it per-action.
type Error struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// wrapErr wraps err in a repository Error with the given operation name
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
