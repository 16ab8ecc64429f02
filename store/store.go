// Package store defines the session history storage interface and its
// implementations. A session's history holds user and assistant turns only;
// ephemeral context messages injected for a single request are never
// persisted.
package store

import (
	"context"

	"github.com/xiaot623/farmchat/domain"
)

// Store defines the interface for session history persistence. A session
// exists from its first reference; History for an unknown id is an empty
// sequence, not an error.
type Store interface {
	// Append adds a turn to the end of the session's history, creating
	// the session on first reference.
	Append(ctx context.Context, sessionID string, turn domain.Turn) error

	// History returns the session's turns oldest-first.
	History(ctx context.Context, sessionID string) ([]domain.Turn, error)

	// Lifecycle
	Close() error
}
