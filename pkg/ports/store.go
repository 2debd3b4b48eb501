package ports

import (
	"context"

	"github.com/resultflow/careflow/pkg/domain"
)

// SessionStore persists session snapshots for the lifetime of a session.
// This lets a hosting process hold many widget sessions (and, with the
// redis adapter, shard them across processes).
type SessionStore interface {
	// Save persists the snapshot for a given session ID.
	Save(ctx context.Context, sessionID string, sess *domain.Session) error

	// Load retrieves the snapshot for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the snapshot for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of known sessions.
	List(ctx context.Context) ([]string, error)
}
