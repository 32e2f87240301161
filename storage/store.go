// Package storage persists MemoChat's session metadata.
//
// Conversation content never lives here: the context service owns message
// history, token accounting, skill memory, and uploaded files. This package
// only keeps the mapping from MemoChat's own session IDs to the external
// identifiers (the platform session, the user's skill space, and the upload
// bucket) plus the bookkeeping a session list UI needs.
package storage

import (
	"context"
	"time"
)

// Store defines the session metadata store.
type Store interface {
	// CreateSession inserts a new session record and returns its ID.
	CreateSession(ctx context.Context, sess *Session) (string, error)

	// GetSession retrieves a session by ID.
	GetSession(ctx context.Context, sessionID string) (*Session, error)

	// ListSessionsByUser retrieves a user's sessions, most recently
	// updated first.
	ListSessionsByUser(ctx context.Context, userID string) ([]*Session, error)

	// UpdateSessionTitle renames a session.
	UpdateSessionTitle(ctx context.Context, sessionID, title string) error

	// TouchSession bumps the session's updated_at, keeping the session
	// list ordered by recent activity.
	TouchSession(ctx context.Context, sessionID string) error

	// DeleteSession removes the session record. The remote session is the
	// caller's responsibility.
	DeleteSession(ctx context.Context, sessionID string) error
}

// Session maps a MemoChat session to its external identifiers.
type Session struct {
	// ID is MemoChat's own session identifier.
	ID string `json:"id"`

	// UserID owns the session.
	UserID string `json:"user_id"`

	// Title is the user-visible session name.
	Title string `json:"title"`

	// ContextSessionID is the context service's session identifier. All
	// history, token counts, and edit strategies address this ID.
	ContextSessionID string `json:"context_session_id"`

	// SpaceID is the user's long-term skill memory space on the platform.
	SpaceID string `json:"space_id"`

	// BucketID is the storage area holding the session's uploaded files.
	BucketID string `json:"bucket_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
