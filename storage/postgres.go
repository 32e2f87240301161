package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSessionNotFound is returned when a session record does not exist.
var ErrSessionNotFound = errors.New("session not found")

// Schema creates the sessions table. Run it once at startup via EnsureSchema
// or apply it with your own migration tooling.
const Schema = `
CREATE TABLE IF NOT EXISTS memochat_sessions (
	id                 UUID PRIMARY KEY,
	user_id            TEXT NOT NULL,
	title              TEXT NOT NULL DEFAULT '',
	context_session_id TEXT NOT NULL,
	space_id           TEXT NOT NULL DEFAULT '',
	bucket_id          TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS memochat_sessions_user_idx
	ON memochat_sessions (user_id, updated_at DESC);
`

// txContextKey is the context key for storing pgx.Tx.
type txContextKey struct{}

// WithTx returns a new context carrying the given transaction. Store methods
// called with this context run inside the transaction instead of the pool.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext retrieves the transaction from context, or nil if not present.
func TxFromContext(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(txContextKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

// querier is a common interface for pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store using PostgreSQL with pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the sessions table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// getQuerier returns the transaction from context if present, otherwise the pool.
func (s *PostgresStore) getQuerier(ctx context.Context) querier {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return s.pool
}

// CreateSession inserts a new session record and returns its ID.
func (s *PostgresStore) CreateSession(ctx context.Context, sess *Session) (string, error) {
	if sess.UserID == "" {
		return "", fmt.Errorf("user_id is required")
	}
	if sess.ContextSessionID == "" {
		return "", fmt.Errorf("context_session_id is required")
	}

	sessionID := sess.ID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	query := `
		INSERT INTO memochat_sessions (id, user_id, title, context_session_id, space_id, bucket_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	_, err := s.getQuerier(ctx).Exec(ctx, query,
		sessionID, sess.UserID, sess.Title, sess.ContextSessionID, sess.SpaceID, sess.BucketID)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return sessionID, nil
}

// GetSession retrieves a session by ID.
func (s *PostgresStore) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	query := `
		SELECT id, user_id, title, context_session_id, space_id, bucket_id, created_at, updated_at
		FROM memochat_sessions
		WHERE id = $1
	`

	var sess Session
	err := s.getQuerier(ctx).QueryRow(ctx, query, sessionID).Scan(
		&sess.ID,
		&sess.UserID,
		&sess.Title,
		&sess.ContextSessionID,
		&sess.SpaceID,
		&sess.BucketID,
		&sess.CreatedAt,
		&sess.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &sess, nil
}

// ListSessionsByUser retrieves a user's sessions, most recently updated first.
func (s *PostgresStore) ListSessionsByUser(ctx context.Context, userID string) ([]*Session, error) {
	query := `
		SELECT id, user_id, title, context_session_id, space_id, bucket_id, created_at, updated_at
		FROM memochat_sessions
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := s.getQuerier(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(
			&sess.ID,
			&sess.UserID,
			&sess.Title,
			&sess.ContextSessionID,
			&sess.SpaceID,
			&sess.BucketID,
			&sess.CreatedAt,
			&sess.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, &sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// UpdateSessionTitle renames a session.
func (s *PostgresStore) UpdateSessionTitle(ctx context.Context, sessionID, title string) error {
	query := `
		UPDATE memochat_sessions
		SET title = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := s.getQuerier(ctx).Exec(ctx, query, sessionID, title)
	if err != nil {
		return fmt.Errorf("failed to update session title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}

// TouchSession bumps the session's updated_at.
func (s *PostgresStore) TouchSession(ctx context.Context, sessionID string) error {
	query := `
		UPDATE memochat_sessions
		SET updated_at = NOW()
		WHERE id = $1
	`

	tag, err := s.getQuerier(ctx).Exec(ctx, query, sessionID)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}

// DeleteSession removes the session record.
func (s *PostgresStore) DeleteSession(ctx context.Context, sessionID string) error {
	query := `DELETE FROM memochat_sessions WHERE id = $1`

	tag, err := s.getQuerier(ctx).Exec(ctx, query, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return nil
}

// Compile-time check.
var _ Store = (*PostgresStore)(nil)
