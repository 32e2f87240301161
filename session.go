package memochat

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/memochat/memochat/contextsvc"
	"github.com/memochat/memochat/storage"
)

// CreateSessionParams holds the parameters for creating a session.
type CreateSessionParams struct {
	// UserID owns the session (required).
	UserID string

	// Title is the user-visible session name.
	Title string

	// SpaceID is the user's skill memory space. Empty disables skill
	// recall for this session.
	SpaceID string

	// BucketID is the storage area for the session's file uploads. Empty
	// disables uploads for this session.
	BucketID string
}

// CreateSession provisions a session on the context service and records its
// metadata locally.
func (c *Client) CreateSession(ctx context.Context, params CreateSessionParams) (*storage.Session, error) {
	const op = "CreateSession"

	if params.UserID == "" {
		return nil, NewChatError(op, ErrInvalidConfig).WithContext("reason", "UserID is required")
	}
	if params.Title == "" {
		params.Title = "New chat"
	}

	remoteID, err := c.config.contextSvc.CreateSession(ctx)
	if err != nil {
		return nil, NewChatError(op, fmt.Errorf("create remote session: %w", err))
	}

	sess := &storage.Session{
		UserID:           params.UserID,
		Title:            params.Title,
		ContextSessionID: remoteID,
		SpaceID:          params.SpaceID,
		BucketID:         params.BucketID,
	}
	id, err := c.config.store.CreateSession(ctx, sess)
	if err != nil {
		// Best effort: don't leak the remote session when the local
		// insert fails.
		if delErr := c.config.contextSvc.DeleteSession(ctx, remoteID); delErr != nil {
			c.logWarn("orphaned remote session", "context_session_id", remoteID, "error", delErr)
		}
		return nil, NewChatError(op, err)
	}
	sess.ID = id

	c.logDebug("session created", "session_id", id, "context_session_id", remoteID)
	return sess, nil
}

// GetSession retrieves a session's metadata.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*storage.Session, error) {
	sess, err := c.config.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, NewChatErrorWithSession("GetSession", sessionID, err)
	}
	return sess, nil
}

// ListSessions retrieves a user's sessions, most recently updated first.
func (c *Client) ListSessions(ctx context.Context, userID string) ([]*storage.Session, error) {
	sessions, err := c.config.store.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, NewChatError("ListSessions", err)
	}
	return sessions, nil
}

// RenameSession updates a session's title.
func (c *Client) RenameSession(ctx context.Context, sessionID, title string) error {
	if title == "" {
		return NewChatErrorWithSession("RenameSession", sessionID, ErrInvalidConfig).
			WithContext("reason", "title is required")
	}
	if err := c.config.store.UpdateSessionTitle(ctx, sessionID, title); err != nil {
		return NewChatErrorWithSession("RenameSession", sessionID, err)
	}
	return nil
}

// DeleteSession removes the session locally and on the context service. A
// remote session that is already gone is not an error.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	const op = "DeleteSession"

	sess, err := c.config.store.GetSession(ctx, sessionID)
	if err != nil {
		return NewChatErrorWithSession(op, sessionID, err)
	}

	if err := c.config.contextSvc.DeleteSession(ctx, sess.ContextSessionID); err != nil {
		if !errors.Is(err, contextsvc.ErrSessionNotFound) {
			return NewChatErrorWithSession(op, sessionID, fmt.Errorf("delete remote session: %w", err))
		}
		c.logWarn("remote session already gone", "session_id", sessionID)
	}

	if err := c.config.store.DeleteSession(ctx, sessionID); err != nil {
		return NewChatErrorWithSession(op, sessionID, err)
	}
	return nil
}

// History retrieves the session's stored messages without any compaction.
func (c *Client) History(ctx context.Context, sessionID string) ([]contextsvc.MessageRecord, error) {
	const op = "History"

	sess, err := c.config.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}

	records, err := c.config.contextSvc.GetMessages(ctx, sess.ContextSessionID, contextsvc.GetMessagesOptions{
		Format: c.config.messageFormat,
	})
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}
	return records, nil
}

// UploadFile stores a file in the session's bucket.
func (c *Client) UploadFile(ctx context.Context, sessionID, name string, content io.Reader) (*contextsvc.File, error) {
	const op = "UploadFile"

	sess, err := c.config.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}
	if sess.BucketID == "" {
		return nil, NewChatErrorWithSession(op, sessionID, ErrInvalidConfig).
			WithContext("reason", "session has no bucket")
	}

	file, err := c.config.contextSvc.UploadFile(ctx, sess.BucketID, name, content)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}
	return file, nil
}

// ListFiles lists the files in the session's bucket.
func (c *Client) ListFiles(ctx context.Context, sessionID string) ([]contextsvc.File, error) {
	const op = "ListFiles"

	sess, err := c.config.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}
	if sess.BucketID == "" {
		return nil, nil
	}

	files, err := c.config.contextSvc.ListFiles(ctx, sess.BucketID)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}
	return files, nil
}
