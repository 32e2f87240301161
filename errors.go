package memochat

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrInvalidConfig is returned when the client configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound is returned when a session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrToolNotFound is returned when the assistant requests a tool that
	// is not registered.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolIterationsExceeded is returned when a single Send exceeds the
	// configured tool-loop budget.
	ErrToolIterationsExceeded = errors.New("tool iterations exceeded")

	// ErrCompletionFailed is returned when the completion service call fails.
	ErrCompletionFailed = errors.New("completion failed")
)

// ChatError represents an error with operation context.
type ChatError struct {
	Op        string         // Operation that failed
	Err       error          // Underlying error
	SessionID string         // Session ID if applicable
	Context   map[string]any // Additional context
}

// Error implements the error interface.
func (e *ChatError) Error() string {
	if e.SessionID != "" {
		return fmt.Sprintf("%s (session=%s): %v", e.Op, e.SessionID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ChatError) Unwrap() error {
	return e.Err
}

// WithContext adds additional context to the error.
func (e *ChatError) WithContext(key string, value any) *ChatError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewChatError creates a new ChatError.
func NewChatError(op string, err error) *ChatError {
	return &ChatError{Op: op, Err: err}
}

// NewChatErrorWithSession creates a new ChatError with a session ID.
func NewChatErrorWithSession(op, sessionID string, err error) *ChatError {
	return &ChatError{Op: op, Err: err, SessionID: sessionID}
}
