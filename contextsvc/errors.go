package contextsvc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors for platform operations.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid context service configuration")

	// ErrUnavailable indicates the platform could not be reached.
	ErrUnavailable = errors.New("context service unavailable")

	// ErrSessionNotFound indicates the remote session does not exist.
	ErrSessionNotFound = errors.New("remote session not found")
)

// APIError is a non-2xx response from the platform.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the platform's machine-readable error code, if any.
	Code string

	// Message is the platform's human-readable error message, if any.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("context service: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("context service: status %d", e.StatusCode)
}

// Is maps 404 responses onto ErrSessionNotFound so callers can use errors.Is
// without inspecting status codes.
func (e *APIError) Is(target error) bool {
	return target == ErrSessionNotFound && e.StatusCode == http.StatusNotFound
}

// decodeAPIError builds an *APIError from an error response body of the form
// {"error":{"code":"...","message":"..."}}. Bodies that do not match still
// produce an error carrying the status code.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
	}

	return apiErr
}
