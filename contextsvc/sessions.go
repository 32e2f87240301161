package contextsvc

import (
	"context"
	"net/http"
	"net/url"
)

// CreateSession creates a new remote session and returns its platform ID.
// The platform session is the unit that history, token accounting, and edit
// strategies operate on; MemoChat stores the returned ID in its own session
// record.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/sessions", struct{}{}, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// DeleteSession deletes the remote session and all of its stored history.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/sessions/"+url.PathEscape(sessionID), nil, nil)
}
