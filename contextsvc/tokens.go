package contextsvc

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/memochat/memochat/contextedit"
)

// GetTokenCounts reports the current size of the session's stored history in
// model tokens.
//
// A session without token accounting yet is not an error: the platform
// answers 404 and GetTokenCounts returns (nil, nil). Callers feed the nil
// usage straight into contextedit.Decide, which treats it as "no signal".
func (c *Client) GetTokenCounts(ctx context.Context, sessionID string) (*contextedit.TokenUsage, error) {
	var out struct {
		TotalTokens int `json:"totalTokens"`
	}
	path := "/sessions/" + url.PathEscape(sessionID) + "/token-counts"
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &contextedit.TokenUsage{TotalTokens: out.TotalTokens}, nil
}
