package contextsvc

import (
	"context"
	"net/http"
	"net/url"
)

// Skill is one entry in a space's long-term skill memory.
type Skill struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// DefaultSkillSearchLimit bounds SearchSkills when the caller passes a
// non-positive limit.
const DefaultSkillSearchLimit = 5

// SearchSkills runs a semantic search over the space's skill memory and
// returns the best matches, highest score first. Spaces outlive sessions:
// they hold reusable procedures scoped to a user, not to a conversation.
func (c *Client) SearchSkills(ctx context.Context, spaceID, query string, limit int) ([]Skill, error) {
	if limit <= 0 {
		limit = DefaultSkillSearchLimit
	}

	body := struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}{query, limit}

	var out struct {
		Skills []Skill `json:"skills"`
	}
	path := "/spaces/" + url.PathEscape(spaceID) + "/search"
	if err := c.doJSON(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return out.Skills, nil
}
