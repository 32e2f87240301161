package contextsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/memochat/memochat/contextedit"
)

// PartType identifies the kind of a message content part.
type PartType string

const (
	// PartText is plain text content.
	PartText PartType = "text"

	// PartToolCall is a tool invocation requested by the assistant.
	PartToolCall PartType = "tool_call"

	// PartToolResult is the output of a previously requested tool call.
	PartToolResult PartType = "tool_result"
)

// Part is one piece of a stored message.
type Part struct {
	Type PartType `json:"type"`

	// Text content.
	Text string `json:"text,omitempty"`

	// Tool call content. Arguments may be empty when the platform has
	// applied a removeToolCallParams edit strategy.
	ToolCallID string          `json:"toolCallId,omitempty"`
	ToolName   string          `json:"toolName,omitempty"`
	Arguments  json.RawMessage `json:"arguments,omitempty"`

	// Tool result content. Output holds the placeholder string when the
	// platform has applied a removeToolResults edit strategy.
	Output  string `json:"output,omitempty"`
	IsError bool   `json:"isError,omitempty"`
}

// MessageRecord is one stored conversation message as returned by the
// platform.
type MessageRecord struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Parts     []Part    `json:"parts"`
	CreatedAt time.Time `json:"createdAt"`
}

// DecisionProjection reduces records to the role and tool-call statistics the
// contextedit policy consumes.
func DecisionProjection(records []MessageRecord) []contextedit.Message {
	messages := make([]contextedit.Message, 0, len(records))
	for _, rec := range records {
		msg := contextedit.Message{Role: contextedit.Role(rec.Role)}
		for _, part := range rec.Parts {
			if part.Type == PartToolCall {
				msg.ToolCalls = append(msg.ToolCalls, contextedit.ToolCallRef(part.ToolCallID))
			}
		}
		messages = append(messages, msg)
	}
	return messages
}

// GetMessagesOptions controls a retrieval call.
type GetMessagesOptions struct {
	// Format selects the platform's output shape, e.g. "anthropic".
	Format string `json:"format,omitempty"`

	// EditStrategies are applied by the platform to this retrieval only.
	// Stored history is never changed.
	EditStrategies []contextedit.EditStrategy `json:"editStrategies,omitempty"`
}

// GetMessages retrieves the session's message history, optionally compacted
// on the fly by the edit strategies in opts.
func (c *Client) GetMessages(ctx context.Context, sessionID string, opts GetMessagesOptions) ([]MessageRecord, error) {
	var out struct {
		Messages []MessageRecord `json:"messages"`
	}
	path := "/sessions/" + url.PathEscape(sessionID) + "/messages/query"
	if err := c.doJSON(ctx, http.MethodPost, path, opts, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// AddMessages appends messages to the session's stored history.
func (c *Client) AddMessages(ctx context.Context, sessionID string, messages []MessageRecord) error {
	body := struct {
		Messages []MessageRecord `json:"messages"`
	}{messages}
	path := "/sessions/" + url.PathEscape(sessionID) + "/messages"
	return c.doJSON(ctx, http.MethodPost, path, body, nil)
}

// TextMessage builds a single-part text message record.
func TextMessage(role, text string) MessageRecord {
	return MessageRecord{
		Role:  role,
		Parts: []Part{{Type: PartText, Text: text}},
	}
}
