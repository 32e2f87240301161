// Package convert translates between the context service's stored message
// records and the Anthropic API's message parameters.
package convert

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/memochat/memochat/contextsvc"
)

// ToAnthropicMessages converts stored records to Anthropic message params.
//
// System records are skipped (the system prompt travels in its own request
// field). Tool-role records become user-role messages carrying tool_result
// blocks, which is how the Anthropic API expects tool outputs back.
func ToAnthropicMessages(records []contextsvc.MessageRecord) []anthropic.MessageParam {
	params := make([]anthropic.MessageParam, 0, len(records))

	for _, rec := range records {
		if rec.Role == "system" {
			continue
		}

		blocks := make([]anthropic.ContentBlockParamUnion, 0, len(rec.Parts))
		for _, part := range rec.Parts {
			switch part.Type {
			case contextsvc.PartText:
				blocks = append(blocks, anthropic.NewTextBlock(part.Text))

			case contextsvc.PartToolCall:
				// Arguments may have been stripped by a
				// removeToolCallParams edit strategy; the API still
				// requires an object.
				var input any
				if len(part.Arguments) > 0 {
					_ = json.Unmarshal(part.Arguments, &input)
				}
				if input == nil {
					input = map[string]any{}
				}
				blocks = append(blocks, anthropic.NewToolUseBlock(part.ToolCallID, input, part.ToolName))

			case contextsvc.PartToolResult:
				blocks = append(blocks, anthropic.NewToolResultBlock(part.ToolCallID, part.Output, part.IsError))
			}
		}

		if len(blocks) == 0 {
			continue
		}

		role := anthropic.MessageParamRole(rec.Role)
		if rec.Role == "tool" {
			role = anthropic.MessageParamRoleUser
		}

		params = append(params, anthropic.MessageParam{
			Role:    role,
			Content: blocks,
		})
	}

	return params
}

// FromAnthropicResponse converts an API response to a storable assistant
// record.
func FromAnthropicResponse(resp *anthropic.Message) contextsvc.MessageRecord {
	rec := contextsvc.MessageRecord{Role: "assistant"}

	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			rec.Parts = append(rec.Parts, contextsvc.Part{
				Type: contextsvc.PartText,
				Text: block.Text,
			})
		case "tool_use":
			rec.Parts = append(rec.Parts, contextsvc.Part{
				Type:       contextsvc.PartToolCall,
				ToolCallID: block.ID,
				ToolName:   block.Name,
				Arguments:  json.RawMessage(block.Input),
			})
		}
	}

	return rec
}

// ToolResultRecord builds a tool-role record carrying one tool's output.
func ToolResultRecord(toolCallID, output string, isError bool) contextsvc.MessageRecord {
	return contextsvc.MessageRecord{
		Role: "tool",
		Parts: []contextsvc.Part{{
			Type:       contextsvc.PartToolResult,
			ToolCallID: toolCallID,
			Output:     output,
			IsError:    isError,
		}},
	}
}

// ExtractText concatenates the text parts of a record.
func ExtractText(rec contextsvc.MessageRecord) string {
	var out string
	for _, part := range rec.Parts {
		if part.Type == contextsvc.PartText {
			out += part.Text
		}
	}
	return out
}

// ToolCall is one tool invocation requested by the assistant.
type ToolCall struct {
	ID    string
	Name  string
	Input json.RawMessage
}

// ExtractToolCalls pulls the tool calls out of a record.
func ExtractToolCalls(rec contextsvc.MessageRecord) []ToolCall {
	var calls []ToolCall
	for _, part := range rec.Parts {
		if part.Type == contextsvc.PartToolCall {
			calls = append(calls, ToolCall{
				ID:    part.ToolCallID,
				Name:  part.ToolName,
				Input: part.Arguments,
			})
		}
	}
	return calls
}
