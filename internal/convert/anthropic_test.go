package convert

import (
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/memochat/memochat/contextsvc"
)

func TestToAnthropicMessages(t *testing.T) {
	records := []contextsvc.MessageRecord{
		{Role: "system", Parts: []contextsvc.Part{{Type: contextsvc.PartText, Text: "be helpful"}}},
		{Role: "user", Parts: []contextsvc.Part{{Type: contextsvc.PartText, Text: "hi"}}},
		{Role: "assistant", Parts: []contextsvc.Part{
			{Type: contextsvc.PartText, Text: "checking"},
			{Type: contextsvc.PartToolCall, ToolCallID: "call-1", ToolName: "search", Arguments: json.RawMessage(`{"q":"x"}`)},
		}},
		{Role: "tool", Parts: []contextsvc.Part{
			{Type: contextsvc.PartToolResult, ToolCallID: "call-1", Output: "found"},
		}},
		{Role: "assistant", Parts: nil}, // empty records are dropped
	}

	params := ToAnthropicMessages(records)

	if len(params) != 3 {
		t.Fatalf("ToAnthropicMessages() returned %d params, want 3 (system and empty dropped)", len(params))
	}
	if params[0].Role != anthropic.MessageParamRoleUser {
		t.Errorf("params[0].Role = %v", params[0].Role)
	}
	if params[1].Role != anthropic.MessageParamRoleAssistant {
		t.Errorf("params[1].Role = %v", params[1].Role)
	}
	if len(params[1].Content) != 2 {
		t.Errorf("assistant content blocks = %d, want 2", len(params[1].Content))
	}
	// Tool outputs travel back as user-role tool_result blocks.
	if params[2].Role != anthropic.MessageParamRoleUser {
		t.Errorf("tool record role = %v, want user", params[2].Role)
	}
}

func TestToolResultRecordRoundTrip(t *testing.T) {
	rec := ToolResultRecord("call-9", "all good", false)
	if rec.Role != "tool" || len(rec.Parts) != 1 {
		t.Fatalf("ToolResultRecord() = %+v", rec)
	}
	part := rec.Parts[0]
	if part.Type != contextsvc.PartToolResult || part.ToolCallID != "call-9" || part.Output != "all good" {
		t.Errorf("part = %+v", part)
	}
}

func TestExtractToolCalls(t *testing.T) {
	rec := contextsvc.MessageRecord{
		Role: "assistant",
		Parts: []contextsvc.Part{
			{Type: contextsvc.PartText, Text: "let me look"},
			{Type: contextsvc.PartToolCall, ToolCallID: "a", ToolName: "search", Arguments: json.RawMessage(`{}`)},
			{Type: contextsvc.PartToolCall, ToolCallID: "b", ToolName: "fetch"},
		},
	}

	calls := ExtractToolCalls(rec)
	if len(calls) != 2 {
		t.Fatalf("ExtractToolCalls() = %d calls, want 2", len(calls))
	}
	if calls[0].ID != "a" || calls[0].Name != "search" {
		t.Errorf("calls[0] = %+v", calls[0])
	}
	if calls[1].ID != "b" || calls[1].Name != "fetch" {
		t.Errorf("calls[1] = %+v", calls[1])
	}

	if got := ExtractText(rec); got != "let me look" {
		t.Errorf("ExtractText() = %q", got)
	}
}
