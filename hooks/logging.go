package hooks

import (
	"context"
	"encoding/json"
	"log"

	"github.com/memochat/memochat/contextedit"
	"github.com/memochat/memochat/contextsvc"
)

// LoggingHooks provides built-in logging hooks for observability.
type LoggingHooks struct {
	logger *log.Logger
}

// NewLoggingHooks creates logging hooks with the provided logger.
func NewLoggingHooks(logger *log.Logger) *LoggingHooks {
	return &LoggingHooks{logger: logger}
}

// DefaultLoggingHooks creates logging hooks with the default logger.
func DefaultLoggingHooks() *LoggingHooks {
	return &LoggingHooks{logger: log.Default()}
}

// Register attaches all logging hooks to the registry.
func (h *LoggingHooks) Register(r *Registry) {
	r.OnBeforeCompletion(h.BeforeCompletion)
	r.OnAfterCompletion(h.AfterCompletion)
	r.OnContextEdit(h.ContextEdit)
	r.OnToolCall(h.ToolCall)
}

// BeforeCompletion logs before sending messages to the completion service.
func (h *LoggingHooks) BeforeCompletion(ctx context.Context, messages []contextsvc.MessageRecord) error {
	h.logger.Printf("[MemoChat] Sending %d messages to completion service", len(messages))
	return nil
}

// AfterCompletion logs after receiving a response.
func (h *LoggingHooks) AfterCompletion(ctx context.Context, stopReason string, inputTokens, outputTokens int) error {
	h.logger.Printf("[MemoChat] Completion finished: stop_reason=%s tokens=%d/%d", stopReason, inputTokens, outputTokens)
	return nil
}

// ContextEdit logs the edit strategies applied to a retrieval.
func (h *LoggingHooks) ContextEdit(ctx context.Context, sessionID string, strategies []contextedit.EditStrategy) error {
	for _, strategy := range strategies {
		switch s := strategy.(type) {
		case contextedit.TokenLimit:
			h.logger.Printf("[MemoChat] Session %s: trimming history to %d tokens", sessionID, s.LimitTokens)
		case contextedit.RemoveToolResults:
			h.logger.Printf("[MemoChat] Session %s: collapsing tool results, keeping last %d", sessionID, s.KeepRecentCount)
		case contextedit.RemoveToolCallParams:
			h.logger.Printf("[MemoChat] Session %s: stripping tool call params, keeping last %d", sessionID, s.KeepRecentCount)
		}
	}
	return nil
}

// ToolCall logs tool execution.
func (h *LoggingHooks) ToolCall(ctx context.Context, toolName string, input json.RawMessage, output string, err error) error {
	if err != nil {
		h.logger.Printf("[MemoChat] Tool '%s' failed: %v", toolName, err)
		return nil
	}
	preview := output
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	h.logger.Printf("[MemoChat] Tool '%s' succeeded: %s", toolName, preview)
	return nil
}
