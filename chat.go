package memochat

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/memochat/memochat/contextedit"
	"github.com/memochat/memochat/contextsvc"
	"github.com/memochat/memochat/internal/convert"
	"github.com/memochat/memochat/storage"
)

// Reply is the result of one chat turn.
type Reply struct {
	// Text is the assistant's final text response.
	Text string

	// StopReason is the completion service's stop reason, e.g. "end_turn".
	StopReason string

	// InputTokens and OutputTokens report usage of the final completion
	// call of the turn.
	InputTokens  int
	OutputTokens int

	// EditStrategies are the compaction directives applied to this turn's
	// retrieval, if any. Stored history is never modified.
	EditStrategies []contextedit.EditStrategy
}

// Send runs one chat turn: the user's text is appended to the session's
// stored history, the history is retrieved (compacted on the fly when the
// decision policy calls for it), and the completion service produces the
// assistant's reply. Tool calls requested by the assistant are executed and
// fed back until the model stops or the iteration budget runs out.
func (c *Client) Send(ctx context.Context, sessionID, text string) (*Reply, error) {
	const op = "Send"

	sess, err := c.config.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}

	userRec := contextsvc.TextMessage("user", text)
	if err := c.config.contextSvc.AddMessages(ctx, sess.ContextSessionID, []contextsvc.MessageRecord{userRec}); err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, fmt.Errorf("append user message: %w", err))
	}

	strategies, err := c.decideEdits(ctx, sess)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}

	records, err := c.config.contextSvc.GetMessages(ctx, sess.ContextSessionID, contextsvc.GetMessagesOptions{
		Format:         c.config.messageFormat,
		EditStrategies: strategies,
	})
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, fmt.Errorf("retrieve messages: %w", err))
	}

	system, err := c.buildSystemPrompt(ctx, sess, text)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}

	reply, err := c.runCompletionLoop(ctx, sess, records, system)
	if err != nil {
		return nil, NewChatErrorWithSession(op, sessionID, err)
	}
	reply.EditStrategies = strategies

	if err := c.config.store.TouchSession(ctx, sessionID); err != nil {
		c.logWarn("touch session failed", "session_id", sessionID, "error", err)
	}

	return reply, nil
}

// decideEdits consults the context service's token counts and message
// statistics and returns the compaction directives for this retrieval.
// Signal failures degrade to no compaction rather than failing the turn.
func (c *Client) decideEdits(ctx context.Context, sess *storage.Session) ([]contextedit.EditStrategy, error) {
	usage, err := c.config.contextSvc.GetTokenCounts(ctx, sess.ContextSessionID)
	if err != nil {
		c.logWarn("token counts unavailable", "session_id", sess.ID, "error", err)
		usage = nil
	}

	records, err := c.config.contextSvc.GetMessages(ctx, sess.ContextSessionID, contextsvc.GetMessagesOptions{})
	if err != nil {
		c.logWarn("message stats unavailable", "session_id", sess.ID, "error", err)
		records = nil
	}

	strategies := contextedit.Decide(usage, contextsvc.DecisionProjection(records), c.config.thresholds)
	if len(strategies) == 0 {
		return nil, nil
	}

	c.logDebug("applying edit strategies", "session_id", sess.ID, "count", len(strategies))
	if err := c.config.hooks.TriggerContextEdit(ctx, sess.ID, strategies); err != nil {
		return nil, fmt.Errorf("context edit hook: %w", err)
	}
	return strategies, nil
}

// buildSystemPrompt assembles the system prompt, optionally enriched with
// skills recalled from the session's space.
func (c *Client) buildSystemPrompt(ctx context.Context, sess *storage.Session, query string) (string, error) {
	if !c.config.skillRecall || sess.SpaceID == "" {
		return c.config.systemPrompt, nil
	}

	skills, err := c.config.contextSvc.SearchSkills(ctx, sess.SpaceID, query, c.config.skillRecallLimit)
	if err != nil {
		c.logWarn("skill recall failed", "session_id", sess.ID, "error", err)
		return c.config.systemPrompt, nil
	}
	if len(skills) == 0 {
		return c.config.systemPrompt, nil
	}

	var sb strings.Builder
	sb.WriteString(c.config.systemPrompt)
	sb.WriteString("\n\nRelevant skills from memory:\n")
	for _, skill := range skills {
		sb.WriteString("\n## ")
		sb.WriteString(skill.Name)
		sb.WriteString("\n")
		sb.WriteString(skill.Content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// runCompletionLoop drives the completion service, executing requested tools
// and persisting each exchange, until the model stops asking for tools.
func (c *Client) runCompletionLoop(ctx context.Context, sess *storage.Session, records []contextsvc.MessageRecord, system string) (*Reply, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.model),
		MaxTokens: c.config.maxTokens,
		Messages:  convert.ToAnthropicMessages(records),
		System:    []anthropic.TextBlockParam{{Text: system}},
	}
	if c.config.temperature != nil {
		params.Temperature = anthropic.Float(*c.config.temperature)
	}
	if tools := c.anthropicToolParams(); tools != nil {
		params.Tools = tools
	}

	for iteration := 0; iteration < c.config.maxToolIterations; iteration++ {
		if err := c.config.hooks.TriggerBeforeCompletion(ctx, records); err != nil {
			return nil, fmt.Errorf("before completion hook: %w", err)
		}

		resp, err := c.config.completer.Complete(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
		}

		if err := c.config.hooks.TriggerAfterCompletion(ctx, string(resp.StopReason), int(resp.Usage.InputTokens), int(resp.Usage.OutputTokens)); err != nil {
			return nil, fmt.Errorf("after completion hook: %w", err)
		}

		assistantRec := convert.FromAnthropicResponse(resp)
		if err := c.config.contextSvc.AddMessages(ctx, sess.ContextSessionID, []contextsvc.MessageRecord{assistantRec}); err != nil {
			return nil, fmt.Errorf("append assistant message: %w", err)
		}

		if resp.StopReason != anthropic.StopReasonToolUse {
			return &Reply{
				Text:         convert.ExtractText(assistantRec),
				StopReason:   string(resp.StopReason),
				InputTokens:  int(resp.Usage.InputTokens),
				OutputTokens: int(resp.Usage.OutputTokens),
			}, nil
		}

		resultRecs, err := c.executeToolCalls(ctx, convert.ExtractToolCalls(assistantRec))
		if err != nil {
			return nil, err
		}
		if err := c.config.contextSvc.AddMessages(ctx, sess.ContextSessionID, resultRecs); err != nil {
			return nil, fmt.Errorf("append tool results: %w", err)
		}

		params.Messages = append(params.Messages, anthropic.MessageParam{
			Role:    anthropic.MessageParamRoleAssistant,
			Content: anthropicContentBlocks(assistantRec),
		})
		params.Messages = append(params.Messages, anthropic.MessageParam{
			Role:    anthropic.MessageParamRoleUser,
			Content: anthropicToolResultBlocks(resultRecs),
		})
	}

	return nil, NewChatErrorWithSession("runCompletionLoop", sess.ID, ErrToolIterationsExceeded).
		WithContext("max_iterations", c.config.maxToolIterations)
}

// executeToolCalls runs each requested tool and collects tool-role records.
// A failing tool produces an error result for the model instead of aborting
// the turn; only unregistered tools are fatal.
func (c *Client) executeToolCalls(ctx context.Context, calls []convert.ToolCall) ([]contextsvc.MessageRecord, error) {
	records := make([]contextsvc.MessageRecord, 0, len(calls))

	for _, call := range calls {
		tool, ok := c.config.tools[call.Name]
		if !ok {
			return nil, NewChatError("executeToolCalls", ErrToolNotFound).
				WithContext("tool", call.Name)
		}

		output, err := tool.Execute(ctx, call.Input)
		if hookErr := c.config.hooks.TriggerToolCall(ctx, call.Name, call.Input, output, err); hookErr != nil {
			return nil, fmt.Errorf("tool call hook: %w", hookErr)
		}
		if err != nil {
			c.logWarn("tool execution failed", "tool", call.Name, "error", err)
			records = append(records, convert.ToolResultRecord(call.ID, err.Error(), true))
			continue
		}
		records = append(records, convert.ToolResultRecord(call.ID, output, false))
	}

	return records, nil
}

// anthropicContentBlocks rebuilds the content blocks of an assistant record
// for continuing the in-flight request.
func anthropicContentBlocks(rec contextsvc.MessageRecord) []anthropic.ContentBlockParamUnion {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(rec.Parts))
	for _, part := range rec.Parts {
		switch part.Type {
		case contextsvc.PartText:
			blocks = append(blocks, anthropic.NewTextBlock(part.Text))
		case contextsvc.PartToolCall:
			var input any
			if len(part.Arguments) > 0 {
				input = part.Arguments
			} else {
				input = map[string]any{}
			}
			blocks = append(blocks, anthropic.NewToolUseBlock(part.ToolCallID, input, part.ToolName))
		}
	}
	return blocks
}

// anthropicToolResultBlocks converts tool-role records to tool_result blocks.
func anthropicToolResultBlocks(recs []contextsvc.MessageRecord) []anthropic.ContentBlockParamUnion {
	var blocks []anthropic.ContentBlockParamUnion
	for _, rec := range recs {
		for _, part := range rec.Parts {
			if part.Type == contextsvc.PartToolResult {
				blocks = append(blocks, anthropic.NewToolResultBlock(part.ToolCallID, part.Output, part.IsError))
			}
		}
	}
	return blocks
}
