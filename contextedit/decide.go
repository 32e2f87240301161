package contextedit

// Decide inspects the session's current token usage and message statistics
// and returns the edit strategies to pass to the context service's next
// retrieval call. The result is empty in the normal case and never contains
// more than one strategy.
//
// usage may be nil when the context service could not report a token count;
// that is treated as "no signal" and yields no strategy rather than an error.
// messages is the full snapshot the caller wants considered; Decide has no
// notion of sessions or pagination. Zero fields in thresholds fall back to
// the documented defaults.
//
// Decide never fails and never mutates its inputs.
func Decide(usage *TokenUsage, messages []Message, thresholds Thresholds) []EditStrategy {
	thresholds.ApplyDefaults()

	if usage == nil || usage.TotalTokens == 0 {
		return nil
	}

	if usage.TotalTokens > thresholds.TokenLimitThreshold {
		return []EditStrategy{TokenLimit{LimitTokens: thresholds.TokenLimitTarget}}
	}

	toolResultCount := 0
	toolCallCount := 0
	for _, msg := range messages {
		if msg.Role == RoleTool {
			toolResultCount++
		}
		toolCallCount += len(msg.ToolCalls)
	}

	if toolResultCount > thresholds.ToolResultThreshold {
		return []EditStrategy{RemoveToolResults{
			KeepRecentCount: keepRecent(thresholds.ToolResultThreshold),
			Placeholder:     PlaceholderDone,
		}}
	}

	if toolCallCount > thresholds.ToolCallThreshold {
		return []EditStrategy{RemoveToolCallParams{
			KeepRecentCount: keepRecent(thresholds.ToolCallThreshold),
		}}
	}

	return nil
}

// keepRecent derives keepRecentCount from a threshold: half the threshold,
// floored, but never below MinKeepRecent.
func keepRecent(threshold int) int {
	n := threshold / 2
	if n < MinKeepRecent {
		n = MinKeepRecent
	}
	return n
}
