package contextedit

// Default threshold values based on the context service's recommended limits.
const (
	// DefaultTokenLimitThreshold is the token count that triggers a
	// TokenLimit strategy.
	DefaultTokenLimitThreshold = 80000

	// DefaultTokenLimitTarget is the token count the session is trimmed to
	// once the threshold is breached.
	DefaultTokenLimitTarget = 70000

	// DefaultToolResultThreshold is the number of tool-result messages above
	// which older results are collapsed.
	DefaultToolResultThreshold = 5

	// DefaultToolCallThreshold is the number of tool-call references above
	// which older call arguments are stripped.
	DefaultToolCallThreshold = 10
)

// MinKeepRecent is the floor for keepRecentCount on the tool-volume
// strategies. The model always retains at least this many recent tool
// interactions, regardless of how small the configured thresholds are.
const MinKeepRecent = 3

// Thresholds holds the numeric knobs for the decision policy. The zero value
// is usable: any zero field falls back to its default, so callers can
// override a single threshold without restating the rest.
//
// Thresholds are not validated. A target at or above the trigger threshold is
// accepted as-is and simply makes the resulting TokenLimit strategy a weaker
// reduction; the policy preserves the literal comparisons either way.
type Thresholds struct {
	// TokenLimitThreshold is the total-token count above which a TokenLimit
	// strategy is emitted. Default: 80000.
	TokenLimitThreshold int

	// TokenLimitTarget is the token count requested from the context service
	// when trimming. Expected to be below TokenLimitThreshold. Default: 70000.
	TokenLimitTarget int

	// ToolResultThreshold is the count of tool-role messages above which a
	// RemoveToolResults strategy is emitted. Default: 5.
	ToolResultThreshold int

	// ToolCallThreshold is the count of tool-call references across all
	// messages above which a RemoveToolCallParams strategy is emitted.
	// Default: 10.
	ToolCallThreshold int
}

// DefaultThresholds returns a Thresholds with all defaults filled in.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TokenLimitThreshold: DefaultTokenLimitThreshold,
		TokenLimitTarget:    DefaultTokenLimitTarget,
		ToolResultThreshold: DefaultToolResultThreshold,
		ToolCallThreshold:   DefaultToolCallThreshold,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (t *Thresholds) ApplyDefaults() {
	if t.TokenLimitThreshold == 0 {
		t.TokenLimitThreshold = DefaultTokenLimitThreshold
	}
	if t.TokenLimitTarget == 0 {
		t.TokenLimitTarget = DefaultTokenLimitTarget
	}
	if t.ToolResultThreshold == 0 {
		t.ToolResultThreshold = DefaultToolResultThreshold
	}
	if t.ToolCallThreshold == 0 {
		t.ToolCallThreshold = DefaultToolCallThreshold
	}
}
