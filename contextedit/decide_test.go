package contextedit

import (
	"reflect"
	"testing"
)

// toolMessages builds n tool-role messages.
func toolMessages(n int) []Message {
	msgs := make([]Message, n)
	for i := range msgs {
		msgs[i] = Message{Role: RoleTool}
	}
	return msgs
}

// assistantWithCalls builds one assistant message carrying n tool calls.
func assistantWithCalls(n int) Message {
	calls := make([]ToolCallRef, n)
	for i := range calls {
		calls[i] = ToolCallRef("call")
	}
	return Message{Role: RoleAssistant, ToolCalls: calls}
}

func TestDecideNoSignal(t *testing.T) {
	// Even a history that would trip every other check must produce nothing
	// without a token signal.
	messages := append(toolMessages(20), assistantWithCalls(50))

	tests := []struct {
		name  string
		usage *TokenUsage
	}{
		{name: "nil usage", usage: nil},
		{name: "zero tokens", usage: &TokenUsage{TotalTokens: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.usage, messages, Thresholds{})
			if len(got) != 0 {
				t.Errorf("Decide() = %v, want empty", got)
			}
		})
	}
}

func TestDecideTokenLimitPriority(t *testing.T) {
	tests := []struct {
		name       string
		usage      *TokenUsage
		messages   []Message
		thresholds Thresholds
		want       EditStrategy
	}{
		{
			name:  "breach with quiet history",
			usage: &TokenUsage{TotalTokens: 80001},
			want:  TokenLimit{LimitTokens: 70000},
		},
		{
			name:     "breach wins over tool-result volume",
			usage:    &TokenUsage{TotalTokens: 120000},
			messages: toolMessages(20),
			want:     TokenLimit{LimitTokens: 70000},
		},
		{
			name:     "breach wins over tool-call volume",
			usage:    &TokenUsage{TotalTokens: 120000},
			messages: []Message{assistantWithCalls(50)},
			want:     TokenLimit{LimitTokens: 70000},
		},
		{
			name:       "custom target",
			usage:      &TokenUsage{TotalTokens: 5001},
			thresholds: Thresholds{TokenLimitThreshold: 5000, TokenLimitTarget: 4000},
			want:       TokenLimit{LimitTokens: 4000},
		},
		{
			name:  "at threshold does not trigger",
			usage: &TokenUsage{TotalTokens: 80000},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.usage, tt.messages, tt.thresholds)
			if tt.want == nil {
				if len(got) != 0 {
					t.Fatalf("Decide() = %v, want empty", got)
				}
				return
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Decide() = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestDecideRemoveToolResults(t *testing.T) {
	// Token limit not breached, tool results above threshold.
	usage := &TokenUsage{TotalTokens: 1000}
	messages := toolMessages(6)

	got := Decide(usage, messages, Thresholds{})
	want := RemoveToolResults{KeepRecentCount: 3, Placeholder: "Done"}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Decide() = %v, want [%v]", got, want)
	}
}

func TestDecideRemoveToolCallParams(t *testing.T) {
	// Tool results below threshold, tool calls above it.
	usage := &TokenUsage{TotalTokens: 1000}
	messages := append(toolMessages(2), assistantWithCalls(12))

	got := Decide(usage, messages, Thresholds{})
	want := RemoveToolCallParams{KeepRecentCount: 5}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Decide() = %v, want [%v]", got, want)
	}
}

func TestDecideQuiescent(t *testing.T) {
	usage := &TokenUsage{TotalTokens: 500}
	messages := []Message{
		{Role: RoleUser},
		{Role: RoleTool},
		assistantWithCalls(2),
	}

	got := Decide(usage, messages, Thresholds{})
	if len(got) != 0 {
		t.Errorf("Decide() = %v, want empty", got)
	}
}

func TestDecideKeepRecentFloor(t *testing.T) {
	tests := []struct {
		name       string
		messages   []Message
		thresholds Thresholds
		want       EditStrategy
	}{
		{
			name:       "tool result threshold 2 floors at 3",
			messages:   toolMessages(3),
			thresholds: Thresholds{ToolResultThreshold: 2},
			want:       RemoveToolResults{KeepRecentCount: 3, Placeholder: "Done"},
		},
		{
			name:       "tool call threshold 4 floors at 3",
			messages:   []Message{assistantWithCalls(5)},
			thresholds: Thresholds{ToolCallThreshold: 4},
			want:       RemoveToolCallParams{KeepRecentCount: 3},
		},
		{
			name:       "odd threshold uses floor division",
			messages:   toolMessages(10),
			thresholds: Thresholds{ToolResultThreshold: 9},
			want:       RemoveToolResults{KeepRecentCount: 4, Placeholder: "Done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(&TokenUsage{TotalTokens: 1000}, tt.messages, tt.thresholds)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Decide() = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestDecideAtMostOneStrategy(t *testing.T) {
	// Every check tripped at once still yields a single strategy.
	usage := &TokenUsage{TotalTokens: 500000}
	messages := append(toolMessages(30), assistantWithCalls(60))

	got := Decide(usage, messages, Thresholds{})
	if len(got) != 1 {
		t.Fatalf("Decide() returned %d strategies, want 1", len(got))
	}
	if _, ok := got[0].(TokenLimit); !ok {
		t.Errorf("Decide() = %v, want TokenLimit first", got[0])
	}
}

func TestDecidePartialThresholdOverride(t *testing.T) {
	// Overriding one knob leaves the others at their defaults.
	usage := &TokenUsage{TotalTokens: 1000}
	messages := toolMessages(4)

	// Default ToolResultThreshold (5) would not trigger on 4 tool results.
	got := Decide(usage, messages, Thresholds{ToolResultThreshold: 3})
	want := RemoveToolResults{KeepRecentCount: 3, Placeholder: "Done"}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Decide() = %v, want [%v]", got, want)
	}

	// The token limit knobs were untouched and still default.
	got = Decide(&TokenUsage{TotalTokens: 80001}, nil, Thresholds{ToolResultThreshold: 3})
	if len(got) != 1 || got[0] != (TokenLimit{LimitTokens: 70000}) {
		t.Fatalf("Decide() = %v, want default TokenLimit", got)
	}
}

func TestDecideIsPure(t *testing.T) {
	usage := &TokenUsage{TotalTokens: 1000}
	messages := append(toolMessages(6), assistantWithCalls(12))
	thresholds := Thresholds{ToolResultThreshold: 5}

	first := Decide(usage, messages, thresholds)
	second := Decide(usage, messages, thresholds)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Decide() differed: %v vs %v", first, second)
	}

	// Inputs are untouched.
	if usage.TotalTokens != 1000 {
		t.Errorf("usage mutated: %+v", usage)
	}
	if thresholds.ToolResultThreshold != 5 || thresholds.TokenLimitThreshold != 0 {
		t.Errorf("thresholds mutated: %+v", thresholds)
	}
	if len(messages) != 7 || len(messages[6].ToolCalls) != 12 {
		t.Errorf("messages mutated")
	}
}
