package contextedit

import (
	"encoding/json"
	"testing"
)

func TestEditStrategyJSON(t *testing.T) {
	tests := []struct {
		name     string
		strategy EditStrategy
		want     string
	}{
		{
			name:     "token limit",
			strategy: TokenLimit{LimitTokens: 70000},
			want:     `{"type":"tokenLimit","limitTokens":70000}`,
		},
		{
			name:     "remove tool results",
			strategy: RemoveToolResults{KeepRecentCount: 3, Placeholder: "Done"},
			want:     `{"type":"removeToolResults","keepRecentCount":3,"placeholder":"Done"}`,
		},
		{
			name:     "remove tool call params",
			strategy: RemoveToolCallParams{KeepRecentCount: 5},
			want:     `{"type":"removeToolCallParams","keepRecentCount":5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.strategy)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEditStrategyListJSON(t *testing.T) {
	// The strategies slice is what actually goes on the wire as the
	// editStrategies parameter; marshaling must go through each variant's
	// own encoder even behind the interface type.
	strategies := []EditStrategy{
		TokenLimit{LimitTokens: 1000},
		RemoveToolCallParams{KeepRecentCount: 4},
	}

	got, err := json.Marshal(strategies)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `[{"type":"tokenLimit","limitTokens":1000},{"type":"removeToolCallParams","keepRecentCount":4}]`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestEditStrategyExhaustive(t *testing.T) {
	// Callers switch on the concrete type; every variant must be one of the
	// three known kinds.
	strategies := []EditStrategy{
		TokenLimit{},
		RemoveToolResults{},
		RemoveToolCallParams{},
	}

	for _, s := range strategies {
		switch s.(type) {
		case TokenLimit, RemoveToolResults, RemoveToolCallParams:
		default:
			t.Errorf("unknown strategy variant %T", s)
		}
	}
}
