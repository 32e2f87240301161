package contextedit

import "encoding/json"

// PlaceholderDone is the body that replaces collapsed tool results. Keeping a
// short affirmative string preserves conversational continuity: the assistant
// still sees that it ran the tool, just not what came back.
const PlaceholderDone = "Done"

// Wire discriminants for the context service's editStrategies parameter.
const (
	strategyTypeTokenLimit           = "tokenLimit"
	strategyTypeRemoveToolResults    = "removeToolResults"
	strategyTypeRemoveToolCallParams = "removeToolCallParams"
)

// EditStrategy is one instruction telling the context service how to shrink
// the message sequence for a single retrieval. It is a closed sum: the only
// implementations are TokenLimit, RemoveToolResults, and RemoveToolCallParams,
// so callers can switch exhaustively over the concrete types.
//
// Strategies serialize to the JSON shapes the context service expects, e.g.
//
//	{"type":"tokenLimit","limitTokens":70000}
//	{"type":"removeToolResults","keepRecentCount":3,"placeholder":"Done"}
//	{"type":"removeToolCallParams","keepRecentCount":5}
type EditStrategy interface {
	json.Marshaler

	editStrategy()
}

// TokenLimit asks the context service to trim history to at most LimitTokens
// tokens. The service trims in its own internal order (oldest first).
type TokenLimit struct {
	LimitTokens int
}

func (TokenLimit) editStrategy() {}

// MarshalJSON implements json.Marshaler.
func (s TokenLimit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string `json:"type"`
		LimitTokens int    `json:"limitTokens"`
	}{strategyTypeTokenLimit, s.LimitTokens})
}

// RemoveToolResults asks the context service to replace the bodies of all but
// the most recent KeepRecentCount tool-result messages with Placeholder.
type RemoveToolResults struct {
	KeepRecentCount int
	Placeholder     string
}

func (RemoveToolResults) editStrategy() {}

// MarshalJSON implements json.Marshaler.
func (s RemoveToolResults) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            string `json:"type"`
		KeepRecentCount int    `json:"keepRecentCount"`
		Placeholder     string `json:"placeholder"`
	}{strategyTypeRemoveToolResults, s.KeepRecentCount, s.Placeholder})
}

// RemoveToolCallParams asks the context service to strip call arguments from
// all but the most recent KeepRecentCount tool-call references, preserving
// call identity and name for the audit trail.
type RemoveToolCallParams struct {
	KeepRecentCount int
}

func (RemoveToolCallParams) editStrategy() {}

// MarshalJSON implements json.Marshaler.
func (s RemoveToolCallParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            string `json:"type"`
		KeepRecentCount int    `json:"keepRecentCount"`
	}{strategyTypeRemoveToolCallParams, s.KeepRecentCount})
}

// Compile-time checks.
var (
	_ EditStrategy = TokenLimit{}
	_ EditStrategy = RemoveToolResults{}
	_ EditStrategy = RemoveToolCallParams{}
)
