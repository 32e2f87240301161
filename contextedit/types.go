package contextedit

// Role identifies who produced a conversation message.
type Role string

const (
	// RoleUser is a message written by the end user.
	RoleUser Role = "user"

	// RoleAssistant is a model response.
	RoleAssistant Role = "assistant"

	// RoleSystem is a system prompt message.
	RoleSystem Role = "system"

	// RoleTool is a message carrying the output of a tool call.
	RoleTool Role = "tool"
)

// ToolCallRef is an opaque identifier for a single tool invocation requested
// by the assistant. The decision policy only counts references; it never
// inspects them.
type ToolCallRef string

// Message is the decision-relevant projection of a conversation message.
// Only the role and the tool-call references matter here; content stays with
// the context service.
type Message struct {
	Role      Role
	ToolCalls []ToolCallRef
}

// TokenUsage is a snapshot of a session's stored history size in model
// tokens, as reported by the context service. A nil *TokenUsage means the
// service could not report usage for the session.
type TokenUsage struct {
	TotalTokens int
}
