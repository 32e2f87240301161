// Package hooks provides observability hooks for MemoChat.
//
// The context-edit decision itself is a pure function and never logs; hooks
// fire in the caller layer around it, so diagnostics stay out of the policy.
package hooks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/memochat/memochat/contextedit"
	"github.com/memochat/memochat/contextsvc"
)

// BeforeCompletionHook is called before sending messages to the completion
// service.
type BeforeCompletionHook func(ctx context.Context, messages []contextsvc.MessageRecord) error

// AfterCompletionHook is called after receiving a completion response.
type AfterCompletionHook func(ctx context.Context, stopReason string, inputTokens, outputTokens int) error

// ContextEditHook is called when the decision policy emits edit strategies
// for a retrieval, before they are sent to the context service.
type ContextEditHook func(ctx context.Context, sessionID string, strategies []contextedit.EditStrategy) error

// ToolCallHook is called when a tool is executed.
type ToolCallHook func(ctx context.Context, toolName string, input json.RawMessage, output string, err error) error

// Registry holds all registered hooks.
type Registry struct {
	mu               sync.RWMutex
	beforeCompletion []BeforeCompletionHook
	afterCompletion  []AfterCompletionHook
	contextEdit      []ContextEditHook
	toolCall         []ToolCallHook
}

// NewRegistry creates a new hook registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// OnBeforeCompletion registers a hook to be called before each completion.
func (r *Registry) OnBeforeCompletion(hook BeforeCompletionHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beforeCompletion = append(r.beforeCompletion, hook)
}

// OnAfterCompletion registers a hook to be called after each completion.
func (r *Registry) OnAfterCompletion(hook AfterCompletionHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.afterCompletion = append(r.afterCompletion, hook)
}

// OnContextEdit registers a hook to be called when edit strategies are
// applied to a retrieval.
func (r *Registry) OnContextEdit(hook ContextEditHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contextEdit = append(r.contextEdit, hook)
}

// OnToolCall registers a hook to be called when a tool is executed.
func (r *Registry) OnToolCall(hook ToolCallHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toolCall = append(r.toolCall, hook)
}

// TriggerBeforeCompletion calls all registered before-completion hooks.
func (r *Registry) TriggerBeforeCompletion(ctx context.Context, messages []contextsvc.MessageRecord) error {
	r.mu.RLock()
	hooks := make([]BeforeCompletionHook, len(r.beforeCompletion))
	copy(hooks, r.beforeCompletion)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, messages); err != nil {
			return err
		}
	}
	return nil
}

// TriggerAfterCompletion calls all registered after-completion hooks.
func (r *Registry) TriggerAfterCompletion(ctx context.Context, stopReason string, inputTokens, outputTokens int) error {
	r.mu.RLock()
	hooks := make([]AfterCompletionHook, len(r.afterCompletion))
	copy(hooks, r.afterCompletion)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, stopReason, inputTokens, outputTokens); err != nil {
			return err
		}
	}
	return nil
}

// TriggerContextEdit calls all registered context-edit hooks.
func (r *Registry) TriggerContextEdit(ctx context.Context, sessionID string, strategies []contextedit.EditStrategy) error {
	r.mu.RLock()
	hooks := make([]ContextEditHook, len(r.contextEdit))
	copy(hooks, r.contextEdit)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, sessionID, strategies); err != nil {
			return err
		}
	}
	return nil
}

// TriggerToolCall calls all registered tool-call hooks.
func (r *Registry) TriggerToolCall(ctx context.Context, toolName string, input json.RawMessage, output string, err error) error {
	r.mu.RLock()
	hooks := make([]ToolCallHook, len(r.toolCall))
	copy(hooks, r.toolCall)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if hookErr := hook(ctx, toolName, input, output, err); hookErr != nil {
			return hookErr
		}
	}
	return nil
}
