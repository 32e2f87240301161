package memochat

import (
	"context"
	"fmt"
	"io"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/memochat/memochat/contextedit"
	"github.com/memochat/memochat/contextsvc"
	"github.com/memochat/memochat/hooks"
	"github.com/memochat/memochat/storage"
)

// ModelInfo contains model-specific parameters.
type ModelInfo struct {
	MaxContextTokens int
	DefaultMaxTokens int
}

// KnownModels maps model IDs to their capabilities.
var KnownModels = map[string]ModelInfo{
	"claude-sonnet-4-5-20250929": {MaxContextTokens: 200000, DefaultMaxTokens: 16384},
	"claude-opus-4-5-20251101":   {MaxContextTokens: 200000, DefaultMaxTokens: 16384},
	"claude-3-5-sonnet-20241022": {MaxContextTokens: 200000, DefaultMaxTokens: 8192},
	"claude-3-5-haiku-20241022":  {MaxContextTokens: 200000, DefaultMaxTokens: 8192},
}

// GetModelInfo returns model info, using sensible defaults for unknown models.
func GetModelInfo(model string) ModelInfo {
	if info, ok := KnownModels[model]; ok {
		return info
	}
	return ModelInfo{MaxContextTokens: 200000, DefaultMaxTokens: 8192}
}

// ContextService is the narrow contract MemoChat needs from the
// context-management platform. *contextsvc.Client implements it.
type ContextService interface {
	CreateSession(ctx context.Context) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetTokenCounts(ctx context.Context, sessionID string) (*contextedit.TokenUsage, error)
	GetMessages(ctx context.Context, sessionID string, opts contextsvc.GetMessagesOptions) ([]contextsvc.MessageRecord, error)
	AddMessages(ctx context.Context, sessionID string, messages []contextsvc.MessageRecord) error
	SearchSkills(ctx context.Context, spaceID, query string, limit int) ([]contextsvc.Skill, error)
	UploadFile(ctx context.Context, bucketID, name string, content io.Reader) (*contextsvc.File, error)
	ListFiles(ctx context.Context, bucketID string) ([]contextsvc.File, error)
}

// Completer is the completion service contract. The default implementation
// wraps the Anthropic client; tests substitute their own.
type Completer interface {
	Complete(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

// anthropicCompleter adapts *anthropic.Client to Completer.
type anthropicCompleter struct {
	client *anthropic.Client
}

func (c anthropicCompleter) Complete(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return c.client.Messages.New(ctx, params)
}

// Config holds the required configuration for a Client.
type Config struct {
	// Store persists session metadata (required).
	Store storage.Store

	// Context is the context-management platform client (required).
	Context ContextService

	// Client is the Anthropic API client (required unless WithCompleter
	// is used).
	Client *anthropic.Client

	// Model is the model ID to use (required).
	Model string

	// SystemPrompt is the system prompt for every completion (required).
	SystemPrompt string
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Store == nil {
		return fmt.Errorf("%w: Store is required", ErrInvalidConfig)
	}
	if c.Context == nil {
		return fmt.Errorf("%w: Context service is required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: Model is required", ErrInvalidConfig)
	}
	if c.SystemPrompt == "" {
		return fmt.Errorf("%w: SystemPrompt is required", ErrInvalidConfig)
	}
	return nil
}

// internalConfig holds the full client configuration including optional
// parameters.
type internalConfig struct {
	// Required from Config
	store        storage.Store
	contextSvc   ContextService
	completer    Completer
	model        string
	systemPrompt string

	// Optional parameters
	maxTokens         int64
	temperature       *float64
	thresholds        contextedit.Thresholds
	messageFormat     string
	skillRecall       bool
	skillRecallLimit  int
	maxToolIterations int

	// Internal state
	tools  map[string]Tool
	hooks  *hooks.Registry
	logger Logger
}

// newInternalConfig creates a new internal config from the public Config.
func newInternalConfig(cfg Config) *internalConfig {
	modelInfo := GetModelInfo(cfg.Model)

	ic := &internalConfig{
		store:        cfg.Store,
		contextSvc:   cfg.Context,
		model:        cfg.Model,
		systemPrompt: cfg.SystemPrompt,

		// Defaults
		maxTokens:         int64(modelInfo.DefaultMaxTokens),
		thresholds:        contextedit.DefaultThresholds(),
		messageFormat:     "memochat",
		skillRecallLimit:  contextsvc.DefaultSkillSearchLimit,
		maxToolIterations: 10,

		tools: map[string]Tool{},
		hooks: hooks.NewRegistry(),
	}

	if cfg.Client != nil {
		ic.completer = anthropicCompleter{client: cfg.Client}
	}

	return ic
}
