package memochat

import (
	"fmt"

	"github.com/memochat/memochat/hooks"
)

// Client is the main entry point for MemoChat. It orchestrates session
// metadata, the context service, and the completion service into a chat
// API with automatic context compaction.
type Client struct {
	config *internalConfig
}

// New creates a new Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ic := newInternalConfig(cfg)
	for _, opt := range opts {
		if err := opt(ic); err != nil {
			return nil, err
		}
	}

	if ic.completer == nil {
		return nil, fmt.Errorf("%w: Client or WithCompleter is required", ErrInvalidConfig)
	}

	return &Client{config: ic}, nil
}

// Hooks returns the client's hook registry for registering observers.
func (c *Client) Hooks() *hooks.Registry {
	return c.config.hooks
}
