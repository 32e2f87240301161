package memochat

import (
	"github.com/memochat/memochat/contextedit"
	"github.com/memochat/memochat/hooks"
)

// Option is a functional option for configuring a Client.
type Option func(*internalConfig) error

// WithMaxTokens sets the maximum number of tokens to generate per completion.
func WithMaxTokens(n int64) Option {
	return func(c *internalConfig) error {
		c.maxTokens = n
		return nil
	}
}

// WithTemperature sets the sampling temperature (0.0 to 1.0).
func WithTemperature(t float64) Option {
	return func(c *internalConfig) error {
		c.temperature = &t
		return nil
	}
}

// WithThresholds overrides the context-edit decision thresholds. Zero fields
// keep their defaults, so a single knob can be changed in isolation.
func WithThresholds(t contextedit.Thresholds) Option {
	return func(c *internalConfig) error {
		t.ApplyDefaults()
		c.thresholds = t
		return nil
	}
}

// WithMessageFormat sets the format requested from the context service's
// retrieval call.
func WithMessageFormat(format string) Option {
	return func(c *internalConfig) error {
		c.messageFormat = format
		return nil
	}
}

// WithSkillRecall enables semantic skill search against the session's space;
// matched skills are appended to the system prompt.
func WithSkillRecall(enabled bool) Option {
	return func(c *internalConfig) error {
		c.skillRecall = enabled
		return nil
	}
}

// WithSkillRecallLimit caps how many skills a recall search may return.
func WithSkillRecallLimit(n int) Option {
	return func(c *internalConfig) error {
		if n <= 0 {
			return NewChatError("WithSkillRecallLimit", ErrInvalidConfig).
				WithContext("n", n).
				WithContext("reason", "must be positive")
		}
		c.skillRecallLimit = n
		return nil
	}
}

// WithTools registers tools with the client.
func WithTools(tools ...Tool) Option {
	return func(c *internalConfig) error {
		for _, t := range tools {
			schema := t.InputSchema()
			if schema.Type != "object" {
				return NewChatError("WithTools", ErrInvalidToolSchema).
					WithContext("tool", t.Name()).
					WithContext("reason", "schema type must be 'object'")
			}
			c.tools[t.Name()] = t
		}
		return nil
	}
}

// WithMaxToolIterations sets the maximum tool-loop iterations per Send
// (default 10).
func WithMaxToolIterations(n int) Option {
	return func(c *internalConfig) error {
		if n <= 0 {
			return NewChatError("WithMaxToolIterations", ErrInvalidConfig).
				WithContext("n", n).
				WithContext("reason", "must be positive")
		}
		c.maxToolIterations = n
		return nil
	}
}

// WithHooks replaces the hook registry.
func WithHooks(registry *hooks.Registry) Option {
	return func(c *internalConfig) error {
		c.hooks = registry
		return nil
	}
}

// WithLogger sets the structured logger. A nil logger disables logging.
func WithLogger(logger Logger) Option {
	return func(c *internalConfig) error {
		c.logger = logger
		return nil
	}
}

// WithCompleter replaces the completion service implementation. Mainly
// useful for tests and alternative backends.
func WithCompleter(completer Completer) Option {
	return func(c *internalConfig) error {
		c.completer = completer
		return nil
	}
}
