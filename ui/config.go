package ui

// Default configuration values.
const (
	DefaultPageSize      = 25
	DefaultMaxUploadSize = 10 << 20
)

// Config holds UI package configuration.
type Config struct {
	// ReadOnly disables write operations (chat, session creation).
	// Useful for monitoring-only deployments.
	ReadOnly bool

	// PageSize caps list responses. Defaults to 25.
	PageSize int

	// MaxUploadSize caps file uploads in bytes. Defaults to 10 MiB.
	MaxUploadSize int64

	// Logger for structured logging. If nil, logging is disabled.
	Logger Logger
}

// Logger interface for structured logging. Compatible with memochat.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		PageSize:      DefaultPageSize,
		MaxUploadSize: DefaultMaxUploadSize,
	}
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MaxUploadSize == 0 {
		c.MaxUploadSize = DefaultMaxUploadSize
	}
}

// validate checks the configuration for errors.
func (c *Config) validate() error {
	if c.PageSize < 1 {
		return ErrInvalidConfig
	}
	if c.MaxUploadSize < 1 {
		return ErrInvalidConfig
	}
	return nil
}
