package memochat

// Logger is the structured logging interface used across MemoChat.
// log/slog satisfies it. A nil logger disables logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// logWarn logs through the configured logger when one is set.
func (c *Client) logWarn(msg string, args ...any) {
	if c.config.logger != nil {
		c.config.logger.Warn(msg, args...)
	}
}

func (c *Client) logDebug(msg string, args ...any) {
	if c.config.logger != nil {
		c.config.logger.Debug(msg, args...)
	}
}
