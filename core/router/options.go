package router

import "log/slog"

// Option configures a Table during creation.
type Option func(*Table)

// WithLogger sets a logger for registration events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}
