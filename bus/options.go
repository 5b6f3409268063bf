package bus

import "log/slog"

// Option configures a Bus at construction time, mirroring
// core/queue/service_options.go's functional-option shape.
type Option func(*Bus)

// WithLogger overrides the Bus's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}
