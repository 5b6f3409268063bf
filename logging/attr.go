// Package logging provides slog attribute helpers, trimmed from
// core/logger/attr.go down to the keys relevant to a handler worker:
// handler identity, record coordinates, and error chaining. The worker and
// the sinks in this module do not use them; the worker builds its own
// attributes with slog directly.
package logging

import "log/slog"

// Handler returns the attribute pair identifying a handler by name and
// rank.
func Handler(name string, rank int32) slog.Attr {
	return slog.Group("handler", slog.String("name", name), slog.Int("rank", int(rank)))
}

// Record returns the attribute set describing a dispatched record's
// coordinates, for diagnostic logging around ProcessLog failures.
func Record(loggerName string, line int32, filename string) slog.Attr {
	return slog.Group("record",
		slog.String("logger", loggerName),
		slog.Int("line", int(line)),
		slog.String("file", filename),
	)
}

// ChainErr returns the attribute pair for a chained error's code and
// message.
func ChainErr(code, message string) slog.Attr {
	return slog.Group("error", slog.String("code", code), slog.String("message", message))
}

// TID returns the attribute for a captured kernel thread id (spec.md §12).
func TID(tid int32) slog.Attr {
	return slog.Int("tid", int(tid))
}
