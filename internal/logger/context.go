package logger

import (
	"context"
)

// loggerKey is unexported so only this package can set the command logger.
type loggerKey struct{}

// WithLogger returns a copy of ctx carrying l. The CLI middleware stores
// the logger built from the effective config here before any command runs.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored by WithLogger, or the global
// logger when ctx carries none (for example in ExitErrHandler after a
// failed Before chain).
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(Logger); ok && l != nil {
			return l
		}
	}
	return GetLogger()
}
