package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	G = GetLogger

	// L is an alias for the standard logger.
	L = logrus.NewEntry(logrus.StandardLogger())
)

type (
	loggerKey struct{}
)

// Configure sets the output and level of the standard logger. Catalog output
// goes to stdout, so logs are expected on stderr.
func Configure(out io.Writer, verbose bool) {
	L.Logger.SetOutput(out)
	L.Logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !verbose})
	if verbose {
		L.Logger.SetLevel(logrus.DebugLevel)
		return
	}
	L.Logger.SetLevel(logrus.InfoLevel)
}

// WithLogger returns a new context with the provided logger. Use in
// combination with logger.WithField(s) for great effect.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithField is a shorthand for WithLogger(ctx, G(ctx).WithField(key, value)).
func WithField(ctx context.Context, key string, value interface{}) context.Context {
	return WithLogger(ctx, G(ctx).WithField(key, value))
}

// GetLogger retrieves the current logger from the context. If no logger is
// available, the default logger is returned.
func GetLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(loggerKey{})

	if logger == nil {
		return L
	}

	return logger.(*logrus.Entry)
}
