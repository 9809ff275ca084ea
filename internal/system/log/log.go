// Package log provides the process-wide structured logger.
package log

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	// LoggerKeyComponentName is the field name used to tag log lines with the emitting component.
	LoggerKeyComponentName = "component"
	// LoggerKeyCorrelationID is the field name used for the request correlation ID.
	LoggerKeyCorrelationID = "correlation_id"
)

type correlationIDKey struct{}

var (
	logger *logrus.Logger
	once   sync.Once
)

// GetLogger returns the shared logger, creating it with JSON output at info level on first use.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	})
	return logger
}

// Init applies the configured level and format to the shared logger.
func Init(level, format string) error {
	l := GetLogger()

	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(parsed)
	}

	switch strings.ToLower(format) {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// WithComponent returns an entry tagged with the given component name.
func WithComponent(name string) *logrus.Entry {
	return GetLogger().WithField(LoggerKeyComponentName, name)
}

// ContextWithCorrelationID stores a correlation ID in the context.
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext enriches entry with the correlation ID carried by ctx, if any.
func FromContext(ctx context.Context, entry *logrus.Entry) *logrus.Entry {
	if id := CorrelationIDFromContext(ctx); id != "" {
		return entry.WithField(LoggerKeyCorrelationID, id)
	}
	return entry
}
