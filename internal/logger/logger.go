package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Request IDs tie the log lines of one HTTP request together. The logging
// middleware generates one per request and stores it on the context; code
// below it retrieves a tagged logger with FromContext.

type contextKey int

const requestIDKey contextKey = iota

// GenerateRequestID returns a fresh request ID.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID stores the request ID on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext reports the request ID carried by ctx, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// FromContext returns the default logger, tagged with the request ID when
// the context carries one.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With("request_id", id)
	}
	return slog.Default()
}
