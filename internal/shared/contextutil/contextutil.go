package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is unexported so keys cannot collide with other packages.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	actorCodeKey contextKey = "actor_code"
	loggerKey    contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithActorCode records the authenticated employee code for tracing. The
// authorization decision itself always uses the explicit CurrentActor
// parameter, never this value.
func WithActorCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, actorCodeKey, code)
}

func GetActorCode(ctx context.Context) string {
	if code, ok := ctx.Value(actorCodeKey).(string); ok {
		return code
	}
	return ""
}

// WithLogger stores a request-scoped zap logger (usually already decorated
// with request_id and actor fields).
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the scoped logger, the fallback, or a nop logger, in
// that order. Never nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}
