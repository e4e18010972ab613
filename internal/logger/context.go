package logger

import (
	"context"

	"spg-be/internal/utils"

	"go.uber.org/zap"
)

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromCtx returns the global logger annotated with the request id and session user.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	if u, ok := utils.SessionUserFrom(ctx); ok {
		l = l.With(zap.Int64("user_id", u.ID), zap.String("role", u.Role))
		if u.ProviderID > 0 {
			l = l.With(zap.Int64("provider_id", u.ProviderID))
		}
	}
	return l
}
