package utils

import "context"

type sessionKey struct{}

// SessionUser is the authenticated caller attached to a request context.
// ProviderID is zero unless the user is a farmer with a provider record.
type SessionUser struct {
	ID         int64
	Email      string
	Role       string
	ProviderID int64
}

func WithSessionUser(ctx context.Context, u SessionUser) context.Context {
	return context.WithValue(ctx, sessionKey{}, u)
}

func SessionUserFrom(ctx context.Context) (SessionUser, bool) {
	u, ok := ctx.Value(sessionKey{}).(SessionUser)
	return u, ok && u.ID > 0
}

func UserIDFrom(ctx context.Context) (int64, bool) {
	u, ok := SessionUserFrom(ctx)
	return u.ID, ok
}

// ProviderIDFrom reports the provider of a farmer session.
func ProviderIDFrom(ctx context.Context) (int64, bool) {
	u, ok := SessionUserFrom(ctx)
	return u.ProviderID, ok && u.ProviderID > 0
}
