package session

import (
	"context"

	"idento/internal/domain/model"
)

// Identity is the resolved authentication result of a request. The zero
// value is the anonymous identity.
type Identity struct {
	SessionID string
	UserID    int64
	Email     string
	Name      string
	Role      model.Role
}

// IsAuthenticated reports whether the identity belongs to a logged-in user.
func (id Identity) IsAuthenticated() bool {
	return id.UserID != 0
}

type contextKey string

const identityCtxKey contextKey = "idento.identity"

// WithIdentity attaches a resolved identity to the request context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, id)
}

// IdentityFrom returns the identity attached to the context. ok is false
// for anonymous requests.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey).(Identity)
	return id, ok && id.IsAuthenticated()
}
