package session

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"idento/internal/common/security"
	"idento/internal/domain/model"
)

// Manager issues, resolves, and revokes sessions. Session evidence is a
// signed JWT carried in a cookie; the manager only trusts a token whose
// session id is still present in the Store.
type Manager struct {
	tokenAuth *jwtauth.JWTAuth
	store     Store
	ttl       time.Duration
}

func NewManager(secret []byte, ttl time.Duration, store Store) *Manager {
	return &Manager{
		tokenAuth: security.NewTokenAuth(secret),
		store:     store,
		ttl:       ttl,
	}
}

// TokenAuth exposes the verifier for the router's jwtauth middleware.
func (m *Manager) TokenAuth() *jwtauth.JWTAuth { return m.tokenAuth }

// TTL is the session lifetime, also used as the cookie max-age.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue registers a new session for the user and returns the signed
// token to be set as the session cookie.
func (m *Manager) Issue(ctx context.Context, user *model.User) (string, error) {
	sid := uuid.NewString()
	if err := m.store.Put(ctx, sid, user.ID, m.ttl); err != nil {
		return "", err
	}
	return security.EncodeSessionToken(m.tokenAuth, sid, user.ID, string(user.Role), user.Email, user.Name, m.ttl)
}

// Revoke removes the session from the registry. Always succeeds for
// unknown ids.
func (m *Manager) Revoke(ctx context.Context, sid string) error {
	return m.store.Delete(ctx, sid)
}

// Resolve turns the jwtauth-verified claims on the context into an
// identity. Every failure mode (missing cookie, bad signature, expired
// token, malformed claims, revoked session) resolves to anonymous,
// never an error.
func (m *Manager) Resolve(ctx context.Context) (Identity, bool) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return Identity{}, false
	}

	sid, err := security.GetSessionIDFromClaims(claims)
	if err != nil {
		return Identity{}, false
	}
	userID, err := security.GetUserIDFromClaims(claims)
	if err != nil {
		return Identity{}, false
	}
	roleStr, err := security.GetUserRoleFromClaims(claims)
	if err != nil {
		return Identity{}, false
	}
	role, err := model.ParseRole(roleStr)
	if err != nil {
		return Identity{}, false
	}

	active, err := m.store.Exists(ctx, sid)
	if err != nil || !active {
		return Identity{}, false
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return Identity{
		SessionID: sid,
		UserID:    userID,
		Email:     email,
		Name:      name,
		Role:      role,
	}, true
}
