package httpctx

import (
	"context"

	"github.com/coursehub/coursehub-server/internal/model"
)

type contextKey string

// userKey is the context key under which the authenticated user is stored.
const userKey contextKey = "user"

// Manager stores and retrieves the authenticated user on a request context.
// Only sanitized users are attached; credential material never rides along.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a child context carrying the sanitized user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user.Sanitized())
}

// GetUserFromContext retrieves the authenticated user from the context.
// The boolean reports whether a user was attached.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
