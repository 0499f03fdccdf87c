package model

import "context"

// ContextManager carries the authenticated user across a request. The stored
// user is always sanitized; credential material never enters the context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user User) context.Context
	GetUserFromContext(ctx context.Context) (User, bool)
}
