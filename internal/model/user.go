package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the platform role of a user.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// UserUpdate describes a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Fullname  *string
	Email     *string
	AvatarURL *string
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// SetRefreshToken unconditionally replaces the stored refresh token
	// digest. A nil digest clears the session (logout).
	SetRefreshToken(ctx context.Context, id uuid.UUID, digest []byte) error
	// RotateRefreshToken replaces the stored digest only if it still equals
	// oldDigest. Returns ErrTokenReused when the stored value has already
	// moved on, so at most one of two concurrent rotations can succeed.
	RotateRefreshToken(ctx context.Context, id uuid.UUID, oldDigest, newDigest []byte) error
	ListByRole(ctx context.Context, role Role) ([]User, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored platform user with credential material.
// PasswordHash and RefreshTokenHash must never leave the server.
type User struct {
	ID               uuid.UUID
	Username         string
	Email            string
	Fullname         string
	AvatarURL        string
	PasswordHash     string
	Role             Role
	RefreshTokenHash []byte
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Sanitized returns a copy with credential material stripped, safe to
// attach to a request context or serialize into a response.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.RefreshTokenHash = nil
	return u
}
