package model

import "github.com/google/uuid"

// TokenManager generates and validates access/refresh tokens. The two kinds
// are signed with distinct secrets and carry a kind marker, so one can never
// verify as the other.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID, role Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
	ParseRefreshToken(token string) (uuid.UUID, error)
}
