package model

import "errors"

var (
	// ErrTokenInvalid indicates a token failed signature or shape checks.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired indicates a cryptographically valid token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenReused indicates a refresh token that verified cryptographically
	// but no longer matches the stored value. The token was already rotated
	// once; treat presentation as a possible compromise.
	ErrTokenReused = errors.New("refresh token already used")
)
