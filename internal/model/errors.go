package model

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUser indicates the username or email is already registered.
	ErrDuplicateUser = errors.New("username or email already exists")
	// ErrInvalidCredentials indicates a failed secret check at login or
	// password change.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation indicates a missing or malformed request field.
	ErrValidation = errors.New("validation failed")
)
