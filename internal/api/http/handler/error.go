package handler

import (
	"errors"
	"net/http"

	"github.com/coursehub/coursehub-server/internal/model"
)

// handleError maps service errors onto HTTP status codes. Everything
// unrecognized is a 500 with a generic message; internals never leak.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrDuplicateUser):
		respondError(w, http.StatusBadRequest, "username or email already taken")
	case errors.Is(err, model.ErrNotFound):
		respondError(w, http.StatusBadRequest, "not found")
	case errors.Is(err, model.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, model.ErrTokenExpired):
		respondError(w, http.StatusUnauthorized, "token expired")
	case errors.Is(err, model.ErrTokenReused):
		respondError(w, http.StatusUnauthorized, "refresh token is no longer valid")
	case errors.Is(err, model.ErrTokenInvalid):
		respondError(w, http.StatusUnauthorized, "invalid token")
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
