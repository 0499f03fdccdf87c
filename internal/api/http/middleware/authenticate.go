package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/api/http/cookies"
	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// UserService loads the identity behind a verified token.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Authenticate validates access tokens and attaches the sanitized user to
// the request context. The Authorization header wins over the cookie.
type Authenticate struct {
	tokenService   TokenService
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	tokenService TokenService,
	userService UserService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokenService:   tokenService,
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handler wraps next with access token authentication.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			tokenString = cookies.AccessToken(r)
		}

		user, err := m.authenticateUser(r.Context(), tokenString)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"statusCode":401,"message":"not authenticated","success":false}`))
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (model.User, error) {
	if tokenString == "" {
		return model.User{}, model.ErrTokenInvalid
	}

	userID, err := m.tokenService.GetUserID(ctx, tokenString)
	if err != nil {
		return model.User{}, err
	}
	if userID == uuid.Nil {
		return model.User{}, model.ErrTokenInvalid
	}

	user, err := m.userService.GetByID(ctx, userID)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token for unknown user",
			"user_id", userID)
		return model.User{}, model.ErrTokenInvalid
	}

	return user, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
