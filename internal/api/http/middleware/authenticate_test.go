package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/coursehub-server/internal/api/http/cookies"
	"github.com/coursehub/coursehub-server/internal/api/http/httpctx"
	"github.com/coursehub/coursehub-server/internal/mocks"
	"github.com/coursehub/coursehub-server/internal/model"
	"github.com/coursehub/coursehub-server/internal/testutil"
)

func newAuthenticate(t *testing.T) (*Authenticate, *mocks.TokenService, *mocks.UserStore) {
	tokenService := mocks.NewTokenService(t)
	userService := mocks.NewUserStore(t)
	m := NewAuthenticate(tokenService, userService, httpctx.NewManager(), testutil.MakeNoopLogger())
	return m, tokenService, userService
}

func nextCapturingUser(contextManager model.ContextManager, got *model.User, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if user, ok := contextManager.GetUserFromContext(r.Context()); ok {
			*got = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_BearerHeader(t *testing.T) {
	m, tokenService, userService := newAuthenticate(t)

	userID := uuid.New()
	tokenService.On("GetUserID", mock.Anything, "valid-token").Return(userID, nil).Once()
	userService.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Username: "student", PasswordHash: "secret"}, nil).Once()

	var got model.User
	var called bool
	handler := m.Handler(nextCapturingUser(httpctx.NewManager(), &got, &called))

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.Header.Set("Authorization", "Bearer valid-token")

	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	assert.Equal(t, userID, got.ID)
	assert.Empty(t, got.PasswordHash)
}

func TestAuthenticate_CookieFallback(t *testing.T) {
	m, tokenService, userService := newAuthenticate(t)

	userID := uuid.New()
	tokenService.On("GetUserID", mock.Anything, "cookie-token").Return(userID, nil).Once()
	userService.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Username: "student"}, nil).Once()

	var got model.User
	var called bool
	handler := m.Handler(nextCapturingUser(httpctx.NewManager(), &got, &called))

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "cookie-token"})

	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
	assert.Equal(t, userID, got.ID)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m, _, _ := newAuthenticate(t)

	var called bool
	handler := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"statusCode":401,"message":"not authenticated","success":false}`, rec.Body.String())
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m, tokenService, _ := newAuthenticate(t)

	tokenService.On("GetUserID", mock.Anything, "garbage").
		Return(uuid.Nil, model.ErrTokenInvalid).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.Header.Set("Authorization", "Bearer garbage")

	m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})).ServeHTTP(rec, r)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	m, tokenService, userService := newAuthenticate(t)

	userID := uuid.New()
	tokenService.On("GetUserID", mock.Anything, "orphan-token").Return(userID, nil).Once()
	userService.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.Header.Set("Authorization", "Bearer orphan-token")

	m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})).ServeHTTP(rec, r)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeaderUsesCookie(t *testing.T) {
	m, tokenService, userService := newAuthenticate(t)

	userID := uuid.New()
	tokenService.On("GetUserID", mock.Anything, "cookie-token").Return(userID, nil).Once()
	userService.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID}, nil).Once()

	var got model.User
	var called bool
	handler := m.Handler(nextCapturingUser(httpctx.NewManager(), &got, &called))

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.Header.Set("Authorization", "NotBearer something")
	r.AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "cookie-token"})

	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}
