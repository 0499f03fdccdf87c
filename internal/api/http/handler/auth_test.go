package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

func newAuthHandler(t *testing.T) (*Auth, *mocks.AuthService, *mocks.TokenService) {
	authService := mocks.NewAuthService(t)
	tokenService := mocks.NewTokenService(t)
	h := NewAuth(
		authService,
		tokenService,
		httpctx.NewManager(),
		cookies.NewManager(false, ""),
		15*time.Minute,
		720*time.Hour,
		testutil.MakeNoopLogger(),
	)
	return h, authService, tokenService
}

func withUser(r *http.Request, user model.User) *http.Request {
	ctx := httpctx.NewManager().SetUserToContext(r.Context(), user)
	return r.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestAuth_Login_Success(t *testing.T) {
	h, authService, _ := newAuthHandler(t)

	userID := uuid.New()
	authService.On("Login", mock.Anything, "student", "pw").
		Return(model.User{ID: userID, Username: "student", Role: model.RoleStudent}, "access", "refresh", nil).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"student","password":"pw"}`))

	h.Login(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)

	names := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		names[c.Name] = true
	}
	assert.True(t, names[cookies.AccessTokenCookie])
	assert.True(t, names[cookies.RefreshTokenCookie])
	assert.True(t, names[cookies.RoleCookie])

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, float64(http.StatusOK), envelope["statusCode"])
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	h, authService, _ := newAuthHandler(t)

	authService.On("Login", mock.Anything, "ghost", "pw").
		Return(model.User{}, "", "", model.ErrNotFound).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"ghost","password":"pw"}`))

	h.Login(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	h, authService, _ := newAuthHandler(t)

	authService.On("Login", mock.Anything, "student", "bad").
		Return(model.User{}, "", "", model.ErrInvalidCredentials).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"student","password":"bad"}`))

	h.Login(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_Login_BadBody(t *testing.T) {
	h, _, _ := newAuthHandler(t)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))

	h.Login(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_RefreshToken_FromCookie(t *testing.T) {
	h, _, tokenService := newAuthHandler(t)

	tokenService.On("Refresh", mock.Anything, "old-refresh").
		Return("new-access", "new-refresh", nil).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	r.AddCookie(&http.Cookie{Name: cookies.RefreshTokenCookie, Value: "old-refresh"})

	h.RefreshToken(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)

	var refreshed bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookies.RefreshTokenCookie && c.Value == "new-refresh" {
			refreshed = true
		}
	}
	assert.True(t, refreshed)
}

func TestAuth_RefreshToken_FromBody(t *testing.T) {
	h, _, tokenService := newAuthHandler(t)

	tokenService.On("Refresh", mock.Anything, "body-refresh").
		Return("new-access", "new-refresh", nil).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/refresh-token", strings.NewReader(`{"refreshToken":"body-refresh"}`))

	h.RefreshToken(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_RefreshToken_Missing(t *testing.T) {
	h, _, _ := newAuthHandler(t)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/refresh-token", strings.NewReader("{}"))

	h.RefreshToken(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RefreshToken_Reused(t *testing.T) {
	h, _, tokenService := newAuthHandler(t)

	tokenService.On("Refresh", mock.Anything, "stolen").
		Return("", "", model.ErrTokenReused).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	r.AddCookie(&http.Cookie{Name: cookies.RefreshTokenCookie, Value: "stolen"})

	h.RefreshToken(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RefreshToken_Expired(t *testing.T) {
	h, _, tokenService := newAuthHandler(t)

	tokenService.On("Refresh", mock.Anything, "stale").
		Return("", "", model.ErrTokenExpired).Once()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	r.AddCookie(&http.Cookie{Name: cookies.RefreshTokenCookie, Value: "stale"})

	h.RefreshToken(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_Logout(t *testing.T) {
	h, authService, _ := newAuthHandler(t)

	user := model.User{ID: uuid.New(), Role: model.RoleStudent}
	authService.On("Logout", mock.Anything, user.ID).Return(nil).Once()

	rec := httptest.NewRecorder()
	r := withUser(httptest.NewRequest(http.MethodPost, "/logout", nil), user)

	h.Logout(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestAuth_Logout_Unauthenticated(t *testing.T) {
	h, _, _ := newAuthHandler(t)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)

	h.Logout(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ChangePassword_WrongOld(t *testing.T) {
	h, authService, _ := newAuthHandler(t)

	user := model.User{ID: uuid.New()}
	authService.On("ChangePassword", mock.Anything, user.ID, "bad", "new").
		Return(model.ErrInvalidCredentials).Once()

	rec := httptest.NewRecorder()
	r := withUser(httptest.NewRequest(http.MethodPost, "/change-password",
		strings.NewReader(`{"oldPassword":"bad","newPassword":"new"}`)), user)

	h.ChangePassword(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_ChangePassword_Success(t *testing.T) {
	h, authService, _ := newAuthHandler(t)

	user := model.User{ID: uuid.New()}
	authService.On("ChangePassword", mock.Anything, user.ID, "old", "new").Return(nil).Once()

	rec := httptest.NewRecorder()
	r := withUser(httptest.NewRequest(http.MethodPost, "/change-password",
		strings.NewReader(`{"oldPassword":"old","newPassword":"new"}`)), user)

	h.ChangePassword(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestAuth_UserDetails(t *testing.T) {
	h, _, _ := newAuthHandler(t)

	user := model.User{ID: uuid.New(), Username: "student", Email: "s@example.com"}

	rec := httptest.NewRecorder()
	r := withUser(httptest.NewRequest(http.MethodPost, "/user-details", nil), user)

	h.UserDetails(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "student")
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "refreshTokenHash")
}
