package handler

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/api/http/cookies"
	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
	"github.com/coursehub/coursehub-server/internal/service"
)

// maxUploadSize bounds multipart request bodies (course videos included).
const maxUploadSize = 512 << 20

// AuthService owns registration, login and profile management.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.User, error)
	Login(ctx context.Context, username, password string) (model.User, string, string, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	UpdateDetails(ctx context.Context, userID uuid.UUID, params service.UpdateDetailsParams) (model.User, error)
}

// TokenService rotates refresh tokens.
type TokenService interface {
	Refresh(ctx context.Context, presentedRefresh string) (string, string, error)
}

// Auth handles the identity endpoints.
type Auth struct {
	authService    AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	cookieManager  *cookies.Manager
	accessTTL      time.Duration
	refreshTTL     time.Duration
	logger         *logger.Logger
}

func NewAuth(
	authService AuthService,
	tokenService TokenService,
	contextManager model.ContextManager,
	cookieManager *cookies.Manager,
	accessTTL, refreshTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		cookieManager:  cookieManager,
		accessTTL:      accessTTL,
		refreshTTL:     refreshTTL,
		logger:         logger,
	}
}

// Register handles POST /register. Multipart with an optional avatar file.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	params := service.RegisterParams{
		Fullname: r.FormValue("fullname"),
		Email:    r.FormValue("email"),
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
		Role:     model.Role(strings.ToLower(r.FormValue("role"))),
	}

	if upload, ok := formFile(r, "avatar"); ok {
		defer upload.file.Close()
		params.Avatar = &model.FileUpload{
			Reader:      upload.file,
			Size:        upload.header.Size,
			ContentType: upload.header.Header.Get("Content-Type"),
		}
	}

	user, err := h.authService.Register(r.Context(), params)
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusCreated, toUserResponse(user), "user registered successfully")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /login. Sets the session cookies on success.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, access, refresh, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	h.cookieManager.SetSession(w, access, refresh, user.Role, h.accessTTL, h.refreshTTL)

	respond(w, http.StatusOK, map[string]any{
		"user":         toUserResponse(user),
		"accessToken":  access,
		"refreshToken": refresh,
	}, "logged in successfully")
}

// Logout handles POST /logout. Clears the stored refresh token and cookies.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.authService.Logout(r.Context(), user.ID); err != nil {
		handleError(w, err)
		return
	}

	h.cookieManager.ClearSession(w)

	respond(w, http.StatusOK, nil, "logged out successfully")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken handles POST /refresh-token. The token is read from the
// cookie first, then the body. Every failure outcome is a 401.
func (h *Auth) RefreshToken(w http.ResponseWriter, r *http.Request) {
	presented := cookies.RefreshToken(r)
	if presented == "" {
		var req refreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			presented = req.RefreshToken
		}
	}
	if presented == "" {
		respondError(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	access, refresh, err := h.tokenService.Refresh(r.Context(), presented)
	if err != nil {
		handleError(w, err)
		return
	}

	h.cookieManager.SetTokens(w, access, refresh, h.accessTTL, h.refreshTTL)

	respond(w, http.StatusOK, map[string]any{
		"accessToken":  access,
		"refreshToken": refresh,
	}, "tokens refreshed successfully")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ChangePassword handles POST /change-password. A wrong old password is a
// 400, matching the client contract. The session is revoked, so the cookies
// are cleared too.
func (h *Auth) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.ChangePassword(r.Context(), user.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			respondError(w, http.StatusBadRequest, "wrong old password")
			return
		}
		handleError(w, err)
		return
	}

	h.cookieManager.ClearSession(w)

	respond(w, http.StatusOK, nil, "password changed successfully")
}

// UserDetails handles POST /user-details. Returns the caller's own identity.
func (h *Auth) UserDetails(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	respond(w, http.StatusOK, toUserResponse(user), "user details fetched successfully")
}

// UpdateDetails handles POST /update-details. Multipart with optional
// fullname, email and avatar fields.
func (h *Auth) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	params := service.UpdateDetailsParams{}
	if fullname := r.FormValue("fullname"); fullname != "" {
		params.Fullname = &fullname
	}
	if email := r.FormValue("email"); email != "" {
		params.Email = &email
	}
	if upload, ok := formFile(r, "avatar"); ok {
		defer upload.file.Close()
		params.Avatar = &model.FileUpload{
			Reader:      upload.file,
			Size:        upload.header.Size,
			ContentType: upload.header.Header.Get("Content-Type"),
		}
	}

	updated, err := h.authService.UpdateDetails(r.Context(), user.ID, params)
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toUserResponse(updated), "details updated successfully")
}

type fileUpload struct {
	file   multipart.File
	header *multipart.FileHeader
}

func formFile(r *http.Request, field string) (fileUpload, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return fileUpload{}, false
	}
	return fileUpload{file: file, header: header}, true
}
