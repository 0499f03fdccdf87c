package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/auth"
	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
)

// Auth owns identity registration, secret verification and profile updates.
// Secrets are hashed in exactly one place (Register / ChangePassword); no
// store write hashes implicitly.
type Auth struct {
	users        model.UserStore
	storage      model.Storage
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	users model.UserStore,
	storage model.Storage,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:        users,
		storage:      storage,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterParams carries registration input. Avatar is optional.
type RegisterParams struct {
	Fullname string
	Email    string
	Username string
	Password string
	Role     model.Role
	Avatar   *model.FileUpload
}

// Register creates a new identity. Username and email are case-normalized
// before the uniqueness check and storage; the password is stored only as a
// salted one-way hash.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, error) {
	fullname := strings.TrimSpace(params.Fullname)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	username := strings.ToLower(strings.TrimSpace(params.Username))

	if fullname == "" || email == "" || username == "" || params.Password == "" {
		return model.User{}, fmt.Errorf("%w: all fields are required", model.ErrValidation)
	}
	if !params.Role.Valid() {
		return model.User{}, fmt.Errorf("%w: unknown role", model.ErrValidation)
	}

	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	if err := a.checkAvailable(ctx, username, email); err != nil {
		return model.User{}, err
	}

	passwordHash, err := auth.HashPassword(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		Fullname:     fullname,
		PasswordHash: passwordHash,
		Role:         params.Role,
	}

	if params.Avatar != nil {
		url, err := a.uploadAvatar(ctx, user.ID, *params.Avatar)
		if err != nil {
			return model.User{}, err
		}
		user.AvatarURL = url
	}

	created, err := a.users.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"username", username,
		"user_id", created.ID)

	return created.Sanitized(), nil
}

// Login verifies the secret and issues a token pair. An unknown username
// surfaces ErrNotFound, a wrong secret ErrInvalidCredentials; neither leaks
// more than that.
func (a *Auth) Login(ctx context.Context, username, password string) (model.User, string, string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return model.User{}, "", "", fmt.Errorf("%w: username and password are required", model.ErrValidation)
	}

	user, err := a.users.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", "", model.ErrNotFound
	}
	if err != nil {
		return model.User{}, "", "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		a.logger.Info("Auth service: failed login attempt",
			"username", username)
		return model.User{}, "", "", model.ErrInvalidCredentials
	}

	access, refresh, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		return model.User{}, "", "", fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"username", username,
		"user_id", user.ID)

	return user.Sanitized(), access, refresh, nil
}

// Logout clears the stored refresh token, ending the session.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := a.tokenService.Revoke(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	a.logger.Info("Auth service: user logged out", "user_id", userID)
	return nil
}

// ChangePassword verifies the old secret and replaces the hash. The stored
// refresh token is revoked as well, so outstanding sessions cannot outlive a
// password change; only the access token already in flight remains valid
// until its expiry.
func (a *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: old and new passwords are required", model.ErrValidation)
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, oldPassword); err != nil {
		return model.ErrInvalidCredentials
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := a.tokenService.Revoke(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	a.logger.Info("Auth service: password changed", "user_id", userID)
	return nil
}

// UpdateDetailsParams carries a partial profile update. Nil fields are left
// untouched.
type UpdateDetailsParams struct {
	Fullname *string
	Email    *string
	Avatar   *model.FileUpload
}

// UpdateDetails updates profile fields. An email change re-runs the
// uniqueness check.
func (a *Auth) UpdateDetails(ctx context.Context, userID uuid.UUID, params UpdateDetailsParams) (model.User, error) {
	update := model.UserUpdate{}

	if params.Fullname != nil {
		fullname := strings.TrimSpace(*params.Fullname)
		if fullname != "" {
			update.Fullname = &fullname
		}
	}

	if params.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*params.Email))
		if email != "" {
			existing, err := a.users.GetByEmail(ctx, email)
			if err != nil && !errors.Is(err, model.ErrNotFound) {
				return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
			}
			if existing.ID != uuid.Nil && existing.ID != userID {
				return model.User{}, model.ErrDuplicateUser
			}
			update.Email = &email
		}
	}

	if params.Avatar != nil {
		url, err := a.uploadAvatar(ctx, userID, *params.Avatar)
		if err != nil {
			return model.User{}, err
		}
		update.AvatarURL = &url
	}

	user, err := a.users.Update(ctx, userID, update)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.Sanitized(), nil
}

func (a *Auth) checkAvailable(ctx context.Context, username, email string) error {
	existing, err := a.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by username: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: username already taken",
			"username", username)
		return model.ErrDuplicateUser
	}

	existing, err = a.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already taken",
			"email", email)
		return model.ErrDuplicateUser
	}

	return nil
}

func (a *Auth) uploadAvatar(ctx context.Context, userID uuid.UUID, upload model.FileUpload) (string, error) {
	key := fmt.Sprintf("avatars/%s", userID)
	url, err := a.storage.Upload(ctx, key, upload.Reader, upload.Size, upload.ContentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return url, nil
}
