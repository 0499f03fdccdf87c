package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
)

// Directory owns the admin views over the user population.
type Directory struct {
	users   model.UserStore
	courses *Course
	logger  *logger.Logger
}

func NewDirectory(users model.UserStore, courses *Course, logger *logger.Logger) *Directory {
	return &Directory{
		users:   users,
		courses: courses,
		logger:  logger,
	}
}

// Students lists every student account, sanitized.
func (s *Directory) Students(ctx context.Context) ([]model.User, error) {
	return s.listByRole(ctx, model.RoleStudent)
}

// Teachers lists every teacher account, sanitized.
func (s *Directory) Teachers(ctx context.Context) ([]model.User, error) {
	return s.listByRole(ctx, model.RoleTeacher)
}

func (s *Directory) listByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	users, err := s.users.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	sanitized := make([]model.User, len(users))
	for i, user := range users {
		sanitized[i] = user.Sanitized()
	}

	return sanitized, nil
}

// DeleteStudent removes a student account. Any refresh token mirrored on the
// record dies with the row, so outstanding sessions cannot be renewed.
func (s *Directory) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	return s.deleteByRole(ctx, id, model.RoleStudent)
}

// DeleteTeacher removes a teacher account together with every course it owns.
func (s *Directory) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	if err := s.courses.DeleteByOwner(ctx, id); err != nil {
		return fmt.Errorf("failed to delete owned courses: %w", err)
	}
	return s.deleteByRole(ctx, id, model.RoleTeacher)
}

func (s *Directory) deleteByRole(ctx context.Context, id uuid.UUID, role model.Role) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.Role != role {
		return fmt.Errorf("%w: user %s is not a %s", model.ErrValidation, id, role)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("Directory service: user deleted",
		"user_id", id,
		"role", role)

	return nil
}

// StudentCount returns the number of student accounts.
func (s *Directory) StudentCount(ctx context.Context) (int64, error) {
	count, err := s.users.CountByRole(ctx, model.RoleStudent)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// TeacherCount returns the number of teacher accounts.
func (s *Directory) TeacherCount(ctx context.Context) (int64, error) {
	count, err := s.users.CountByRole(ctx, model.RoleTeacher)
	if err != nil {
		return 0, fmt.Errorf("failed to count teachers: %w", err)
	}
	return count, nil
}
