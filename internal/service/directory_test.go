package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/coursehub/coursehub-server/internal/mocks"
	"github.com/coursehub/coursehub-server/internal/model"
	"github.com/coursehub/coursehub-server/internal/service"
	"github.com/coursehub/coursehub-server/internal/testutil"
)

func newDirectoryService(users *servermocks.UserStore, videos *servermocks.VideoStore, storage *servermocks.Storage) *service.Directory {
	l := testutil.MakeNoopLogger()
	return service.NewDirectory(users, service.NewCourse(videos, users, storage, l), l)
}

func TestDirectory_Students_Sanitized(t *testing.T) {
	ctx := context.Background()

	users := &servermocks.UserStore{}

	users.On("ListByRole", ctx, model.RoleStudent).Return([]model.User{
		{ID: uuid.New(), Username: "a", PasswordHash: "hash", RefreshTokenHash: []byte{1}},
	}, nil).Once()

	svc := newDirectoryService(users, &servermocks.VideoStore{}, &servermocks.Storage{})

	students, err := svc.Students(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Empty(t, students[0].PasswordHash)
	assert.Nil(t, students[0].RefreshTokenHash)
}

func TestDirectory_DeleteStudent(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	users := &servermocks.UserStore{}

	users.On("GetByID", ctx, id).Return(model.User{ID: id, Role: model.RoleStudent}, nil).Once()
	users.On("Delete", ctx, id).Return(nil).Once()

	svc := newDirectoryService(users, &servermocks.VideoStore{}, &servermocks.Storage{})

	require.NoError(t, svc.DeleteStudent(ctx, id))
}

func TestDirectory_DeleteStudent_RoleMismatch(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	users := &servermocks.UserStore{}

	users.On("GetByID", ctx, id).Return(model.User{ID: id, Role: model.RoleTeacher}, nil).Once()

	svc := newDirectoryService(users, &servermocks.VideoStore{}, &servermocks.Storage{})

	err := svc.DeleteStudent(ctx, id)
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestDirectory_DeleteStudent_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	users := &servermocks.UserStore{}

	users.On("GetByID", ctx, id).Return(model.User{}, model.ErrNotFound).Once()

	svc := newDirectoryService(users, &servermocks.VideoStore{}, &servermocks.Storage{})

	err := svc.DeleteStudent(ctx, id)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestDirectory_DeleteTeacher_RemovesCourses(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	videoID := uuid.New()

	users := &servermocks.UserStore{}
	videos := &servermocks.VideoStore{}
	storage := &servermocks.Storage{}

	videos.On("ListByOwner", ctx, id).Return([]model.Video{{ID: videoID, OwnerID: id}}, nil).Once()
	videos.On("Delete", ctx, videoID).Return(nil).Once()
	storage.On("Delete", ctx, mock.Anything).Return(nil).Twice()
	users.On("GetByID", ctx, id).Return(model.User{ID: id, Role: model.RoleTeacher}, nil).Once()
	users.On("Delete", ctx, id).Return(nil).Once()

	svc := newDirectoryService(users, videos, storage)

	require.NoError(t, svc.DeleteTeacher(ctx, id))
}

func TestDirectory_Counts(t *testing.T) {
	ctx := context.Background()

	users := &servermocks.UserStore{}

	users.On("CountByRole", ctx, model.RoleStudent).Return(int64(7), nil).Once()
	users.On("CountByRole", ctx, model.RoleTeacher).Return(int64(2), nil).Once()

	svc := newDirectoryService(users, &servermocks.VideoStore{}, &servermocks.Storage{})

	students, err := svc.StudentCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), students)

	teachers, err := svc.TeacherCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), teachers)
}
