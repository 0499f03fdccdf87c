package httpctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/coursehub-server/internal/model"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager()

	user := model.User{ID: uuid.New(), Username: "student", Role: model.RoleStudent}
	ctx := m.SetUserToContext(context.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "student", got.Username)
}

func TestManager_SanitizesOnSet(t *testing.T) {
	m := NewManager()

	user := model.User{
		ID:               uuid.New(),
		PasswordHash:     "hash",
		RefreshTokenHash: []byte{1, 2, 3},
	}
	ctx := m.SetUserToContext(context.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Empty(t, got.PasswordHash)
	assert.Nil(t, got.RefreshTokenHash)
}

func TestManager_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetUserFromContext(context.Background())
	assert.False(t, ok)
}
