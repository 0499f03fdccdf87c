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

func TestCommunity_AddComment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	videoID := uuid.New()

	comments := &servermocks.CommentStore{}
	users := &servermocks.UserStore{}

	users.On("GetByID", ctx, userID).Return(model.User{
		ID:        userID,
		Username:  "student",
		AvatarURL: "https://cdn/avatars/s",
	}, nil).Once()
	comments.On("Create", ctx, mock.MatchedBy(func(c model.Comment) bool {
		return c.VideoID == videoID &&
			c.UserID == userID &&
			c.Username == "student" &&
			c.UserAvatar == "https://cdn/avatars/s" &&
			c.Body == "great course"
	})).Return(model.Comment{ID: uuid.New(), Body: "great course"}, nil).Once()

	svc := service.NewCommunity(comments, &servermocks.FeedbackStore{}, users, testutil.MakeNoopLogger())

	created, err := svc.AddComment(ctx, userID, videoID, "  great course ")
	require.NoError(t, err)
	assert.Equal(t, "great course", created.Body)
}

func TestCommunity_AddComment_Empty(t *testing.T) {
	svc := service.NewCommunity(&servermocks.CommentStore{}, &servermocks.FeedbackStore{}, &servermocks.UserStore{}, testutil.MakeNoopLogger())

	_, err := svc.AddComment(context.Background(), uuid.New(), uuid.New(), "   ")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestCommunity_Comments(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.New()

	comments := &servermocks.CommentStore{}

	comments.On("ListByVideo", ctx, videoID).Return([]model.Comment{{Body: "a"}, {Body: "b"}}, nil).Once()

	svc := service.NewCommunity(comments, &servermocks.FeedbackStore{}, &servermocks.UserStore{}, testutil.MakeNoopLogger())

	got, err := svc.Comments(ctx, videoID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCommunity_AddFeedback(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	feedback := &servermocks.FeedbackStore{}
	users := &servermocks.UserStore{}

	users.On("GetByID", ctx, userID).Return(model.User{
		ID:       userID,
		Fullname: "Stu Dent",
		Username: "student",
		Email:    "stu@example.com",
		Role:     model.RoleStudent,
	}, nil).Once()
	feedback.On("Create", ctx, mock.MatchedBy(func(f model.Feedback) bool {
		return f.UserID == userID &&
			f.Username == "student" &&
			f.Rating == 5 &&
			f.Body == "loved it"
	})).Return(model.Feedback{ID: uuid.New(), Rating: 5}, nil).Once()

	svc := service.NewCommunity(&servermocks.CommentStore{}, feedback, users, testutil.MakeNoopLogger())

	created, err := svc.AddFeedback(ctx, userID, 5, "loved it")
	require.NoError(t, err)
	assert.Equal(t, 5, created.Rating)
}

func TestCommunity_AddFeedback_RatingOutOfRange(t *testing.T) {
	svc := service.NewCommunity(&servermocks.CommentStore{}, &servermocks.FeedbackStore{}, &servermocks.UserStore{}, testutil.MakeNoopLogger())

	_, err := svc.AddFeedback(context.Background(), uuid.New(), 6, "too good")
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.AddFeedback(context.Background(), uuid.New(), 0, "meh")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestCommunity_AllFeedback(t *testing.T) {
	ctx := context.Background()

	feedback := &servermocks.FeedbackStore{}

	feedback.On("ListLatest", ctx, 5).Return([]model.Feedback{{Rating: 4}}, nil).Once()

	svc := service.NewCommunity(&servermocks.CommentStore{}, feedback, &servermocks.UserStore{}, testutil.MakeNoopLogger())

	got, err := svc.AllFeedback(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
