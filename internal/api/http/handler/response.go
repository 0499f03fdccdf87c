package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/model"
)

// apiResponse is the envelope every successful response is wrapped in.
type apiResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
}

type apiError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func respond(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiError{
		StatusCode: status,
		Message:    message,
		Success:    false,
	})
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Fullname  string    `json:"fullname"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Fullname:  user.Fullname,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func toUserResponses(users []model.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, user := range users {
		out[i] = toUserResponse(user)
	}
	return out
}

type videoResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toVideoResponse(video model.Video) videoResponse {
	return videoResponse{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		Title:        video.Title,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		CreatedAt:    video.CreatedAt,
	}
}

func toVideoResponses(videos []model.Video) []videoResponse {
	out := make([]videoResponse, len(videos))
	for i, video := range videos {
		out[i] = toVideoResponse(video)
	}
	return out
}

type commentResponse struct {
	ID         uuid.UUID `json:"id"`
	VideoID    uuid.UUID `json:"videoId"`
	UserID     uuid.UUID `json:"userId"`
	Username   string    `json:"username"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCommentResponse(comment model.Comment) commentResponse {
	return commentResponse{
		ID:         comment.ID,
		VideoID:    comment.VideoID,
		UserID:     comment.UserID,
		Username:   comment.Username,
		UserAvatar: comment.UserAvatar,
		Body:       comment.Body,
		CreatedAt:  comment.CreatedAt,
	}
}

type feedbackResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Fullname  string     `json:"fullname"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	Body      string     `json:"body"`
	Rating    int        `json:"rating"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toFeedbackResponse(feedback model.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:        feedback.ID,
		UserID:    feedback.UserID,
		Fullname:  feedback.Fullname,
		Username:  feedback.Username,
		Email:     feedback.Email,
		Role:      feedback.Role,
		AvatarURL: feedback.AvatarURL,
		Body:      feedback.Body,
		Rating:    feedback.Rating,
		CreatedAt: feedback.CreatedAt,
	}
}
