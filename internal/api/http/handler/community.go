package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
)

// CommunityService owns comments and platform feedback.
type CommunityService interface {
	AddComment(ctx context.Context, userID, videoID uuid.UUID, text string) (model.Comment, error)
	Comments(ctx context.Context, videoID uuid.UUID) ([]model.Comment, error)
	AddFeedback(ctx context.Context, userID uuid.UUID, rating int, text string) (model.Feedback, error)
	AllFeedback(ctx context.Context) ([]model.Feedback, error)
}

// Community handles the comment and feedback endpoints.
type Community struct {
	communityService CommunityService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

func NewCommunity(communityService CommunityService, contextManager model.ContextManager, logger *logger.Logger) *Community {
	return &Community{
		communityService: communityService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

type setCommentRequest struct {
	VideoID uuid.UUID `json:"videoId"`
	Body    string    `json:"body"`
}

// SetComment handles POST /set-comment.
func (h *Community) SetComment(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req setCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.communityService.AddComment(r.Context(), user.ID, req.VideoID, req.Body)
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusCreated, toCommentResponse(comment), "comment added successfully")
}

// GetComments handles POST /get-comments. Newest first.
func (h *Community) GetComments(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VideoID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	comments, err := h.communityService.Comments(r.Context(), req.VideoID)
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]commentResponse, len(comments))
	for i, comment := range comments {
		out[i] = toCommentResponse(comment)
	}

	respond(w, http.StatusOK, out, "comments fetched successfully")
}

type setFeedbackRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

// SetFeedback handles POST /set-feedback.
func (h *Community) SetFeedback(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req setFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	feedback, err := h.communityService.AddFeedback(r.Context(), user.ID, req.Rating, req.Body)
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusCreated, toFeedbackResponse(feedback), "feedback recorded successfully")
}

// GetAllFeedback handles POST /get-all-feedback. Latest entries only.
func (h *Community) GetAllFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.communityService.AllFeedback(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	out := make([]feedbackResponse, len(entries))
	for i, entry := range entries {
		out[i] = toFeedbackResponse(entry)
	}

	respond(w, http.StatusOK, out, "feedback fetched successfully")
}
