package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
	"github.com/coursehub/coursehub-server/internal/service"
)

// CourseService owns course videos and their media.
type CourseService interface {
	Upload(ctx context.Context, params service.UploadParams) (model.Video, error)
	Update(ctx context.Context, params service.UpdateParams) (model.Video, error)
	MyCourses(ctx context.Context, ownerID uuid.UUID) ([]model.Video, error)
	AllCourses(ctx context.Context) ([]model.Video, error)
	TopCourses(ctx context.Context) ([]model.Video, error)
	OwnerInfo(ctx context.Context, ownerID uuid.UUID) (model.User, error)
	Delete(ctx context.Context, videoID uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// Course handles the course video endpoints.
type Course struct {
	courseService  CourseService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewCourse(courseService CourseService, contextManager model.ContextManager, logger *logger.Logger) *Course {
	return &Course{
		courseService:  courseService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Upload handles POST /course-upload. Teacher only; multipart with video and
// thumbnail files.
func (h *Course) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	if user.Role != model.RoleTeacher {
		respondError(w, http.StatusForbidden, "only teachers can upload courses")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	video, videoOK := formFile(r, "video")
	thumbnail, thumbnailOK := formFile(r, "thumbnail")
	if !videoOK || !thumbnailOK {
		if videoOK {
			video.file.Close()
		}
		if thumbnailOK {
			thumbnail.file.Close()
		}
		respondError(w, http.StatusBadRequest, "video and thumbnail files are required")
		return
	}
	defer video.file.Close()
	defer thumbnail.file.Close()

	created, err := h.courseService.Upload(r.Context(), service.UploadParams{
		OwnerID:     user.ID,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Video: model.FileUpload{
			Reader:      video.file,
			Size:        video.header.Size,
			ContentType: video.header.Header.Get("Content-Type"),
		},
		Thumbnail: model.FileUpload{
			Reader:      thumbnail.file,
			Size:        thumbnail.header.Size,
			ContentType: thumbnail.header.Header.Get("Content-Type"),
		},
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusCreated, toVideoResponse(created), "course uploaded successfully")
}

// Update handles POST /course-update. Multipart; every field besides the
// video id is optional.
func (h *Course) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.contextManager.GetUserFromContext(r.Context()); !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	videoID, err := uuid.Parse(r.FormValue("videoId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	params := service.UpdateParams{VideoID: videoID}
	if title := r.FormValue("title"); title != "" {
		params.Title = &title
	}
	if description := r.FormValue("description"); description != "" {
		params.Description = &description
	}
	if upload, ok := formFile(r, "video"); ok {
		defer upload.file.Close()
		params.Video = &model.FileUpload{
			Reader:      upload.file,
			Size:        upload.header.Size,
			ContentType: upload.header.Header.Get("Content-Type"),
		}
	}
	if upload, ok := formFile(r, "thumbnail"); ok {
		defer upload.file.Close()
		params.Thumbnail = &model.FileUpload{
			Reader:      upload.file,
			Size:        upload.header.Size,
			ContentType: upload.header.Header.Get("Content-Type"),
		}
	}

	updated, err := h.courseService.Update(r.Context(), params)
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toVideoResponse(updated), "course updated successfully")
}

// MyCourses handles POST /my-courses. Lists the caller's own uploads.
func (h *Course) MyCourses(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	videos, err := h.courseService.MyCourses(r.Context(), user.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toVideoResponses(videos), "courses fetched successfully")
}

// AllCourses handles POST /all-courses.
func (h *Course) AllCourses(w http.ResponseWriter, r *http.Request) {
	videos, err := h.courseService.AllCourses(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toVideoResponses(videos), "courses fetched successfully")
}

// TopCourses handles POST /top-courses.
func (h *Course) TopCourses(w http.ResponseWriter, r *http.Request) {
	videos, err := h.courseService.TopCourses(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toVideoResponses(videos), "top courses fetched successfully")
}

type ownerRequest struct {
	OwnerID uuid.UUID `json:"ownerId"`
}

// Videos handles POST /videos. Lists one owner's uploads.
func (h *Course) Videos(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OwnerID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	videos, err := h.courseService.MyCourses(r.Context(), req.OwnerID)
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toVideoResponses(videos), "videos fetched successfully")
}

// OwnerInfo handles POST /username. Returns a course owner's public profile.
func (h *Course) OwnerInfo(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OwnerID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	user, err := h.courseService.OwnerInfo(r.Context(), req.OwnerID)
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toUserResponse(user), "owner fetched successfully")
}

type videoRequest struct {
	VideoID uuid.UUID `json:"videoId"`
}

// DeleteVideo handles POST /delete-video.
func (h *Course) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VideoID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	if err := h.courseService.Delete(r.Context(), req.VideoID); err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, nil, "video deleted successfully")
}

// DeleteTeacherVideos handles POST /delete-teacher-videos.
func (h *Course) DeleteTeacherVideos(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OwnerID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	if err := h.courseService.DeleteByOwner(r.Context(), req.OwnerID); err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, nil, "videos deleted successfully")
}

// VideoCount handles POST /video-count.
func (h *Course) VideoCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.courseService.Count(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, map[string]int64{"count": count}, "video count fetched successfully")
}
