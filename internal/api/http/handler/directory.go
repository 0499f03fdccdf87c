package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
)

// DirectoryService owns the user population views.
type DirectoryService interface {
	Students(ctx context.Context) ([]model.User, error)
	Teachers(ctx context.Context) ([]model.User, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error
	DeleteTeacher(ctx context.Context, id uuid.UUID) error
	StudentCount(ctx context.Context) (int64, error)
	TeacherCount(ctx context.Context) (int64, error)
}

// Directory handles the user listing and removal endpoints.
type Directory struct {
	directoryService DirectoryService
	logger           *logger.Logger
}

func NewDirectory(directoryService DirectoryService, logger *logger.Logger) *Directory {
	return &Directory{
		directoryService: directoryService,
		logger:           logger,
	}
}

// AllStudents handles POST /all-students.
func (h *Directory) AllStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.directoryService.Students(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toUserResponses(students), "students fetched successfully")
}

// AllTeachers handles POST /all-teachers.
func (h *Directory) AllTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.directoryService.Teachers(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, toUserResponses(teachers), "teachers fetched successfully")
}

type userRequest struct {
	UserID uuid.UUID `json:"userId"`
}

// DeleteStudent handles POST /delete-student.
func (h *Directory) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.directoryService.DeleteStudent(r.Context(), req.UserID); err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, nil, "student deleted successfully")
}

// DeleteTeacher handles POST /delete-teacher. Owned courses go with the
// account.
func (h *Directory) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.directoryService.DeleteTeacher(r.Context(), req.UserID); err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, nil, "teacher deleted successfully")
}

// StudentCount handles POST /student-count.
func (h *Directory) StudentCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.directoryService.StudentCount(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, map[string]int64{"count": count}, "student count fetched successfully")
}

// TeacherCount handles POST /teacher-count.
func (h *Directory) TeacherCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.directoryService.TeacherCount(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respond(w, http.StatusOK, map[string]int64{"count": count}, "teacher count fetched successfully")
}
