package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coursehub/coursehub-server/internal/api/http/handler"
	"github.com/coursehub/coursehub-server/internal/api/http/middleware"
	"github.com/coursehub/coursehub-server/internal/logger"
)

// Router assembles the HTTP surface: handlers, middleware and the operational
// endpoints.
type Router struct {
	auth         *handler.Auth
	course       *handler.Course
	community    *handler.Community
	directory    *handler.Directory
	authenticate *middleware.Authenticate
	logging      *middleware.Logging
	logger       *logger.Logger
}

// New creates a new Router instance wiring the handlers and middleware.
func New(
	auth *handler.Auth,
	course *handler.Course,
	community *handler.Community,
	directory *handler.Directory,
	authenticate *middleware.Authenticate,
	logging *middleware.Logging,
	logger *logger.Logger,
) *Router {
	return &Router{
		auth:         auth,
		course:       course,
		community:    community,
		directory:    directory,
		authenticate: authenticate,
		logging:      logging,
		logger:       logger,
	}
}

// Handler builds the chi route tree.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(rt.logging.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/users", func(r chi.Router) {
		// Open endpoints.
		r.Post("/register", rt.auth.Register)
		r.Post("/login", rt.auth.Login)
		r.Post("/refresh-token", rt.auth.RefreshToken)
		r.Post("/all-courses", rt.course.AllCourses)
		r.Post("/top-courses", rt.course.TopCourses)
		r.Post("/videos", rt.course.Videos)
		r.Post("/username", rt.course.OwnerInfo)
		r.Post("/get-comments", rt.community.GetComments)
		r.Post("/get-all-feedback", rt.community.GetAllFeedback)
		r.Post("/all-students", rt.directory.AllStudents)
		r.Post("/all-teachers", rt.directory.AllTeachers)
		r.Post("/delete-student", rt.directory.DeleteStudent)
		r.Post("/delete-teacher", rt.directory.DeleteTeacher)
		r.Post("/delete-video", rt.course.DeleteVideo)
		r.Post("/delete-teacher-videos", rt.course.DeleteTeacherVideos)
		r.Post("/student-count", rt.directory.StudentCount)
		r.Post("/teacher-count", rt.directory.TeacherCount)
		r.Post("/video-count", rt.course.VideoCount)

		// Authenticated endpoints.
		r.Group(func(r chi.Router) {
			r.Use(rt.authenticate.Handler)
			r.Post("/logout", rt.auth.Logout)
			r.Post("/change-password", rt.auth.ChangePassword)
			r.Post("/user-details", rt.auth.UserDetails)
			r.Post("/update-details", rt.auth.UpdateDetails)
			r.Post("/course-upload", rt.course.Upload)
			r.Post("/course-update", rt.course.Update)
			r.Post("/my-courses", rt.course.MyCourses)
			r.Post("/set-comment", rt.community.SetComment)
			r.Post("/set-feedback", rt.community.SetFeedback)
		})
	})

	return r
}
