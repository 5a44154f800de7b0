package httptransport

import (
	"log/slog"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/transport/http/handler"
	"github.com/aselbek/jobboard/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	SavedJob    *handler.SavedJobHandler
	Message     *handler.MessageHandler
}

func NewRouter(logger *slog.Logger, h Handlers, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(jwtKey)
	recruiterOnly := middleware.RequireRole(domain.RoleRecruiter)
	seekerOnly := middleware.RequireRole(domain.RoleSeeker)

	auth := r.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	users := r.Group("/users", authMW)
	users.GET("/me", h.User.Me)
	users.PUT("/me", h.User.UpdateProfile)
	users.GET("/:id", h.User.GetByID)

	jobs := r.Group("/jobs")
	jobs.GET("", h.Job.List)
	jobs.GET("/:id", h.Job.GetByID)
	jobs.POST("", authMW, recruiterOnly, h.Job.Create)
	jobs.PUT("/:id", authMW, recruiterOnly, h.Job.Update)
	jobs.DELETE("/:id", authMW, recruiterOnly, h.Job.Delete)

	// Lives outside /jobs: gin's tree cannot mix a static segment with
	// the /jobs/:id wildcard.
	r.GET("/recruiter/jobs", authMW, recruiterOnly, h.Job.ListMine)

	applications := r.Group("/applications", authMW)
	applications.POST("/apply", seekerOnly, h.Application.Apply)
	applications.GET("/my", seekerOnly, h.Application.ListMine)
	applications.GET("/job/:jobId", recruiterOnly, h.Application.ListForJob)
	applications.PUT("/:id/status", recruiterOnly, h.Application.UpdateStatus)
	applications.PUT("/:id", seekerOnly, h.Application.Update)
	applications.DELETE("/:id", seekerOnly, h.Application.Delete)

	saved := r.Group("/saved-jobs", authMW, seekerOnly)
	saved.POST("/save", h.SavedJob.Save)
	saved.DELETE("/unsave/:jobId", h.SavedJob.Unsave)
	saved.GET("/my", h.SavedJob.ListMine)
	saved.GET("/check/:jobId", h.SavedJob.Check)

	messages := r.Group("/messages", authMW)
	messages.POST("", h.Message.Send)
	messages.GET("/:userId", h.Message.Thread)
	messages.POST("/:userId/read", h.Message.MarkRead)
	messages.DELETE("/:id", h.Message.Delete)

	return r
}
