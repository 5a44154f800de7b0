package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
	"github.com/aselbek/jobboard/internal/transport/http/middleware"
	"github.com/aselbek/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

type applicationUsecaser interface {
	Apply(ctx context.Context, input usecase.ApplyInput) (*domain.Application, error)
	ListMine(ctx context.Context, seekerID string) ([]*domain.Application, error)
	ListForJob(ctx context.Context, jobID, recruiterID string) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id, recruiterID string, status domain.ApplicationStatus) (*domain.Application, error)
	UpdateContent(ctx context.Context, id, seekerID string, input repository.UpdateApplicationInput) (*domain.Application, error)
	Withdraw(ctx context.Context, id, seekerID string) error
}

type ApplicationHandler struct {
	uc     applicationUsecaser
	logger *slog.Logger
}

func NewApplicationHandler(uc applicationUsecaser, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, logger: logger.With("component", "application_handler")}
}

type applicationResponse struct {
	ID            string                   `json:"id"`
	SeekerID      string                   `json:"seekerId"`
	JobID         string                   `json:"jobId"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	ResumeURL     string                   `json:"resumeUrl"`
	CoverLetter   string                   `json:"coverLetter"`
	CustomAnswers map[string]any           `json:"customAnswers"`
	Status        domain.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
	Seeker        *seekerResponse          `json:"seeker,omitempty"`
	Job           *jobSummaryResponse      `json:"job"`
}

type seekerResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Location string   `json:"location,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	Bio      string   `json:"bio,omitempty"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	resp := applicationResponse{
		ID:            a.ID,
		SeekerID:      a.SeekerID,
		JobID:         a.JobID,
		Name:          a.Name,
		Email:         a.Email,
		ResumeURL:     a.ResumeURL,
		CoverLetter:   a.CoverLetter,
		CustomAnswers: a.CustomAnswers,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		Job:           toJobSummary(a.Job),
	}
	if a.Seeker != nil {
		resp.Seeker = &seekerResponse{
			ID:       a.Seeker.ID,
			Name:     a.Seeker.Name,
			Email:    a.Seeker.Email,
			Location: a.Seeker.Location,
			Skills:   a.Seeker.Skills,
			Bio:      a.Seeker.Bio,
		}
	}
	return resp
}

type applyRequest struct {
	JobID         string         `json:"jobId"       binding:"required"`
	Name          string         `json:"name"`
	Email         string         `json:"email"       binding:"omitempty,email"`
	ResumeURL     string         `json:"resumeUrl"   binding:"required"`
	CoverLetter   string         `json:"coverLetter" binding:"required"`
	CustomAnswers map[string]any `json:"customAnswers"`
}

// POST /applications/apply
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.uc.Apply(c.Request.Context(), usecase.ApplyInput{
		SeekerID:      c.GetString(middleware.CtxUserID),
		JobID:         req.JobID,
		Name:          req.Name,
		Email:         req.Email,
		ResumeURL:     req.ResumeURL,
		CoverLetter:   req.CoverLetter,
		CustomAnswers: req.CustomAnswers,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
		case errors.Is(err, domain.ErrAlreadyApplied):
			c.JSON(http.StatusConflict, gin.H{"error": errAlreadyApplied})
		default:
			h.logger.Error("apply for job", "job_id", req.JobID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusCreated, toApplicationResponse(app))
}

// GET /applications/my
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.uc.ListMine(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		h.logger.Error("list my applications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toApplicationResponses(apps))
}

// GET /applications/job/:jobId
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID := c.Param("jobId")

	apps, err := h.uc.ListForJob(c.Request.Context(), jobID, c.GetString(middleware.CtxUserID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
		case errors.Is(err, domain.ErrNotJobOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		default:
			h.logger.Error("list job applications", "job_id", jobID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusOK, toApplicationResponses(apps))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Viewed Interview Shortlisted Rejected Hired Reviewed"`
}

// PUT /applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidStatus})
		return
	}

	app, err := h.uc.UpdateStatus(c.Request.Context(), id,
		c.GetString(middleware.CtxUserID), domain.ApplicationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errApplicationNotFound})
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
		case errors.Is(err, domain.ErrNotJobOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		case errors.Is(err, domain.ErrInvalidApplicationStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidStatus})
		default:
			h.logger.Error("update application status", "application_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusOK, toApplicationResponse(app))
}

type updateApplicationRequest struct {
	Name          string         `json:"name"        binding:"required"`
	Email         string         `json:"email"       binding:"required,email"`
	ResumeURL     string         `json:"resumeUrl"   binding:"required"`
	CoverLetter   string         `json:"coverLetter" binding:"required"`
	CustomAnswers map[string]any `json:"customAnswers"`
}

// PUT /applications/:id — the five editable fields are overwritten
// wholesale, so the request requires all of them.
func (h *ApplicationHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.uc.UpdateContent(c.Request.Context(), id, c.GetString(middleware.CtxUserID),
		repository.UpdateApplicationInput{
			Name:          req.Name,
			Email:         req.Email,
			ResumeURL:     req.ResumeURL,
			CoverLetter:   req.CoverLetter,
			CustomAnswers: req.CustomAnswers,
		})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errApplicationNotFound})
		case errors.Is(err, domain.ErrNotApplicationOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		default:
			h.logger.Error("update application", "application_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusOK, toApplicationResponse(app))
}

// DELETE /applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.uc.Withdraw(c.Request.Context(), id, c.GetString(middleware.CtxUserID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errApplicationNotFound})
		case errors.Is(err, domain.ErrNotApplicationOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		default:
			h.logger.Error("withdraw application", "application_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}

func toApplicationResponses(apps []*domain.Application) []applicationResponse {
	items := make([]applicationResponse, len(apps))
	for i, a := range apps {
		items[i] = toApplicationResponse(a)
	}
	return items
}
