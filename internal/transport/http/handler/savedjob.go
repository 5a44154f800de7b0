package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

type savedJobUsecaser interface {
	Save(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error)
	Unsave(ctx context.Context, seekerID, jobID string) error
	ListSaved(ctx context.Context, seekerID string) ([]*domain.SavedJob, error)
	IsSaved(ctx context.Context, seekerID, jobID string) (bool, error)
}

type SavedJobHandler struct {
	uc     savedJobUsecaser
	logger *slog.Logger
}

func NewSavedJobHandler(uc savedJobUsecaser, logger *slog.Logger) *SavedJobHandler {
	return &SavedJobHandler{uc: uc, logger: logger.With("component", "saved_job_handler")}
}

type savedJobResponse struct {
	ID        string              `json:"id"`
	SeekerID  string              `json:"seekerId"`
	JobID     string              `json:"jobId"`
	CreatedAt time.Time           `json:"createdAt"`
	Job       *jobSummaryResponse `json:"job"` // null when the posting was deleted
}

func toSavedJobResponse(sj *domain.SavedJob) savedJobResponse {
	return savedJobResponse{
		ID:        sj.ID,
		SeekerID:  sj.SeekerID,
		JobID:     sj.JobID,
		CreatedAt: sj.CreatedAt,
		Job:       toJobSummary(sj.Job),
	}
}

type saveJobRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// POST /saved-jobs/save
func (h *SavedJobHandler) Save(c *gin.Context) {
	var req saveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.uc.Save(c.Request.Context(), c.GetString(middleware.CtxUserID), req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
		case errors.Is(err, domain.ErrJobAlreadySaved):
			c.JSON(http.StatusConflict, gin.H{"error": errJobAlreadySaved})
		default:
			h.logger.Error("save job", "job_id", req.JobID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusCreated, toSavedJobResponse(saved))
}

// DELETE /saved-jobs/unsave/:jobId
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	jobID := c.Param("jobId")

	err := h.uc.Unsave(c.Request.Context(), c.GetString(middleware.CtxUserID), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrSavedJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSavedJobNotFound})
			return
		}
		h.logger.Error("unsave job", "job_id", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job removed from saved jobs"})
}

// GET /saved-jobs/my
func (h *SavedJobHandler) ListMine(c *gin.Context) {
	saved, err := h.uc.ListSaved(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		h.logger.Error("list saved jobs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]savedJobResponse, len(saved))
	for i, sj := range saved {
		items[i] = toSavedJobResponse(sj)
	}
	c.JSON(http.StatusOK, items)
}

// GET /saved-jobs/check/:jobId — reports false for unknown jobs rather
// than failing.
func (h *SavedJobHandler) Check(c *gin.Context) {
	jobID := c.Param("jobId")

	saved, err := h.uc.IsSaved(c.Request.Context(), c.GetString(middleware.CtxUserID), jobID)
	if err != nil {
		h.logger.Error("check saved job", "job_id", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isSaved": saved})
}
