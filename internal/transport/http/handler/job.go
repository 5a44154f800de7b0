package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/transport/http/middleware"
	"github.com/aselbek/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

type jobUsecaser interface {
	ListJobs(ctx context.Context, input usecase.ListJobsInput) (usecase.ListJobsResult, error)
	ListRecruiterJobs(ctx context.Context, recruiterID string) ([]*domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	CreateJob(ctx context.Context, input usecase.CreateJobInput) (*domain.Job, error)
	UpdateJob(ctx context.Context, id, recruiterID string, input usecase.UpdateJobInput) (*domain.Job, error)
	DeleteJob(ctx context.Context, id, recruiterID string) error
}

type JobHandler struct {
	uc     jobUsecaser
	logger *slog.Logger
}

func NewJobHandler(uc jobUsecaser, logger *slog.Logger) *JobHandler {
	return &JobHandler{uc: uc, logger: logger.With("component", "job_handler")}
}

type jobResponse struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Requirements    string                  `json:"requirements"`
	Company         string                  `json:"company"`
	RecruiterID     string                  `json:"recruiterId"`
	Location        string                  `json:"location"`
	Type            domain.JobType          `json:"type"`
	SalaryRange     domain.SalaryRange      `json:"salaryRange"`
	Tags            []string                `json:"tags"`
	Applicants      []string                `json:"applicants"`
	IsActive        bool                    `json:"isActive"`
	CustomQuestions []domain.CustomQuestion `json:"customQuestions"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	Recruiter       *recruiterResponse      `json:"recruiter,omitempty"`
}

type recruiterResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Website string `json:"website,omitempty"`
}

func toJobResponse(j *domain.Job) jobResponse {
	resp := jobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Company:         j.Company,
		RecruiterID:     j.RecruiterID,
		Location:        j.Location,
		Type:            j.Type,
		SalaryRange:     j.Salary,
		Tags:            j.Tags,
		Applicants:      j.ApplicantIDs,
		IsActive:        j.IsActive,
		CustomQuestions: j.CustomQuestions,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
	if j.Recruiter != nil {
		resp.Recruiter = &recruiterResponse{
			ID:      j.Recruiter.ID,
			Name:    j.Recruiter.Name,
			Company: j.Recruiter.Company,
			Website: j.Recruiter.Website,
		}
	}
	return resp
}

// GET /jobs?search&location&type&minSalary&maxSalary&tags&page&limit
func (h *JobHandler) List(c *gin.Context) {
	input := usecase.ListJobsInput{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
	}
	if v := c.Query("minSalary"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minSalary must be a number"})
			return
		}
		input.MinSalary = &n
	}
	if v := c.Query("maxSalary"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxSalary must be a number"})
			return
		}
		input.MaxSalary = &n
	}
	if v := c.Query("tags"); v != "" {
		for _, tag := range strings.Split(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				input.Tags = append(input.Tags, tag)
			}
		}
	}
	input.Page, _ = strconv.Atoi(c.Query("page"))
	input.Limit, _ = strconv.Atoi(c.Query("limit"))

	result, err := h.uc.ListJobs(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("list jobs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]jobResponse, len(result.Jobs))
	for i, j := range result.Jobs {
		items[i] = toJobResponse(j)
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":        items,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
		"totalJobs":   result.TotalJobs,
	})
}

// GET /recruiter/jobs
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.uc.ListRecruiterJobs(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		h.logger.Error("list recruiter jobs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		items[i] = toJobResponse(j)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": items})
}

// GET /jobs/:id — permalinks keep working for retired postings.
func (h *JobHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	job, err := h.uc.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
			return
		}
		h.logger.Error("get job", "job_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

type createJobRequest struct {
	Title           string                  `json:"title"           binding:"required"`
	Description     string                  `json:"description"     binding:"required"`
	Requirements    string                  `json:"requirements"`
	Company         string                  `json:"company"         binding:"required"`
	Location        string                  `json:"location"        binding:"required"`
	JobType         string                  `json:"jobType"         binding:"required,oneof=full-time part-time contract internship freelance"`
	ExperienceLevel string                  `json:"experienceLevel"`
	SalaryRange     *domain.SalaryRange     `json:"salaryRange"     binding:"required"`
	IsActive        *bool                   `json:"isActive"`
	CustomQuestions []domain.CustomQuestion `json:"customQuestions"`
}

// POST /jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.uc.CreateJob(c.Request.Context(), usecase.CreateJobInput{
		RecruiterID:     c.GetString(middleware.CtxUserID),
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Company:         req.Company,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Salary:          *req.SalaryRange,
		IsActive:        req.IsActive,
		CustomQuestions: req.CustomQuestions,
	})
	if err != nil {
		h.logger.Error("create job", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusCreated, toJobResponse(job))
}

type updateJobRequest struct {
	Title           *string                 `json:"title"`
	Description     *string                 `json:"description"`
	Requirements    *string                 `json:"requirements"`
	Company         *string                 `json:"company"`
	Location        *string                 `json:"location"`
	JobType         *string                 `json:"jobType"         binding:"omitempty,oneof=full-time part-time contract internship freelance"`
	ExperienceLevel *string                 `json:"experienceLevel"`
	SalaryRange     *domain.SalaryRange     `json:"salaryRange"`
	IsActive        *bool                   `json:"isActive"`
	CustomQuestions []domain.CustomQuestion `json:"customQuestions"`
}

// PUT /jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.uc.UpdateJob(c.Request.Context(), id, c.GetString(middleware.CtxUserID), usecase.UpdateJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Company:         req.Company,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Salary:          req.SalaryRange,
		IsActive:        req.IsActive,
		CustomQuestions: req.CustomQuestions,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
		case errors.Is(err, domain.ErrNotJobOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		default:
			h.logger.Error("update job", "job_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusOK, toJobResponse(job))
}

// DELETE /jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.uc.DeleteJob(c.Request.Context(), id, c.GetString(middleware.CtxUserID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
		case errors.Is(err, domain.ErrNotJobOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		default:
			h.logger.Error("delete job", "job_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
