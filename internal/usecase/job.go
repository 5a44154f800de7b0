package usecase

import (
	"context"
	"fmt"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/metrics"
	"github.com/aselbek/jobboard/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type JobUsecase struct {
	repo repository.JobRepository
}

func NewJobUsecase(repo repository.JobRepository) *JobUsecase {
	return &JobUsecase{repo: repo}
}

type ListJobsInput struct {
	Search    string
	Location  string
	Type      string
	MinSalary *int64
	MaxSalary *int64
	Tags      []string
	Page      int
	Limit     int
}

type ListJobsResult struct {
	Jobs        []*domain.Job
	CurrentPage int
	TotalPages  int
	TotalJobs   int
}

// ListJobs serves the public catalog: active postings only, newest first.
func (u *JobUsecase) ListJobs(ctx context.Context, input ListJobsInput) (ListJobsResult, error) {
	page := input.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	jobs, total, err := u.repo.List(ctx, repository.ListJobsInput{
		Search:    input.Search,
		Location:  input.Location,
		Type:      input.Type,
		MinSalary: input.MinSalary,
		MaxSalary: input.MaxSalary,
		Tags:      input.Tags,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return ListJobsResult{}, fmt.Errorf("list jobs: %w", err)
	}

	return ListJobsResult{
		Jobs:        jobs,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
		TotalJobs:   total,
	}, nil
}

// ListRecruiterJobs returns every posting the caller owns, active or not.
func (u *JobUsecase) ListRecruiterJobs(ctx context.Context, recruiterID string) ([]*domain.Job, error) {
	jobs, err := u.repo.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("list recruiter jobs: %w", err)
	}
	return jobs, nil
}

// GetJob resolves a permalink; a retired posting still resolves.
func (u *JobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

type CreateJobInput struct {
	RecruiterID     string
	Title           string
	Description     string
	Requirements    string
	Company         string
	Location        string
	JobType         string // free-form: full-time|part-time|contract|internship|freelance
	ExperienceLevel string
	Salary          domain.SalaryRange
	IsActive        *bool
	CustomQuestions []domain.CustomQuestion
}

func (u *JobUsecase) CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	job := &domain.Job{
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		Company:      input.Company,
		RecruiterID:  input.RecruiterID,
		Location:     input.Location,
		Type:         domain.MapJobType(input.JobType),
		Salary:       input.Salary,
		// The raw jobType string is kept as a tag even though the stored
		// type collapses it.
		Tags:            jobTags(input.ExperienceLevel, input.JobType),
		IsActive:        isActive,
		CustomQuestions: input.CustomQuestions,
	}

	created, err := u.repo.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	metrics.JobsCreatedTotal.Inc()
	return created, nil
}

type UpdateJobInput struct {
	Title           *string
	Description     *string
	Requirements    *string
	Company         *string
	Location        *string
	JobType         *string
	ExperienceLevel *string
	Salary          *domain.SalaryRange
	IsActive        *bool
	CustomQuestions []domain.CustomQuestion
}

// UpdateJob applies a partial update. Only the owning recruiter may call
// it; providing jobType re-runs the type mapping, and providing
// experienceLevel recomputes the tags.
func (u *JobUsecase) UpdateJob(ctx context.Context, id, recruiterID string, input UpdateJobInput) (*domain.Job, error) {
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job.RecruiterID != recruiterID {
		return nil, domain.ErrNotJobOwner
	}

	fields := repository.UpdateJobFields{
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    input.Requirements,
		Company:         input.Company,
		Location:        input.Location,
		Salary:          input.Salary,
		IsActive:        input.IsActive,
		CustomQuestions: input.CustomQuestions,
	}
	if input.JobType != nil {
		t := domain.MapJobType(*input.JobType)
		fields.Type = &t
	}
	if input.ExperienceLevel != nil {
		jobType := ""
		if input.JobType != nil {
			jobType = *input.JobType
		}
		fields.Tags = jobTags(*input.ExperienceLevel, jobType)
	}

	updated, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return updated, nil
}

// DeleteJob hard-deletes the posting. Applications and saved-job records
// referencing it are left behind and served with a null job summary.
func (u *JobUsecase) DeleteJob(ctx context.Context, id, recruiterID string) error {
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get job: %w", err)
	}
	if job.RecruiterID != recruiterID {
		return domain.ErrNotJobOwner
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func jobTags(experienceLevel, jobType string) []string {
	tags := []string{}
	if experienceLevel != "" {
		tags = append(tags, experienceLevel)
	}
	if jobType != "" {
		tags = append(tags, jobType)
	}
	return tags
}
