package repository

import (
	"context"

	"github.com/aselbek/jobboard/internal/domain"
)

// ListJobsInput is the public-catalog filter. Listing always restricts to
// active postings; salary bounds use range overlap against (min, max).
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

// UpdateJobFields carries a partial job update. Nil fields are left
// untouched.
type UpdateJobFields struct {
	Title           *string
	Description     *string
	Requirements    *string
	Company         *string
	Location        *string
	Type            *domain.JobType
	Salary          *domain.SalaryRange
	Tags            []string
	IsActive        *bool
	CustomQuestions []domain.CustomQuestion
}

type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) (*domain.Job, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, input ListJobsInput) (jobs []*domain.Job, total int, err error)
	ListByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Job, error)
	Update(ctx context.Context, id string, fields UpdateJobFields) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
