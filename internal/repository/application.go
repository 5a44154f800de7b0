package repository

import (
	"context"

	"github.com/aselbek/jobboard/internal/domain"
)

// UpdateApplicationInput overwrites the seeker-editable fields wholesale.
// All five fields are written as given; callers that omit one lose the
// previous value.
type UpdateApplicationInput struct {
	Name          string
	Email         string
	ResumeURL     string
	CoverLetter   string
	CustomAnswers map[string]any
}

type ApplicationRepository interface {
	// Create inserts the application and appends its id to the parent
	// job's applicant list in one transaction.
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	ListBySeeker(ctx context.Context, seekerID string) ([]*domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	UpdateContent(ctx context.Context, id string, input UpdateApplicationInput) (*domain.Application, error)
	// Delete removes the application and pulls its id from the parent
	// job's applicant list in one transaction.
	Delete(ctx context.Context, id string) error
}
