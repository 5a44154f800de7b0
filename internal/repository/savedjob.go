package repository

import (
	"context"

	"github.com/aselbek/jobboard/internal/domain"
)

type SavedJobRepository interface {
	Create(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error)
	Delete(ctx context.Context, seekerID, jobID string) error
	ListBySeeker(ctx context.Context, seekerID string) ([]*domain.SavedJob, error)
	Exists(ctx context.Context, seekerID, jobID string) (bool, error)
}
