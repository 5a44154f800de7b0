package usecase

import (
	"context"
	"fmt"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
)

type SavedJobUsecase struct {
	repo    repository.SavedJobRepository
	jobRepo repository.JobRepository
}

func NewSavedJobUsecase(repo repository.SavedJobRepository, jobRepo repository.JobRepository) *SavedJobUsecase {
	return &SavedJobUsecase{repo: repo, jobRepo: jobRepo}
}

func (u *SavedJobUsecase) Save(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	saved, err := u.repo.Create(ctx, seekerID, jobID)
	if err != nil {
		return nil, fmt.Errorf("save job: %w", err)
	}
	return saved, nil
}

func (u *SavedJobUsecase) Unsave(ctx context.Context, seekerID, jobID string) error {
	if err := u.repo.Delete(ctx, seekerID, jobID); err != nil {
		return fmt.Errorf("unsave job: %w", err)
	}
	return nil
}

// ListSaved returns the seeker's bookmarks newest first. Records whose
// posting has been deleted come back with a nil job summary rather than
// being dropped; the client decides how to render them.
func (u *SavedJobUsecase) ListSaved(ctx context.Context, seekerID string) ([]*domain.SavedJob, error) {
	saved, err := u.repo.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	return saved, nil
}

// IsSaved never fails for an unknown job; it simply reports false.
func (u *SavedJobUsecase) IsSaved(ctx context.Context, seekerID, jobID string) (bool, error) {
	saved, err := u.repo.Exists(ctx, seekerID, jobID)
	if err != nil {
		return false, fmt.Errorf("check saved job: %w", err)
	}
	return saved, nil
}
