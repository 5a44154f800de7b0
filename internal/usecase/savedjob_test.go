package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/usecase"
)

type fakeSavedJobRepo struct {
	create       func(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error)
	delete       func(ctx context.Context, seekerID, jobID string) error
	listBySeeker func(ctx context.Context, seekerID string) ([]*domain.SavedJob, error)
	exists       func(ctx context.Context, seekerID, jobID string) (bool, error)
}

func (r *fakeSavedJobRepo) Create(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
	return r.create(ctx, seekerID, jobID)
}

func (r *fakeSavedJobRepo) Delete(ctx context.Context, seekerID, jobID string) error {
	return r.delete(ctx, seekerID, jobID)
}

func (r *fakeSavedJobRepo) ListBySeeker(ctx context.Context, seekerID string) ([]*domain.SavedJob, error) {
	return r.listBySeeker(ctx, seekerID)
}

func (r *fakeSavedJobRepo) Exists(ctx context.Context, seekerID, jobID string) (bool, error) {
	return r.exists(ctx, seekerID, jobID)
}

func TestSave_UnknownJob_ReturnsErrJobNotFound(t *testing.T) {
	jobs := &fakeJobRepo{
		getByID: func(_ context.Context, _ string) (*domain.Job, error) {
			return nil, domain.ErrJobNotFound
		},
	}

	_, err := usecase.NewSavedJobUsecase(&fakeSavedJobRepo{}, jobs).Save(context.Background(), "seeker-1", "gone")
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("want ErrJobNotFound, got %v", err)
	}
}

func TestSave_Duplicate_ReturnsErrJobAlreadySaved(t *testing.T) {
	repo := &fakeSavedJobRepo{
		create: func(_ context.Context, _, _ string) (*domain.SavedJob, error) {
			return nil, domain.ErrJobAlreadySaved
		},
	}

	_, err := usecase.NewSavedJobUsecase(repo, existingJobRepo()).Save(context.Background(), "seeker-1", "job-1")
	if !errors.Is(err, domain.ErrJobAlreadySaved) {
		t.Errorf("want ErrJobAlreadySaved, got %v", err)
	}
}

func TestSaveUnsaveCheckCycle(t *testing.T) {
	// In-memory repo: one seeker, a single bookmark slot per job.
	saved := map[string]bool{}
	repo := &fakeSavedJobRepo{
		create: func(_ context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
			if saved[jobID] {
				return nil, domain.ErrJobAlreadySaved
			}
			saved[jobID] = true
			return &domain.SavedJob{ID: "sj-1", SeekerID: seekerID, JobID: jobID}, nil
		},
		delete: func(_ context.Context, _, jobID string) error {
			if !saved[jobID] {
				return domain.ErrSavedJobNotFound
			}
			delete(saved, jobID)
			return nil
		},
		exists: func(_ context.Context, _, jobID string) (bool, error) {
			return saved[jobID], nil
		},
	}
	uc := usecase.NewSavedJobUsecase(repo, existingJobRepo())
	ctx := context.Background()

	if _, err := uc.Save(ctx, "seeker-1", "job-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ok, _ := uc.IsSaved(ctx, "seeker-1", "job-1"); !ok {
		t.Error("IsSaved = false after save")
	}
	if err := uc.Unsave(ctx, "seeker-1", "job-1"); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if ok, _ := uc.IsSaved(ctx, "seeker-1", "job-1"); ok {
		t.Error("IsSaved = true after unsave")
	}
	if err := uc.Unsave(ctx, "seeker-1", "job-1"); !errors.Is(err, domain.ErrSavedJobNotFound) {
		t.Errorf("second unsave: want ErrSavedJobNotFound, got %v", err)
	}
}

func TestListSaved_KeepsOrphanedRecords(t *testing.T) {
	repo := &fakeSavedJobRepo{
		listBySeeker: func(_ context.Context, _ string) ([]*domain.SavedJob, error) {
			return []*domain.SavedJob{
				{ID: "sj-1", JobID: "job-1", Job: &domain.JobSummary{ID: "job-1", Title: "Backend Engineer"}},
				{ID: "sj-2", JobID: "job-2", Job: nil}, // posting deleted
			}, nil
		},
	}

	out, err := usecase.NewSavedJobUsecase(repo, existingJobRepo()).ListSaved(context.Background(), "seeker-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (orphans are not dropped)", len(out))
	}
	if out[1].Job != nil {
		t.Error("orphaned record should keep a nil job summary")
	}
}

func TestIsSaved_UnknownJob_ReportsFalse(t *testing.T) {
	repo := &fakeSavedJobRepo{
		exists: func(_ context.Context, _, _ string) (bool, error) {
			return false, nil
		},
	}

	ok, err := usecase.NewSavedJobUsecase(repo, existingJobRepo()).IsSaved(context.Background(), "seeker-1", "never-existed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("IsSaved = true for a job that was never saved")
	}
}
