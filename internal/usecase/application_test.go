package usecase_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
	"github.com/aselbek/jobboard/internal/usecase"
)

type fakeApplicationRepo struct {
	create        func(ctx context.Context, a *domain.Application) (*domain.Application, error)
	getByID       func(ctx context.Context, id string) (*domain.Application, error)
	listBySeeker  func(ctx context.Context, seekerID string) ([]*domain.Application, error)
	listByJob     func(ctx context.Context, jobID string) ([]*domain.Application, error)
	updateStatus  func(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	updateContent func(ctx context.Context, id string, input repository.UpdateApplicationInput) (*domain.Application, error)
	delete        func(ctx context.Context, id string) error
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	return r.create(ctx, a)
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	return r.getByID(ctx, id)
}

func (r *fakeApplicationRepo) ListBySeeker(ctx context.Context, seekerID string) ([]*domain.Application, error) {
	return r.listBySeeker(ctx, seekerID)
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error) {
	return r.listByJob(ctx, jobID)
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	return r.updateStatus(ctx, id, status)
}

func (r *fakeApplicationRepo) UpdateContent(ctx context.Context, id string, input repository.UpdateApplicationInput) (*domain.Application, error) {
	return r.updateContent(ctx, id, input)
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if s.send == nil {
		return nil
	}
	return s.send(ctx, to, subject, body)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func existingJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		getByID: func(_ context.Context, id string) (*domain.Job, error) {
			return &domain.Job{ID: id, RecruiterID: "rec-1", Title: "Backend Engineer"}, nil
		},
	}
}

func newApplicationUsecase(repo *fakeApplicationRepo, jobs *fakeJobRepo, users *fakeUserRepo, sender *fakeEmailSender) *usecase.ApplicationUsecase {
	if sender == nil {
		sender = &fakeEmailSender{}
	}
	return usecase.NewApplicationUsecase(repo, jobs, users, sender, testLogger())
}

// ---- Apply ----

func TestApply_DefaultsNameAndEmailFromProfile(t *testing.T) {
	var captured *domain.Application
	repo := &fakeApplicationRepo{
		create: func(_ context.Context, a *domain.Application) (*domain.Application, error) {
			captured = a
			out := *a
			out.ID = "app-1"
			return &out, nil
		},
	}
	users := &fakeUserRepo{
		findByID: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: "seeker-1", Name: "Alice", Email: "alice@example.com"}, nil
		},
	}

	_, err := newApplicationUsecase(repo, existingJobRepo(), users, nil).Apply(context.Background(), usecase.ApplyInput{
		SeekerID:  "seeker-1",
		JobID:     "job-1",
		ResumeURL: "https://example.com/cv.pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.Name != "Alice" || captured.Email != "alice@example.com" {
		t.Errorf("name/email = %q/%q, want profile defaults", captured.Name, captured.Email)
	}
	if captured.CustomAnswers == nil {
		t.Error("CustomAnswers should default to an empty map")
	}
}

func TestApply_UnknownJob_ReturnsErrJobNotFound(t *testing.T) {
	jobs := &fakeJobRepo{
		getByID: func(_ context.Context, _ string) (*domain.Job, error) {
			return nil, domain.ErrJobNotFound
		},
	}

	_, err := newApplicationUsecase(&fakeApplicationRepo{}, jobs, &fakeUserRepo{}, nil).Apply(context.Background(), usecase.ApplyInput{
		SeekerID: "seeker-1",
		JobID:    "gone",
		Name:     "Alice",
		Email:    "alice@example.com",
	})
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("want ErrJobNotFound, got %v", err)
	}
}

func TestApply_Duplicate_ReturnsErrAlreadyApplied(t *testing.T) {
	repo := &fakeApplicationRepo{
		create: func(_ context.Context, _ *domain.Application) (*domain.Application, error) {
			return nil, domain.ErrAlreadyApplied
		},
	}

	_, err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, nil).Apply(context.Background(), usecase.ApplyInput{
		SeekerID: "seeker-1",
		JobID:    "job-1",
		Name:     "Alice",
		Email:    "alice@example.com",
	})
	if !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Errorf("want ErrAlreadyApplied, got %v", err)
	}
}

// ---- ListForJob ----

func TestListForJob_ForeignRecruiter_ReturnsErrNotJobOwner(t *testing.T) {
	_, err := newApplicationUsecase(&fakeApplicationRepo{}, existingJobRepo(), &fakeUserRepo{}, nil).
		ListForJob(context.Background(), "job-1", "rec-2")
	if !errors.Is(err, domain.ErrNotJobOwner) {
		t.Errorf("want ErrNotJobOwner, got %v", err)
	}
}

// ---- UpdateStatus ----

func ownedApplication() *domain.Application {
	return &domain.Application{
		ID:       "app-1",
		SeekerID: "seeker-1",
		JobID:    "job-1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Status:   domain.StatusApplied,
		Job: &domain.JobSummary{
			ID:          "job-1",
			Title:       "Backend Engineer",
			Company:     "Acme",
			RecruiterID: "rec-1",
		},
	}
}

func TestUpdateStatus_AnyTargetReachableFromAnyStatus(t *testing.T) {
	for _, target := range []domain.ApplicationStatus{
		domain.StatusViewed, domain.StatusInterview, domain.StatusShortlisted,
		domain.StatusRejected, domain.StatusHired, domain.StatusReviewed,
	} {
		app := ownedApplication()
		app.Status = domain.StatusHired // already terminal, still overwritable
		repo := &fakeApplicationRepo{
			getByID: func(_ context.Context, _ string) (*domain.Application, error) {
				return app, nil
			},
			updateStatus: func(_ context.Context, _ string, status domain.ApplicationStatus) (*domain.Application, error) {
				out := *app
				out.Status = status
				return &out, nil
			},
		}

		updated, err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, nil).
			UpdateStatus(context.Background(), "app-1", "rec-1", target)
		if err != nil {
			t.Fatalf("target %s: unexpected error: %v", target, err)
		}
		if updated.Status != target {
			t.Errorf("status = %s, want %s", updated.Status, target)
		}
	}
}

func TestUpdateStatus_InvalidTarget_ReturnsErrInvalidApplicationStatus(t *testing.T) {
	_, err := newApplicationUsecase(&fakeApplicationRepo{}, existingJobRepo(), &fakeUserRepo{}, nil).
		UpdateStatus(context.Background(), "app-1", "rec-1", "Pending")
	if !errors.Is(err, domain.ErrInvalidApplicationStatus) {
		t.Errorf("want ErrInvalidApplicationStatus, got %v", err)
	}
}

func TestUpdateStatus_ForeignRecruiter_ReturnsErrNotJobOwner(t *testing.T) {
	repo := &fakeApplicationRepo{
		getByID: func(_ context.Context, _ string) (*domain.Application, error) {
			return ownedApplication(), nil
		},
	}

	_, err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, nil).
		UpdateStatus(context.Background(), "app-1", "rec-2", domain.StatusViewed)
	if !errors.Is(err, domain.ErrNotJobOwner) {
		t.Errorf("want ErrNotJobOwner, got %v", err)
	}
}

func TestUpdateStatus_OrphanedApplication_ReturnsErrJobNotFound(t *testing.T) {
	repo := &fakeApplicationRepo{
		getByID: func(_ context.Context, _ string) (*domain.Application, error) {
			app := ownedApplication()
			app.Job = nil // posting deleted after the application was filed
			return app, nil
		},
	}

	_, err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, nil).
		UpdateStatus(context.Background(), "app-1", "rec-1", domain.StatusViewed)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("want ErrJobNotFound, got %v", err)
	}
}

func TestUpdateStatus_NotifiesSeekerByEmail(t *testing.T) {
	var sentTo, sentSubject string
	sender := &fakeEmailSender{
		send: func(_ context.Context, to, subject, _ string) error {
			sentTo = to
			sentSubject = subject
			return nil
		},
	}
	repo := &fakeApplicationRepo{
		getByID: func(_ context.Context, _ string) (*domain.Application, error) {
			return ownedApplication(), nil
		},
		updateStatus: func(_ context.Context, _ string, status domain.ApplicationStatus) (*domain.Application, error) {
			out := *ownedApplication()
			out.Status = status
			return &out, nil
		},
	}

	_, err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, sender).
		UpdateStatus(context.Background(), "app-1", "rec-1", domain.StatusInterview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sentTo != "alice@example.com" {
		t.Errorf("email sent to %q, want the seeker's address", sentTo)
	}
	if sentSubject == "" {
		t.Error("email subject is empty")
	}
}

func TestUpdateStatus_EmailFailure_DoesNotFailTheUpdate(t *testing.T) {
	sender := &fakeEmailSender{
		send: func(_ context.Context, _, _, _ string) error {
			return errors.New("smtp unavailable")
		},
	}
	repo := &fakeApplicationRepo{
		getByID: func(_ context.Context, _ string) (*domain.Application, error) {
			return ownedApplication(), nil
		},
		updateStatus: func(_ context.Context, _ string, status domain.ApplicationStatus) (*domain.Application, error) {
			out := *ownedApplication()
			out.Status = status
			return &out, nil
		},
	}

	updated, err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, sender).
		UpdateStatus(context.Background(), "app-1", "rec-1", domain.StatusRejected)
	if err != nil {
		t.Fatalf("email failure must not fail the update: %v", err)
	}
	if updated.Status != domain.StatusRejected {
		t.Errorf("status = %s, want Rejected", updated.Status)
	}
}

// ---- UpdateContent ----

func TestUpdateContent_ForeignSeeker_ReturnsErrNotApplicationOwner(t *testing.T) {
	repo := &fakeApplicationRepo{
		getByID: func(_ context.Context, _ string) (*domain.Application, error) {
			return ownedApplication(), nil
		},
	}

	_, err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, nil).
		UpdateContent(context.Background(), "app-1", "seeker-2", repository.UpdateApplicationInput{})
	if !errors.Is(err, domain.ErrNotApplicationOwner) {
		t.Errorf("want ErrNotApplicationOwner, got %v", err)
	}
}

func TestUpdateContent_NilAnswersBecomeEmptyMap(t *testing.T) {
	var captured repository.UpdateApplicationInput
	repo := &fakeApplicationRepo{
		getByID: func(_ context.Context, _ string) (*domain.Application, error) {
			return ownedApplication(), nil
		},
		updateContent: func(_ context.Context, _ string, input repository.UpdateApplicationInput) (*domain.Application, error) {
			captured = input
			return ownedApplication(), nil
		},
	}

	_, err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, nil).
		UpdateContent(context.Background(), "app-1", "seeker-1", repository.UpdateApplicationInput{
			Name:  "Alice",
			Email: "alice@example.com",
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.CustomAnswers == nil {
		t.Error("CustomAnswers should be an empty map, not nil")
	}
}

// ---- Withdraw ----

func TestWithdraw_ForeignSeeker_ReturnsErrNotApplicationOwner(t *testing.T) {
	repo := &fakeApplicationRepo{
		getByID: func(_ context.Context, _ string) (*domain.Application, error) {
			return ownedApplication(), nil
		},
	}

	err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, nil).
		Withdraw(context.Background(), "app-1", "seeker-2")
	if !errors.Is(err, domain.ErrNotApplicationOwner) {
		t.Errorf("want ErrNotApplicationOwner, got %v", err)
	}
}

func TestWithdraw_Owner_Deletes(t *testing.T) {
	var deletedID string
	repo := &fakeApplicationRepo{
		getByID: func(_ context.Context, _ string) (*domain.Application, error) {
			return ownedApplication(), nil
		},
		delete: func(_ context.Context, id string) error {
			deletedID = id
			return nil
		},
	}

	if err := newApplicationUsecase(repo, existingJobRepo(), &fakeUserRepo{}, nil).
		Withdraw(context.Background(), "app-1", "seeker-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedID != "app-1" {
		t.Errorf("deleted id = %q, want app-1", deletedID)
	}
}
