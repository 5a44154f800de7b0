package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/email"
	"github.com/aselbek/jobboard/internal/metrics"
	"github.com/aselbek/jobboard/internal/repository"
)

type ApplicationUsecase struct {
	repo    repository.ApplicationRepository
	jobRepo repository.JobRepository
	users   repository.UserRepository
	email   email.Sender
	logger  *slog.Logger
}

func NewApplicationUsecase(
	repo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	users repository.UserRepository,
	emailSender email.Sender,
	logger *slog.Logger,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		repo:    repo,
		jobRepo: jobRepo,
		users:   users,
		email:   emailSender,
		logger:  logger.With("component", "application_usecase"),
	}
}

type ApplyInput struct {
	SeekerID      string
	JobID         string
	Name          string
	Email         string
	ResumeURL     string
	CoverLetter   string
	CustomAnswers map[string]any
}

// Apply submits an application. Name and email default to the seeker's
// profile when omitted; a second application for the same job fails with
// ErrAlreadyApplied.
func (u *ApplicationUsecase) Apply(ctx context.Context, input ApplyInput) (*domain.Application, error) {
	if _, err := u.jobRepo.GetByID(ctx, input.JobID); err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	if input.Name == "" || input.Email == "" {
		seeker, err := u.users.FindByID(ctx, input.SeekerID)
		if err != nil {
			return nil, fmt.Errorf("find seeker: %w", err)
		}
		if input.Name == "" {
			input.Name = seeker.Name
		}
		if input.Email == "" {
			input.Email = seeker.Email
		}
	}

	if input.CustomAnswers == nil {
		input.CustomAnswers = map[string]any{}
	}

	created, err := u.repo.Create(ctx, &domain.Application{
		SeekerID:      input.SeekerID,
		JobID:         input.JobID,
		Name:          input.Name,
		Email:         input.Email,
		ResumeURL:     input.ResumeURL,
		CoverLetter:   input.CoverLetter,
		CustomAnswers: input.CustomAnswers,
	})
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return created, nil
}

func (u *ApplicationUsecase) ListMine(ctx context.Context, seekerID string) ([]*domain.Application, error) {
	apps, err := u.repo.ListBySeeker(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("list my applications: %w", err)
	}
	return apps, nil
}

func (u *ApplicationUsecase) ListForJob(ctx context.Context, jobID, recruiterID string) ([]*domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job.RecruiterID != recruiterID {
		return nil, domain.ErrNotJobOwner
	}

	apps, err := u.repo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus overwrites the status unconditionally: any of the six
// target statuses is accepted from any prior status. Only the recruiter
// owning the parent job may call it. The seeker is notified by email,
// best effort.
func (u *ApplicationUsecase) UpdateStatus(ctx context.Context, id, recruiterID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.ValidTargetStatus(status) {
		return nil, domain.ErrInvalidApplicationStatus
	}

	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app.Job == nil {
		// Parent job was deleted; nobody can change an orphan's status.
		return nil, domain.ErrJobNotFound
	}
	if app.Job.RecruiterID != recruiterID {
		return nil, domain.ErrNotJobOwner
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	u.notifyStatusChange(ctx, updated)
	return updated, nil
}

func (u *ApplicationUsecase) notifyStatusChange(ctx context.Context, app *domain.Application) {
	subject := fmt.Sprintf("Update on your application for %s", app.Job.Title)
	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your application for <b>%s</b> at %s is now <b>%s</b>.</p>`,
		app.Name, app.Job.Title, app.Job.Company, app.Status,
	)
	if err := u.email.Send(ctx, app.Email, subject, body); err != nil {
		u.logger.ErrorContext(ctx, "status notification email", "application_id", app.ID, "error", err)
	}
}

// UpdateContent overwrites all five seeker-editable fields wholesale.
// This is not a merge: callers supply every field or lose the old value.
func (u *ApplicationUsecase) UpdateContent(ctx context.Context, id, seekerID string, input repository.UpdateApplicationInput) (*domain.Application, error) {
	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app.SeekerID != seekerID {
		return nil, domain.ErrNotApplicationOwner
	}

	if input.CustomAnswers == nil {
		input.CustomAnswers = map[string]any{}
	}

	updated, err := u.repo.UpdateContent(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return updated, nil
}

// Withdraw deletes the application and pulls its id from the parent
// job's applicant list.
func (u *ApplicationUsecase) Withdraw(ctx context.Context, id, seekerID string) error {
	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get application: %w", err)
	}
	if app.SeekerID != seekerID {
		return domain.ErrNotApplicationOwner
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}
