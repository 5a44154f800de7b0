package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// applicationSelect materializes the seeker summary and, when the posting
// still exists, the job summary. LEFT JOINs keep orphaned applications
// readable after their job is deleted.
const applicationSelect = `
	SELECT a.id, a.seeker_id, a.job_id, a.name, a.email, a.resume_url,
	       a.cover_letter, a.custom_answers, a.status, a.created_at, a.updated_at,
	       s.name, s.email, s.location, s.skills, s.bio,
	       j.id, j.title, j.company, j.location, j.type,
	       j.salary_min, j.salary_max, j.recruiter_id, r.name
	FROM applications a
	JOIN users s ON s.id = a.seeker_id
	LEFT JOIN jobs j ON j.id = a.job_id
	LEFT JOIN users r ON r.id = j.recruiter_id`

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO applications (seeker_id, job_id, name, email, resume_url, cover_letter, custom_answers)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		a.SeekerID, a.JobID, a.Name, a.Email, a.ResumeURL, a.CoverLetter, a.CustomAnswers,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	// Same transaction as the insert so a crash cannot leave the
	// applicant list out of sync.
	if _, err = tx.Exec(ctx, `
		UPDATE jobs SET applicant_ids = array_append(applicant_ids, $2), updated_at = NOW()
		WHERE id = $1`,
		a.JobID, id,
	); err != nil {
		return nil, fmt.Errorf("append applicant: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	row := r.pool.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListBySeeker(ctx context.Context, seekerID string) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx,
		applicationSelect+` WHERE a.seeker_id = $1 ORDER BY a.created_at DESC`,
		seekerID)
	if err != nil {
		return nil, fmt.Errorf("list seeker applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx,
		applicationSelect+` WHERE a.job_id = $1 ORDER BY a.created_at DESC`,
		jobID)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrApplicationNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) UpdateContent(ctx context.Context, id string, input repository.UpdateApplicationInput) (*domain.Application, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE applications
		SET name = $2, email = $3, resume_url = $4, cover_letter = $5,
		    custom_answers = $6, updated_at = NOW()
		WHERE id = $1`,
		id, input.Name, input.Email, input.ResumeURL, input.CoverLetter, input.CustomAnswers)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrApplicationNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var jobID string
	err = tx.QueryRow(ctx,
		`DELETE FROM applications WHERE id = $1 RETURNING job_id`, id,
	).Scan(&jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrApplicationNotFound
		}
		return fmt.Errorf("delete application: %w", err)
	}

	if _, err = tx.Exec(ctx, `
		UPDATE jobs SET applicant_ids = array_remove(applicant_ids, $2), updated_at = NOW()
		WHERE id = $1`,
		jobID, id,
	); err != nil {
		return fmt.Errorf("remove applicant: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var (
		a      domain.Application
		seeker domain.SeekerSummary

		jobID, jobTitle, jobCompany, jobLocation, jobType *string
		salaryMin, salaryMax                              *int64
		recruiterID, recruiterName                        *string
	)
	err := row.Scan(
		&a.ID, &a.SeekerID, &a.JobID, &a.Name, &a.Email, &a.ResumeURL,
		&a.CoverLetter, &a.CustomAnswers, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&seeker.Name, &seeker.Email, &seeker.Location, &seeker.Skills, &seeker.Bio,
		&jobID, &jobTitle, &jobCompany, &jobLocation, &jobType,
		&salaryMin, &salaryMax, &recruiterID, &recruiterName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}

	seeker.ID = a.SeekerID
	a.Seeker = &seeker

	if jobID != nil {
		job := domain.JobSummary{
			ID:       *jobID,
			Title:    *jobTitle,
			Company:  *jobCompany,
			Location: *jobLocation,
			Type:     domain.JobType(*jobType),
			Salary:   domain.SalaryRange{Min: *salaryMin, Max: *salaryMax},
		}
		if recruiterID != nil {
			job.RecruiterID = *recruiterID
		}
		if recruiterName != nil {
			job.RecruiterName = *recruiterName
		}
		a.Job = &job
	}
	return &a, nil
}

func collectApplications(rows pgx.Rows) ([]*domain.Application, error) {
	var apps []*domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return apps, nil
}
