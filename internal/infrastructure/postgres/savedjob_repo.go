package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const savedJobSelect = `
	SELECT sj.id, sj.seeker_id, sj.job_id, sj.created_at,
	       j.id, j.title, j.company, j.location, j.type,
	       j.salary_min, j.salary_max, j.recruiter_id, r.name
	FROM saved_jobs sj
	LEFT JOIN jobs j ON j.id = sj.job_id
	LEFT JOIN users r ON r.id = j.recruiter_id`

type SavedJobRepository struct {
	pool *pgxpool.Pool
}

func NewSavedJobRepository(pool *pgxpool.Pool) *SavedJobRepository {
	return &SavedJobRepository{pool: pool}
}

func (r *SavedJobRepository) Create(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO saved_jobs (seeker_id, job_id) VALUES ($1, $2)`,
		seekerID, jobID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrJobAlreadySaved
		}
		return nil, fmt.Errorf("insert saved job: %w", err)
	}

	row := r.pool.QueryRow(ctx,
		savedJobSelect+` WHERE sj.seeker_id = $1 AND sj.job_id = $2`,
		seekerID, jobID)
	return scanSavedJob(row)
}

func (r *SavedJobRepository) Delete(ctx context.Context, seekerID, jobID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM saved_jobs WHERE seeker_id = $1 AND job_id = $2`,
		seekerID, jobID)
	if err != nil {
		return fmt.Errorf("delete saved job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSavedJobNotFound
	}
	return nil
}

func (r *SavedJobRepository) ListBySeeker(ctx context.Context, seekerID string) ([]*domain.SavedJob, error) {
	rows, err := r.pool.Query(ctx,
		savedJobSelect+` WHERE sj.seeker_id = $1 ORDER BY sj.created_at DESC`,
		seekerID)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	defer rows.Close()

	var saved []*domain.SavedJob
	for rows.Next() {
		sj, err := scanSavedJob(rows)
		if err != nil {
			return nil, err
		}
		saved = append(saved, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved jobs: %w", err)
	}
	return saved, nil
}

func (r *SavedJobRepository) Exists(ctx context.Context, seekerID, jobID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM saved_jobs WHERE seeker_id = $1 AND job_id = $2)`,
		seekerID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check saved job: %w", err)
	}
	return exists, nil
}

func scanSavedJob(row rowScanner) (*domain.SavedJob, error) {
	var (
		sj domain.SavedJob

		jobID, jobTitle, jobCompany, jobLocation, jobType *string
		salaryMin, salaryMax                              *int64
		recruiterID, recruiterName                        *string
	)
	err := row.Scan(
		&sj.ID, &sj.SeekerID, &sj.JobID, &sj.CreatedAt,
		&jobID, &jobTitle, &jobCompany, &jobLocation, &jobType,
		&salaryMin, &salaryMax, &recruiterID, &recruiterName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSavedJobNotFound
		}
		return nil, fmt.Errorf("scan saved job: %w", err)
	}

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
		sj.Job = &job
	}
	return &sj, nil
}
