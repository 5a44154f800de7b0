package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `j.id, j.title, j.description, j.requirements, j.company,
	j.recruiter_id, j.location, j.type, j.salary_min, j.salary_max,
	j.tags, j.applicant_ids, j.is_active, j.custom_questions,
	j.created_at, j.updated_at`

const jobSelect = `
	SELECT ` + jobColumns + `, u.name, u.company, u.website
	FROM jobs j
	JOIN users u ON u.id = j.recruiter_id`

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	query := `
		INSERT INTO jobs (
			title, description, requirements, company, recruiter_id, location,
			type, salary_min, salary_max, tags, is_active, custom_questions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id string
	err := r.pool.QueryRow(ctx, query,
		j.Title, j.Description, j.Requirements, j.Company, j.RecruiterID,
		j.Location, j.Type, j.Salary.Min, j.Salary.Max, j.Tags,
		j.IsActive, j.CustomQuestions,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	row := r.pool.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) List(ctx context.Context, input repository.ListJobsInput) ([]*domain.Job, int, error) {
	args := []any{}
	where := []string{"j.is_active"}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if input.Search != "" {
		p := arg("%" + input.Search + "%")
		where = append(where, fmt.Sprintf(
			"(j.title ILIKE %[1]s OR j.description ILIKE %[1]s OR j.company ILIKE %[1]s)", p))
	}
	if input.Location != "" {
		where = append(where, "j.location ILIKE "+arg("%"+input.Location+"%"))
	}
	if input.Type != "" {
		where = append(where, "j.type = "+arg(input.Type))
	}
	// Range overlap: a posting matches when its salary band intersects
	// the requested band, not when a single scalar compares.
	if input.MinSalary != nil {
		where = append(where, "j.salary_max >= "+arg(*input.MinSalary))
	}
	if input.MaxSalary != nil {
		where = append(where, "j.salary_min <= "+arg(*input.MaxSalary))
	}
	if len(input.Tags) > 0 {
		where = append(where, "j.tags && "+arg(input.Tags))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM jobs j WHERE ` + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	offset := (input.Page - 1) * input.Limit
	query := fmt.Sprintf(`%s WHERE %s ORDER BY j.created_at DESC LIMIT %s OFFSET %s`,
		jobSelect, whereClause, arg(input.Limit), arg(offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Job, error) {
	rows, err := r.pool.Query(ctx,
		jobSelect+` WHERE j.recruiter_id = $1 ORDER BY j.created_at DESC`,
		recruiterID)
	if err != nil {
		return nil, fmt.Errorf("list recruiter jobs: %w", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) Update(ctx context.Context, id string, fields repository.UpdateJobFields) (*domain.Job, error) {
	args := []any{id}
	set := []string{"updated_at = NOW()"}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if fields.Title != nil {
		add("title", *fields.Title)
	}
	if fields.Description != nil {
		add("description", *fields.Description)
	}
	if fields.Requirements != nil {
		add("requirements", *fields.Requirements)
	}
	if fields.Company != nil {
		add("company", *fields.Company)
	}
	if fields.Location != nil {
		add("location", *fields.Location)
	}
	if fields.Type != nil {
		add("type", *fields.Type)
	}
	if fields.Salary != nil {
		add("salary_min", fields.Salary.Min)
		add("salary_max", fields.Salary.Max)
	}
	if fields.Tags != nil {
		add("tags", fields.Tags)
	}
	if fields.IsActive != nil {
		add("is_active", *fields.IsActive)
	}
	if fields.CustomQuestions != nil {
		add("custom_questions", fields.CustomQuestions)
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $1`, strings.Join(set, ", "))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrJobNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var (
		j   domain.Job
		rec domain.RecruiterSummary
	)
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Company,
		&j.RecruiterID, &j.Location, &j.Type, &j.Salary.Min, &j.Salary.Max,
		&j.Tags, &j.ApplicantIDs, &j.IsActive, &j.CustomQuestions,
		&j.CreatedAt, &j.UpdatedAt,
		&rec.Name, &rec.Company, &rec.Website,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	rec.ID = j.RecruiterID
	j.Recruiter = &rec
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]*domain.Job, error) {
	var jobs []*domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}
