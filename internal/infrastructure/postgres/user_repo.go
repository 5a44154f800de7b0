package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password_hash, role, avatar, location, bio,
	skills, company, website, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, avatar, location, bio, skills, company, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns

	row := r.pool.QueryRow(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Role,
		u.Avatar, u.Location, u.Bio, u.Skills, u.Company, u.Website,
	)

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	return scanUser(row)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, input repository.UpdateProfileInput) (*domain.User, error) {
	args := []any{id}
	set := []string{"updated_at = NOW()"}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if input.Name != nil {
		add("name", *input.Name)
	}
	if input.Location != nil {
		add("location", *input.Location)
	}
	if input.Bio != nil {
		add("bio", *input.Bio)
	}
	if input.Avatar != nil {
		add("avatar", *input.Avatar)
	}
	if input.Skills != nil {
		add("skills", input.Skills)
	}
	if input.Company != nil {
		add("company", *input.Company)
	}
	if input.Website != nil {
		add("website", *input.Website)
	}

	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(set, ", "), userColumns)

	return scanUser(r.pool.QueryRow(ctx, query, args...))
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.Avatar, &u.Location, &u.Bio, &u.Skills, &u.Company, &u.Website,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
