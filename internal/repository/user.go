package repository

import (
	"context"

	"github.com/aselbek/jobboard/internal/domain"
)

// UpdateProfileInput carries a partial profile update. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Name     *string
	Location *string
	Bio      *string
	Avatar   *string
	Skills   []string // seekers only
	Company  *string  // recruiters only
	Website  *string  // recruiters only
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.User, error)
}
