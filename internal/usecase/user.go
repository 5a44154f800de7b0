package usecase

import (
	"context"
	"fmt"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
)

type UserUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

type UpdateProfileInput struct {
	Name     *string
	Location *string
	Bio      *string
	Avatar   *string
	Skills   []string
	Company  *string
	Website  *string
}

// UpdateProfile applies the provided fields to the caller's own profile.
// Skills only stick for seekers; company and website only for recruiters.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID string, role domain.Role, input UpdateProfileInput) (*domain.User, error) {
	repoInput := repository.UpdateProfileInput{
		Name:     input.Name,
		Location: input.Location,
		Bio:      input.Bio,
		Avatar:   input.Avatar,
	}
	if role == domain.RoleSeeker {
		repoInput.Skills = input.Skills
	}
	if role == domain.RoleRecruiter {
		repoInput.Company = input.Company
		repoInput.Website = input.Website
	}

	user, err := u.users.UpdateProfile(ctx, userID, repoInput)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}
