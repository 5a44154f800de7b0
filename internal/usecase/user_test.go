package usecase_test

import (
	"context"
	"testing"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
	"github.com/aselbek/jobboard/internal/usecase"
)

func TestUpdateProfile_SeekerCannotSetCompanyOrWebsite(t *testing.T) {
	var captured repository.UpdateProfileInput
	repo := &fakeUserRepo{
		updateProfile: func(_ context.Context, _ string, input repository.UpdateProfileInput) (*domain.User, error) {
			captured = input
			return &domain.User{ID: "user-1"}, nil
		},
	}

	company := "Acme"
	website := "https://acme.example"
	_, err := usecase.NewUserUsecase(repo).UpdateProfile(context.Background(), "user-1", domain.RoleSeeker, usecase.UpdateProfileInput{
		Skills:  []string{"go", "sql"},
		Company: &company,
		Website: &website,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.Company != nil || captured.Website != nil {
		t.Error("company/website must be dropped for seekers")
	}
	if len(captured.Skills) != 2 {
		t.Errorf("skills = %v, want the provided two", captured.Skills)
	}
}

func TestUpdateProfile_RecruiterCannotSetSkills(t *testing.T) {
	var captured repository.UpdateProfileInput
	repo := &fakeUserRepo{
		updateProfile: func(_ context.Context, _ string, input repository.UpdateProfileInput) (*domain.User, error) {
			captured = input
			return &domain.User{ID: "user-1"}, nil
		},
	}

	company := "Acme"
	_, err := usecase.NewUserUsecase(repo).UpdateProfile(context.Background(), "user-1", domain.RoleRecruiter, usecase.UpdateProfileInput{
		Skills:  []string{"go"},
		Company: &company,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.Skills != nil {
		t.Error("skills must be dropped for recruiters")
	}
	if captured.Company == nil || *captured.Company != "Acme" {
		t.Errorf("company = %v, want Acme", captured.Company)
	}
}
