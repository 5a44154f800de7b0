package domain

import (
	"errors"
	"time"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrAlreadyApplied           = errors.New("already applied for this job")
	ErrNotApplicationOwner      = errors.New("caller does not own this application")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
)

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusViewed      ApplicationStatus = "Viewed"
	StatusInterview   ApplicationStatus = "Interview"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusHired       ApplicationStatus = "Hired"
	StatusReviewed    ApplicationStatus = "Reviewed"
)

// ValidTargetStatus reports whether s is a status a recruiter may set.
// Any target is reachable from any prior status; the gate is permission,
// not ordering.
func ValidTargetStatus(s ApplicationStatus) bool {
	switch s {
	case StatusViewed, StatusInterview, StatusShortlisted,
		StatusRejected, StatusHired, StatusReviewed:
		return true
	}
	return false
}

type Application struct {
	ID          string
	SeekerID    string
	JobID       string
	Name        string
	Email       string
	ResumeURL   string
	CoverLetter string
	// CustomAnswers maps a question index to a string or []string answer.
	CustomAnswers map[string]any
	Status        ApplicationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Seeker *SeekerSummary
	Job    *JobSummary // nil when the posting has been deleted
}

type SeekerSummary struct {
	ID       string
	Name     string
	Email    string
	Location string
	Skills   []string
	Bio      string
}
