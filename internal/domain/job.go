package domain

import (
	"errors"
	"time"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotJobOwner = errors.New("caller does not own this job")
)

type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypePartTime JobType = "Part-time"
	JobTypeRemote   JobType = "Remote"
)

// MapJobType collapses the free-form posting type into the stored enum.
// contract, internship and freelance all map to Remote; anything
// unrecognized falls back to Full-time. The collapse mirrors how existing
// data was written and must not be "fixed".
func MapJobType(jobType string) JobType {
	switch jobType {
	case "full-time":
		return JobTypeFullTime
	case "part-time":
		return JobTypePartTime
	case "contract", "internship", "freelance":
		return JobTypeRemote
	default:
		return JobTypeFullTime
	}
}

type SalaryRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type CustomQuestion struct {
	Label       string   `json:"label"`
	Type        string   `json:"type"` // text, textarea, select, checkbox
	Options     []string `json:"options,omitempty"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
}

type Job struct {
	ID              string
	Title           string
	Description     string
	Requirements    string
	Company         string
	RecruiterID     string
	Location        string
	Type            JobType
	Salary          SalaryRange
	Tags            []string
	ApplicantIDs    []string
	IsActive        bool
	CustomQuestions []CustomQuestion
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Recruiter *RecruiterSummary
}

// RecruiterSummary is the slice of the owning recruiter's profile that
// rides along with a job.
type RecruiterSummary struct {
	ID      string
	Name    string
	Company string
	Website string
}

// JobSummary is the materialized job view embedded in applications and
// saved-job records. A nil JobSummary means the posting has been deleted.
type JobSummary struct {
	ID            string
	Title         string
	Company       string
	Location      string
	Type          JobType
	Salary        SalaryRange
	RecruiterID   string
	RecruiterName string
}
