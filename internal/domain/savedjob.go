package domain

import (
	"errors"
	"time"
)

var (
	ErrJobAlreadySaved  = errors.New("job already saved")
	ErrSavedJobNotFound = errors.New("saved job not found")
)

type SavedJob struct {
	ID        string
	SeekerID  string
	JobID     string
	CreatedAt time.Time

	Job *JobSummary // nil when the posting has been deleted
}
