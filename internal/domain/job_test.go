package domain_test

import (
	"testing"

	"github.com/aselbek/jobboard/internal/domain"
)

func TestMapJobType(t *testing.T) {
	cases := []struct {
		in   string
		want domain.JobType
	}{
		{"full-time", domain.JobTypeFullTime},
		{"part-time", domain.JobTypePartTime},
		{"contract", domain.JobTypeRemote},
		{"internship", domain.JobTypeRemote},
		{"freelance", domain.JobTypeRemote},
		{"", domain.JobTypeFullTime},
		{"Full-Time", domain.JobTypeFullTime}, // mapping is case sensitive
		{"gig", domain.JobTypeFullTime},
	}
	for _, c := range cases {
		if got := domain.MapJobType(c.in); got != c.want {
			t.Errorf("MapJobType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidTargetStatus(t *testing.T) {
	valid := []domain.ApplicationStatus{
		domain.StatusViewed, domain.StatusInterview, domain.StatusShortlisted,
		domain.StatusRejected, domain.StatusHired, domain.StatusReviewed,
	}
	for _, s := range valid {
		if !domain.ValidTargetStatus(s) {
			t.Errorf("ValidTargetStatus(%q) = false, want true", s)
		}
	}

	// Applied is the initial state, never a recruiter-settable target.
	for _, s := range []domain.ApplicationStatus{domain.StatusApplied, "Pending", ""} {
		if domain.ValidTargetStatus(s) {
			t.Errorf("ValidTargetStatus(%q) = true, want false", s)
		}
	}
}
