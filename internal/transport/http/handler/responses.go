package handler

import (
	"time"

	"github.com/aselbek/jobboard/internal/domain"
)

type userResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Avatar    string      `json:"avatar"`
	Location  string      `json:"location"`
	Bio       string      `json:"bio"`
	Skills    []string    `json:"skills,omitempty"`
	Company   string      `json:"company,omitempty"`
	Website   string      `json:"website,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		Location:  u.Location,
		Bio:       u.Bio,
		Skills:    u.Skills,
		Company:   u.Company,
		Website:   u.Website,
		CreatedAt: u.CreatedAt,
	}
}

type jobSummaryResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Company       string             `json:"company"`
	Location      string             `json:"location"`
	Type          domain.JobType     `json:"type"`
	SalaryRange   domain.SalaryRange `json:"salaryRange"`
	RecruiterID   string             `json:"recruiterId,omitempty"`
	RecruiterName string             `json:"recruiterName,omitempty"`
}

// toJobSummary returns nil for a deleted posting so clients receive an
// explicit null instead of a zero-value object.
func toJobSummary(j *domain.JobSummary) *jobSummaryResponse {
	if j == nil {
		return nil
	}
	return &jobSummaryResponse{
		ID:            j.ID,
		Title:         j.Title,
		Company:       j.Company,
		Location:      j.Location,
		Type:          j.Type,
		SalaryRange:   j.Salary,
		RecruiterID:   j.RecruiterID,
		RecruiterName: j.RecruiterName,
	}
}
