package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/aselbek/jobboard/internal/repository"
	"github.com/aselbek/jobboard/internal/transport/http/handler"
	"github.com/aselbek/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
)

type fakeApplicationUsecase struct {
	apply         func(ctx context.Context, input usecase.ApplyInput) (*domain.Application, error)
	listMine      func(ctx context.Context, seekerID string) ([]*domain.Application, error)
	listForJob    func(ctx context.Context, jobID, recruiterID string) ([]*domain.Application, error)
	updateStatus  func(ctx context.Context, id, recruiterID string, status domain.ApplicationStatus) (*domain.Application, error)
	updateContent func(ctx context.Context, id, seekerID string, input repository.UpdateApplicationInput) (*domain.Application, error)
	withdraw      func(ctx context.Context, id, seekerID string) error
}

func (f *fakeApplicationUsecase) Apply(ctx context.Context, input usecase.ApplyInput) (*domain.Application, error) {
	return f.apply(ctx, input)
}

func (f *fakeApplicationUsecase) ListMine(ctx context.Context, seekerID string) ([]*domain.Application, error) {
	return f.listMine(ctx, seekerID)
}

func (f *fakeApplicationUsecase) ListForJob(ctx context.Context, jobID, recruiterID string) ([]*domain.Application, error) {
	return f.listForJob(ctx, jobID, recruiterID)
}

func (f *fakeApplicationUsecase) UpdateStatus(ctx context.Context, id, recruiterID string, status domain.ApplicationStatus) (*domain.Application, error) {
	return f.updateStatus(ctx, id, recruiterID, status)
}

func (f *fakeApplicationUsecase) UpdateContent(ctx context.Context, id, seekerID string, input repository.UpdateApplicationInput) (*domain.Application, error) {
	return f.updateContent(ctx, id, seekerID, input)
}

func (f *fakeApplicationUsecase) Withdraw(ctx context.Context, id, seekerID string) error {
	return f.withdraw(ctx, id, seekerID)
}

func newApplicationEngine(uc *fakeApplicationUsecase, userID string) *gin.Engine {
	h := handler.NewApplicationHandler(uc, testLogger())

	r := gin.New()
	r.Use(asUser(userID, "seeker"))
	r.POST("/applications/apply", h.Apply)
	r.GET("/applications/my", h.ListMine)
	r.GET("/applications/job/:jobId", h.ListForJob)
	r.PUT("/applications/:id/status", h.UpdateStatus)
	r.PUT("/applications/:id", h.Update)
	r.DELETE("/applications/:id", h.Delete)
	return r
}

// ---- Apply ----

func TestApply_MissingResumeURL_Returns400(t *testing.T) {
	w := postJSON(t, newApplicationEngine(&fakeApplicationUsecase{}, "seeker-1"), "/applications/apply",
		`{"jobId":"job-1","coverLetter":"Hello"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestApply_Duplicate_Returns409(t *testing.T) {
	uc := &fakeApplicationUsecase{
		apply: func(_ context.Context, _ usecase.ApplyInput) (*domain.Application, error) {
			return nil, domain.ErrAlreadyApplied
		},
	}
	w := postJSON(t, newApplicationEngine(uc, "seeker-1"), "/applications/apply",
		`{"jobId":"job-1","resumeUrl":"https://example.com/cv.pdf","coverLetter":"Hello"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestApply_UnknownJob_Returns404(t *testing.T) {
	uc := &fakeApplicationUsecase{
		apply: func(_ context.Context, _ usecase.ApplyInput) (*domain.Application, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	w := postJSON(t, newApplicationEngine(uc, "seeker-1"), "/applications/apply",
		`{"jobId":"gone","resumeUrl":"https://example.com/cv.pdf","coverLetter":"Hello"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestApply_Success_Returns201(t *testing.T) {
	uc := &fakeApplicationUsecase{
		apply: func(_ context.Context, input usecase.ApplyInput) (*domain.Application, error) {
			return &domain.Application{ID: "app-1", SeekerID: input.SeekerID, JobID: input.JobID, Status: domain.StatusApplied}, nil
		},
	}
	w := postJSON(t, newApplicationEngine(uc, "seeker-1"), "/applications/apply",
		`{"jobId":"job-1","resumeUrl":"https://example.com/cv.pdf","coverLetter":"Hello"}`)
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
}

// ---- ListMine ----

func TestListMine_OrphanedJobSerializesAsNull(t *testing.T) {
	uc := &fakeApplicationUsecase{
		listMine: func(_ context.Context, _ string) ([]*domain.Application, error) {
			return []*domain.Application{
				{ID: "app-1", JobID: "job-1", Job: &domain.JobSummary{ID: "job-1", Title: "Backend Engineer"}},
				{ID: "app-2", JobID: "job-2", Job: nil},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/my", nil)
	newApplicationEngine(uc, "seeker-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var items []struct {
		ID  string          `json:"id"`
		Job json.RawMessage `json:"job"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if string(items[1].Job) != "null" {
		t.Errorf("orphaned job = %s, want null", items[1].Job)
	}
}

// ---- UpdateStatus ----

func TestUpdateStatus_UnknownTarget_Returns400(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/applications/app-1/status", strings.NewReader(`{"status":"Pending"}`))
	req.Header.Set("Content-Type", "application/json")
	newApplicationEngine(&fakeApplicationUsecase{}, "rec-1").ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateStatus_ForeignRecruiter_Returns403(t *testing.T) {
	uc := &fakeApplicationUsecase{
		updateStatus: func(_ context.Context, _, _ string, _ domain.ApplicationStatus) (*domain.Application, error) {
			return nil, domain.ErrNotJobOwner
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/applications/app-1/status", strings.NewReader(`{"status":"Viewed"}`))
	req.Header.Set("Content-Type", "application/json")
	newApplicationEngine(uc, "rec-2").ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestUpdateStatus_OrphanedApplication_Returns404(t *testing.T) {
	uc := &fakeApplicationUsecase{
		updateStatus: func(_ context.Context, _, _ string, _ domain.ApplicationStatus) (*domain.Application, error) {
			return nil, domain.ErrJobNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/applications/app-1/status", strings.NewReader(`{"status":"Viewed"}`))
	req.Header.Set("Content-Type", "application/json")
	newApplicationEngine(uc, "rec-1").ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

// ---- Update ----

func TestUpdateApplication_PartialBody_Returns400(t *testing.T) {
	// The overwrite is wholesale, so every text field is required.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/applications/app-1", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	newApplicationEngine(&fakeApplicationUsecase{}, "seeker-1").ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateApplication_ForeignSeeker_Returns403(t *testing.T) {
	uc := &fakeApplicationUsecase{
		updateContent: func(_ context.Context, _, _ string, _ repository.UpdateApplicationInput) (*domain.Application, error) {
			return nil, domain.ErrNotApplicationOwner
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/applications/app-1", strings.NewReader(
		`{"name":"Alice","email":"alice@example.com","resumeUrl":"https://example.com/cv.pdf","coverLetter":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	newApplicationEngine(uc, "seeker-2").ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

// ---- Delete ----

func TestWithdraw_Missing_Returns404(t *testing.T) {
	uc := &fakeApplicationUsecase{
		withdraw: func(_ context.Context, _, _ string) error {
			return domain.ErrApplicationNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/applications/nope", nil)
	newApplicationEngine(uc, "seeker-1").ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestWithdraw_Owner_Returns200(t *testing.T) {
	uc := &fakeApplicationUsecase{
		withdraw: func(_ context.Context, _, _ string) error { return nil },
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/applications/app-1", nil)
	newApplicationEngine(uc, "seeker-1").ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
