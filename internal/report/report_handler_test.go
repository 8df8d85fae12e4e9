package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HikaruIzuno/dailyreport-system/internal/domain"
	"github.com/HikaruIzuno/dailyreport-system/internal/report"
	reporterrors "github.com/HikaruIzuno/dailyreport-system/internal/report/errors"
	"github.com/HikaruIzuno/dailyreport-system/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeReportService struct {
	ValidateUniquenessFn func(ctx context.Context, draft report.ReportDraft) error
	CreateFn             func(ctx context.Context, actor domain.CurrentActor, req report.CreateReportRequest) (report.ReportResponse, error)
	GetAllFn             func(ctx context.Context, actor domain.CurrentActor) ([]report.ReportResponse, error)
	GetByIDFn            func(ctx context.Context, id string) (report.ReportResponse, error)
	UpdateFn             func(ctx context.Context, id string, req report.UpdateReportRequest) (report.ReportResponse, error)
	DeleteFn             func(ctx context.Context, id string, actor domain.CurrentActor) error
}

func (f *fakeReportService) ValidateUniqueness(ctx context.Context, draft report.ReportDraft) error {
	return f.ValidateUniquenessFn(ctx, draft)
}
func (f *fakeReportService) Create(ctx context.Context, actor domain.CurrentActor, req report.CreateReportRequest) (report.ReportResponse, error) {
	return f.CreateFn(ctx, actor, req)
}
func (f *fakeReportService) GetAll(ctx context.Context, actor domain.CurrentActor) ([]report.ReportResponse, error) {
	return f.GetAllFn(ctx, actor)
}
func (f *fakeReportService) GetByID(ctx context.Context, id string) (report.ReportResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeReportService) Update(ctx context.Context, id string, req report.UpdateReportRequest) (report.ReportResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeReportService) Delete(ctx context.Context, id string, actor domain.CurrentActor) error {
	return f.DeleteFn(ctx, id, actor)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func TestReportHandler_Create(t *testing.T) {
	t.Run("actor flows from auth context into the service", func(t *testing.T) {
		svc := &fakeReportService{
			CreateFn: func(ctx context.Context, actor domain.CurrentActor, req report.CreateReportRequest) (report.ReportResponse, error) {
				assert.Equal(t, "EMP001", actor.Code)
				assert.Equal(t, domain.RoleGeneral, actor.Role)
				assert.Equal(t, "2026-03-01", req.ReportDate)
				return report.ReportResponse{
					ID:           uuid.NewString(),
					ReportDate:   req.ReportDate,
					Title:        req.Title,
					EmployeeCode: actor.Code,
				}, nil
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"report_date":"2026-03-01","title":"Daily progress","content":"Done things."}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("employee_code", "EMP001")
		c.Set("role", "GENERAL")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Daily progress")
	})

	t.Run("missing title -> 400", func(t *testing.T) {
		svc := &fakeReportService{}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"report_date":"2026-03-01","content":"no title"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("date conflict -> 409", func(t *testing.T) {
		svc := &fakeReportService{
			CreateFn: func(ctx context.Context, actor domain.CurrentActor, req report.CreateReportRequest) (report.ReportResponse, error) {
				return report.ReportResponse{}, reporterrors.ErrReportDateTaken
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"report_date":"2026-03-01","title":"Dup","content":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("employee_code", "EMP001")
		c.Set("role", "GENERAL")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestReportHandler_GetAll(t *testing.T) {
	t.Run("passes the actor down for visibility filtering", func(t *testing.T) {
		svc := &fakeReportService{
			GetAllFn: func(ctx context.Context, actor domain.CurrentActor) ([]report.ReportResponse, error) {
				assert.Equal(t, "EMP001", actor.Code)
				assert.Equal(t, domain.RoleGeneral, actor.Role)
				return []report.ReportResponse{
					{ID: uuid.NewString(), ReportDate: "2026-03-01", EmployeeCode: "EMP001"},
				}, nil
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
		c.Set("employee_code", "EMP001")
		c.Set("role", "GENERAL")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2026-03-01")
	})
}

func TestReportHandler_GetByID(t *testing.T) {
	t.Run("malformed id -> 400", func(t *testing.T) {
		svc := &fakeReportService{
			GetByIDFn: func(ctx context.Context, id string) (report.ReportResponse, error) {
				return report.ReportResponse{}, reporterrors.ErrInvalidReportID
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/reports/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing report -> 404", func(t *testing.T) {
		svc := &fakeReportService{
			GetByIDFn: func(ctx context.Context, id string) (report.ReportResponse, error) {
				return report.ReportResponse{}, reporterrors.ErrReportNotFound
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.NewString()
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReportHandler_Update(t *testing.T) {
	t.Run("partial body reaches the service untouched", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeReportService{
			UpdateFn: func(ctx context.Context, gotID string, req report.UpdateReportRequest) (report.ReportResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, "Revised", req.Title)
				assert.Empty(t, req.ReportDate)
				assert.Empty(t, req.Content)
				return report.ReportResponse{ID: id, Title: req.Title}, nil
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"title":"Revised"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/reports/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Revised")
	})
}

func TestReportHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeReportService{
			DeleteFn: func(ctx context.Context, gotID string, actor domain.CurrentActor) error {
				assert.Equal(t, id, gotID)
				assert.Equal(t, "EMP001", actor.Code)
				return nil
			},
		}
		h := report.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/reports/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set("employee_code", "EMP001")
		c.Set("role", "GENERAL")

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
