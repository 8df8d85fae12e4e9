package report

import (
	"context"
	"database/sql"
	"time"

	"github.com/HikaruIzuno/dailyreport-system/internal/domain"
	reporterrors "github.com/HikaruIzuno/dailyreport-system/internal/report/errors"
	"github.com/HikaruIzuno/dailyreport-system/internal/shared/contextutil"
	"github.com/HikaruIzuno/dailyreport-system/internal/shared/patch"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ReportDraft carries the fields the per-employee date uniqueness rule
// inspects. ExcludeID is the draft's own id on update and empty on create.
type ReportDraft struct {
	ReportDate   time.Time
	EmployeeCode string
	ExcludeID    string
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	ValidateUniqueness(ctx context.Context, draft ReportDraft) error
	Create(ctx context.Context, actor domain.CurrentActor, req CreateReportRequest) (ReportResponse, error)
	GetAll(ctx context.Context, actor domain.CurrentActor) ([]ReportResponse, error)
	GetByID(ctx context.Context, id string) (ReportResponse, error)
	Update(ctx context.Context, id string, req UpdateReportRequest) (ReportResponse, error)
	Delete(ctx context.Context, id string, actor domain.CurrentActor) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// ValidateUniqueness succeeds trivially on a partial draft (no date or no
// owner yet); staged drafts must be able to pass through.
func (s *service) ValidateUniqueness(ctx context.Context, draft ReportDraft) error {
	if draft.ReportDate.IsZero() || draft.EmployeeCode == "" {
		return nil
	}
	return s.validateUniquenessWith(ctx, s.repo, draft)
}

func (s *service) validateUniquenessWith(ctx context.Context, repo Repository, draft ReportDraft) error {
	taken, err := repo.ExistsByDateAndEmployee(ctx, DateOf(draft.ReportDate), draft.EmployeeCode, draft.ExcludeID)
	if err != nil {
		return err
	}
	if taken {
		return reporterrors.ErrReportDateTaken
	}
	return nil
}

// Create stores a new report owned by the acting employee. The owner always
// comes from the actor, never from the request body.
func (s *service) Create(ctx context.Context, actor domain.CurrentActor, req CreateReportRequest) (ReportResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create report requested",
		zap.String("request_id", rid),
		zap.String("employee_code", actor.Code),
		zap.String("report_date", req.ReportDate),
	)

	reportDate, err := time.Parse(dateLayout, req.ReportDate)
	if err != nil {
		s.logger.Warn("create report invalid date",
			zap.String("report_date", req.ReportDate),
			zap.Error(err),
		)
		return ReportResponse{}, reporterrors.ErrInvalidReportDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// No exclusion id on create: the record does not exist yet.
	draft := ReportDraft{ReportDate: reportDate, EmployeeCode: actor.Code}
	if err := s.validateUniquenessWith(ctx, qtx, draft); err != nil {
		s.logger.Warn("create report date conflict",
			zap.String("employee_code", actor.Code),
			zap.String("report_date", req.ReportDate),
		)
		return ReportResponse{}, err
	}

	now := time.Now().UTC()
	rep := &Report{
		ID:           uuid.New(),
		ReportDate:   DateOf(reportDate),
		Title:        req.Title,
		Content:      req.Content,
		EmployeeCode: actor.Code,
		DeleteFlag:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := qtx.Create(ctx, rep); err != nil {
		s.logger.Error("create report persist failed", zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create report commit failed", zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("create report success",
		zap.String("request_id", rid),
		zap.String("report_id", rep.ID.String()),
		zap.String("employee_code", actor.Code),
	)

	return mapToResponse(*rep), nil
}

// GetAll lists every report, then narrows to what the actor may see: ADMIN
// gets everything, GENERAL only their own reports, input order preserved.
func (s *service) GetAll(ctx context.Context, actor domain.CurrentActor) ([]ReportResponse, error) {
	s.logger.Debug("get all reports requested", zap.String("actor", actor.Code))

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all reports failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	visible := VisibleReports(rows, actor)

	res := make([]ReportResponse, len(visible))
	for i, r := range visible {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReportResponse, error) {
	s.logger.Debug("get report by id requested", zap.String("report_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidReportID
	}

	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get report by id failed", zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*rep), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateReportRequest) (ReportResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update report requested",
		zap.String("request_id", rid),
		zap.String("report_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidReportID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	stored, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update report fetch existing failed", zap.String("report_id", id), zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}

	reportDate := DateOf(stored.ReportDate)
	if req.ReportDate != "" {
		parsed, err := time.Parse(dateLayout, req.ReportDate)
		if err != nil {
			s.logger.Warn("update report invalid date",
				zap.String("report_date", req.ReportDate),
				zap.Error(err),
			)
			return ReportResponse{}, reporterrors.ErrInvalidReportDate
		}
		reportDate = DateOf(parsed)
	}

	// The date check re-runs only when the date actually moves; editing
	// title or content alone must never conflict with the record's own
	// unchanged date. When it does re-run, the record's own id is excluded.
	if !reportDate.Equal(DateOf(stored.ReportDate)) {
		draft := ReportDraft{
			ReportDate:   reportDate,
			EmployeeCode: stored.EmployeeCode,
			ExcludeID:    stored.ID.String(),
		}
		if err := s.validateUniquenessWith(ctx, qtx, draft); err != nil {
			s.logger.Warn("update report date conflict",
				zap.String("report_id", id),
				zap.String("report_date", req.ReportDate),
			)
			return ReportResponse{}, err
		}
	}

	title := stored.Title
	if req.Title != "" {
		title = req.Title
	}
	content := stored.Content
	if req.Content != "" {
		content = req.Content
	}

	storedDate := DateOf(stored.ReportDate)
	changed := patch.Apply(
		patch.Field(&stored.Title, title),
		patch.Field(&stored.Content, content),
		patch.Time(&storedDate, reportDate),
	)
	stored.ReportDate = storedDate

	if !changed {
		if err := tx.Commit(); err != nil {
			return ReportResponse{}, err
		}
		s.logger.Info("update report no-op", zap.String("report_id", id))
		return mapToResponse(*stored), nil
	}

	stored.UpdatedAt = time.Now().UTC()
	if err := qtx.Update(ctx, stored); err != nil {
		s.logger.Error("update report persist failed", zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update report commit failed", zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("update report success", zap.String("report_id", id))

	return mapToResponse(*stored), nil
}

// Delete soft-deletes the report. Ownership is not enforced at this layer;
// route-level authorization decides who may reach it.
func (s *service) Delete(ctx context.Context, id string, actor domain.CurrentActor) error {
	s.logger.Debug("delete report requested",
		zap.String("report_id", id),
		zap.String("actor", actor.Code),
	)

	if _, err := uuid.Parse(id); err != nil {
		return reporterrors.ErrInvalidReportID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete report begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	stored, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("delete report fetch existing failed", zap.String("report_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if stored.DeleteFlag {
		return reporterrors.ErrReportNotFound
	}

	stored.DeleteFlag = true
	stored.UpdatedAt = time.Now().UTC()

	if err := qtx.Update(ctx, stored); err != nil {
		s.logger.Error("delete report persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete report commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete report success", zap.String("report_id", id))
	return nil
}

func mapToResponse(r Report) ReportResponse {
	resp := ReportResponse{
		ID:           r.ID.String(),
		ReportDate:   r.ReportDate.Format(dateLayout),
		Title:        r.Title,
		Content:      r.Content,
		EmployeeCode: r.EmployeeCode,
		DeleteFlag:   r.DeleteFlag,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.Name
	}
	return resp
}
