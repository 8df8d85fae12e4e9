package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/HikaruIzuno/dailyreport-system/internal/domain"
	employeeerrors "github.com/HikaruIzuno/dailyreport-system/internal/employee/errors"
	"github.com/HikaruIzuno/dailyreport-system/internal/events"
	"github.com/HikaruIzuno/dailyreport-system/internal/messaging/kafka"
	"github.com/HikaruIzuno/dailyreport-system/internal/report"
	"github.com/HikaruIzuno/dailyreport-system/internal/shared/contextutil"
	"github.com/HikaruIzuno/dailyreport-system/internal/shared/password"
	"github.com/HikaruIzuno/dailyreport-system/internal/shared/patch"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// EmployeeOptionsKey caches the active-employee list served to report forms.
const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)
	Update(ctx context.Context, code string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, code string, actor domain.CurrentActor) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	reports report.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, reports report.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, reports, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	reports report.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		reports: reports,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("code", req.Code),
	)

	if err := password.Validate(req.Password); err != nil {
		s.logger.Warn("create employee password rejected",
			zap.String("code", req.Code),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	role := domain.Role(req.Role)
	if !role.Valid() {
		s.logger.Warn("create employee role rejected",
			zap.String("code", req.Code),
			zap.String("role", req.Role),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// A soft-deleted employee still occupies its code: codes are never
	// reassigned to a different identity.
	_, err = qtx.FindByCode(ctx, req.Code)
	if err == nil {
		s.logger.Warn("create employee duplicate code", zap.String("code", req.Code))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create employee lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		s.logger.Error("create employee hash failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	now := time.Now().UTC()
	empl := &Employee{
		Code:       req.Code,
		Name:       req.Name,
		Password:   hashed,
		Role:       role,
		DeleteFlag: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:    "employee_created",
			RequestID:    rid,
			EmployeeCode: empl.Code,
			Role:         string(empl.Role),
			OccurredAt:   now,
		}
		if err := s.stageEvent(ctx, tx, empl.Code, event.EventType, event); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("code", empl.Code),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("code", empl.Code),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

// GetOptions serves the active-employee list shown on report forms, cached in
// Redis with singleflight protecting the fill.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		rows, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

// GetByCode returns the record regardless of its delete flag; visibility is
// the caller's call.
func (s *service) GetByCode(ctx context.Context, code string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by code requested", zap.String("code", code))
	empl, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		s.logger.Error("get employee by code failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, code string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("code", code),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	stored, err := qtx.FindByCode(ctx, code)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.String("code", code), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if stored.DeleteFlag {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	// An empty password keeps the stored hash. A supplied one is validated
	// and re-hashed; bcrypt salting makes the hash differ, so supplying any
	// password counts as a change.
	passwordHash := stored.Password
	if req.Password != "" {
		if err := password.Validate(req.Password); err != nil {
			s.logger.Warn("update employee password rejected", zap.String("code", code), zap.Error(err))
			return EmployeeResponse{}, err
		}
		passwordHash, err = password.Hash(req.Password)
		if err != nil {
			s.logger.Error("update employee hash failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	name := stored.Name
	if req.Name != "" {
		name = req.Name
	}
	role := stored.Role
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.Valid() {
			s.logger.Warn("update employee role rejected",
				zap.String("code", code),
				zap.String("role", req.Role),
			)
			return EmployeeResponse{}, employeeerrors.ErrInvalidRole
		}
	}

	changed := patch.Apply(
		patch.Field(&stored.Name, name),
		patch.Field(&stored.Role, role),
		patch.Field(&stored.Password, passwordHash),
	)

	if !changed {
		// Idempotence contract: nothing differed, no write, UpdatedAt as-is.
		if err := tx.Commit(); err != nil {
			return EmployeeResponse{}, err
		}
		s.logger.Info("update employee no-op", zap.String("code", code))
		return mapToResponse(*stored), nil
	}

	stored.UpdatedAt = time.Now().UTC()
	if err := qtx.Update(ctx, stored); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("code", code))

	return mapToResponse(*stored), nil
}

// Delete soft-deletes the employee and physically removes the reports it
// owns, in one transaction. The employee row stays behind as the audit
// record; its code is never reused.
func (s *service) Delete(ctx context.Context, code string, actor domain.CurrentActor) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("code", code),
		zap.String("actor", actor.Code),
	)

	if code == actor.Code {
		s.logger.Warn("delete employee refused: self delete", zap.String("code", code))
		return employeeerrors.ErrSelfDelete
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	stored, err := qtx.FindByCode(ctx, code)
	if err != nil {
		s.logger.Warn("delete employee fetch existing failed", zap.String("code", code), zap.Error(err))
		return mapRepositoryError(err)
	}
	if stored.DeleteFlag {
		return employeeerrors.ErrEmployeeNotFound
	}

	now := time.Now().UTC()
	stored.DeleteFlag = true
	stored.UpdatedAt = now

	if err := qtx.Update(ctx, stored); err != nil {
		s.logger.Error("delete employee persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	removed, err := s.reports.WithTx(tx).DeleteByEmployee(ctx, code)
	if err != nil {
		s.logger.Error("delete employee report cascade failed", zap.String("code", code), zap.Error(err))
		return err
	}

	if s.outbox != nil {
		event := events.EmployeeDeletedEvent{
			EventType:      "employee_deleted",
			RequestID:      rid,
			EmployeeCode:   code,
			DeletedBy:      actor.Code,
			ReportsRemoved: int(removed),
			OccurredAt:     now,
		}
		if err := s.stageEvent(ctx, tx, code, event.EventType, event); err != nil {
			s.logger.Error("delete employee outbox persist failed", zap.String("code", code), zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success",
		zap.String("code", code),
		zap.Int64("reports_removed", removed),
	)
	return nil
}

func (s *service) stageEvent(ctx context.Context, tx *sql.Tx, aggregateID, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		Code:       e.Code,
		Name:       e.Name,
		Role:       string(e.Role),
		DeleteFlag: e.DeleteFlag,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}
