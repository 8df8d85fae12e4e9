package report

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Report) error
	FindByID(ctx context.Context, id string) (*Report, error)
	FindAll(ctx context.Context) ([]Report, error)
	FindByEmployee(ctx context.Context, employeeCode string) ([]Report, error)
	ExistsByDateAndEmployee(ctx context.Context, date time.Time, employeeCode, excludeID string) (bool, error)
	Update(ctx context.Context, r *Report) error
	DeleteByEmployee(ctx context.Context, employeeCode string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the gorm handle onto the given transaction so every
// statement issued through the returned repository joins the caller's
// commit-or-rollback instead of running on the pool.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Report, error) {
	var rows []Report
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("report_date DESC, employee_code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeCode string) ([]Report, error) {
	var rows []Report
	err := r.db.WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Order("report_date DESC").
		Find(&rows).Error
	return rows, err
}

// ExistsByDateAndEmployee checks the per-employee date uniqueness rule.
// Soft-deleted reports never conflict; excludeID keeps a record from
// conflicting with itself during updates and is empty on create.
func (r *repository) ExistsByDateAndEmployee(ctx context.Context, date time.Time, employeeCode, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Report{}).
		Where("employee_code = ?", employeeCode).
		Where("report_date = ?", date.Format("2006-01-02")).
		Where("delete_flag = ?", false)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Update(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(rep).Error
}

// DeleteByEmployee physically removes every report owned by the employee and
// reports how many rows went away. Used by the employee-delete cascade.
func (r *repository) DeleteByEmployee(ctx context.Context, employeeCode string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Delete(&Report{})
	return res.RowsAffected, res.Error
}
