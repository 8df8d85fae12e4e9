package report

import (
	"errors"
	"strings"

	reporterrors "github.com/HikaruIzuno/dailyreport-system/internal/report/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// The partial unique index uq_reports_employee_date is the storage backstop
// for the in-process uniqueness check; a concurrent writer that slips past
// the check still surfaces as the same business error.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reporterrors.ErrReportNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_reports_employee_date" {
			return reporterrors.ErrReportDateTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_reports_employee_date") {
		return reporterrors.ErrReportDateTaken
	}

	return err
}
