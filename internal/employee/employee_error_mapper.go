package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/HikaruIzuno/dailyreport-system/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into business errors. The
// primary-key branch is the backstop for a concurrent writer racing past the
// in-process duplicate check.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "employees_pkey" {
			return employeeerrors.ErrEmployeeDuplicate
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "employees_pkey") {
		return employeeerrors.ErrEmployeeDuplicate
	}

	return err
}
