package report_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/HikaruIzuno/dailyreport-system/internal/report"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	gormlib "gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (report.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	poolDB, poolMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gormlib.Open(postgres.New(postgres.Config{Conn: poolDB}), &gormlib.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	return report.NewRepository(gormDB), poolMock, poolDB
}

func TestRepository_WithTx_RoutesStatementsToTransaction(t *testing.T) {
	repo, poolMock, poolDB := setupRepoTest(t)
	defer poolDB.Close()

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	txMock.ExpectExec(`DELETE FROM "reports"`).
		WithArgs("EMP001").
		WillReturnResult(sqlmock.NewResult(0, 2))
	txMock.ExpectRollback()

	removed, err := repo.WithTx(tx).DeleteByEmployee(context.Background(), "EMP001")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.NoError(t, tx.Rollback())

	assert.NoError(t, txMock.ExpectationsWereMet())
	// Nothing may leak onto the pool connection while the transaction is
	// in flight.
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestRepository_WithTx_LeavesBaseRepositoryOnPool(t *testing.T) {
	repo, poolMock, poolDB := setupRepoTest(t)
	defer poolDB.Close()

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)
	_ = repo.WithTx(tx)

	poolMock.ExpectQuery(`SELECT \* FROM "reports"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	reports, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, reports)

	assert.NoError(t, poolMock.ExpectationsWereMet())
}
