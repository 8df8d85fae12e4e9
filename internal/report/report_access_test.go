package report_test

import (
	"testing"
	"time"

	"github.com/HikaruIzuno/dailyreport-system/internal/domain"
	"github.com/HikaruIzuno/dailyreport-system/internal/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVisibleReports(t *testing.T) {
	all := []report.Report{
		{ID: uuid.New(), ReportDate: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), EmployeeCode: "EMP002"},
		{ID: uuid.New(), ReportDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), EmployeeCode: "EMP001"},
		{ID: uuid.New(), ReportDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), EmployeeCode: "EMP003"},
		{ID: uuid.New(), ReportDate: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), EmployeeCode: "EMP001"},
	}

	t.Run("admin passes through untouched", func(t *testing.T) {
		admin := domain.CurrentActor{Code: "ADMIN01", Role: domain.RoleAdmin}

		got := report.VisibleReports(all, admin)

		assert.Len(t, got, 4)
		for i := range all {
			assert.Equal(t, all[i].ID, got[i].ID)
		}
	})

	t.Run("general keeps only their own rows", func(t *testing.T) {
		actor := domain.CurrentActor{Code: "EMP001", Role: domain.RoleGeneral}

		got := report.VisibleReports(all, actor)

		assert.Len(t, got, 2)
		for _, r := range got {
			assert.Equal(t, "EMP001", r.EmployeeCode)
		}
	})

	t.Run("input order is preserved", func(t *testing.T) {
		actor := domain.CurrentActor{Code: "EMP001", Role: domain.RoleGeneral}

		got := report.VisibleReports(all, actor)

		assert.Equal(t, all[1].ID, got[0].ID)
		assert.Equal(t, all[3].ID, got[1].ID)
	})

	t.Run("no matches yields empty, not nil panic", func(t *testing.T) {
		actor := domain.CurrentActor{Code: "GHOST", Role: domain.RoleGeneral}

		got := report.VisibleReports(all, actor)

		assert.Empty(t, got)
	})

	t.Run("identity is the code, not the role", func(t *testing.T) {
		// An admin whose own code matches some rows still sees everything.
		adminOwner := domain.CurrentActor{Code: "EMP001", Role: domain.RoleAdmin}

		got := report.VisibleReports(all, adminOwner)

		assert.Len(t, got, 4)
	})
}
