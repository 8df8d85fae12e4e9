package report

import "github.com/HikaruIzuno/dailyreport-system/internal/domain"

// VisibleReports applies the role visibility rule: an ADMIN actor sees the
// whole input unchanged, a GENERAL actor sees only the reports they own.
// Input order is preserved either way.
func VisibleReports(all []Report, actor domain.CurrentActor) []Report {
	if actor.IsAdmin() {
		return all
	}

	visible := make([]Report, 0, len(all))
	for _, r := range all {
		if r.EmployeeCode == actor.Code {
			visible = append(visible, r)
		}
	}
	return visible
}
