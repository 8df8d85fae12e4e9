package report

import (
	"time"

	"github.com/google/uuid"
)

// Report is one daily report. Ownership is by employee identity; deleting an
// employee removes its reports, but a report never owns the employee row.
type Report struct {
	ID           uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	ReportDate   time.Time    `gorm:"column:report_date;type:date;not null"`
	Title        string       `gorm:"column:title;type:varchar(100);not null"`
	Content      string       `gorm:"column:content;type:text;not null"`
	EmployeeCode string       `gorm:"column:employee_code;type:varchar(10);not null;index"`
	DeleteFlag   bool         `gorm:"column:delete_flag;not null;default:false"`
	CreatedAt    time.Time    `gorm:"column:created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at"`
	Employee     *EmployeeRef `gorm:"foreignKey:EmployeeCode;references:Code"`
}

func (Report) TableName() string {
	return "reports"
}

// EmployeeRef is the read-only projection of the owning employee used when
// listing reports.
type EmployeeRef struct {
	Code string `gorm:"column:code;primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// DateOf normalizes a timestamp to its calendar day in UTC so two
// representations of the same report date always compare equal.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
