package employee

import (
	"time"

	"github.com/HikaruIzuno/dailyreport-system/internal/domain"
)

// Employee is keyed by its business code. The code is immutable after
// creation and never reassigned to a different identity; soft-deleted rows
// keep occupying their code.
type Employee struct {
	Code       string      `gorm:"column:code;type:varchar(10);primaryKey"`
	Name       string      `gorm:"column:name;type:varchar(20);not null"`
	Password   string      `gorm:"column:password;type:varchar(255);not null"` // bcrypt hash, never plaintext
	Role       domain.Role `gorm:"column:role;type:varchar(10);not null;default:GENERAL"`
	DeleteFlag bool        `gorm:"column:delete_flag;not null;default:false"`
	CreatedAt  time.Time   `gorm:"column:created_at"`
	UpdatedAt  time.Time   `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
