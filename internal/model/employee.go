package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the person timesheet entries are recorded against.
// Accrued balances are maintained in hours.
type Employee struct {
	ID               uint   `gorm:"primaryKey"`
	FirstName        string `gorm:"not null"`
	LastName         string `gorm:"not null"`
	Position         string
	Email            *string
	StartDate        *time.Time      `gorm:"type:date"`
	VacationAccrued  decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
	SickTimeAccrued  decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
	UnpaidTime       decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
	TotalHoursWorked decimal.Decimal `gorm:"type:decimal(9,2);not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
