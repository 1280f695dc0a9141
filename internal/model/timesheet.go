package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timesheet records hours worked by an employee on an activity for one day.
type Timesheet struct {
	ID         uint            `gorm:"primaryKey"`
	EmployeeID uint            `gorm:"not null;index"`
	ActivityID uint            `gorm:"index"`
	Hours      decimal.Decimal `gorm:"type:decimal(4,2);not null"`
	Date       time.Time       `gorm:"type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
	Activity *Activity `gorm:"foreignKey:ActivityID"`
}
