package model

import "time"

// Vacation request lifecycle: pending → approved | denied.
const (
	VacationPending  = "pending"
	VacationApproved = "approved"
	VacationDenied   = "denied"
)

type VacationRequest struct {
	ID            uint      `gorm:"primaryKey"`
	EmployeeID    uint      `gorm:"not null;index"`
	RequestDate   time.Time `gorm:"not null"`
	VacationStart time.Time `gorm:"type:date;not null"`
	VacationEnd   time.Time `gorm:"type:date;not null"`
	Status        string    `gorm:"type:varchar(10);not null;default:pending"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}
