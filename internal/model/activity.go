package model

import "time"

// Activity is a billable or internal work category.
// Hidden activities (IsActive = false) stay referenced by old timesheets.
type Activity struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
