package model

import (
	"time"
)

// User stores system accounts with role-based access.
// Role: "admin" | "employee" | "supervisor"
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	Role           string `gorm:"type:varchar(20);not null"`
	IsActive       bool   `gorm:"not null;default:true"`
	// DeactivationDate is non-null exactly when IsActive is false.
	DeactivationDate *time.Time
	PhoneNumber      *string
	Email            *string
	// NotificationPreferences holds a client-defined JSON document.
	NotificationPreferences *string `gorm:"type:json"`
	TwoFactorEnabled        bool    `gorm:"not null;default:false"`
	Feedback                *string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
