package models

import "time"

// AuditLog records authenticated operations for the activity view.
type AuditLog struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"index;not null"`
	Method     string `gorm:"size:16"`
	Path       string `gorm:"size:255"`
	Action     string `gorm:"size:1024"`
	IP         string `gorm:"size:64"`
	UserAgent  string `gorm:"size:255"`
	CreatedAt  time.Time
}
