package models

import "time"

// CoveragePreference stores a user's selected reporting date range.
// It only pre-fills and constrains report entry; it is never validated
// against existing reports.
type CoveragePreference struct {
	ID           uint   `gorm:"primaryKey"`
	EmployeeID   uint   `gorm:"uniqueIndex;not null"`
	CoverageFrom string `gorm:"size:10"`
	CoverageTo   string `gorm:"size:10"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
