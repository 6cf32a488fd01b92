package models

import "time"

// Vehicle belongs to one employee. Plate/model/color are stored upper-cased.
// The composite unique index makes a duplicate plate a conflict, not a crash.
type Vehicle struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"index;uniqueIndex:idx_employee_plate;not null"`
	Type       string `gorm:"size:32;not null"` // Car / Motorcycle
	Model      string `gorm:"size:64;not null"`
	Plate      string `gorm:"size:16;uniqueIndex:idx_employee_plate;not null"`
	Color      string `gorm:"size:32"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
