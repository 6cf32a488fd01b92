package models

import "time"

// User represents an employee account. EmployeeID is the sequential
// business identifier that scopes vehicles and reports; ID stays internal.
type User struct {
	ID            uint   `gorm:"primaryKey"`
	EmployeeID    uint   `gorm:"uniqueIndex;not null"`
	Username      string `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash  string `gorm:"size:255;not null"`
	FirstName     string `gorm:"size:64;not null"`
	LastName      string `gorm:"size:64"`
	Email         string `gorm:"size:128;uniqueIndex;not null"` // must be @gmail.com
	JobRole       string `gorm:"size:32;default:Employee"`
	ContactNumber string `gorm:"size:16"` // exactly 11 digits
	VehicleLimit  int    `gorm:"default:0"` // 0 = unlimited
	ResetToken    string `gorm:"size:64"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName joins first and last name the way the login response expects.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
