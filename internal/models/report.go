package models

import "time"

// Report is one parking-fee transaction for one calendar day.
// TransDate is normalized to YYYY-MM-DD before storage so the one-report-
// per-day rule compares calendar days regardless of the input's time zone;
// the composite unique index closes the check-then-insert race.
// VehicleModel is a description denormalized from the vehicle at write time
// ("type / model / plate"), not a live foreign key.
type Report struct {
	ID            uint   `gorm:"primaryKey"`
	EmployeeID    uint   `gorm:"index;uniqueIndex:idx_employee_trans_date;not null"`
	TransDate     string `gorm:"size:10;uniqueIndex:idx_employee_trans_date;not null"`
	CoverageFrom  string `gorm:"size:10"`
	CoverageTo    string `gorm:"size:10"`
	VehicleModel  string `gorm:"size:100"`
	AmountCentavo int64  `gorm:"not null"` // centavos, avoids float drift
	TempName      string `gorm:"size:64"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VehicleModelMaxLen is the storage budget for the denormalized description;
// longer compositions are truncated rather than rejected.
const VehicleModelMaxLen = 100
