package models

import "time"

// Institution defines an educational institution based on the 'institutions' table
type Institution struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ShortName string    `json:"shortName" db:"short_name"`
	Country   string    `json:"country" db:"country"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Programme defines a degree programme offered by an institution
type Programme struct {
	ID            int64        `json:"id" db:"id"`
	InstitutionID int64        `json:"institutionId" db:"institution_id"`
	Name          string       `json:"name" db:"name"`
	DurationYears int          `json:"durationYears" db:"duration_years"`
	Institution   *Institution `json:"institution,omitempty"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time    `json:"updatedAt" db:"updated_at"`
}

// Course defines a course within a programme. Its title is used as the label
// when grouping quiz attempts for performance aggregation.
type Course struct {
	ID          int64      `json:"id" db:"id"`
	ProgrammeID int64      `json:"programmeId" db:"programme_id"`
	Code        string     `json:"code" db:"code"`
	Title       string     `json:"title" db:"title"`
	Level       *int       `json:"level,omitempty" db:"level"`
	Semester    *int       `json:"semester,omitempty" db:"semester"`
	Programme   *Programme `json:"programme,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
