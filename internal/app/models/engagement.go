package models

import "time"

// Bookmark marks a material saved by a student
type Bookmark struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	MaterialID int64     `json:"materialId" db:"material_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	Material *Material `json:"material,omitempty"`
}

// Rating is a 1-5 star rating, unique per user and material
type Rating struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	MaterialID int64     `json:"materialId" db:"material_id"`
	Value      int       `json:"value" db:"value"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// Review is a free-text review, unique per user and material
type Review struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	MaterialID int64     `json:"materialId" db:"material_id"`
	Body       string    `json:"body" db:"body"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	AuthorName string `json:"authorName,omitempty"`
}

// Report is a moderation report filed against a material
type Report struct {
	ID         int64        `json:"id" db:"id"`
	ReporterID int64        `json:"reporterId" db:"reporter_id"`
	MaterialID int64        `json:"materialId" db:"material_id"`
	Reason     string       `json:"reason" db:"reason"`
	Status     ReportStatus `json:"status" db:"status"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`
}
