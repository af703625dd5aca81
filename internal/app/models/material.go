package models

import "time"

// Material represents an uploaded learning resource based on the 'materials' table.
// A non-admin user must never observe a material whose moderation status is not approved.
type Material struct {
	ID               int64            `json:"id" db:"id"`
	Title            string           `json:"title" db:"title"`
	Description      string           `json:"description" db:"description"`
	FileType         string           `json:"fileType" db:"file_type"`
	FileURL          *string          `json:"fileUrl,omitempty" db:"file_url"`
	MaterialType     MaterialType     `json:"materialType" db:"material_type"`
	CourseID         *int64           `json:"courseId,omitempty" db:"course_id"`
	Level            *int             `json:"level,omitempty" db:"level"`
	Semester         *int             `json:"semester,omitempty" db:"semester"`
	Topic            *string          `json:"topic,omitempty" db:"topic"`
	UploaderID       int64            `json:"uploaderId" db:"uploader_id"`
	ModerationStatus ModerationStatus `json:"moderationStatus" db:"moderation_status"`
	ViewCount        int              `json:"viewCount" db:"view_count"`
	DownloadCount    int              `json:"downloadCount" db:"download_count"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`

	// Aggregates computed by the list query, not stored columns
	AverageRating float64 `json:"averageRating" db:"average_rating"`
	RatingCount   int     `json:"ratingCount" db:"rating_count"`
	ReviewCount   int     `json:"reviewCount" db:"review_count"`

	// Uploader metadata resolved via join
	UploaderName string `json:"uploaderName,omitempty"`
	UploaderRole Role   `json:"uploaderRole,omitempty"`
}
