package dto

import "github.com/tobi/edushare/internal/app/models"

// MaterialQuery captures the filter, sort and pagination parameters of the
// materials list endpoint. All filters are optional and conjunctive.
type MaterialQuery struct {
	CourseID     *int64
	Level        *int
	Semester     *int
	Topic        string
	MaterialType string
	UploaderRole string
	Search       string
	SortBy       string
	Page         int
	Limit        int

	// IncludeUnapproved is set only for admin requesters; everyone else is
	// restricted to approved materials.
	IncludeUnapproved bool

	// Status narrows to one moderation status. Only honored for admins.
	Status string
}

// Material sort orders
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortHighestRated = "highest_rated"
	SortMostReviewed = "most_reviewed"
	SortAlphabetical = "alphabetical"
)

// CreateMaterialRequest is the payload for uploading material metadata
type CreateMaterialRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	FileType     string  `json:"fileType" binding:"required"`
	FileURL      *string `json:"fileUrl,omitempty"`
	MaterialType string  `json:"materialType" binding:"required,oneof=lecture_notes textbook study_guide past_questions"`
	CourseID     *int64  `json:"courseId,omitempty"`
	Level        *int    `json:"level,omitempty" binding:"omitempty,min=100,max=500"`
	Semester     *int    `json:"semester,omitempty" binding:"omitempty,oneof=1 2"`
	Topic        *string `json:"topic,omitempty"`
}

// UpdateMaterialRequest is the payload for editing material metadata
type UpdateMaterialRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Topic       *string `json:"topic,omitempty"`
	Level       *int    `json:"level,omitempty" binding:"omitempty,min=100,max=500"`
	Semester    *int    `json:"semester,omitempty" binding:"omitempty,oneof=1 2"`
}

// MaterialListResponse is the materials page payload
type MaterialListResponse struct {
	Materials  []models.Material `json:"materials"`
	Pagination PaginationInfo    `json:"pagination"`
	Topics     []string          `json:"topics"`
}

// ModerationRequest resolves a pending material or quiz
type ModerationRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
