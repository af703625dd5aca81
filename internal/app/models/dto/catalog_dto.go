package dto

// CreateInstitutionRequest is the payload for creating an institution
type CreateInstitutionRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"shortName" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

// UpdateInstitutionRequest is the payload for updating an institution
type UpdateInstitutionRequest struct {
	Name      *string `json:"name,omitempty"`
	ShortName *string `json:"shortName,omitempty"`
	Country   *string `json:"country,omitempty"`
}

// CreateProgrammeRequest is the payload for creating a programme
type CreateProgrammeRequest struct {
	InstitutionID int64  `json:"institutionId" binding:"required"`
	Name          string `json:"name" binding:"required"`
	DurationYears int    `json:"durationYears" binding:"required,min=1,max=10"`
}

// CreateCourseRequest is the payload for creating a course
type CreateCourseRequest struct {
	ProgrammeID int64  `json:"programmeId" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Level       *int   `json:"level,omitempty" binding:"omitempty,min=100,max=500"`
	Semester    *int   `json:"semester,omitempty" binding:"omitempty,oneof=1 2"`
}
