package models

// Role defines the user role type
type Role string

const (
	RoleStudent     Role = "STUDENT"
	RoleInstructor  Role = "INSTRUCTOR"
	RoleInstitution Role = "INSTITUTION"
	RoleAdmin       Role = "ADMIN"
)

// ModerationStatus is the tri-state visibility flag on uploaded content.
// Non-admin users only ever see approved content.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// MaterialType categorizes a learning material
type MaterialType string

const (
	MaterialLectureNotes  MaterialType = "lecture_notes"
	MaterialTextbook      MaterialType = "textbook"
	MaterialStudyGuide    MaterialType = "study_guide"
	MaterialPastQuestions MaterialType = "past_questions"
)

// ReportStatus tracks a moderation report's lifecycle
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)
