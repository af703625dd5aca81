package models

import "time"

// DefaultPassingScore is the percentage threshold used when a quiz does not set one.
const DefaultPassingScore = 70

// Quiz represents a quiz based on the 'quizzes' table
type Quiz struct {
	ID               int64            `json:"id" db:"id"`
	Title            string           `json:"title" db:"title"`
	CourseID         *int64           `json:"courseId,omitempty" db:"course_id"`
	CreatorID        int64            `json:"creatorId" db:"creator_id"`
	PassingScore     int              `json:"passingScore" db:"passing_score"`
	ModerationStatus ModerationStatus `json:"moderationStatus" db:"moderation_status"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`

	Questions []QuizQuestion `json:"questions,omitempty"`
}

// QuizQuestion represents a single question belonging to a quiz
type QuizQuestion struct {
	ID            int64    `json:"id" db:"id"`
	QuizID        int64    `json:"quizId" db:"quiz_id"`
	Prompt        string   `json:"prompt" db:"prompt"`
	Options       []string `json:"options" db:"options"`
	CorrectOption int      `json:"-" db:"correct_option"`
	Position      int      `json:"position" db:"position"`
}

// QuizAttempt is an append-only record of one scored submission.
// The passed flag is frozen at submission time against the quiz's passing
// score and is never recomputed.
type QuizAttempt struct {
	ID             int64     `json:"id" db:"id"`
	QuizID         int64     `json:"quizId" db:"quiz_id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	Score          int       `json:"score" db:"score"`
	TotalQuestions int       `json:"totalQuestions" db:"total_questions"`
	Passed         bool      `json:"passed" db:"passed"`
	CompletedAt    time.Time `json:"completedAt" db:"completed_at"`
}

// ScorePercent returns the attempt score as a percentage of total questions.
func (a QuizAttempt) ScorePercent() float64 {
	if a.TotalQuestions == 0 {
		return 0
	}
	return float64(a.Score) / float64(a.TotalQuestions) * 100
}
