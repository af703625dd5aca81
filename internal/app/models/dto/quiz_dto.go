package dto

import (
	"time"

	"github.com/tobi/edushare/internal/app/models"
)

// CreateQuizRequest is the payload for creating a quiz with its questions
type CreateQuizRequest struct {
	Title        string                  `json:"title" binding:"required"`
	CourseID     *int64                  `json:"courseId,omitempty"`
	PassingScore *int                    `json:"passingScore,omitempty" binding:"omitempty,min=1,max=100"`
	Questions    []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// CreateQuestionRequest is one question within a quiz creation payload
type CreateQuestionRequest struct {
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectOption int      `json:"correctOption" binding:"min=0"`
}

// SubmitAttemptRequest carries a student's chosen option per question,
// ordered by question position.
type SubmitAttemptRequest struct {
	Answers []int `json:"answers" binding:"required,min=1"`
}

// AttemptResponse is the result of a scored submission
type AttemptResponse struct {
	ID             int64     `json:"id"`
	QuizID         int64     `json:"quizId"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	ScorePercent   int       `json:"scorePercent"`
	Passed         bool      `json:"passed"`
	CompletedAt    time.Time `json:"completedAt"`
}

// QuizResponse is the public view of a quiz (correct answers omitted)
type QuizResponse struct {
	ID               int64                 `json:"id"`
	Title            string                `json:"title"`
	CourseID         *int64                `json:"courseId,omitempty"`
	PassingScore     int                   `json:"passingScore"`
	ModerationStatus string                `json:"moderationStatus"`
	Questions        []models.QuizQuestion `json:"questions,omitempty"`
}

// FromQuiz converts a quiz model to its public view
func FromQuiz(q *models.Quiz) QuizResponse {
	return QuizResponse{
		ID:               q.ID,
		Title:            q.Title,
		CourseID:         q.CourseID,
		PassingScore:     q.PassingScore,
		ModerationStatus: string(q.ModerationStatus),
		Questions:        q.Questions,
	}
}
