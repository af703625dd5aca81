package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/pkg/apperrors"
)

// QuizStore is the persistence surface the quiz service depends on
type QuizStore interface {
	Create(ctx context.Context, quiz *models.Quiz) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Quiz, error)
	List(ctx context.Context, includeUnapproved bool, status string) ([]models.Quiz, error)
	Delete(ctx context.Context, id int64) error
}

// AttemptWriter records scored submissions
type AttemptWriter interface {
	Create(ctx context.Context, attempt *models.QuizAttempt) (int64, error)
}

// QuizService defines the interface for quiz operations
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest, creatorID int64) (*models.Quiz, error)
	GetQuiz(ctx context.Context, id, requesterID int64, requesterRole models.Role) (*models.Quiz, error)
	ListQuizzes(ctx context.Context, requesterRole models.Role, status string) ([]models.Quiz, error)
	DeleteQuiz(ctx context.Context, id, requesterID int64, requesterRole models.Role) error
	SubmitAttempt(ctx context.Context, quizID, studentID int64, req *dto.SubmitAttemptRequest) (*models.QuizAttempt, error)
}

type quizServiceImpl struct {
	quizzes  QuizStore
	attempts AttemptWriter
	now      func() time.Time
}

// NewQuizService creates a new QuizService
func NewQuizService(quizzes QuizStore, attempts AttemptWriter) QuizService {
	return &quizServiceImpl{
		quizzes:  quizzes,
		attempts: attempts,
		now:      time.Now,
	}
}

// CreateQuiz records a new quiz with its questions in pending state
func (s *quizServiceImpl) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest, creatorID int64) (*models.Quiz, error) {
	passingScore := models.DefaultPassingScore
	if req.PassingScore != nil {
		passingScore = *req.PassingScore
	}

	quiz := &models.Quiz{
		Title:        req.Title,
		CourseID:     req.CourseID,
		CreatorID:    creatorID,
		PassingScore: passingScore,
	}
	for i, q := range req.Questions {
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("correct option index out of range for question %d", i+1))
		}
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Position:      i + 1,
		})
	}

	id, err := s.quizzes.Create(ctx, quiz)
	if err != nil {
		return nil, fmt.Errorf("error creating quiz: %w", err)
	}

	return s.quizzes.GetByID(ctx, id)
}

// GetQuiz retrieves a quiz. Unapproved quizzes are only visible to admins
// and their creator.
func (s *quizServiceImpl) GetQuiz(ctx context.Context, id, requesterID int64, requesterRole models.Role) (*models.Quiz, error) {
	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if quiz.ModerationStatus != models.ModerationApproved &&
		requesterRole != models.RoleAdmin && quiz.CreatorID != requesterID {
		return nil, apperrors.ErrQuizNotFound
	}

	return quiz, nil
}

// ListQuizzes lists quizzes, restricted to the approved set for non-admins
func (s *quizServiceImpl) ListQuizzes(ctx context.Context, requesterRole models.Role, status string) ([]models.Quiz, error) {
	return s.quizzes.List(ctx, requesterRole == models.RoleAdmin, status)
}

// DeleteQuiz removes a quiz, restricted to the creator and admins
func (s *quizServiceImpl) DeleteQuiz(ctx context.Context, id, requesterID int64, requesterRole models.Role) error {
	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quiz.CreatorID != requesterID && requesterRole != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	return s.quizzes.Delete(ctx, id)
}

// SubmitAttempt scores a submission against the quiz's answer key and
// appends the attempt. The passed flag is fixed at submission time against
// the quiz's passing score as it stands now; later quiz edits never change
// recorded attempts.
func (s *quizServiceImpl) SubmitAttempt(ctx context.Context, quizID, studentID int64, req *dto.SubmitAttemptRequest) (*models.QuizAttempt, error) {
	quiz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.ModerationStatus != models.ModerationApproved {
		return nil, apperrors.ErrQuizNotFound
	}
	if len(quiz.Questions) == 0 {
		return nil, apperrors.ErrQuizHasNoQuestions
	}
	if len(req.Answers) != len(quiz.Questions) {
		return nil, apperrors.ErrAnswerCountMismatch
	}

	score := 0
	for i, question := range quiz.Questions {
		if req.Answers[i] == question.CorrectOption {
			score++
		}
	}

	pct := float64(score) / float64(len(quiz.Questions)) * 100
	attempt := &models.QuizAttempt{
		QuizID:         quizID,
		StudentID:      studentID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Passed:         pct >= float64(quiz.PassingScore),
		CompletedAt:    s.now(),
	}

	id, err := s.attempts.Create(ctx, attempt)
	if err != nil {
		return nil, fmt.Errorf("error recording attempt: %w", err)
	}
	attempt.ID = id

	return attempt, nil
}
