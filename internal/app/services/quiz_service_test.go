package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/pkg/apperrors"
)

type fakeQuizStore struct {
	quizzes map[int64]*models.Quiz
	nextID  int64
	deleted []int64
}

func (f *fakeQuizStore) Create(_ context.Context, quiz *models.Quiz) (int64, error) {
	f.nextID++
	quiz.ID = f.nextID
	if f.quizzes == nil {
		f.quizzes = make(map[int64]*models.Quiz)
	}
	f.quizzes[quiz.ID] = quiz
	return quiz.ID, nil
}

func (f *fakeQuizStore) GetByID(_ context.Context, id int64) (*models.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, apperrors.ErrQuizNotFound
	}
	return quiz, nil
}

func (f *fakeQuizStore) List(_ context.Context, includeUnapproved bool, _ string) ([]models.Quiz, error) {
	var out []models.Quiz
	for _, q := range f.quizzes {
		if q.ModerationStatus == models.ModerationApproved || includeUnapproved {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuizStore) Delete(_ context.Context, id int64) error {
	delete(f.quizzes, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAttemptWriter struct {
	created []*models.QuizAttempt
}

func (f *fakeAttemptWriter) Create(_ context.Context, attempt *models.QuizAttempt) (int64, error) {
	f.created = append(f.created, attempt)
	return int64(len(f.created)), nil
}

func approvedQuiz(passingScore int, correct ...int) *models.Quiz {
	quiz := &models.Quiz{
		ID:               1,
		Title:            "Derivatives",
		CreatorID:        5,
		PassingScore:     passingScore,
		ModerationStatus: models.ModerationApproved,
	}
	for i, c := range correct {
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{
			Prompt:        "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: c,
			Position:      i + 1,
		})
	}
	return quiz
}

func newTestQuizService(store *fakeQuizStore, writer *fakeAttemptWriter) *quizServiceImpl {
	return &quizServiceImpl{
		quizzes:  store,
		attempts: writer,
		now:      func() time.Time { return time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC) },
	}
}

func TestSubmitAttempt_Scoring(t *testing.T) {
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: approvedQuiz(70, 0, 1, 2, 3)}}
	writer := &fakeAttemptWriter{}
	svc := newTestQuizService(store, writer)

	attempt, err := svc.SubmitAttempt(context.Background(), 1, 9, &dto.SubmitAttemptRequest{
		Answers: []int{0, 1, 2, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, attempt.Score)
	assert.Equal(t, 4, attempt.TotalQuestions)
	// 75% meets a passing score of 70
	assert.True(t, attempt.Passed)
	assert.Equal(t, int64(9), attempt.StudentID)
	require.Len(t, writer.created, 1)
}

func TestSubmitAttempt_PassedComparesExactPercentage(t *testing.T) {
	// 2 of 3 correct is 66.67%, which does not reach a bar of 67; the
	// percentage is compared as-is, never rounded up
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: approvedQuiz(67, 0, 0, 0)}}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	attempt, err := svc.SubmitAttempt(context.Background(), 1, 9, &dto.SubmitAttemptRequest{
		Answers: []int{0, 0, 1},
	})
	require.NoError(t, err)
	assert.False(t, attempt.Passed)
}

func TestSubmitAttempt_PassedAtExactThreshold(t *testing.T) {
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: approvedQuiz(75, 0, 0, 0, 0)}}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	// 3 of 4 is exactly 75%
	attempt, err := svc.SubmitAttempt(context.Background(), 1, 9, &dto.SubmitAttemptRequest{
		Answers: []int{0, 0, 0, 1},
	})
	require.NoError(t, err)
	assert.True(t, attempt.Passed)
}

func TestSubmitAttempt_FailsBelowThreshold(t *testing.T) {
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: approvedQuiz(70, 0, 0)}}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	attempt, err := svc.SubmitAttempt(context.Background(), 1, 9, &dto.SubmitAttemptRequest{
		Answers: []int{0, 1},
	})
	require.NoError(t, err)
	assert.False(t, attempt.Passed)
}

func TestSubmitAttempt_AnswerCountMismatch(t *testing.T) {
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: approvedQuiz(70, 0, 1)}}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	_, err := svc.SubmitAttempt(context.Background(), 1, 9, &dto.SubmitAttemptRequest{
		Answers: []int{0},
	})
	assert.ErrorIs(t, err, apperrors.ErrAnswerCountMismatch)
}

func TestSubmitAttempt_QuizWithoutQuestions(t *testing.T) {
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: approvedQuiz(70)}}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	_, err := svc.SubmitAttempt(context.Background(), 1, 9, &dto.SubmitAttemptRequest{
		Answers: []int{0},
	})
	assert.ErrorIs(t, err, apperrors.ErrQuizHasNoQuestions)
}

func TestSubmitAttempt_UnapprovedQuizHidden(t *testing.T) {
	quiz := approvedQuiz(70, 0)
	quiz.ModerationStatus = models.ModerationPending
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: quiz}}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	_, err := svc.SubmitAttempt(context.Background(), 1, 9, &dto.SubmitAttemptRequest{
		Answers: []int{0},
	})
	assert.ErrorIs(t, err, apperrors.ErrQuizNotFound)
}

func TestGetQuiz_UnapprovedVisibility(t *testing.T) {
	quiz := approvedQuiz(70, 0)
	quiz.ModerationStatus = models.ModerationPending
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: quiz}}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	// creator sees their own pending quiz
	got, err := svc.GetQuiz(context.Background(), 1, quiz.CreatorID, models.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, got.ID)

	// admins see everything
	_, err = svc.GetQuiz(context.Background(), 1, 99, models.RoleAdmin)
	require.NoError(t, err)

	// anyone else gets not found, not forbidden
	_, err = svc.GetQuiz(context.Background(), 1, 99, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrQuizNotFound)
}

func TestCreateQuiz_RejectsOutOfRangeAnswerKey(t *testing.T) {
	svc := newTestQuizService(&fakeQuizStore{}, &fakeAttemptWriter{})

	_, err := svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{
		Title: "Derivatives",
		Questions: []dto.CreateQuestionRequest{
			{Prompt: "q", Options: []string{"a", "b"}, CorrectOption: 2},
		},
	}, 5)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateQuiz_DefaultPassingScore(t *testing.T) {
	store := &fakeQuizStore{}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	quiz, err := svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{
		Title: "Derivatives",
		Questions: []dto.CreateQuestionRequest{
			{Prompt: "q", Options: []string{"a", "b"}, CorrectOption: 1},
		},
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPassingScore, quiz.PassingScore)
	assert.Equal(t, 1, quiz.Questions[0].Position)
}

func TestDeleteQuiz_OnlyCreatorOrAdmin(t *testing.T) {
	store := &fakeQuizStore{quizzes: map[int64]*models.Quiz{1: approvedQuiz(70, 0)}}
	svc := newTestQuizService(store, &fakeAttemptWriter{})

	err := svc.DeleteQuiz(context.Background(), 1, 99, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.DeleteQuiz(context.Background(), 1, 5, models.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, store.deleted)
}
