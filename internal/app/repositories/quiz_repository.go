package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/logger"
)

// QuizRepository handles quiz and quiz question database operations
type QuizRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuizRepository creates a new QuizRepository
func NewQuizRepository(db *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const quizColumns = "id, title, course_id, creator_id, passing_score, moderation_status, created_at, updated_at"

// Create inserts a quiz and its questions in one transaction
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin quiz transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insertQuiz, args, err := r.sb.Insert("quizzes").
		Columns("title", "course_id", "creator_id", "passing_score", "moderation_status").
		Values(quiz.Title, quiz.CourseID, quiz.CreatorID, quiz.PassingScore, models.ModerationPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create quiz query: %w", err)
	}

	var quizID int64
	if err := tx.QueryRow(ctx, insertQuiz, args...).Scan(&quizID); err != nil {
		return 0, fmt.Errorf("error inserting quiz: %w", err)
	}

	for i, q := range quiz.Questions {
		insertQuestion, qArgs, err := r.sb.Insert("quiz_questions").
			Columns("quiz_id", "prompt", "options", "correct_option", "position").
			Values(quizID, q.Prompt, q.Options, q.CorrectOption, i).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to build create question query: %w", err)
		}
		if _, err := tx.Exec(ctx, insertQuestion, qArgs...); err != nil {
			return 0, fmt.Errorf("error inserting quiz question: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit quiz transaction: %w", err)
	}

	logger.Info().Int64("quizID", quizID).Int("questions", len(quiz.Questions)).Msg("Quiz created")
	return quizID, nil
}

// GetByID retrieves a quiz with its questions ordered by position
func (r *QuizRepository) GetByID(ctx context.Context, id int64) (*models.Quiz, error) {
	sql, args, err := r.sb.Select(quizColumns).
		From("quizzes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get quiz query: %w", err)
	}

	var quiz models.Quiz
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&quiz.ID, &quiz.Title, &quiz.CourseID, &quiz.CreatorID,
		&quiz.PassingScore, &quiz.ModerationStatus, &quiz.CreatedAt, &quiz.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, fmt.Errorf("error querying quiz ID=%d: %w", id, err)
	}

	questions, err := r.getQuestions(ctx, id)
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions

	return &quiz, nil
}

func (r *QuizRepository) getQuestions(ctx context.Context, quizID int64) ([]models.QuizQuestion, error) {
	sql, args, err := r.sb.Select("id", "quiz_id", "prompt", "options", "correct_option", "position").
		From("quiz_questions").
		Where(squirrel.Eq{"quiz_id": quizID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz questions: %w", err)
	}
	defer rows.Close()

	questions := []models.QuizQuestion{}
	for rows.Next() {
		var q models.QuizQuestion
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Prompt, &q.Options, &q.CorrectOption, &q.Position); err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetByIDs retrieves a batch of quizzes (without questions) keyed by id.
// Used to resolve quiz attempts to courses with one lookup per distinct id.
func (r *QuizRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Quiz, error) {
	result := make(map[int64]models.Quiz, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	sql, args, err := r.sb.Select(quizColumns).
		From("quizzes").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get quizzes by ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var quiz models.Quiz
		err := rows.Scan(
			&quiz.ID, &quiz.Title, &quiz.CourseID, &quiz.CreatorID,
			&quiz.PassingScore, &quiz.ModerationStatus, &quiz.CreatedAt, &quiz.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz row: %w", err)
		}
		result[quiz.ID] = quiz
	}
	return result, rows.Err()
}

// List retrieves quizzes visible to the requester, optionally narrowed to a
// moderation status (admins only see non-approved states).
func (r *QuizRepository) List(ctx context.Context, includeUnapproved bool, status string) ([]models.Quiz, error) {
	sel := r.sb.Select(quizColumns).
		From("quizzes").
		OrderBy("created_at DESC")

	if !includeUnapproved {
		sel = sel.Where(squirrel.Eq{"moderation_status": models.ModerationApproved})
	} else if status != "" {
		sel = sel.Where(squirrel.Eq{"moderation_status": status})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list quizzes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []models.Quiz{}
	for rows.Next() {
		var quiz models.Quiz
		err := rows.Scan(
			&quiz.ID, &quiz.Title, &quiz.CourseID, &quiz.CreatorID,
			&quiz.PassingScore, &quiz.ModerationStatus, &quiz.CreatedAt, &quiz.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz row: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

// SetModerationStatus moves a quiz between moderation states
func (r *QuizRepository) SetModerationStatus(ctx context.Context, id int64, status models.ModerationStatus) error {
	sql, args, err := r.sb.Update("quizzes").
		Set("moderation_status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build quiz moderation query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error moderating quiz ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuizNotFound
	}

	logger.Info().Int64("quizID", id).Str("status", string(status)).Msg("Quiz moderation status updated")
	return nil
}

// Delete removes a quiz and, via cascade, its questions
func (r *QuizRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("quizzes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete quiz query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting quiz ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuizNotFound
	}
	return nil
}
