package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/pkg/logger"
)

// AttemptRepository handles quiz attempt persistence. Attempts are
// append-only: no exposed operation mutates or deletes them.
type AttemptRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttemptRepository creates a new AttemptRepository
func NewAttemptRepository(db *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a scored attempt record
func (r *AttemptRepository) Create(ctx context.Context, attempt *models.QuizAttempt) (int64, error) {
	sql, args, err := r.sb.Insert("quiz_attempts").
		Columns("quiz_id", "student_id", "score", "total_questions", "passed", "completed_at").
		Values(attempt.QuizID, attempt.StudentID, attempt.Score, attempt.TotalQuestions, attempt.Passed, attempt.CompletedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create attempt query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create attempt query")
		return 0, fmt.Errorf("error inserting quiz attempt: %w", err)
	}

	return id, nil
}

// ListByStudent retrieves all attempts for a student ordered by completion time
func (r *AttemptRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.QuizAttempt, error) {
	sql, args, err := r.sb.Select("id", "quiz_id", "student_id", "score", "total_questions", "passed", "completed_at").
		From("quiz_attempts").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("completed_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attempts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz attempts: %w", err)
	}
	defer rows.Close()

	attempts := []models.QuizAttempt{}
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.ID, &a.QuizID, &a.StudentID, &a.Score, &a.TotalQuestions, &a.Passed, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt row: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
