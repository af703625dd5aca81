package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const courseColumns = "id, programme_id, code, title, level, semester, created_at, updated_at"

// GetAll retrieves courses, optionally filtered by programme
func (r *CourseRepository) GetAll(ctx context.Context, programmeID *int64) ([]models.Course, error) {
	sel := r.sb.Select(courseColumns).
		From("courses").
		OrderBy("code ASC")

	if programmeID != nil {
		sel = sel.Where(squirrel.Eq{"programme_id": *programmeID})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.ProgrammeID, &c.Code, &c.Title, &c.Level, &c.Semester, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	var c models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.ProgrammeID, &c.Code, &c.Title, &c.Level, &c.Semester, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error querying course ID=%d: %w", id, err)
	}
	return &c, nil
}

// GetByIDs retrieves a batch of courses keyed by id. Used to resolve
// quiz attempts to course labels with one lookup per distinct id.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Course, error) {
	result := make(map[int64]models.Course, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	sql, args, err := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get courses by ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.ProgrammeID, &c.Code, &c.Title, &c.Level, &c.Semester, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		result[c.ID] = c
	}
	return result, rows.Err()
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("programme_id", "code", "title", "level", "semester").
		Values(c.ProgrammeID, c.Code, c.Title, c.Level, c.Semester).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting course: %w", err)
	}

	logger.Info().Int64("courseID", id).Str("code", c.Code).Msg("Course created")
	return id, nil
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
