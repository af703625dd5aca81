package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/helpers"
	"github.com/tobi/edushare/internal/pkg/logger"
)

// MaterialRepository handles material database operations. The list query
// carries the whole filter/sort/pagination pipeline so no full-table fetch
// ever reaches the application layer.
type MaterialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const (
	ratingJoin = "(SELECT material_id, AVG(value)::float8 AS avg_rating, COUNT(*) AS rating_count FROM ratings GROUP BY material_id) r ON r.material_id = m.id"
	reviewJoin = "(SELECT material_id, COUNT(*) AS review_count FROM reviews GROUP BY material_id) rv ON rv.material_id = m.id"
)

// List returns one page of materials matching the query, plus the total count
// of the filtered (pre-pagination) set. Filters are conjunctive; unknown
// filter values simply match nothing.
func (r *MaterialRepository) List(ctx context.Context, q dto.MaterialQuery) ([]models.Material, int64, error) {
	baseSelect := r.sb.Select(
		"m.id", "m.title", "m.description", "m.file_type", "m.file_url", "m.material_type",
		"m.course_id", "m.level", "m.semester", "m.topic", "m.uploader_id", "m.moderation_status",
		"m.view_count", "m.download_count", "m.created_at", "m.updated_at",
		"COALESCE(r.avg_rating, 0) AS average_rating",
		"COALESCE(r.rating_count, 0) AS rating_count",
		"COALESCE(rv.review_count, 0) AS review_count",
		"u.first_name || ' ' || u.last_name AS uploader_name",
		"u.role AS uploader_role",
	).
		From("materials m").
		Join("users u ON m.uploader_id = u.id").
		LeftJoin(ratingJoin).
		LeftJoin(reviewJoin)

	countSelect := r.sb.Select("COUNT(*)").
		From("materials m").
		Join("users u ON m.uploader_id = u.id")

	where := buildMaterialFilter(q)
	baseSelect = baseSelect.Where(where)
	countSelect = countSelect.Where(where)

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count materials query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count materials query")
		return nil, 0, fmt.Errorf("failed to count materials: %w", err)
	}

	if total == 0 {
		return []models.Material{}, 0, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(q.Page, q.Limit)
	baseSelect = baseSelect.OrderBy(mapMaterialSort(q.SortBy)).
		Limit(uint64(limit)).
		Offset(offset)

	querySql, queryArgs, err := baseSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list materials query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list materials query")
		return nil, 0, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	materials := []models.Material{}
	for rows.Next() {
		var m models.Material
		err := rows.Scan(
			&m.ID, &m.Title, &m.Description, &m.FileType, &m.FileURL, &m.MaterialType,
			&m.CourseID, &m.Level, &m.Semester, &m.Topic, &m.UploaderID, &m.ModerationStatus,
			&m.ViewCount, &m.DownloadCount, &m.CreatedAt, &m.UpdatedAt,
			&m.AverageRating, &m.RatingCount, &m.ReviewCount,
			&m.UploaderName, &m.UploaderRole,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan material row: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating material rows: %w", err)
	}

	logger.Debug().Int("page", q.Page).Int("limit", q.Limit).Int64("total", total).Int("returned", len(materials)).Msg("Fetched materials page")
	return materials, total, nil
}

// buildMaterialFilter translates a MaterialQuery into a conjunctive WHERE clause.
func buildMaterialFilter(q dto.MaterialQuery) squirrel.And {
	where := squirrel.And{}

	if !q.IncludeUnapproved {
		where = append(where, squirrel.Eq{"m.moderation_status": models.ModerationApproved})
	} else if q.Status != "" {
		where = append(where, squirrel.Eq{"m.moderation_status": q.Status})
	}
	if q.CourseID != nil {
		where = append(where, squirrel.Eq{"m.course_id": *q.CourseID})
	}
	if q.Level != nil {
		where = append(where, squirrel.Eq{"m.level": *q.Level})
	}
	if q.Semester != nil {
		where = append(where, squirrel.Eq{"m.semester": *q.Semester})
	}
	if q.Topic != "" {
		where = append(where, squirrel.ILike{"m.topic": "%" + strings.TrimSpace(q.Topic) + "%"})
	}
	if q.MaterialType != "" {
		where = append(where, squirrel.Eq{"m.material_type": q.MaterialType})
	}
	if q.UploaderRole != "" {
		where = append(where, squirrel.Eq{"u.role": strings.ToUpper(q.UploaderRole)})
	}
	if q.Search != "" {
		pattern := "%" + strings.TrimSpace(q.Search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"m.title": pattern},
			squirrel.ILike{"m.description": pattern},
		})
	}

	return where
}

// mapMaterialSort maps API sort names to ORDER BY clauses. Unknown values
// fall back to newest-first.
func mapMaterialSort(sortBy string) string {
	switch sortBy {
	case dto.SortOldest:
		return "m.created_at ASC"
	case dto.SortHighestRated:
		// Unrated materials carry a zero average and sort last
		return "average_rating DESC, m.created_at DESC"
	case dto.SortMostReviewed:
		return "review_count DESC, m.created_at DESC"
	case dto.SortAlphabetical:
		return "m.title ASC"
	case dto.SortNewest:
		fallthrough
	default:
		return "m.created_at DESC"
	}
}

// DistinctTopics returns the distinct non-null topics over the
// visibility-filtered collection. Per current design it reflects only the
// visibility filter, not any other active filters.
func (r *MaterialRepository) DistinctTopics(ctx context.Context, includeUnapproved bool) ([]string, error) {
	sel := r.sb.Select("DISTINCT topic").
		From("materials").
		Where("topic IS NOT NULL").
		OrderBy("topic ASC")

	if !includeUnapproved {
		sel = sel.Where(squirrel.Eq{"moderation_status": models.ModerationApproved})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build distinct topics query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct topics: %w", err)
	}
	defer rows.Close()

	topics := []string{}
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, fmt.Errorf("failed to scan topic row: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topic rows: %w", err)
	}

	return topics, nil
}

// GetByID retrieves a material by id including its aggregates
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	sql, args, err := r.sb.Select(
		"m.id", "m.title", "m.description", "m.file_type", "m.file_url", "m.material_type",
		"m.course_id", "m.level", "m.semester", "m.topic", "m.uploader_id", "m.moderation_status",
		"m.view_count", "m.download_count", "m.created_at", "m.updated_at",
		"COALESCE(r.avg_rating, 0) AS average_rating",
		"COALESCE(r.rating_count, 0) AS rating_count",
		"COALESCE(rv.review_count, 0) AS review_count",
		"u.first_name || ' ' || u.last_name AS uploader_name",
		"u.role AS uploader_role",
	).
		From("materials m").
		Join("users u ON m.uploader_id = u.id").
		LeftJoin(ratingJoin).
		LeftJoin(reviewJoin).
		Where(squirrel.Eq{"m.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get material query: %w", err)
	}

	var m models.Material
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&m.ID, &m.Title, &m.Description, &m.FileType, &m.FileURL, &m.MaterialType,
		&m.CourseID, &m.Level, &m.Semester, &m.Topic, &m.UploaderID, &m.ModerationStatus,
		&m.ViewCount, &m.DownloadCount, &m.CreatedAt, &m.UpdatedAt,
		&m.AverageRating, &m.RatingCount, &m.ReviewCount,
		&m.UploaderName, &m.UploaderRole,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("error querying material ID=%d: %w", id, err)
	}

	return &m, nil
}

// Create inserts a new material in pending moderation state
func (r *MaterialRepository) Create(ctx context.Context, m *models.Material) (int64, error) {
	sql, args, err := r.sb.Insert("materials").
		Columns("title", "description", "file_type", "file_url", "material_type",
			"course_id", "level", "semester", "topic", "uploader_id", "moderation_status").
		Values(m.Title, m.Description, m.FileType, m.FileURL, m.MaterialType,
			m.CourseID, m.Level, m.Semester, m.Topic, m.UploaderID, models.ModerationPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create material query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create material query")
		return 0, fmt.Errorf("error inserting material: %w", err)
	}

	logger.Info().Int64("materialID", id).Msg("Material created")
	return id, nil
}

// Update applies a partial metadata update to a material
func (r *MaterialRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("materials").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update material query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating material ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}

// Delete removes a material
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("materials").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete material query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting material ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	logger.Info().Int64("materialID", id).Msg("Material deleted")
	return nil
}

// SetModerationStatus moves a material between moderation states. Re-moderation
// of an already resolved material is allowed.
func (r *MaterialRepository) SetModerationStatus(ctx context.Context, id int64, status models.ModerationStatus) error {
	sql, args, err := r.sb.Update("materials").
		Set("moderation_status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build moderation update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error moderating material ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	logger.Info().Int64("materialID", id).Str("status", string(status)).Msg("Material moderation status updated")
	return nil
}

// IncrementViewCount bumps the view counter
func (r *MaterialRepository) IncrementViewCount(ctx context.Context, id int64) error {
	return r.incrementCounter(ctx, id, "view_count")
}

// IncrementDownloadCount bumps the download counter
func (r *MaterialRepository) IncrementDownloadCount(ctx context.Context, id int64) error {
	return r.incrementCounter(ctx, id, "download_count")
}

func (r *MaterialRepository) incrementCounter(ctx context.Context, id int64, column string) error {
	sql, args, err := r.sb.Update("materials").
		Set(column, squirrel.Expr(column+" + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build increment %s query: %w", column, err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error incrementing %s for material ID=%d: %w", column, id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}
