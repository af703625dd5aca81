package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/dberrors"
)

// ReviewRepository handles review database operations
type ReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert creates or replaces a user's review of a material
func (r *ReviewRepository) Upsert(ctx context.Context, userID, materialID int64, body string) error {
	sql, args, err := r.sb.Insert("reviews").
		Columns("user_id", "material_id", "body").
		Values(userID, materialID, body).
		Suffix("ON CONFLICT (user_id, material_id) DO UPDATE SET body = EXCLUDED.body, updated_at = ?", time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert review query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMaterialNotFound
		}
		return fmt.Errorf("error upserting review: %w", err)
	}
	return nil
}

// ListByMaterial retrieves reviews of a material, newest first
func (r *ReviewRepository) ListByMaterial(ctx context.Context, materialID int64) ([]models.Review, error) {
	sql, args, err := r.sb.Select(
		"rv.id", "rv.user_id", "rv.material_id", "rv.body", "rv.created_at", "rv.updated_at",
		"u.first_name || ' ' || u.last_name AS author_name",
	).
		From("reviews rv").
		Join("users u ON rv.user_id = u.id").
		Where(squirrel.Eq{"rv.material_id": materialID}).
		OrderBy("rv.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.MaterialID, &rev.Body, &rev.CreatedAt, &rev.UpdatedAt, &rev.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// Delete removes a user's review of a material
func (r *ReviewRepository) Delete(ctx context.Context, userID, materialID int64) error {
	sql, args, err := r.sb.Delete("reviews").
		Where(squirrel.Eq{"user_id": userID, "material_id": materialID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete review query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}
