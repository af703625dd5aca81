package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/dberrors"
)

// RatingRepository handles rating database operations
type RatingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert creates or replaces a user's rating of a material
func (r *RatingRepository) Upsert(ctx context.Context, userID, materialID int64, value int) error {
	sql, args, err := r.sb.Insert("ratings").
		Columns("user_id", "material_id", "value").
		Values(userID, materialID, value).
		Suffix("ON CONFLICT (user_id, material_id) DO UPDATE SET value = EXCLUDED.value, updated_at = ?", time.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert rating query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMaterialNotFound
		}
		return fmt.Errorf("error upserting rating: %w", err)
	}
	return nil
}

// Delete removes a user's rating of a material
func (r *RatingRepository) Delete(ctx context.Context, userID, materialID int64) error {
	sql, args, err := r.sb.Delete("ratings").
		Where(squirrel.Eq{"user_id": userID, "material_id": materialID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete rating query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting rating: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
