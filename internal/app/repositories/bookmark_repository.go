package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/dberrors"
)

// BookmarkRepository handles bookmark database operations
type BookmarkRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookmarkRepository creates a new BookmarkRepository
func NewBookmarkRepository(db *pgxpool.Pool) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Add creates a bookmark; adding the same material twice is a no-op
func (r *BookmarkRepository) Add(ctx context.Context, userID, materialID int64) error {
	sql, args, err := r.sb.Insert("bookmarks").
		Columns("user_id", "material_id").
		Values(userID, materialID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add bookmark query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMaterialNotFound
		}
		return fmt.Errorf("error adding bookmark: %w", err)
	}
	return nil
}

// Remove deletes a bookmark
func (r *BookmarkRepository) Remove(ctx context.Context, userID, materialID int64) error {
	sql, args, err := r.sb.Delete("bookmarks").
		Where(squirrel.Eq{"user_id": userID, "material_id": materialID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove bookmark query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing bookmark: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookmarkNotFound
	}
	return nil
}

// ListByUser retrieves a user's bookmarks with material titles, approved
// materials only so a later rejection hides the bookmarked material too.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	sql, args, err := r.sb.Select(
		"b.id", "b.user_id", "b.material_id", "b.created_at",
		"m.title", "m.material_type", "m.file_type",
	).
		From("bookmarks b").
		Join("materials m ON b.material_id = m.id").
		Where(squirrel.Eq{"b.user_id": userID, "m.moderation_status": models.ModerationApproved}).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list bookmarks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []models.Bookmark{}
	for rows.Next() {
		var b models.Bookmark
		var m models.Material
		if err := rows.Scan(&b.ID, &b.UserID, &b.MaterialID, &b.CreatedAt, &m.Title, &m.MaterialType, &m.FileType); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		m.ID = b.MaterialID
		b.Material = &m
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}
