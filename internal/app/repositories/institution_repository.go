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
	"github.com/tobi/edushare/internal/pkg/dberrors"
	"github.com/tobi/edushare/internal/pkg/logger"
)

// InstitutionRepository handles institution database operations
type InstitutionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(db *pgxpool.Pool) *InstitutionRepository {
	return &InstitutionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all institutions ordered by name
func (r *InstitutionRepository) GetAll(ctx context.Context) ([]models.Institution, error) {
	sql, args, err := r.sb.Select("id", "name", "short_name", "country", "created_at", "updated_at").
		From("institutions").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get institutions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query institutions: %w", err)
	}
	defer rows.Close()

	institutions := []models.Institution{}
	for rows.Next() {
		var inst models.Institution
		if err := rows.Scan(&inst.ID, &inst.Name, &inst.ShortName, &inst.Country, &inst.CreatedAt, &inst.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan institution row: %w", err)
		}
		institutions = append(institutions, inst)
	}
	return institutions, rows.Err()
}

// GetByID retrieves an institution by id
func (r *InstitutionRepository) GetByID(ctx context.Context, id int64) (*models.Institution, error) {
	sql, args, err := r.sb.Select("id", "name", "short_name", "country", "created_at", "updated_at").
		From("institutions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get institution query: %w", err)
	}

	var inst models.Institution
	err = r.db.QueryRow(ctx, sql, args...).Scan(&inst.ID, &inst.Name, &inst.ShortName, &inst.Country, &inst.CreatedAt, &inst.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("error querying institution ID=%d: %w", id, err)
	}
	return &inst, nil
}

// Create inserts a new institution
func (r *InstitutionRepository) Create(ctx context.Context, inst *models.Institution) (int64, error) {
	sql, args, err := r.sb.Insert("institutions").
		Columns("name", "short_name", "country").
		Values(inst.Name, inst.ShortName, inst.Country).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create institution query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrInstitutionAlreadyExists
		}
		return 0, fmt.Errorf("error inserting institution: %w", err)
	}

	logger.Info().Int64("institutionID", id).Str("name", inst.Name).Msg("Institution created")
	return id, nil
}

// Update applies a partial update to an institution
func (r *InstitutionRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("institutions").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update institution query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrInstitutionAlreadyExists
		}
		return fmt.Errorf("error updating institution ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstitutionNotFound
	}
	return nil
}

// Delete removes an institution
func (r *InstitutionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("institutions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete institution query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting institution ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstitutionNotFound
	}
	return nil
}
