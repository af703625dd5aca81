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

// ProgrammeRepository handles programme database operations
type ProgrammeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgrammeRepository creates a new ProgrammeRepository
func NewProgrammeRepository(db *pgxpool.Pool) *ProgrammeRepository {
	return &ProgrammeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves programmes, optionally filtered by institution
func (r *ProgrammeRepository) GetAll(ctx context.Context, institutionID *int64) ([]models.Programme, error) {
	sel := r.sb.Select(
		"p.id", "p.institution_id", "p.name", "p.duration_years", "p.created_at", "p.updated_at",
		"i.name AS institution_name", "i.short_name", "i.country",
	).
		From("programmes p").
		Join("institutions i ON p.institution_id = i.id").
		OrderBy("p.name ASC")

	if institutionID != nil {
		sel = sel.Where(squirrel.Eq{"p.institution_id": *institutionID})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get programmes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query programmes: %w", err)
	}
	defer rows.Close()

	programmes := []models.Programme{}
	for rows.Next() {
		var p models.Programme
		var instName, instShortName, instCountry string
		err := rows.Scan(
			&p.ID, &p.InstitutionID, &p.Name, &p.DurationYears, &p.CreatedAt, &p.UpdatedAt,
			&instName, &instShortName, &instCountry,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan programme row: %w", err)
		}
		p.Institution = &models.Institution{
			ID:        p.InstitutionID,
			Name:      instName,
			ShortName: instShortName,
			Country:   instCountry,
		}
		programmes = append(programmes, p)
	}
	return programmes, rows.Err()
}

// GetByID retrieves a programme by id
func (r *ProgrammeRepository) GetByID(ctx context.Context, id int64) (*models.Programme, error) {
	sql, args, err := r.sb.Select("id", "institution_id", "name", "duration_years", "created_at", "updated_at").
		From("programmes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get programme query: %w", err)
	}

	var p models.Programme
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.InstitutionID, &p.Name, &p.DurationYears, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgrammeNotFound
		}
		return nil, fmt.Errorf("error querying programme ID=%d: %w", id, err)
	}
	return &p, nil
}

// Create inserts a new programme
func (r *ProgrammeRepository) Create(ctx context.Context, p *models.Programme) (int64, error) {
	sql, args, err := r.sb.Insert("programmes").
		Columns("institution_id", "name", "duration_years").
		Values(p.InstitutionID, p.Name, p.DurationYears).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create programme query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting programme: %w", err)
	}

	logger.Info().Int64("programmeID", id).Msg("Programme created")
	return id, nil
}

// Delete removes a programme
func (r *ProgrammeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("programmes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete programme query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting programme ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgrammeNotFound
	}
	return nil
}
