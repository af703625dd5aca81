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
	"github.com/tobi/edushare/internal/pkg/logger"
)

// ReportRepository handles moderation report database operations
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create files a report against a material
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) (int64, error) {
	sql, args, err := r.sb.Insert("reports").
		Columns("reporter_id", "material_id", "reason", "status").
		Values(report.ReporterID, report.MaterialID, report.Reason, models.ReportPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create report query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrMaterialNotFound
		}
		return 0, fmt.Errorf("error inserting report: %w", err)
	}

	logger.Info().Int64("reportID", id).Int64("materialID", report.MaterialID).Msg("Report filed")
	return id, nil
}

// ListByStatus retrieves reports in a given status, oldest first
func (r *ReportRepository) ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.Report, error) {
	sql, args, err := r.sb.Select("id", "reporter_id", "material_id", "reason", "status", "created_at", "updated_at").
		From("reports").
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var rep models.Report
		if err := rows.Scan(&rep.ID, &rep.ReporterID, &rep.MaterialID, &rep.Reason, &rep.Status, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

// SetStatus resolves or dismisses a report
func (r *ReportRepository) SetStatus(ctx context.Context, id int64, status models.ReportStatus) error {
	sql, args, err := r.sb.Update("reports").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update report query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating report ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}
