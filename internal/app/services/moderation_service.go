package services

import (
	"context"

	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/repositories"
	"github.com/tobi/edushare/internal/pkg/helpers"
	"github.com/tobi/edushare/internal/pkg/logger"
)

// ModerationStore is the moderation surface over materials
type ModerationStore interface {
	GetByID(ctx context.Context, id int64) (*models.Material, error)
	List(ctx context.Context, q dto.MaterialQuery) ([]models.Material, int64, error)
	SetModerationStatus(ctx context.Context, id int64, status models.ModerationStatus) error
}

// ModerationService defines the interface for content moderation and
// report handling
type ModerationService interface {
	ModerateMaterial(ctx context.Context, materialID int64, status models.ModerationStatus, reviewerID int64) error
	ModerateQuiz(ctx context.Context, quizID int64, status models.ModerationStatus, reviewerID int64) error
	GetModerationQueue(ctx context.Context, page, limit int) (*dto.MaterialListResponse, error)

	FileReport(ctx context.Context, reporterID, materialID int64, reason string) (*models.Report, error)
	GetReports(ctx context.Context, status models.ReportStatus) ([]models.Report, error)
	ResolveReport(ctx context.Context, reportID int64, status models.ReportStatus, reviewerID int64) error
}

type moderationServiceImpl struct {
	materials ModerationStore
	quizzes   *repositories.QuizRepository
	reports   *repositories.ReportRepository
}

// NewModerationService creates a new ModerationService
func NewModerationService(materials ModerationStore, quizzes *repositories.QuizRepository, reports *repositories.ReportRepository) ModerationService {
	return &moderationServiceImpl{
		materials: materials,
		quizzes:   quizzes,
		reports:   reports,
	}
}

// ModerateMaterial moves a material to the given moderation state. A
// previously moderated material may be re-moderated.
func (s *moderationServiceImpl) ModerateMaterial(ctx context.Context, materialID int64, status models.ModerationStatus, reviewerID int64) error {
	if _, err := s.materials.GetByID(ctx, materialID); err != nil {
		return err
	}
	if err := s.materials.SetModerationStatus(ctx, materialID, status); err != nil {
		return err
	}

	logger.Info().
		Int64("materialId", materialID).
		Str("status", string(status)).
		Int64("reviewerId", reviewerID).
		Msg("Material moderated")
	return nil
}

// ModerateQuiz moves a quiz to the given moderation state
func (s *moderationServiceImpl) ModerateQuiz(ctx context.Context, quizID int64, status models.ModerationStatus, reviewerID int64) error {
	if _, err := s.quizzes.GetByID(ctx, quizID); err != nil {
		return err
	}
	if err := s.quizzes.SetModerationStatus(ctx, quizID, status); err != nil {
		return err
	}

	logger.Info().
		Int64("quizId", quizID).
		Str("status", string(status)).
		Int64("reviewerId", reviewerID).
		Msg("Quiz moderated")
	return nil
}

// GetModerationQueue lists materials awaiting moderation, oldest first
func (s *moderationServiceImpl) GetModerationQueue(ctx context.Context, page, limit int) (*dto.MaterialListResponse, error) {
	page, limit = helpers.ClampPageLimit(page, limit)
	q := dto.MaterialQuery{
		Page:              page,
		Limit:             limit,
		IncludeUnapproved: true,
		Status:            string(models.ModerationPending),
		SortBy:            dto.SortOldest,
	}

	materials, total, err := s.materials.List(ctx, q)
	if err != nil {
		return nil, err
	}

	return &dto.MaterialListResponse{
		Materials:  materials,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
		Topics:     []string{},
	}, nil
}

// FileReport records a user's report against a material
func (s *moderationServiceImpl) FileReport(ctx context.Context, reporterID, materialID int64, reason string) (*models.Report, error) {
	report := &models.Report{
		MaterialID: materialID,
		ReporterID: reporterID,
		Reason:     reason,
		Status:     models.ReportPending,
	}
	id, err := s.reports.Create(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = id
	return report, nil
}

// GetReports lists reports in the given state
func (s *moderationServiceImpl) GetReports(ctx context.Context, status models.ReportStatus) ([]models.Report, error) {
	return s.reports.ListByStatus(ctx, status)
}

// ResolveReport closes a report as resolved or dismissed
func (s *moderationServiceImpl) ResolveReport(ctx context.Context, reportID int64, status models.ReportStatus, reviewerID int64) error {
	if err := s.reports.SetStatus(ctx, reportID, status); err != nil {
		return err
	}
	logger.Info().
		Int64("reportId", reportID).
		Str("status", string(status)).
		Int64("reviewerId", reviewerID).
		Msg("Report closed")
	return nil
}
