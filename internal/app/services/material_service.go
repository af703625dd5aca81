package services

import (
	"context"
	"fmt"

	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/helpers"
)

// MaterialStore is the persistence surface the material service depends on
type MaterialStore interface {
	List(ctx context.Context, q dto.MaterialQuery) ([]models.Material, int64, error)
	DistinctTopics(ctx context.Context, includeUnapproved bool) ([]string, error)
	GetByID(ctx context.Context, id int64) (*models.Material, error)
	Create(ctx context.Context, m *models.Material) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	IncrementViewCount(ctx context.Context, id int64) error
	IncrementDownloadCount(ctx context.Context, id int64) error
}

// MaterialService defines the interface for material operations
type MaterialService interface {
	ListMaterials(ctx context.Context, q dto.MaterialQuery, requesterRole models.Role) (*dto.MaterialListResponse, error)
	GetMaterial(ctx context.Context, id, requesterID int64, requesterRole models.Role) (*models.Material, error)
	CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest, uploaderID int64) (*models.Material, error)
	UpdateMaterial(ctx context.Context, id int64, req *dto.UpdateMaterialRequest, requesterID int64, requesterRole models.Role) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id, requesterID int64, requesterRole models.Role) error
	RegisterDownload(ctx context.Context, id, requesterID int64, requesterRole models.Role) (*models.Material, error)
}

type materialServiceImpl struct {
	store MaterialStore
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(store MaterialStore) MaterialService {
	return &materialServiceImpl{store: store}
}

// ListMaterials runs the filtered, sorted, paginated materials query. Only
// admins ever see materials outside the approved moderation state. The topics
// list covers the whole visibility-filtered collection, not the current page.
func (s *materialServiceImpl) ListMaterials(ctx context.Context, q dto.MaterialQuery, requesterRole models.Role) (*dto.MaterialListResponse, error) {
	q.Page, q.Limit = helpers.ClampPageLimit(q.Page, q.Limit)
	q.IncludeUnapproved = requesterRole == models.RoleAdmin

	materials, total, err := s.store.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error listing materials: %w", err)
	}

	topics, err := s.store.DistinctTopics(ctx, q.IncludeUnapproved)
	if err != nil {
		return nil, fmt.Errorf("error listing topics: %w", err)
	}

	return &dto.MaterialListResponse{
		Materials:  materials,
		Pagination: helpers.NewPaginationInfo(total, q.Page, q.Limit),
		Topics:     topics,
	}, nil
}

// GetMaterial retrieves one material, registering a view. A material outside
// the approved state is only visible to admins and its uploader; everyone
// else gets not-found rather than a hint that it exists.
func (s *materialServiceImpl) GetMaterial(ctx context.Context, id, requesterID int64, requesterRole models.Role) (*models.Material, error) {
	material, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canSeeMaterial(material, requesterID, requesterRole) {
		return nil, apperrors.ErrMaterialNotFound
	}

	if err := s.store.IncrementViewCount(ctx, id); err != nil {
		return nil, fmt.Errorf("error registering view: %w", err)
	}
	material.ViewCount++

	return material, nil
}

// CreateMaterial records uploaded material metadata in pending state
func (s *materialServiceImpl) CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest, uploaderID int64) (*models.Material, error) {
	material := &models.Material{
		Title:        req.Title,
		Description:  req.Description,
		FileType:     req.FileType,
		FileURL:      req.FileURL,
		MaterialType: models.MaterialType(req.MaterialType),
		CourseID:     req.CourseID,
		Level:        req.Level,
		Semester:     req.Semester,
		Topic:        req.Topic,
		UploaderID:   uploaderID,
	}

	id, err := s.store.Create(ctx, material)
	if err != nil {
		return nil, fmt.Errorf("error creating material: %w", err)
	}

	return s.store.GetByID(ctx, id)
}

// UpdateMaterial applies a partial metadata update, restricted to the
// uploader and admins
func (s *materialServiceImpl) UpdateMaterial(ctx context.Context, id int64, req *dto.UpdateMaterialRequest, requesterID int64, requesterRole models.Role) (*models.Material, error) {
	material, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material.UploaderID != requesterID && requesterRole != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Topic != nil {
		fields["topic"] = *req.Topic
	}
	if req.Level != nil {
		fields["level"] = *req.Level
	}
	if req.Semester != nil {
		fields["semester"] = *req.Semester
	}

	if err := s.store.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// DeleteMaterial removes a material, restricted to the uploader and admins
func (s *materialServiceImpl) DeleteMaterial(ctx context.Context, id, requesterID int64, requesterRole models.Role) error {
	material, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if material.UploaderID != requesterID && requesterRole != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	return s.store.Delete(ctx, id)
}

// RegisterDownload bumps the download counter and returns the material
func (s *materialServiceImpl) RegisterDownload(ctx context.Context, id, requesterID int64, requesterRole models.Role) (*models.Material, error) {
	material, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canSeeMaterial(material, requesterID, requesterRole) {
		return nil, apperrors.ErrMaterialNotFound
	}

	if err := s.store.IncrementDownloadCount(ctx, id); err != nil {
		return nil, fmt.Errorf("error registering download: %w", err)
	}
	material.DownloadCount++

	return material, nil
}

func canSeeMaterial(m *models.Material, requesterID int64, requesterRole models.Role) bool {
	if m.ModerationStatus == models.ModerationApproved {
		return true
	}
	return requesterRole == models.RoleAdmin || m.UploaderID == requesterID
}
