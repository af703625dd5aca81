package services

import (
	"context"
	"strings"

	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/repositories"
)

// CatalogService defines the interface for institution, programme and
// course management
type CatalogService interface {
	GetInstitutions(ctx context.Context) ([]models.Institution, error)
	GetInstitution(ctx context.Context, id int64) (*models.Institution, error)
	CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest) (*models.Institution, error)
	UpdateInstitution(ctx context.Context, id int64, req *dto.UpdateInstitutionRequest) (*models.Institution, error)
	DeleteInstitution(ctx context.Context, id int64) error

	GetProgrammes(ctx context.Context, institutionID *int64) ([]models.Programme, error)
	CreateProgramme(ctx context.Context, req *dto.CreateProgrammeRequest) (*models.Programme, error)
	DeleteProgramme(ctx context.Context, id int64) error

	GetCourses(ctx context.Context, programmeID *int64) ([]models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type catalogServiceImpl struct {
	institutions *repositories.InstitutionRepository
	programmes   *repositories.ProgrammeRepository
	courses      *repositories.CourseRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	institutions *repositories.InstitutionRepository,
	programmes *repositories.ProgrammeRepository,
	courses *repositories.CourseRepository,
) CatalogService {
	return &catalogServiceImpl{
		institutions: institutions,
		programmes:   programmes,
		courses:      courses,
	}
}

func (s *catalogServiceImpl) GetInstitutions(ctx context.Context) ([]models.Institution, error) {
	return s.institutions.GetAll(ctx)
}

func (s *catalogServiceImpl) GetInstitution(ctx context.Context, id int64) (*models.Institution, error) {
	return s.institutions.GetByID(ctx, id)
}

func (s *catalogServiceImpl) CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest) (*models.Institution, error) {
	inst := &models.Institution{
		Name:      req.Name,
		ShortName: strings.ToUpper(req.ShortName),
		Country:   req.Country,
	}
	id, err := s.institutions.Create(ctx, inst)
	if err != nil {
		return nil, err
	}
	return s.institutions.GetByID(ctx, id)
}

func (s *catalogServiceImpl) UpdateInstitution(ctx context.Context, id int64, req *dto.UpdateInstitutionRequest) (*models.Institution, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ShortName != nil {
		fields["short_name"] = strings.ToUpper(*req.ShortName)
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if err := s.institutions.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.institutions.GetByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteInstitution(ctx context.Context, id int64) error {
	return s.institutions.Delete(ctx, id)
}

func (s *catalogServiceImpl) GetProgrammes(ctx context.Context, institutionID *int64) ([]models.Programme, error) {
	return s.programmes.GetAll(ctx, institutionID)
}

func (s *catalogServiceImpl) CreateProgramme(ctx context.Context, req *dto.CreateProgrammeRequest) (*models.Programme, error) {
	// provides a clearer error than the FK violation would
	if _, err := s.institutions.GetByID(ctx, req.InstitutionID); err != nil {
		return nil, err
	}

	p := &models.Programme{
		Name:          req.Name,
		InstitutionID: req.InstitutionID,
		DurationYears: req.DurationYears,
	}
	id, err := s.programmes.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.programmes.GetByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteProgramme(ctx context.Context, id int64) error {
	return s.programmes.Delete(ctx, id)
}

func (s *catalogServiceImpl) GetCourses(ctx context.Context, programmeID *int64) ([]models.Course, error) {
	return s.courses.GetAll(ctx, programmeID)
}

func (s *catalogServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	// FK check up front for a clearer error
	if _, err := s.programmes.GetByID(ctx, req.ProgrammeID); err != nil {
		return nil, err
	}

	c := &models.Course{
		ProgrammeID: req.ProgrammeID,
		Code:        strings.ToUpper(req.Code),
		Title:       req.Title,
		Level:       req.Level,
		Semester:    req.Semester,
	}
	id, err := s.courses.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return s.courses.GetByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}
