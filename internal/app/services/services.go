package services

import (
	"github.com/tobi/edushare/internal/app/repositories"
	"github.com/tobi/edushare/internal/pkg/auth"
)

// Services bundles all application services
type Services struct {
	Auth        AuthService
	Material    MaterialService
	Quiz        QuizService
	Performance PerformanceService
	Catalog     CatalogService
	Engagement  EngagementService
	Moderation  ModerationService
}

// NewServices wires all services onto the repository layer
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:        NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		Material:    NewMaterialService(repos.MaterialRepository),
		Quiz:        NewQuizService(repos.QuizRepository, repos.AttemptRepository),
		Performance: NewPerformanceService(repos.AttemptRepository, repos.QuizRepository, repos.CourseRepository),
		Catalog:     NewCatalogService(repos.InstitutionRepository, repos.ProgrammeRepository, repos.CourseRepository),
		Engagement:  NewEngagementService(repos.BookmarkRepository, repos.RatingRepository, repos.ReviewRepository, repos.MaterialRepository),
		Moderation:  NewModerationService(repos.MaterialRepository, repos.QuizRepository, repos.ReportRepository),
	}
}
