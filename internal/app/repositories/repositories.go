package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all database repositories
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	InstitutionRepository *InstitutionRepository
	ProgrammeRepository   *ProgrammeRepository
	CourseRepository      *CourseRepository
	MaterialRepository    *MaterialRepository
	QuizRepository        *QuizRepository
	AttemptRepository     *AttemptRepository
	BookmarkRepository    *BookmarkRepository
	RatingRepository      *RatingRepository
	ReviewRepository      *ReviewRepository
	ReportRepository      *ReportRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		InstitutionRepository: NewInstitutionRepository(db),
		ProgrammeRepository:   NewProgrammeRepository(db),
		CourseRepository:      NewCourseRepository(db),
		MaterialRepository:    NewMaterialRepository(db),
		QuizRepository:        NewQuizRepository(db),
		AttemptRepository:     NewAttemptRepository(db),
		BookmarkRepository:    NewBookmarkRepository(db),
		RatingRepository:      NewRatingRepository(db),
		ReviewRepository:      NewReviewRepository(db),
		ReportRepository:      NewReportRepository(db),
	}
}
