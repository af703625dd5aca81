package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/tobi/edushare/internal/app/models"
	appRepos "github.com/tobi/edushare/internal/app/repositories"
	"github.com/tobi/edushare/internal/config"
	"github.com/tobi/edushare/internal/pkg/apperrors"
	"github.com/tobi/edushare/internal/pkg/auth"
	"github.com/tobi/edushare/internal/pkg/logger"
)

// CreateDefaultData seeds the default admin account so a fresh deployment
// has a working moderation login. Runs after migrations; reseeding an
// existing database is a no-op.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@edushare.app")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "changeme-admin")

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:              adminEmail,
		Password:           hash,
		FirstName:          "Platform",
		LastName:           "Admin",
		Role:               appModels.RoleAdmin,
		OnboardingComplete: true,
		IsActive:           true,
	}

	id, err := userRepo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			logger.Debug().Str("email", adminEmail).Msg("Admin account already seeded")
			return nil
		}
		return err
	}

	logger.Info().Int64("userId", id).Str("email", adminEmail).Msg("Default admin account created")
	return nil
}
