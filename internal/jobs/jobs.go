package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tobi/edushare/internal/app/repositories"
	"github.com/tobi/edushare/internal/pkg/logger"
)

// Scheduler runs recurring maintenance jobs
type Scheduler struct {
	cron      *cron.Cron
	tokenRepo *repositories.TokenRepository
}

// NewScheduler creates a new Scheduler
func NewScheduler(tokenRepo *repositories.TokenRepository) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		tokenRepo: tokenRepo,
	}
}

// Start registers all jobs and starts the scheduler
func (s *Scheduler) Start() error {
	// expired refresh tokens are purged nightly
	if _, err := s.cron.AddFunc("0 3 * * *", s.cleanupExpiredTokens); err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Msg("Background job scheduler started")
	return nil
}

// Stop stops the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Background job scheduler stopped")
}

func (s *Scheduler) cleanupExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	deleted, err := s.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Expired token cleanup failed")
		return
	}
	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Msg("Expired refresh tokens purged")
	}
}
