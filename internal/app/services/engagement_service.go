package services

import (
	"context"

	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/repositories"
	"github.com/tobi/edushare/internal/pkg/apperrors"
)

// EngagementService defines the interface for bookmarks, ratings and reviews
type EngagementService interface {
	AddBookmark(ctx context.Context, userID, materialID int64) error
	RemoveBookmark(ctx context.Context, userID, materialID int64) error
	GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)

	RateMaterial(ctx context.Context, userID, materialID int64, value int) error
	RemoveRating(ctx context.Context, userID, materialID int64) error

	ReviewMaterial(ctx context.Context, userID, materialID int64, body string) error
	GetReviews(ctx context.Context, materialID int64) ([]models.Review, error)
	RemoveReview(ctx context.Context, userID, materialID int64) error
}

type engagementServiceImpl struct {
	bookmarks *repositories.BookmarkRepository
	ratings   *repositories.RatingRepository
	reviews   *repositories.ReviewRepository
	materials MaterialStore
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	bookmarks *repositories.BookmarkRepository,
	ratings *repositories.RatingRepository,
	reviews *repositories.ReviewRepository,
	materials MaterialStore,
) EngagementService {
	return &engagementServiceImpl{
		bookmarks: bookmarks,
		ratings:   ratings,
		reviews:   reviews,
		materials: materials,
	}
}

// AddBookmark bookmarks an approved material for a user. Bookmarking the
// same material twice is a no-op.
func (s *engagementServiceImpl) AddBookmark(ctx context.Context, userID, materialID int64) error {
	if err := s.requireApproved(ctx, materialID); err != nil {
		return err
	}
	return s.bookmarks.Add(ctx, userID, materialID)
}

func (s *engagementServiceImpl) RemoveBookmark(ctx context.Context, userID, materialID int64) error {
	return s.bookmarks.Remove(ctx, userID, materialID)
}

func (s *engagementServiceImpl) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	return s.bookmarks.ListByUser(ctx, userID)
}

// RateMaterial records or replaces a user's 1-5 star rating
func (s *engagementServiceImpl) RateMaterial(ctx context.Context, userID, materialID int64, value int) error {
	if value < 1 || value > 5 {
		return apperrors.ErrRatingOutOfRange
	}
	if err := s.requireApproved(ctx, materialID); err != nil {
		return err
	}
	return s.ratings.Upsert(ctx, userID, materialID, value)
}

func (s *engagementServiceImpl) RemoveRating(ctx context.Context, userID, materialID int64) error {
	return s.ratings.Delete(ctx, userID, materialID)
}

// ReviewMaterial records or replaces a user's written review
func (s *engagementServiceImpl) ReviewMaterial(ctx context.Context, userID, materialID int64, body string) error {
	if err := s.requireApproved(ctx, materialID); err != nil {
		return err
	}
	return s.reviews.Upsert(ctx, userID, materialID, body)
}

func (s *engagementServiceImpl) GetReviews(ctx context.Context, materialID int64) ([]models.Review, error) {
	if err := s.requireApproved(ctx, materialID); err != nil {
		return nil, err
	}
	return s.reviews.ListByMaterial(ctx, materialID)
}

func (s *engagementServiceImpl) RemoveReview(ctx context.Context, userID, materialID int64) error {
	return s.reviews.Delete(ctx, userID, materialID)
}

func (s *engagementServiceImpl) requireApproved(ctx context.Context, materialID int64) error {
	material, err := s.materials.GetByID(ctx, materialID)
	if err != nil {
		return err
	}
	if material.ModerationStatus != models.ModerationApproved {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}
