package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/store"
	"github.com/MKhiriev/go-review-hub/models"
)

// reviewService is the concrete implementation of ReviewService. Mutation
// methods pass the caller's verified user ID straight through to the
// ownership-scoped repository statements; the service itself never decides
// ownership.
type reviewService struct {
	reviewRepository store.ReviewRepository

	logger *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

// validateReviewContent checks the author-controlled fields shared by create
// and update: a rating in the 1..5 range and non-empty review text.
func validateReviewContent(review models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationRatingOutOfRange)
	}
	if review.ReviewText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoReviewText)
	}
	return nil
}

// CreateReview publishes a review owned by review.UserID.
//
// Returns the persisted review or:
//   - ErrInvalidDataProvided if the item reference, rating, or text is invalid.
//   - A wrapped storage error — store.ErrReviewAlreadyExists when the author
//     already reviewed the item, store.ErrReferencedRowMissing when the item
//     does not exist.
func (r *reviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	if review.ItemID == "" {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoItemID)
	}
	if err := validateReviewContent(review); err != nil {
		log.Error().Any("review", review).Msg("invalid review data provided")
		return models.Review{}, err
	}

	createdReview, err := r.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		log.Err(err).Str("item_id", review.ItemID).Str("user_id", review.UserID).Msg("review creation ended with error")
		return models.Review{}, fmt.Errorf("review creation ended with error: %w", err)
	}

	return createdReview, nil
}

func (r *reviewService) GetReview(ctx context.Context, reviewID string) (models.Review, error) {
	log := logger.FromContext(ctx)

	if reviewID == "" {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoReviewID)
	}

	foundReview, err := r.reviewRepository.GetReview(ctx, reviewID)
	if err != nil {
		log.Err(err).Str("id", reviewID).Msg("review search by id failed")
		return models.Review{}, fmt.Errorf("review search by id failed: %w", err)
	}

	return foundReview, nil
}

func (r *reviewService) ListUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	reviews, err := r.reviewRepository.ListUserReviews(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("listing user reviews failed")
		return nil, fmt.Errorf("listing user reviews failed: %w", err)
	}

	return reviews, nil
}

// UpdateReview replaces the rating and text of the caller's own review.
// A missing review and a foreign one are indistinguishable to the caller —
// both surface as store.ErrReviewNotFound.
func (r *reviewService) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	if review.ReviewID == "" {
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoReviewID)
	}
	if err := validateReviewContent(review); err != nil {
		log.Error().Any("review", review).Msg("invalid review data provided")
		return models.Review{}, err
	}

	updatedReview, err := r.reviewRepository.UpdateReview(ctx, review)
	if err != nil {
		log.Err(err).Str("id", review.ReviewID).Str("user_id", review.UserID).Msg("review update ended with error")
		return models.Review{}, fmt.Errorf("review update ended with error: %w", err)
	}

	return updatedReview, nil
}

// DeleteReview removes the caller's own review together with its comments.
func (r *reviewService) DeleteReview(ctx context.Context, reviewID, userID string) error {
	log := logger.FromContext(ctx)

	if reviewID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoReviewID)
	}

	if err := r.reviewRepository.DeleteReview(ctx, reviewID, userID); err != nil {
		log.Err(err).Str("id", reviewID).Str("user_id", userID).Msg("review deletion ended with error")
		return fmt.Errorf("review deletion ended with error: %w", err)
	}

	return nil
}
