package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/store"
	"github.com/MKhiriev/go-review-hub/models"
)

// favoriteService is the concrete implementation of FavoriteService.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository

	logger *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// CreateFavorite marks an item as a favorite of favorite.UserID. Marking the
// same item twice surfaces as store.ErrFavoriteAlreadyExists; a dangling item
// reference as store.ErrReferencedRowMissing.
func (f *favoriteService) CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	if favorite.ItemID == "" {
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoItemID)
	}

	createdFavorite, err := f.favoriteRepository.CreateFavorite(ctx, favorite)
	if err != nil {
		log.Err(err).Str("item_id", favorite.ItemID).Str("user_id", favorite.UserID).Msg("favorite creation ended with error")
		return models.Favorite{}, fmt.Errorf("favorite creation ended with error: %w", err)
	}

	return createdFavorite, nil
}

func (f *favoriteService) ListUserFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	favorites, err := f.favoriteRepository.ListUserFavorites(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("listing user favorites failed")
		return nil, fmt.Errorf("listing user favorites failed: %w", err)
	}

	return favorites, nil
}

// DeleteFavorite removes the caller's own favorite mark.
func (f *favoriteService) DeleteFavorite(ctx context.Context, favoriteID, userID string) error {
	log := logger.FromContext(ctx)

	if favoriteID == "" {
		return ErrInvalidDataProvided
	}

	if err := f.favoriteRepository.DeleteFavorite(ctx, favoriteID, userID); err != nil {
		log.Err(err).Str("id", favoriteID).Str("user_id", userID).Msg("favorite deletion ended with error")
		return fmt.Errorf("favorite deletion ended with error: %w", err)
	}

	return nil
}
