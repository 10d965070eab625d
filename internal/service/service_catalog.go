package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/store"
	"github.com/MKhiriev/go-review-hub/models"
)

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewCatalogService(itemRepository store.ItemRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// CreateItem adds a new item to the catalog. The name is the only required
// field; description and category may be empty.
func (c *catalogService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	if item.Name == "" {
		log.Error().Any("item", item).Msg("invalid item data provided")
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoItemName)
	}

	createdItem, err := c.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("name", item.Name).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

func (c *catalogService) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	log := logger.FromContext(ctx)

	if itemID == "" {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoItemID)
	}

	foundItem, err := c.itemRepository.GetItem(ctx, itemID)
	if err != nil {
		log.Err(err).Str("id", itemID).Msg("item search by id failed")
		return models.Item{}, fmt.Errorf("item search by id failed: %w", err)
	}

	return foundItem, nil
}

// ListItems returns the catalog, optionally narrowed to a single category.
// An empty category means no filter.
func (c *catalogService) ListItems(ctx context.Context, category string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	items, err := c.itemRepository.ListItems(ctx, category)
	if err != nil {
		log.Err(err).Str("category", category).Msg("listing items failed")
		return nil, fmt.Errorf("listing items failed: %w", err)
	}

	return items, nil
}

// ListItemReviews returns the public review feed of an item, each entry
// carrying the reviewer's display name.
func (c *catalogService) ListItemReviews(ctx context.Context, itemID string) ([]models.ItemReview, error) {
	log := logger.FromContext(ctx)

	if itemID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoItemID)
	}

	reviews, err := c.itemRepository.ListItemReviews(ctx, itemID)
	if err != nil {
		log.Err(err).Str("item_id", itemID).Msg("listing item reviews failed")
		return nil, fmt.Errorf("listing item reviews failed: %w", err)
	}

	return reviews, nil
}
