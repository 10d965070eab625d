package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/mock"
	"github.com/MKhiriev/go-review-hub/internal/store"
	"github.com/MKhiriev/go-review-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCatalogSvc(t *testing.T, ctrl *gomock.Controller) (CatalogService, *mock.MockItemRepository) {
	t.Helper()
	mockItems := mock.NewMockItemRepository(ctrl)
	return NewCatalogService(mockItems, logger.Nop()), mockItems
}

func TestCatalogService_CreateItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockItems := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	item := models.Item{Name: "Coffee Grinder", Description: "Burr grinder", Category: "kitchen"}

	mockItems.EXPECT().CreateItem(ctx, item).DoAndReturn(
		func(_ context.Context, i models.Item) (models.Item, error) {
			i.ItemID = "item-1"
			return i, nil
		},
	)

	created, err := svc.CreateItem(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, "item-1", created.ItemID)
}

func TestCatalogService_CreateItem_NoName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, models.Item{Description: "nameless"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, ErrValidationNoItemName)
}

func TestCatalogService_CreateItem_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockItems := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockItems.EXPECT().CreateItem(ctx, gomock.Any()).Return(models.Item{}, store.ErrItemNameAlreadyExists)

	_, err := svc.CreateItem(ctx, models.Item{Name: "Coffee Grinder"})
	assert.ErrorIs(t, err, store.ErrItemNameAlreadyExists)
}

func TestCatalogService_GetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockItems := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockItems.EXPECT().GetItem(ctx, "item-1").Return(models.Item{ItemID: "item-1", Name: "Coffee Grinder"}, nil)

	found, err := svc.GetItem(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "Coffee Grinder", found.Name)

	_, err = svc.GetItem(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_ListItems_PassesCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockItems := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockItems.EXPECT().ListItems(ctx, "office").Return([]models.Item{{ItemID: "item-2", Category: "office"}}, nil)

	items, err := svc.ListItems(ctx, "office")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "office", items[0].Category)
}

func TestCatalogService_ListItemReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockItems := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockItems.EXPECT().ListItemReviews(ctx, "item-1").Return([]models.ItemReview{
		{Review: models.Review{ReviewID: "review-1", ItemID: "item-1", Rating: 5}, Username: "john"},
	}, nil)

	reviews, err := svc.ListItemReviews(ctx, "item-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "john", reviews[0].Username)

	_, err = svc.ListItemReviews(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
