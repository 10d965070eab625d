package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/service"
	"github.com/MKhiriev/go-review-hub/internal/store"
	"github.com/MKhiriev/go-review-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock resource services
// ─────────────────────────────────────────────

type mockCatalogService struct {
	createItemFn      func(ctx context.Context, item models.Item) (models.Item, error)
	getItemFn         func(ctx context.Context, itemID string) (models.Item, error)
	listItemsFn       func(ctx context.Context, category string) ([]models.Item, error)
	listItemReviewsFn func(ctx context.Context, itemID string) ([]models.ItemReview, error)
}

func (m *mockCatalogService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return m.createItemFn(ctx, item)
}

func (m *mockCatalogService) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	return m.getItemFn(ctx, itemID)
}

func (m *mockCatalogService) ListItems(ctx context.Context, category string) ([]models.Item, error) {
	return m.listItemsFn(ctx, category)
}

func (m *mockCatalogService) ListItemReviews(ctx context.Context, itemID string) ([]models.ItemReview, error) {
	return m.listItemReviewsFn(ctx, itemID)
}

type mockReviewService struct {
	createReviewFn    func(ctx context.Context, review models.Review) (models.Review, error)
	getReviewFn       func(ctx context.Context, reviewID string) (models.Review, error)
	listUserReviewsFn func(ctx context.Context, userID string) ([]models.Review, error)
	updateReviewFn    func(ctx context.Context, review models.Review) (models.Review, error)
	deleteReviewFn    func(ctx context.Context, reviewID, userID string) error
}

func (m *mockReviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	return m.createReviewFn(ctx, review)
}

func (m *mockReviewService) GetReview(ctx context.Context, reviewID string) (models.Review, error) {
	return m.getReviewFn(ctx, reviewID)
}

func (m *mockReviewService) ListUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	return m.listUserReviewsFn(ctx, userID)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	return m.updateReviewFn(ctx, review)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, reviewID, userID string) error {
	return m.deleteReviewFn(ctx, reviewID, userID)
}

type mockCommentService struct {
	createCommentFn    func(ctx context.Context, comment models.Comment) (models.Comment, error)
	listUserCommentsFn func(ctx context.Context, userID string) ([]models.Comment, error)
	updateCommentFn    func(ctx context.Context, comment models.Comment) (models.Comment, error)
	deleteCommentFn    func(ctx context.Context, commentID, userID string) error
}

func (m *mockCommentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	return m.createCommentFn(ctx, comment)
}

func (m *mockCommentService) ListUserComments(ctx context.Context, userID string) ([]models.Comment, error) {
	return m.listUserCommentsFn(ctx, userID)
}

func (m *mockCommentService) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	return m.updateCommentFn(ctx, comment)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	return m.deleteCommentFn(ctx, commentID, userID)
}

type mockFavoriteService struct {
	createFavoriteFn    func(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	listUserFavoritesFn func(ctx context.Context, userID string) ([]models.Favorite, error)
	deleteFavoriteFn    func(ctx context.Context, favoriteID, userID string) error
}

func (m *mockFavoriteService) CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	return m.createFavoriteFn(ctx, favorite)
}

func (m *mockFavoriteService) ListUserFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	return m.listUserFavoritesFn(ctx, userID)
}

func (m *mockFavoriteService) DeleteFavorite(ctx context.Context, favoriteID, userID string) error {
	return m.deleteFavoriteFn(ctx, favoriteID, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// authorizedAuthService returns a mockAuthService that accepts any bearer
// token and resolves it to the given identity.
func authorizedAuthService(userID, username string) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: userID}, nil
		},
		getUserFn: func(_ context.Context, id string) (models.User, error) {
			return models.User{UserID: id, Username: username}, nil
		},
	}
}

// newTestRouter assembles the full chi router with the given mocks so tests
// exercise routing, middleware, and handlers together.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// Public routes
// ─────────────────────────────────────────────

func TestRoutes_ListItems_Public(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		CatalogService: &mockCatalogService{
			listItemsFn: func(_ context.Context, category string) ([]models.Item, error) {
				assert.Equal(t, "kitchen", category)
				return []models.Item{{ItemID: "item-1", Name: "Coffee Grinder", Category: "kitchen"}}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/items?category=kitchen", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Coffee Grinder")
}

func TestRoutes_GetItem_NotFound(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		CatalogService: &mockCatalogService{
			getItemFn: func(_ context.Context, itemID string) (models.Item, error) {
				assert.Equal(t, "missing", itemID)
				return models.Item{}, store.ErrItemNotFound
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/items/missing", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_ListItemReviews_CarriesUsername(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		CatalogService: &mockCatalogService{
			listItemReviewsFn: func(_ context.Context, itemID string) ([]models.ItemReview, error) {
				assert.Equal(t, "item-1", itemID)
				return []models.ItemReview{
					{Review: models.Review{ReviewID: "review-1", ItemID: itemID, Rating: 5}, Username: "alice"},
				}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/items/item-1/reviews", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
}

func TestRoutes_ProtectedWithoutToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/reviews", `{"item_id":"item-1","rating":5,"review_text":"great"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// Protected routes
// ─────────────────────────────────────────────

func TestRoutes_CreateReview_OwnerFromIdentity(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: authorizedAuthService("user-1", "alice"),
		ReviewService: &mockReviewService{
			createReviewFn: func(_ context.Context, review models.Review) (models.Review, error) {
				// The owner must come from the verified identity, not the body.
				assert.Equal(t, "user-1", review.UserID)
				review.ReviewID = "review-1"
				return review, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/reviews",
		`{"item_id":"item-1","rating":5,"review_text":"great","user_id":"spoofed"}`, "token")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "review-1")
}

func TestRoutes_CreateReview_Duplicate(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: authorizedAuthService("user-1", "alice"),
		ReviewService: &mockReviewService{
			createReviewFn: func(_ context.Context, _ models.Review) (models.Review, error) {
				return models.Review{}, store.ErrReviewAlreadyExists
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/reviews",
		`{"item_id":"item-1","rating":5,"review_text":"again"}`, "token")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRoutes_UpdateReview_ForeignReviewLooksLikeMissing(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: authorizedAuthService("intruder", "mallory"),
		ReviewService: &mockReviewService{
			updateReviewFn: func(_ context.Context, review models.Review) (models.Review, error) {
				assert.Equal(t, "review-1", review.ReviewID)
				assert.Equal(t, "intruder", review.UserID)
				return models.Review{}, store.ErrReviewNotFound
			},
		},
	})

	rec := doRequest(t, router, http.MethodPut, "/api/reviews/review-1",
		`{"rating":1,"review_text":"hijack"}`, "token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_DeleteReview_Success(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: authorizedAuthService("user-1", "alice"),
		ReviewService: &mockReviewService{
			deleteReviewFn: func(_ context.Context, reviewID, userID string) error {
				assert.Equal(t, "review-1", reviewID)
				assert.Equal(t, "user-1", userID)
				return nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/api/reviews/review-1", "", "token")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRoutes_CreateComment_DanglingReview(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: authorizedAuthService("user-2", "bob"),
		CommentService: &mockCommentService{
			createCommentFn: func(_ context.Context, _ models.Comment) (models.Comment, error) {
				return models.Comment{}, store.ErrReferencedRowMissing
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/comments",
		`{"review_id":"missing","comment_text":"hello"}`, "token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_CreateFavorite_Duplicate(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: authorizedAuthService("user-1", "alice"),
		FavoriteService: &mockFavoriteService{
			createFavoriteFn: func(_ context.Context, _ models.Favorite) (models.Favorite, error) {
				return models.Favorite{}, store.ErrFavoriteAlreadyExists
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/api/favorites",
		`{"item_id":"item-1"}`, "token")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRoutes_ListMyFavorites(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: authorizedAuthService("user-1", "alice"),
		FavoriteService: &mockFavoriteService{
			listUserFavoritesFn: func(_ context.Context, userID string) ([]models.Favorite, error) {
				assert.Equal(t, "user-1", userID)
				return []models.Favorite{{FavoriteID: "favorite-1", UserID: userID, ItemID: "item-1"}}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/api/favorites/me", "", "token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "favorite-1")
}
