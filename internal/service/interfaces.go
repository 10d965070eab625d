package service

import (
	"context"

	"github.com/MKhiriev/go-review-hub/models"
)

// AuthService covers the account lifecycle: registration, credential
// verification, token issuance and parsing, and identity lookups used by the
// authentication middleware.
type AuthService interface {
	RegisterUser(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CatalogService covers catalog items and their public review feed.
type CatalogService interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, itemID string) (models.Item, error)
	ListItems(ctx context.Context, category string) ([]models.Item, error)
	ListItemReviews(ctx context.Context, itemID string) ([]models.ItemReview, error)
}

// ReviewService covers authoring and maintaining reviews. Mutations are
// owner-scoped by the userID the caller's verified identity supplies.
type ReviewService interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	GetReview(ctx context.Context, reviewID string) (models.Review, error)
	ListUserReviews(ctx context.Context, userID string) ([]models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)
	DeleteReview(ctx context.Context, reviewID, userID string) error
}

// CommentService covers comments attached to reviews.
type CommentService interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListUserComments(ctx context.Context, userID string) ([]models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID string) error
}

// FavoriteService covers per-user favorite marks on catalog items.
type FavoriteService interface {
	CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	ListUserFavorites(ctx context.Context, userID string) ([]models.Favorite, error)
	DeleteFavorite(ctx context.Context, favoriteID, userID string) error
}
