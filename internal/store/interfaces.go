package store

import (
	"context"

	"github.com/MKhiriev/go-review-hub/models"
)

// UserRepository persists user accounts and resolves them during
// authentication. Credential material is stored as a one-way hash only.
type UserRepository interface {
	// CreateUser inserts a new user and returns the persisted record.
	// Returns [ErrUsernameAlreadyExists] if the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks a user up by their unique username.
	// Returns [ErrUserNotFound] if no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks a user up by their identifier.
	// Returns [ErrUserNotFound] if no such user exists.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// ListUsers returns every user account. Diagnostics read only.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ItemRepository persists catalog items and serves catalog reads, including
// the reviews-for-item join.
type ItemRepository interface {
	// CreateItem inserts a new item and returns the persisted record.
	// Returns [ErrItemNameAlreadyExists] if the name is taken.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// GetItem returns a single item by ID, or [ErrItemNotFound].
	GetItem(ctx context.Context, itemID string) (models.Item, error)

	// ListItems returns the catalog, optionally filtered by category.
	// An empty category matches everything.
	ListItems(ctx context.Context, category string) ([]models.Item, error)

	// ListItemReviews returns every review of the given item enriched with
	// the reviewing user's display name. Credential data is never included.
	ListItemReviews(ctx context.Context, itemID string) ([]models.ItemReview, error)
}

// ReviewRepository persists reviews. Mutations are ownership-scoped: the
// UPDATE/DELETE statements constrain the target to rows owned by the caller,
// so a foreign or missing review is observably identical (zero rows).
type ReviewRepository interface {
	// CreateReview inserts a new review owned by review.UserID.
	// Returns [ErrReviewAlreadyExists] if the (user, item) pair already has
	// a review, or [ErrReferencedRowMissing] if the item or user is gone.
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)

	// GetReview returns a single review by ID, or [ErrReviewNotFound].
	GetReview(ctx context.Context, reviewID string) (models.Review, error)

	// ListUserReviews returns every review owned by the given user.
	ListUserReviews(ctx context.Context, userID string) ([]models.Review, error)

	// UpdateReview rewrites the content fields (rating, text) of the review
	// identified by review.ReviewID, scoped to owner review.UserID.
	// Returns [ErrReviewNotFound] on a zero-row match.
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)

	// DeleteReview removes the review identified by reviewID, scoped to the
	// owner. Comments of the review are removed with it.
	// Returns [ErrReviewNotFound] on a zero-row match.
	DeleteReview(ctx context.Context, reviewID, userID string) error
}

// CommentRepository persists comments with the same ownership-scoping rules
// as [ReviewRepository].
type CommentRepository interface {
	// CreateComment inserts a new comment owned by comment.UserID.
	// Returns [ErrReferencedRowMissing] if the review or user is gone.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// ListUserComments returns every comment owned by the given user.
	ListUserComments(ctx context.Context, userID string) ([]models.Comment, error)

	// UpdateComment rewrites the comment text, scoped to the owner.
	// Returns [ErrCommentNotFound] on a zero-row match.
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// DeleteComment removes the comment, scoped to the owner.
	// Returns [ErrCommentNotFound] on a zero-row match.
	DeleteComment(ctx context.Context, commentID, userID string) error
}

// FavoriteRepository persists favorite marks.
type FavoriteRepository interface {
	// CreateFavorite inserts a new favorite owned by favorite.UserID.
	// Returns [ErrFavoriteAlreadyExists] if the (user, item) pair already
	// exists, or [ErrReferencedRowMissing] if the item or user is gone.
	CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)

	// ListUserFavorites returns every favorite owned by the given user.
	ListUserFavorites(ctx context.Context, userID string) ([]models.Favorite, error)

	// DeleteFavorite removes the favorite, scoped to the owner.
	// Returns [ErrFavoriteNotFound] on a zero-row match.
	DeleteFavorite(ctx context.Context, favoriteID, userID string) error
}
