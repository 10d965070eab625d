package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/utils"
	"github.com/MKhiriev/go-review-hub/models"
	"github.com/jackc/pgerrcode"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository].
//
// The one-review-per-(user,item) invariant lives in the reviews_user_item_key
// unique constraint, so two concurrent inserts for the same pair resolve with
// exactly one success and one [ErrReviewAlreadyExists] — there is no
// check-then-insert in the application layer.
//
// Mutations are ownership-scoped: UPDATE and DELETE constrain the target to
// `id = $ AND user_id = $`, so a non-owner mutating a foreign review observes
// the same zero-row result as mutating a missing one.
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
	sb     sq.StatementBuilderType
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateReview persists a new review owned by review.UserID and returns the
// fully populated record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrReviewAlreadyExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrReferencedRowMissing].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReview, r.ids.Generate(), review.UserID, review.ItemID, review.Rating, review.ReviewText)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Bool("retryable", r.db.isRetryable(err)).Msg("error: insert failed")
		return models.Review{}, mapReviewConstraintError(err)
	}

	var savedReview models.Review
	if err := row.Scan(&savedReview.ReviewID, &savedReview.UserID, &savedReview.ItemID, &savedReview.Rating, &savedReview.ReviewText, &savedReview.CreatedAt); err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation:
			return models.Review{}, mapReviewConstraintError(err)
		}
		return models.Review{}, err
	}

	return savedReview, nil
}

// mapReviewConstraintError translates a review INSERT failure into the
// constraint-specific sentinel, or wraps it as unexpected.
func mapReviewConstraintError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrReviewAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrReferencedRowMissing
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// GetReview retrieves a single review by its identifier. Reads are not
// owner-gated.
//
// Error handling:
//   - No matching row → [ErrReviewNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *reviewRepository) GetReview(ctx context.Context, reviewID string) (models.Review, error) {
	log := logger.FromContext(ctx)

	var foundReview models.Review
	row := r.db.QueryRowContext(ctx, getReview, reviewID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReview").Bool("retryable", r.db.isRetryable(err)).Msg("error: query failed")
		return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundReview.ReviewID, &foundReview.UserID, &foundReview.ItemID, &foundReview.Rating, &foundReview.ReviewText, &foundReview.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.GetReview").Msg("error: scanning error")
		return models.Review{}, err
	}

	return foundReview, nil
}

// ListUserReviews returns every review owned by the given user ordered by
// creation time.
func (r *reviewRepository) ListUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("id", "user_id", "item_id", "rating", "review_text", "created_at").
		From("reviews").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListUserReviews").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListUserReviews").Bool("retryable", r.db.isRetryable(err)).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ReviewID, &review.UserID, &review.ItemID, &review.Rating, &review.ReviewText, &review.CreatedAt); err != nil {
			log.Err(err).Str("func", "*reviewRepository.ListUserReviews").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}

// UpdateReview rewrites the content fields of the review identified by
// review.ReviewID, scoped to owner review.UserID. Owner and item references
// are immutable and not part of the SET clause.
//
// A zero-row match — review missing or owned by someone else — surfaces as
// [ErrReviewNotFound]; the repository deliberately does not distinguish the
// two cases.
func (r *reviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateReview, review.Rating, review.ReviewText, review.ReviewID, review.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Bool("retryable", r.db.isRetryable(err)).Msg("error: update failed")
		return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updatedReview models.Review
	if err := row.Scan(&updatedReview.ReviewID, &updatedReview.UserID, &updatedReview.ItemID, &updatedReview.Rating, &updatedReview.ReviewText, &updatedReview.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("error: scanning error")
		return models.Review{}, err
	}

	return updatedReview, nil
}

// DeleteReview removes the review identified by reviewID, scoped to the
// owner. The comments of the review go with it via the ON DELETE CASCADE
// constraint on comments.review_id, so the whole removal is a single atomic
// statement.
//
// A zero-row match surfaces as [ErrReviewNotFound], identically for a
// missing review and a foreign one.
func (r *reviewRepository) DeleteReview(ctx context.Context, reviewID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteReview, reviewID, userID)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Bool("retryable", r.db.isRetryable(err)).Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error: rows affected")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
