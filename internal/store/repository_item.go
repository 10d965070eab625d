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

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It serves catalog writes and reads against the "items" table, including
// the reviews-for-item join — the only cross-entity read in the system.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
	sb     sq.StatementBuilderType
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateItem persists a new catalog item and returns the fully populated
// [models.Item] with server-assigned fields (ItemID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrItemNameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createItem, r.ids.Generate(), item.Name, item.Description, item.Category)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Bool("retryable", r.db.isRetryable(err)).Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Item{}, ErrItemNameAlreadyExists
		default:
			return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var savedItem models.Item
	if err := row.Scan(&savedItem.ItemID, &savedItem.Name, &savedItem.Description, &savedItem.Category, &savedItem.CreatedAt); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Item{}, ErrItemNameAlreadyExists
		}
		return models.Item{}, err
	}

	return savedItem, nil
}

// GetItem retrieves a single item by its identifier.
//
// Error handling:
//   - No matching row → [ErrItemNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *itemRepository) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	log := logger.FromContext(ctx)

	var foundItem models.Item
	row := r.db.QueryRowContext(ctx, getItem, itemID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Bool("retryable", r.db.isRetryable(err)).Msg("error: query failed")
		return models.Item{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundItem.ItemID, &foundItem.Name, &foundItem.Description, &foundItem.Category, &foundItem.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("error: scanning error")
		return models.Item{}, err
	}

	return foundItem, nil
}

// ListItems returns the catalog ordered by creation time. A non-empty
// category narrows the result to items of that category; the filter is
// composed with squirrel so the statement shape stays in one place.
func (r *itemRepository) ListItems(ctx context.Context, category string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	builder := r.sb.
		Select("id", "name", "description", "category", "created_at").
		From("items").
		OrderBy("created_at")

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Bool("retryable", r.db.isRetryable(err)).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Description, &item.Category, &item.CreatedAt); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// ListItemReviews returns every review of the given item joined with the
// reviewing user's display name. The join selects the username column only —
// the password hash never leaves the users table through this read.
func (r *itemRepository) ListItemReviews(ctx context.Context, itemID string) ([]models.ItemReview, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("r.id", "r.user_id", "r.item_id", "r.rating", "r.review_text", "r.created_at", "u.username").
		From("reviews r").
		Join("users u ON r.user_id = u.id").
		Where(sq.Eq{"r.item_id": itemID}).
		OrderBy("r.created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItemReviews").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItemReviews").Bool("retryable", r.db.isRetryable(err)).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var reviews []models.ItemReview
	for rows.Next() {
		var review models.ItemReview
		if err := rows.Scan(&review.ReviewID, &review.UserID, &review.ItemID, &review.Rating, &review.ReviewText, &review.CreatedAt, &review.Username); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItemReviews").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}
