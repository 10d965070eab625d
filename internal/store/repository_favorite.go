package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/utils"
	"github.com/MKhiriev/go-review-hub/models"
	"github.com/jackc/pgerrcode"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository]. The at-most-one-favorite-per-(user,item) invariant
// lives in the favorites_user_item_key unique constraint.
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
	sb     sq.StatementBuilderType
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateFavorite persists a new favorite mark owned by favorite.UserID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrFavoriteAlreadyExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrReferencedRowMissing].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFavorite, r.ids.Generate(), favorite.UserID, favorite.ItemID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.CreateFavorite").Bool("retryable", r.db.isRetryable(err)).Msg("error: insert failed")
		return models.Favorite{}, mapFavoriteConstraintError(err)
	}

	var savedFavorite models.Favorite
	if err := row.Scan(&savedFavorite.FavoriteID, &savedFavorite.UserID, &savedFavorite.ItemID, &savedFavorite.CreatedAt); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.CreateFavorite").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation:
			return models.Favorite{}, mapFavoriteConstraintError(err)
		}
		return models.Favorite{}, err
	}

	return savedFavorite, nil
}

// mapFavoriteConstraintError translates a favorite INSERT failure into the
// constraint-specific sentinel, or wraps it as unexpected.
func mapFavoriteConstraintError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrFavoriteAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrReferencedRowMissing
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

// ListUserFavorites returns every favorite owned by the given user ordered
// by creation time.
func (r *favoriteRepository) ListUserFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("id", "user_id", "item_id", "created_at").
		From("favorites").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListUserFavorites").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListUserFavorites").Bool("retryable", r.db.isRetryable(err)).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var favorites []models.Favorite
	for rows.Next() {
		var favorite models.Favorite
		if err := rows.Scan(&favorite.FavoriteID, &favorite.UserID, &favorite.ItemID, &favorite.CreatedAt); err != nil {
			log.Err(err).Str("func", "*favoriteRepository.ListUserFavorites").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		favorites = append(favorites, favorite)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, nil
}

// DeleteFavorite removes the favorite, scoped to the owner. A zero-row
// match surfaces as [ErrFavoriteNotFound].
func (r *favoriteRepository) DeleteFavorite(ctx context.Context, favoriteID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFavorite, favoriteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteFavorite").Bool("retryable", r.db.isRetryable(err)).Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.DeleteFavorite").Msg("error: rows affected")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}
