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

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. Mutations follow the same ownership-scoping pattern
// as reviews: the statement itself constrains the target to the caller's
// rows, so no separate ownership check precedes the write.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
	sb     sq.StatementBuilderType
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateComment persists a new comment owned by comment.UserID and returns
// the fully populated record.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrReferencedRowMissing]
//     (the review or user does not exist).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment, r.ids.Generate(), comment.ReviewID, comment.UserID, comment.CommentText)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Bool("retryable", r.db.isRetryable(err)).Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Comment{}, ErrReferencedRowMissing
		default:
			return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var savedComment models.Comment
	if err := row.Scan(&savedComment.CommentID, &savedComment.ReviewID, &savedComment.UserID, &savedComment.CommentText, &savedComment.CreatedAt); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Comment{}, ErrReferencedRowMissing
		}
		return models.Comment{}, err
	}

	return savedComment, nil
}

// ListUserComments returns every comment owned by the given user ordered by
// creation time.
func (r *commentRepository) ListUserComments(ctx context.Context, userID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("id", "review_id", "user_id", "comment_text", "created_at").
		From("comments").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListUserComments").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListUserComments").Bool("retryable", r.db.isRetryable(err)).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.CommentID, &comment.ReviewID, &comment.UserID, &comment.CommentText, &comment.CreatedAt); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListUserComments").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// UpdateComment rewrites the comment text, scoped to owner comment.UserID.
// A zero-row match — comment missing or owned by someone else — surfaces as
// [ErrCommentNotFound].
func (r *commentRepository) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateComment, comment.CommentText, comment.CommentID, comment.UserID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Bool("retryable", r.db.isRetryable(err)).Msg("error: update failed")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updatedComment models.Comment
	if err := row.Scan(&updatedComment.CommentID, &updatedComment.ReviewID, &updatedComment.UserID, &updatedComment.CommentText, &updatedComment.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error: scanning error")
		return models.Comment{}, err
	}

	return updatedComment, nil
}

// DeleteComment removes the comment, scoped to the owner. A zero-row match
// surfaces as [ErrCommentNotFound].
func (r *commentRepository) DeleteComment(ctx context.Context, commentID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, commentID, userID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Bool("retryable", r.db.isRetryable(err)).Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error: rows affected")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}
