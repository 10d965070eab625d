package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-review-hub/internal/logger"
	"github.com/MKhiriev/go-review-hub/internal/store"
	"github.com/MKhiriev/go-review-hub/models"
)

// commentService is the concrete implementation of CommentService.
type commentService struct {
	commentRepository store.CommentRepository

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// CreateComment attaches a comment to an existing review. A dangling review
// reference surfaces as store.ErrReferencedRowMissing from the storage layer.
func (c *commentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if comment.ReviewID == "" {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoReviewID)
	}
	if comment.CommentText == "" {
		log.Error().Any("comment", comment).Msg("invalid comment data provided")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoCommentText)
	}

	createdComment, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("review_id", comment.ReviewID).Str("user_id", comment.UserID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return createdComment, nil
}

func (c *commentService) ListUserComments(ctx context.Context, userID string) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	comments, err := c.commentRepository.ListUserComments(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("listing user comments failed")
		return nil, fmt.Errorf("listing user comments failed: %w", err)
	}

	return comments, nil
}

// UpdateComment rewrites the text of the caller's own comment.
func (c *commentService) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if comment.CommentID == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}
	if comment.CommentText == "" {
		log.Error().Any("comment", comment).Msg("invalid comment data provided")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoCommentText)
	}

	updatedComment, err := c.commentRepository.UpdateComment(ctx, comment)
	if err != nil {
		log.Err(err).Str("id", comment.CommentID).Str("user_id", comment.UserID).Msg("comment update ended with error")
		return models.Comment{}, fmt.Errorf("comment update ended with error: %w", err)
	}

	return updatedComment, nil
}

// DeleteComment removes the caller's own comment.
func (c *commentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	log := logger.FromContext(ctx)

	if commentID == "" {
		return ErrInvalidDataProvided
	}

	if err := c.commentRepository.DeleteComment(ctx, commentID, userID); err != nil {
		log.Err(err).Str("id", commentID).Str("user_id", userID).Msg("comment deletion ended with error")
		return fmt.Errorf("comment deletion ended with error: %w", err)
	}

	return nil
}
