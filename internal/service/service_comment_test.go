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

func newTestCommentSvc(t *testing.T, ctrl *gomock.Controller) (CommentService, *mock.MockCommentRepository) {
	t.Helper()
	mockComments := mock.NewMockCommentRepository(ctrl)
	return NewCommentService(mockComments, logger.Nop()), mockComments
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockComments := newTestCommentSvc(t, ctrl)
	ctx := context.Background()

	comment := models.Comment{ReviewID: "review-1", UserID: "user-2", CommentText: "agreed"}

	mockComments.EXPECT().CreateComment(ctx, comment).DoAndReturn(
		func(_ context.Context, c models.Comment) (models.Comment, error) {
			c.CommentID = "comment-1"
			return c, nil
		},
	)

	created, err := svc.CreateComment(ctx, comment)
	require.NoError(t, err)
	assert.Equal(t, "comment-1", created.CommentID)
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCommentSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateComment(ctx, models.Comment{UserID: "user-2", CommentText: "orphan"})
	assert.ErrorIs(t, err, ErrValidationNoReviewID)

	_, err = svc.CreateComment(ctx, models.Comment{ReviewID: "review-1", UserID: "user-2"})
	assert.ErrorIs(t, err, ErrValidationNoCommentText)
}

func TestCommentService_CreateComment_DanglingReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockComments := newTestCommentSvc(t, ctrl)
	ctx := context.Background()

	mockComments.EXPECT().CreateComment(ctx, gomock.Any()).Return(models.Comment{}, store.ErrReferencedRowMissing)

	_, err := svc.CreateComment(ctx, models.Comment{ReviewID: "missing", UserID: "user-2", CommentText: "hello"})
	assert.ErrorIs(t, err, store.ErrReferencedRowMissing)
}

func TestCommentService_UpdateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockComments := newTestCommentSvc(t, ctrl)
	ctx := context.Background()

	comment := models.Comment{CommentID: "comment-1", UserID: "user-2", CommentText: "edited"}

	mockComments.EXPECT().UpdateComment(ctx, comment).Return(comment, nil)

	updated, err := svc.UpdateComment(ctx, comment)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.CommentText)

	_, err = svc.UpdateComment(ctx, models.Comment{UserID: "user-2", CommentText: "no id"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockComments := newTestCommentSvc(t, ctrl)
	ctx := context.Background()

	mockComments.EXPECT().DeleteComment(ctx, "comment-1", "user-2").Return(nil)

	require.NoError(t, svc.DeleteComment(ctx, "comment-1", "user-2"))

	err := svc.DeleteComment(ctx, "", "user-2")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCommentService_ListUserComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockComments := newTestCommentSvc(t, ctrl)
	ctx := context.Background()

	mockComments.EXPECT().ListUserComments(ctx, "user-2").Return([]models.Comment{
		{CommentID: "comment-1", UserID: "user-2"},
	}, nil)

	comments, err := svc.ListUserComments(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
