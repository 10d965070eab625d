package models

import "time"

// Comment is a user's remark on an existing review. Like a review, it is
// owned by its creating user; only the owner may update or delete it.
type Comment struct {
	// CommentID is the unique identifier of the comment.
	CommentID string `json:"id"`

	// ReviewID references the commented review. Immutable after creation.
	ReviewID string `json:"review_id"`

	// UserID references the owning user. Set from the authenticated
	// identity at creation time, immutable afterwards.
	UserID string `json:"user_id"`

	// CommentText is the free-form body of the comment.
	CommentText string `json:"comment_text"`

	// CreatedAt is the timestamp when the comment was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
