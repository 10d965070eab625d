package models

import "time"

// Review is a user's rating of an item. A user may hold at most one review
// per item; the pair (UserID, ItemID) is unique at the storage layer.
// The review is owned by its creating user and ownership never transfers.
type Review struct {
	// ReviewID is the unique identifier of the review.
	ReviewID string `json:"id"`

	// UserID references the owning user. Set from the authenticated
	// identity at creation time, immutable afterwards.
	UserID string `json:"user_id"`

	// ItemID references the reviewed item. Immutable after creation.
	ItemID string `json:"item_id"`

	// Rating is the numeric score given to the item, in the range 1..5.
	Rating int `json:"rating"`

	// ReviewText is the free-form body of the review.
	ReviewText string `json:"review_text"`

	// CreatedAt is the timestamp when the review was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}

// ItemReview is a Review enriched with the reviewing user's display name.
// It is produced by the reviews-for-item join read and never carries
// credential data.
type ItemReview struct {
	Review

	// Username is the display name of the review's author.
	Username string `json:"username"`
}
