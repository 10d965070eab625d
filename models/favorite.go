package models

import "time"

// Favorite marks an item as favorited by a user. The pair (UserID, ItemID)
// is unique at the storage layer.
type Favorite struct {
	// FavoriteID is the unique identifier of the favorite mark.
	FavoriteID string `json:"id"`

	// UserID references the user who favorited the item.
	UserID string `json:"user_id"`

	// ItemID references the favorited item.
	ItemID string `json:"item_id"`

	// CreatedAt is the timestamp when the favorite was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
