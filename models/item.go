package models

import "time"

// Item is a reviewable catalog entry. Items are immutable after creation:
// no update or delete operation exists for them.
type Item struct {
	// ItemID is the unique identifier of the item, assigned by the
	// persistence layer at creation time.
	ItemID string `json:"id"`

	// Name is the globally unique, non-empty display name of the item.
	Name string `json:"name"`

	// Description is an optional free-form description.
	Description string `json:"description,omitempty"`

	// Category is an optional classification label used for filtering
	// the catalog.
	Category string `json:"category,omitempty"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}
