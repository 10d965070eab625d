package models

// Identity is the authenticated caller resolved from a bearer token for the
// duration of a single request. It carries only what downstream operations
// need to scope their work: who the caller is and their display name.
type Identity struct {
	// UserID is the unique identifier of the authenticated user.
	UserID string `json:"id"`

	// Username is the display name of the authenticated user.
	Username string `json:"username"`
}
