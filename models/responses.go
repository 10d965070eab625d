package models

// ErrorResponse is the uniform JSON error body returned by the HTTP layer.
// The message is intentionally coarse: authentication failures never reveal
// whether a username exists, and ownership mismatches are reported the same
// way as missing rows.
type ErrorResponse struct {
	// Error is a short human-readable description of the failure.
	Error string `json:"error"`
}
