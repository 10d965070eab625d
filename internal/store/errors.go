package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
//
// Every uniqueness or referential violation is detected at the storage
// boundary (PostgreSQL constraint errors) and translated into one of these
// constraint-specific values, never surfaced as an opaque driver error.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrItemNameAlreadyExists is returned when an attempt to create an item
	// fails because an item with the same name already exists.
	ErrItemNameAlreadyExists = errors.New("item name already exists")

	// ErrReviewAlreadyExists is returned when a user already holds a review
	// for the targeted item; at most one review per (user, item) pair may
	// exist.
	ErrReviewAlreadyExists = errors.New("review for this item already exists")

	// ErrFavoriteAlreadyExists is returned when the (user, item) favorite
	// pair already exists.
	ErrFavoriteAlreadyExists = errors.New("favorite for this item already exists")

	// ErrReferencedRowMissing is returned when an insert references a user,
	// item, or review that does not exist (foreign-key violation).
	ErrReferencedRowMissing = errors.New("referenced row does not exist")

	// ErrUserNotFound is returned when a user lookup produces no row.
	ErrUserNotFound = errors.New("user was not found")

	// ErrItemNotFound is returned when an item lookup produces no row.
	ErrItemNotFound = errors.New("item was not found")

	// ErrReviewNotFound is returned when a review lookup produces no row, or
	// when an ownership-scoped update/delete matches no row. The two cases
	// are intentionally indistinguishable: a caller probing another user's
	// review learns nothing about its existence.
	ErrReviewNotFound = errors.New("review was not found")

	// ErrCommentNotFound is the comment counterpart of [ErrReviewNotFound],
	// with the same ownership-scoping semantics.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrFavoriteNotFound is returned when an ownership-scoped favorite
	// delete matches no row.
	ErrFavoriteNotFound = errors.New("favorite was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
