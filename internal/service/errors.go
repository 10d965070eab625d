package service

import "errors"

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrAuthenticationFailed = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrValidationNoUsername       = errors.New("username must not be empty")
	ErrValidationNoPassword       = errors.New("password must not be empty")
	ErrValidationNoItemName       = errors.New("item name must not be empty")
	ErrValidationNoItemID         = errors.New("item ID must not be empty")
	ErrValidationNoReviewID       = errors.New("review ID must not be empty")
	ErrValidationNoCommentText    = errors.New("comment text must not be empty")
	ErrValidationNoReviewText     = errors.New("review text must not be empty")
	ErrValidationRatingOutOfRange = errors.New("rating must be between 1 and 5")
)
