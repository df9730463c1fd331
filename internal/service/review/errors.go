package review

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrTextRequired   = errors.New("review_text is required")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)
