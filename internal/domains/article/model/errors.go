package model

import "errors"

var (
	// Business Rule Errors
	ErrArticleNotFound = errors.New("article not found")
	ErrForbidden       = errors.New("user does not have access to this article")

	// Validation Errors
	ErrInvalidPageSize = errors.New("page and size must be >= 1")
	ErrInvalidDate     = errors.New("date must be an ISO timestamp or YYYY-MM-DD")
	ErrInvalidSort     = errors.New("sort direction must be asc or desc")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrArticleNotFound):
		return "ARTICLE_NOT_FOUND"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrInvalidPageSize), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidSort):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrArticleNotFound):
		return 404
	case errors.Is(err, ErrForbidden):
		return 403
	case errors.Is(err, ErrInvalidPageSize), errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidSort):
		return 400
	default:
		return 500
	}
}
