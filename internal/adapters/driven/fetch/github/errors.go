package github

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrPackNotFound indicates the repository or directory was not found
	// or is not accessible with the current credentials.
	ErrPackNotFound = errors.New("github: pack not found")

	// ErrUnauthorised indicates the token was rejected.
	ErrUnauthorised = errors.New("github: authentication failed")
)

// RateLimitError reports an exhausted GitHub API quota and when it
// replenishes, so callers can tell users when to retry a fetch.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// IsRateLimited reports whether err is a rate limit error.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
