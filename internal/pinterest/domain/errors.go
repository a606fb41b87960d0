package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the Pinterest integration. Per-post errors are
// caught at the post-processing boundary; only ErrDueQuery aborts a
// publish invocation.
var (
	ErrNotConnected       = errors.New("Pinterest account not connected")
	ErrMissingAuthCode    = errors.New("no authorization code provided")
	ErrOAuthExchange      = errors.New("failed to exchange authorization code")
	ErrTokenRefresh       = errors.New("failed to refresh access token")
	ErrBoardAPI           = errors.New("board API request failed")
	ErrPinCreation        = errors.New("pin creation failed")
	ErrRateLimitExceeded  = errors.New("pin creation rate limit exceeded")
	ErrDueQuery           = errors.New("failed to query due posts")
	ErrUnexpectedResponse = errors.New("unexpected API response shape")
)

// APIError carries the raw outcome of a failed Pinterest API call
type APIError struct {
	Kind       error // one of the sentinels above
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: %s returned status %d: %s", e.Kind, e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %s returned status %d", e.Kind, e.Endpoint, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}
