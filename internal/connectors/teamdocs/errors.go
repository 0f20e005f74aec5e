package teamdocs

import (
	"errors"
	"fmt"
)

// Teamdocs-specific errors.
var (
	// ErrConfigMissingBaseURL indicates no API base URL was configured.
	ErrConfigMissingBaseURL = errors.New("teamdocs: missing base URL")

	// ErrEmptyTeamID indicates a listing was requested without a team id.
	ErrEmptyTeamID = errors.New("teamdocs: empty team id")
)

// APIError represents a Teamdocs API error response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("teamdocs: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
