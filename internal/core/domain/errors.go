package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoTeams indicates no team ids were configured for the export.
	ErrNoTeams = errors.New("no teams configured")

	// Authentication Errors.

	// ErrAuthRequired indicates the API requires credentials but none are configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the configured credentials were rejected.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Delivery Errors.

	// ErrDeliveryFailed indicates the report could not be delivered
	// after all attempts were exhausted.
	ErrDeliveryFailed = errors.New("delivery failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
