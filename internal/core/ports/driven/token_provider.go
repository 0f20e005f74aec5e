package driven

import "context"

// TokenProvider supplies the bearer token for catalog API calls.
// The token is exchanged once per process and reused for every request;
// there is no refresh on expiry within a run.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)
}
