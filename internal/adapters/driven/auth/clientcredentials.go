// Package auth provides token providers for the catalog API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
)

// exchangeTimeout bounds the token endpoint request.
const exchangeTimeout = 30 * time.Second

// Ensure ClientCredentialsProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*ClientCredentialsProvider)(nil)

// ClientCredentialsProvider exchanges client credentials for a bearer token.
// The first GetToken call performs the exchange; every later call returns
// the same token unchanged. Export runs are short-lived, so an expiry
// mid-run is not refreshed.
type ClientCredentialsProvider struct {
	config clientcredentials.Config

	mu    sync.Mutex
	token string
}

// NewClientCredentialsProvider creates a provider for the given token endpoint.
func NewClientCredentialsProvider(tokenURL, clientID, clientSecret string) *ClientCredentialsProvider {
	return &ClientCredentialsProvider{
		config: clientcredentials.Config{
			TokenURL:     tokenURL,
			ClientID:     clientID,
			ClientSecret: clientSecret,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
	}
}

// GetToken returns the cached access token, exchanging credentials on first use.
func (p *ClientCredentialsProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" {
		return p.token, nil
	}

	if p.config.TokenURL == "" || p.config.ClientID == "" || p.config.ClientSecret == "" {
		return "", domain.ErrAuthRequired
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: exchangeTimeout})
	tok, err := p.config.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			code := retrieveErr.Response.StatusCode
			if code == http.StatusBadRequest || code == http.StatusUnauthorized {
				return "", fmt.Errorf("%w: token endpoint returned %d", domain.ErrAuthInvalid, code)
			}
		}
		return "", fmt.Errorf("exchange credentials: %w", err)
	}

	p.token = tok.AccessToken
	return p.token, nil
}
