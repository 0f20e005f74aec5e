package teamdocs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// documentsPath lists a team's documents.
	documentsPath = "/api/v1/documents"

	// directoriesPath lists a team's directories.
	directoriesPath = "/api/v1/directories"
)

// ListFilter selects the records a listing returns.
// Zero-valued fields are omitted from the query string.
type ListFilter struct {
	// TeamID scopes the listing to one team.
	TeamID string `url:"team_id,omitempty"`

	// DirectoryID scopes a directory listing to one parent.
	DirectoryID string `url:"directory_id,omitempty"`

	// ListType is the document listing variant the API exposes.
	ListType string `url:"list_type,omitempty"`
}

// pageQuery is a ListFilter plus the pagination window.
type pageQuery struct {
	Page    int `url:"page"`
	PerPage int `url:"per_page"`
	ListFilter
}

// Client wraps HTTP access to the Teamdocs API.
type Client struct {
	config        *Config
	httpClient    *http.Client
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
}

// NewClient creates a Teamdocs API client with a token provider.
func NewClient(cfg *Config, tokenProvider driven.TokenProvider) *Client {
	cfg.applyDefaults()
	return &Client{
		config:        cfg,
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(cfg),
	}
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// fetchPage fetches one page of a listing.
func (c *Client) fetchPage(ctx context.Context, path string, filter ListFilter, page int) (*envelope, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	q, err := query.Values(pageQuery{Page: page, PerPage: c.config.PageSize, ListFilter: filter})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	url := c.config.BaseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &env, nil
}

// apiError converts a non-2xx response into an APIError.
// 429 responses also arm the rate limiter's backoff.
func (c *Client) apiError(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		c.rateLimiter.RecordRateLimitError(retryAfter)
	}

	message := http.StatusText(resp.StatusCode)
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(body) > 0 {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			message = payload.Message
		}
	}

	url := ""
	if resp.Request != nil && resp.Request.URL != nil {
		url = resp.Request.URL.String()
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message, URL: url}
}
