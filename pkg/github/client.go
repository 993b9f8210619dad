package github

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pixelquest/rpgcard/pkg/errors"
	"github.com/pixelquest/rpgcard/pkg/observability"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout bounds the single upstream call. This is the only timeout
// in the request path; there are no retries to amplify it.
const DefaultTimeout = 10 * time.Second

// Client fetches public user profiles from the GitHub API.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// NewClient creates an unauthenticated GitHub profile client.
// baseURL may be empty to use the public API; userAgent identifies this
// service to the upstream, as its usage policy requires.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// FetchUser looks up a public profile. It validates the username locally,
// issues exactly one GET, and classifies the outcome:
//
//	404          -> ErrCodeNotFound
//	403, 429     -> ErrCodeRateLimited
//	other non-2xx or transport failure -> ErrCodeUpstream
//	2xx          -> parsed UserRecord
//
// FetchUser never touches the cache; that composition belongs to the caller.
func (c *Client) FetchUser(ctx context.Context, username string) (*UserRecord, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	observability.Upstream().OnRequest(ctx, username)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+username, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build profile request")
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		observability.Upstream().OnError(ctx, username, err)
		return nil, errors.Wrap(errors.ErrCodeUpstream, err, "profile lookup for %s failed", username)
	}
	defer resp.Body.Close()

	observability.Upstream().OnResponse(ctx, username, resp.StatusCode, time.Since(start))

	if err := classifyStatus(resp, username); err != nil {
		return nil, err
	}

	var raw apiUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUpstream, err, "decode profile for %s", username)
	}
	return raw.normalize(), nil
}

// classifyStatus maps an upstream status to the failure taxonomy.
// GitHub signals rate limiting as 403 on the REST API, so 403 is treated as
// throttling rather than as a permissions problem; unauthenticated profile
// reads have nothing else to be forbidden from.
func classifyStatus(resp *http.Response, username string) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "user %s not found", username)
	case code == http.StatusForbidden || code == http.StatusTooManyRequests:
		return errors.New(errors.ErrCodeRateLimited, "rate limited by upstream (status %d)", code)
	default:
		return errors.New(errors.ErrCodeUpstream, "unexpected upstream status %d", code)
	}
}
