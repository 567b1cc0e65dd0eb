// Package youtube is a thin client for the parts of the YouTube Data API v3
// the transfer needs: listing the authenticated account's subscriptions,
// inserting new ones, and identifying the account's own channel. All calls
// are synchronous with bounded retries on transient failures.
package youtube

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/util"
)

// pagePause spaces successive page fetches of one listing call.
const pagePause = 100 * time.Millisecond

type Client struct {
	baseURL    string
	pageSize   int
	maxRetries int
	client     *resty.Client
}

// NewClient wraps an authenticated HTTP client (token handling lives in the
// transport) with the resty plumbing and retry policy.
func NewClient(httpClient *http.Client, baseURL string, pageSize, maxRetries int, timeout time.Duration) *Client {
	restyClient := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "YouTubeSubscriptionTransfer/1.0").
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		baseURL:    baseURL,
		pageSize:   pageSize,
		maxRetries: maxRetries,
		client:     restyClient,
	}
}

// retryableRequest runs one API call with exponential backoff on transient
// failures. Non-transient API errors surface immediately as *APIError.
func (c *Client) retryableRequest(ctx context.Context, operation string, req func() (*resty.Response, error)) (*resty.Response, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			if err := util.ContextSleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		resp, err := req()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Transport-level failures (timeouts included) get the same
			// bounded retry as rate-limit responses.
			lastErr = err
			continue
		}

		if resp.IsSuccess() {
			return resp, nil
		}

		apiErr := newAPIError(resp)
		if !apiErr.Transient() {
			return nil, apiErr
		}
		lastErr = apiErr
	}

	return nil, fmt.Errorf("max retries (%d) exceeded for %s: %w", c.maxRetries, operation, lastErr)
}
