// Package oura fetches sleep sessions from the wearable provider's REST API.
// All network concerns live here: authentication, pagination, retries, and
// the translation of upstream failures into the domain's typed errors. The
// advisory engine itself never touches the network.
package oura

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/go-resty/resty/v2"
)

const (
	sleepPath = "/v2/usercollection/sleep"

	requestTimeout = 15 * time.Second
	retryCount     = 2
	retryWait      = 500 * time.Millisecond
	retryMaxWait   = 2 * time.Second
)

// Client talks to the provider's sleep collection endpoint.
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a provider client. Transient failures (5xx, transport
// errors) are retried with backoff here; callers never retry.
func NewClient(baseURL, apiToken string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		SetAuthToken(apiToken).
		SetHeader("Accept", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{httpClient: client}
}

// FetchSessions returns all sleep sessions the provider reports for the
// inclusive civil date range [fromDay, toDay], following pagination tokens.
// Upstream failures surface as exactly one of domain.ErrAuthFailed,
// domain.ErrRateLimited, or domain.ErrProviderUnavailable.
func (c *Client) FetchSessions(ctx context.Context, fromDay, toDay string) ([]domain.SleepSession, error) {
	var sessions []domain.SleepSession
	nextToken := ""

	for {
		var page sleepListResponse
		req := c.httpClient.R().
			SetContext(ctx).
			SetQueryParam("start_date", fromDay).
			SetQueryParam("end_date", toDay).
			SetResult(&page)
		if nextToken != "" {
			req.SetQueryParam("next_token", nextToken)
		}

		resp, err := req.Get(sleepPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}
		if err := classifyStatus(resp.StatusCode()); err != nil {
			return nil, err
		}

		for i := range page.Data {
			sessions = append(sessions, page.Data[i].toSession())
		}

		if page.NextToken == "" {
			return sessions, nil
		}
		nextToken = page.NextToken
	}
}

// classifyStatus folds an upstream HTTP status into the domain's three
// failure classes. Anything 2xx passes.
func classifyStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", domain.ErrAuthFailed, status)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", domain.ErrRateLimited, status)
	default:
		return fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, status)
	}
}
