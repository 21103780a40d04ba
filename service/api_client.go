package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/finsight-app/finsight/domain"
)

// DefaultRequestTimeout bounds every backend call; the backend itself does
// not enforce one.
const DefaultRequestTimeout = 30 * time.Second

// APIClient is the shared HTTP plumbing for the FinSight backend. Auth and
// analysis clients embed it rather than reimplementing request handling.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	sessions   domain.SessionStore

	// onUnauthorized is invoked when an authenticated call is rejected
	// with 401, letting the caller force a logout. May be nil.
	onUnauthorized func()
}

// APIClientOption configures an APIClient
type APIClientOption func(*APIClient)

// WithHTTPClient overrides the underlying http.Client
func WithHTTPClient(c *http.Client) APIClientOption {
	return func(a *APIClient) { a.httpClient = c }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) APIClientOption {
	return func(a *APIClient) { a.httpClient.Timeout = d }
}

// WithOnUnauthorized registers the forced-logout callback
func WithOnUnauthorized(fn func()) APIClientOption {
	return func(a *APIClient) { a.onUnauthorized = fn }
}

// NewAPIClient creates the shared backend client
func NewAPIClient(baseURL string, sessions domain.SessionStore, opts ...APIClientOption) *APIClient {
	c := &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
		sessions:   sessions,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorDetail mirrors the backend's error body
type errorDetail struct {
	Detail string `json:"detail"`
}

// do issues a request against the backend and decodes a 2xx response into
// out (which may be nil). When authed is true the stored bearer token is
// attached. Every failure maps onto the domain error taxonomy; no retries
// are performed.
func (c *APIClient) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return domain.NewOutputError("failed to encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return domain.NewNetworkError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		if c.sessions == nil {
			return domain.NewAuthError("not logged in", nil)
		}
		session, err := c.sessions.Load()
		if err != nil {
			return err
		}
		if session == nil {
			return domain.NewAuthError("not logged in", nil)
		}
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewNetworkError("network error, please try again", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp, authed)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewNetworkError("failed to decode response", err)
	}
	return nil
}

// errorFromResponse maps a non-2xx response onto the error taxonomy,
// preferring the server's detail message over the generic fallback.
func (c *APIClient) errorFromResponse(resp *http.Response, authed bool) error {
	var detail errorDetail
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
		_ = json.Unmarshal(data, &detail)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if authed && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return domain.NewAuthError(messageOr(detail.Detail, "authentication failed"), nil)
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewNotFoundError(messageOr(detail.Detail, "not found"), nil)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return domain.NewAuthError(messageOr(detail.Detail, fmt.Sprintf("request rejected (%d)", resp.StatusCode)), nil)
	default:
		return domain.NewNetworkError(messageOr(detail.Detail, fmt.Sprintf("server error (%d)", resp.StatusCode)), nil)
	}
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
