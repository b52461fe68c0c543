package officeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

// Sentinel errors for the two upstream failure classes callers care about.
var (
	// ErrUnauthorized signals the upstream rejected the caller's token.
	ErrUnauthorized = errors.New("office api: unauthorized")
	// ErrUnavailable signals the upstream could not serve the resource.
	ErrUnavailable = errors.New("office api: unavailable")
)

// APIError carries the upstream's error detail.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("office api error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// Client wraps the office-management platform's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an office API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope is the API's uniform response wrapper. Data stays raw here: list
// endpoints return either a direct array or a page wrapper, and the caller
// normalizes via DecodeList.
type envelope struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
}

// get performs an authenticated GET and returns the raw data payload.
func (c *Client) get(ctx context.Context, sess session.Session, path string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && resp.StatusCode < 400 {
		return nil, fmt.Errorf("%w: %s: malformed response: %v", ErrUnavailable, path, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, path)
	case resp.StatusCode >= 400:
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, apiErr)
	case !env.OK:
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, apiErr)
	}

	return env.Data, nil
}
