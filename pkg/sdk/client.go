// Package sdk provides a Go client for the activities HTTP API.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultAddr is used when neither an address nor ACTIVITIES_ADDR is given.
const DefaultAddr = "http://localhost:8000"

// Client is a remote client for the activities service.
// It implements the ActivityService interface.
type Client struct {
	base *url.URL
	http *http.Client

	// Attempts bounds how many times idempotent reads are tried on transport errors.
	Attempts int
}

// Connect builds a client for addr. An empty addr falls back to ACTIVITIES_ADDR, then DefaultAddr.
func Connect(addr string) (*Client, error) {
	if addr == "" {
		addr = os.Getenv("ACTIVITIES_ADDR")
	}
	if addr == "" {
		addr = DefaultAddr
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	base, err := url.Parse(strings.TrimSuffix(addr, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse address %q: %w", addr, err)
	}
	return &Client{
		base:     base,
		http:     &http.Client{Timeout: 10 * time.Second},
		Attempts: 3,
	}, nil
}

// WithHTTPClient swaps the underlying http.Client, e.g. for an httptest server.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

func (c *Client) List(ctx context.Context) (map[string]Activity, error) {
	var out map[string]Activity
	if err := c.do(ctx, http.MethodGet, "/activities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one activity. The API has no single-activity route, so it filters List.
func (c *Client) Get(ctx context.Context, name string) (Activity, error) {
	all, err := c.List(ctx)
	if err != nil {
		return Activity{}, err
	}
	a, ok := all[name]
	if !ok {
		return Activity{}, &APIError{StatusCode: http.StatusNotFound, Detail: "Activity not found"}
	}
	return a, nil
}

func (c *Client) Signup(ctx context.Context, name, email string) (string, error) {
	return c.roster(ctx, http.MethodPost, "/activities/"+url.PathEscape(name)+"/signup", email)
}

func (c *Client) Unregister(ctx context.Context, name, email string) (string, error) {
	return c.roster(ctx, http.MethodDelete, "/activities/"+url.PathEscape(name)+"/participants", email)
}

func (c *Client) roster(ctx context.Context, method, path, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	query := url.Values{"email": []string{email}}
	if err := c.do(ctx, method, path, query, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) endpoint(escapedPath string, query url.Values) string {
	u := *c.base
	u.RawPath = u.EscapedPath() + escapedPath
	if p, err := url.PathUnescape(u.RawPath); err == nil {
		u.Path = p
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// do sends a request and decodes a JSON body into out. GET requests are retried
// on transport errors with a linear backoff; roster changes are sent once.
func (c *Client) do(ctx context.Context, method, escapedPath string, query url.Values, out any) error {
	attempts := 1
	if method == http.MethodGet && c.Attempts > 1 {
		attempts = c.Attempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i*200) * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.endpoint(escapedPath, query), nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		return decodeResponse(resp, out)
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Detail = payload.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
