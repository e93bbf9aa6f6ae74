package requests

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"legendstats/pkg/messages"
)

// Client wraps a http client with the Riot API key attached.
type Client struct {
	apiKey string
	http   *http.Client
}

// Create a instance of the request client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Do a authenticated request to the Riot API.
// Return the response.
func (c *Client) AuthRequest(ctx context.Context, rawUrl string, params map[string]string) (*http.Response, error) {
	if c.apiKey == "" {
		return nil, errors.New(messages.MissingApiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawUrl, nil)
	if err != nil {
		return nil, err
	}

	// Attach the query params if any.
	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	// Add the token from the config.
	req.Header.Set("X-Riot-Token", c.apiKey)
	return c.http.Do(req)
}

// Create a simple unauthenticated request and return it.
func (c *Client) Request(ctx context.Context, rawUrl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawUrl, nil)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}
