package fmp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultUserAgent = "fmpmcp"

// Client is a thin passthrough client for the FMP stable REST API. It shapes
// query parameters and returns response bodies verbatim; it never interprets
// payloads beyond status-code checks.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
}

type Config struct {
	BaseURL   string
	Token     string
	UserAgent string
	Timeout   time.Duration
}

func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://financialmodelingprep.com"
	}
	agent := cfg.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   base,
		token:     cfg.Token,
		userAgent: agent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get fetches <base>/<path>?<params>&apikey=<token> and returns the body
// verbatim. A non-empty per-call token overrides the client default.
func (c *Client) Get(ctx context.Context, path string, token string, params url.Values) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("fmp client is nil")
	}
	endpoint := strings.TrimLeft(path, "/")
	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	apiKey := token
	if apiKey == "" {
		apiKey = c.token
	}
	if apiKey != "" {
		query.Set("apikey", apiKey)
	}

	reqURL := c.baseURL + "/" + endpoint
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, redactToken(err, apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:   resp.StatusCode,
			Endpoint: endpoint,
			Body:     string(body),
		}
	}
	return body, nil
}

// redactToken strips the API key out of transport errors, which embed the
// full request URL.
func redactToken(err error, token string) error {
	if err == nil || token == "" {
		return err
	}
	msg := strings.ReplaceAll(err.Error(), token, "[REDACTED]")
	return fmt.Errorf("%s", msg)
}
