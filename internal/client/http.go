package client

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "devsalary/1.0 (api-test-agent)"
	maxErrorBody     = 512
)

// StatusError is returned when an API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GET %s: received status %s", e.URL, e.Status)
	}
	return fmt.Sprintf("GET %s: received status %s: %s", e.URL, e.Status, e.Body)
}

// Options configures a Client
type Options struct {
	ProxyURL          string
	Timeout           time.Duration
	UserAgent         string
	RequestsPerSecond float64
	Header            http.Header
	Logger            *pterm.Logger
}

// Client performs paced JSON GET requests against a single API
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	header     http.Header
	logger     *pterm.Logger
}

// New creates a Client. A non-positive RequestsPerSecond disables pacing.
func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	httpClient, err := CreateProxyHTTPClient(opts.ProxyURL, opts.Timeout)
	if err != nil {
		return nil, err
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	header := opts.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set("User-Agent", opts.UserAgent)
	header.Set("Accept", "application/json")
	header.Set("Accept-Encoding", "gzip")

	logger := opts.Logger
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}

	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		header:     header,
		logger:     logger,
	}, nil
}

// CreateProxyHTTPClient creates an HTTP client with proxy support. An empty
// proxyURL falls back to the environment proxy settings.
func CreateProxyHTTPClient(proxyURL string, timeout time.Duration) (*http.Client, error) {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 2,
		ForceAttemptHTTP2:   true,
	}

	if proxyURL != "" {
		proxy, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", proxyURL, err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// GetJSON sends a GET request with the given query and extra headers and
// decodes the JSON body into out. Any non-2xx status is returned as a
// *StatusError.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query url.Values, header http.Header, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range c.header {
		req.Header[key] = values
	}
	for key, values := range header {
		req.Header[key] = values
	}

	c.logger.Debug("GET", c.logger.Args("url", u.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u.Redacted(), err)
	}
	defer resp.Body.Close()

	body, err := ReadResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        u.Redacted(),
			Body:       truncate(string(body), maxErrorBody),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response from %s: %w", u.Redacted(), err)
	}
	return nil
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length] + "..."
}
