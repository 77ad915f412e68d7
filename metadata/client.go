package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxResponseBody caps how much of a function response is read (1 MB).
const maxResponseBody = 1 << 20

// Client invokes the metadata function over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOptions configures the Client.
type ClientOptions struct {
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
}

// NewClient returns a Client for the functions base URL, e.g.
// https://<project>.supabase.co/functions/v1.
// The default HTTP client has no timeout; callers bound requests with ctx.
func NewClient(baseURL, apiKey string, opts *ClientOptions) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
	if opts != nil && opts.HTTPClient != nil {
		c.httpClient = opts.HTTPClient
	}
	return c
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.baseURL + "/" + FunctionName
}

// FetchPinataMetadata posts req to the function. Network failures, non-2xx
// statuses and undecodable bodies are reported as ErrTransport. A decoded
// body is returned as-is, whatever its success flag says.
func (c *Client) FetchPinataMetadata(ctx context.Context, req Request) (*Response, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: functions URL not configured", ErrTransport)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %w", ErrTransport, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
		httpReq.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: sending request: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: function returned status %d", ErrTransport, resp.StatusCode)
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrTransport, err)
	}
	return &out, nil
}
