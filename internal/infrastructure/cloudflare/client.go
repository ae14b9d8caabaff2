package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/petralia/cfdnsctl/internal/domain"
	"github.com/petralia/cfdnsctl/internal/infrastructure/logger"
)

const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// Credentials holds either an API token or the legacy key+email pair.
type Credentials struct {
	APIToken string
	APIKey   string
	Email    string
}

func (c Credentials) Validate() error {
	if c.APIToken == "" && (c.APIKey == "" || c.Email == "") {
		return fmt.Errorf("%w: api token or api key with email", domain.ErrMissingCredential)
	}
	return nil
}

// Client executes authenticated requests against the v4 API. It holds
// no state besides connection reuse; every call is independent.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		creds:      creds,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs one API call and decodes the response envelope. The path
// is relative to the v4 base URL. A non-2xx status or success=false in
// the envelope yields an *APIError; transport failures are wrapped as
// request failures. No retries anywhere: the first failure is final.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, domain.WrapOp("encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, domain.WrapOp("build request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.creds.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.creds.APIToken)
	} else {
		req.Header.Set("X-Auth-Key", c.creds.APIKey)
		req.Header.Set("X-Auth-Email", c.creds.Email)
	}

	logger.Debug("cloudflare request", "method", method, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrRequestFailed, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrRequestFailed, err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %s %s: status %d", domain.ErrInvalidResponse, method, path, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Errors:     env.Errors,
		}
	}

	return &env, nil
}

// APIError is a non-success response from the API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Errors     []APIMessage
}

func (e *APIError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	for _, m := range e.Errors {
		fmt.Fprintf(&sb, ": %s (code %d)", m.Message, m.Code)
	}
	return sb.String()
}

func (e *APIError) Unwrap() error {
	return domain.ErrRequestFailed
}

// NotFound reports whether the response indicates a missing resource.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
