// Package http implements the single-dispatch transport shared by every API
// operation: it builds the request URL, merges identity and per-call headers,
// enforces the per-call timeout, and classifies the response into data,
// AuthError, or RequestError.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/shipthis-co/shipthis-go/internal/constants"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
)

// HeaderSource supplies the identity headers attached to every request
// (organisation, user type, API key, region/location, custom headers). It is
// consulted per request so region/location swaps take effect immediately.
type HeaderSource interface {
	Headers() map[string]string
}

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents one API request.
type Request struct {
	Method string
	// Path is resolved against the client's base URL.
	Path string
	// URL, when set, overrides Path with an absolute target. Used by the
	// upload client, which talks to a derived host.
	URL   string
	Query url.Values
	// Body is JSON-marshaled when set.
	Body interface{}
	// RawBody is sent as-is (multipart payloads). ContentType must be set
	// alongside it.
	RawBody     []byte
	ContentType string
	// Headers are per-call overrides; they win over every other header.
	Headers map[string]string
	// Timeout overrides the client default when positive.
	Timeout time.Duration
	// Raw skips envelope classification: any 2xx body is returned
	// untouched. Auth and status classification still apply.
	Raw bool
}

// Response represents one API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	// Body is the raw response body.
	Body []byte
	// Data is the envelope's data payload for classified responses. May be
	// nil for mutation-style calls returning no body.
	Data json.RawMessage
	// Meta is the envelope's metadata payload, when present.
	Meta json.RawMessage
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithInterceptors sets the interceptor chain run around every dispatch.
func WithInterceptors(chain *shipthis.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// Client is the HTTP transport.
type Client struct {
	baseURL      string
	source       HeaderSource
	httpClient   *nethttp.Client
	timeout      time.Duration
	userAgent    string
	debug        bool
	logger       Logger
	interceptors *shipthis.InterceptorChain
}

// NewClient creates a new transport for the given base URL. The header
// source may be nil, in which case only the built-in defaults are sent.
func NewClient(baseURL string, source HeaderSource, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	// Every failure is reported exactly once; nothing is retried.
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		source:     source,
		httpClient: retryClient.StandardClient(),
		timeout:    constants.DefaultHTTPTimeout,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do performs one request and classifies the response. It never retries.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	bodyBytes, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	headers := c.buildHeaders(req, bodyBytes)
	fullURL := c.buildURL(req)

	ireq := &shipthis.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: headers,
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, ireq)
		if err != nil {
			return nil, err
		}

		headers = ireq.Headers
	}

	resp, doErr := c.roundTrip(ctx, req, fullURL, headers, bodyBytes)

	if c.interceptors != nil {
		iresp := &shipthis.Response{Error: doErr}
		if resp != nil {
			iresp.StatusCode = resp.StatusCode
			iresp.Headers = resp.Headers
			iresp.Body = resp.Body
		}

		err = c.interceptors.ExecuteResponseInterceptors(ctx, ireq, iresp)
		if err != nil {
			return resp, err
		}
	}

	return resp, doErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// PostRaw performs a POST with a pre-encoded body and explicit content type
// (multipart uploads).
func (c *Client) PostRaw(ctx context.Context, path string, body []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      nethttp.MethodPost,
		Path:        path,
		RawBody:     body,
		ContentType: contentType,
		Raw:         true,
	})
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) roundTrip(ctx context.Context, req *Request, fullURL string, headers nethttp.Header, bodyBytes []byte) (*Response, error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &shipthis.RequestError{
			Message:    fmt.Sprintf("reading response body: %v", err),
			StatusCode: httpResp.StatusCode,
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	return resp, classify(req, resp)
}

func (c *Client) buildURL(req *Request) string {
	target := req.URL
	if target == "" {
		target = c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	}

	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	return target
}

// buildHeaders merges headers lowest to highest precedence: built-in
// defaults, the identity header source, then per-call overrides.
func (c *Client) buildHeaders(req *Request, bodyBytes []byte) nethttp.Header {
	headers := make(nethttp.Header)

	headers.Set("Accept", "application/json")

	if bodyBytes != nil {
		headers.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		headers.Set("User-Agent", c.userAgent)
	}

	if c.source != nil {
		for key, value := range c.source.Headers() {
			headers.Set(key, value)
		}
	}

	if req.ContentType != "" {
		headers.Set("Content-Type", req.ContentType)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}

func encodeBody(req *Request) ([]byte, error) {
	if req.RawBody != nil {
		return req.RawBody, nil
	}

	if req.Body == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return encoded, nil
}

// transportError maps network-level failures onto the error taxonomy:
// timeouts carry status 408, everything else status 0.
func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &shipthis.RequestError{
			Message:    "request timed out",
			StatusCode: nethttp.StatusRequestTimeout,
		}
	}

	urlErr := &url.Error{}
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &shipthis.RequestError{
			Message:    "request timed out",
			StatusCode: nethttp.StatusRequestTimeout,
		}
	}

	return &shipthis.RequestError{
		Message: fmt.Sprintf("request failed: %v", err),
	}
}

// classify applies the response contract: 401/403 are auth failures, bodies
// must parse as JSON, and on 200/201 the envelope's success flag is
// authoritative.
func classify(req *Request, resp *Response) error {
	switch resp.StatusCode {
	case nethttp.StatusUnauthorized:
		return &shipthis.AuthError{
			Message:    "authentication failed: check your API key",
			StatusCode: resp.StatusCode,
		}
	case nethttp.StatusForbidden:
		return &shipthis.AuthError{
			Message:    "access denied: check your permissions",
			StatusCode: resp.StatusCode,
		}
	}

	if req.Raw {
		if resp.StatusCode >= nethttp.StatusOK && resp.StatusCode < nethttp.StatusMultipleChoices {
			return nil
		}

		return &shipthis.RequestError{
			Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Details:    bestEffortDetails(resp.Body),
		}
	}

	var envelope shipthis.Envelope

	err := json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return &shipthis.RequestError{
			Message:    fmt.Sprintf("invalid JSON response: %s", excerpt(resp.Body)),
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode == nethttp.StatusOK || resp.StatusCode == nethttp.StatusCreated {
		if envelope.Success {
			resp.Data = envelope.Data
			resp.Meta = envelope.Meta

			return nil
		}

		return &shipthis.RequestError{
			Message:    envelope.FirstErrorMessage(),
			StatusCode: resp.StatusCode,
			Details:    bestEffortDetails(resp.Body),
		}
	}

	return &shipthis.RequestError{
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
		StatusCode: resp.StatusCode,
		Details:    bestEffortDetails(resp.Body),
	}
}

func excerpt(body []byte) string {
	if len(body) > constants.BodyExcerptLen {
		body = body[:constants.BodyExcerptLen]
	}

	return string(body)
}

func bestEffortDetails(body []byte) map[string]interface{} {
	details := map[string]interface{}{}

	err := json.Unmarshal(body, &details)
	if err != nil {
		return map[string]interface{}{"response": string(body)}
	}

	return details
}
