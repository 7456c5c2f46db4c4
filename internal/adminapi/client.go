// Package adminapi is the client side of the trading-platform REST API:
// request construction, a uniform result shape, and typed resource operations.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
	"github.com/google/uuid"
)

// DefaultBaseURL is the API base of a locally running backend.
const DefaultBaseURL = "http://localhost:5000/api/v1"

// noContentMessage is the message attached to synthetic 204 results.
const noContentMessage = "操作成功"

// Client is an HTTP client for the trading-platform API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger

	metrics *Metrics
}

// Option configures optional Client behaviour.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.HTTPClient.Timeout = d
	}
}

// WithMetrics records request outcomes.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates an API client rooted at baseURL.
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Logger:     logger.With("component", "adminapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is a successful API call.
// NoContent marks a 204 reply, which carries no payload.
type Response struct {
	Status    int
	Code      int
	Message   string
	Data      json.RawMessage
	NoContent bool
}

// Decode unmarshals the response data into v.
func (r *Response) Decode(v any) error {
	if r.NoContent || len(r.Data) == 0 || string(r.Data) == "null" {
		return &model.APIError{Kind: model.KindDecode, Status: r.Status, Message: "response has no data"}
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return &model.APIError{Kind: model.KindDecode, Status: r.Status, Message: fmt.Sprintf("parse response data: %v", err), Err: err}
	}
	return nil
}

// RequestOption adjusts an outgoing request.
type RequestOption func(*http.Request)

// WithHeader sets (or, with an empty value, removes) a request header.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		if value == "" {
			r.Header.Del(key)
			return
		}
		r.Header.Set(key, value)
	}
}

// Do sends a request with an optional JSON body and returns the parsed result.
// Every failure is an *model.APIError and is logged before it is returned.
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		c.Logger.Debug("HTTP request body", "body", string(data))
	}
	return c.send(ctx, method, path, bodyReader, opts...)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, opts ...RequestOption) (*Response, error) {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", "req_"+uuid.New().String()[:8])
	for _, opt := range opts {
		opt(req)
	}

	c.Logger.Debug("HTTP request", "method", method, "url", url, "request_id", req.Header.Get("X-Request-ID"))

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, c.fail(method, path, start, &model.APIError{
			Kind:    model.KindTransport,
			Message: fmt.Sprintf("request failed: %v", err),
			Err:     err,
		})
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(method, path, start, &model.APIError{
			Kind:    model.KindTransport,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("read response: %v", err),
			Err:     err,
		})
	}

	c.Logger.Debug("HTTP response", "status", resp.StatusCode, "body", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(method, path, start, errorFromBody(resp.StatusCode, respBody))
	}

	if resp.StatusCode == http.StatusNoContent {
		c.metrics.observe(method, resp.StatusCode, time.Since(start))
		return &Response{Status: resp.StatusCode, Code: resp.StatusCode, Message: noContentMessage, NoContent: true}, nil
	}

	var env model.Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, c.fail(method, path, start, &model.APIError{
			Kind:    model.KindDecode,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("parse response (status %d): %v", resp.StatusCode, err),
			Err:     err,
		})
	}

	c.metrics.observe(method, resp.StatusCode, time.Since(start))
	return &Response{
		Status:  resp.StatusCode,
		Code:    env.Code,
		Message: env.Message,
		Data:    env.Data,
	}, nil
}

// errorFromBody builds the error for a non-2xx reply. The body's message is
// used when it parses; otherwise the status code is reported. Only an
// explicit error_code sets a domain kind here.
func errorFromBody(status int, body []byte) *model.APIError {
	apiErr := &model.APIError{
		Kind:    model.KindHTTP,
		Status:  status,
		Message: model.HTTPStatusMessage(status),
	}

	var env model.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}
	if env.Message != "" {
		apiErr.Message = env.Message
	}
	if kind, ok := model.KindFromCode(env.ErrorCode); ok {
		apiErr.Kind = kind
	}
	return apiErr
}

func (c *Client) fail(method, path string, start time.Time, apiErr *model.APIError) error {
	c.metrics.observe(method, apiErr.Status, time.Since(start))
	c.Logger.Error("API request failed",
		"method", method,
		"path", path,
		"status", apiErr.Status,
		"kind", apiErr.Kind,
		"error", apiErr.Message,
	)
	return apiErr
}

// classifyRejection reads a domain kind out of the message of a refused
// delete when the backend sent no error_code. Kinds outside allowed are
// ignored.
func classifyRejection(err error, allowed ...model.ErrorKind) {
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != model.KindHTTP {
		return
	}
	if kind := model.ClassifyMessage(apiErr.Message); slices.Contains(allowed, kind) {
		apiErr.Kind = kind
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

func idPath(base string, id int) string {
	return base + "/" + strconv.Itoa(id)
}
