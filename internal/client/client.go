// Package client talks to the task REST API and returns its response
// envelopes as typed values.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/thenoetrevino/taskman/internal/models"
)

const (
	// DefaultBaseURL is the API root used when none is configured
	DefaultBaseURL = "http://localhost:3000/api"

	// tasksPath is the collection resource under the API root
	tasksPath = "/tasks"

	// maxErrorBody caps how much of a failed response is read for its message
	maxErrorBody = 64 << 10
)

// Doer is the transport capability the client needs.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a stateless facade over the task collection resource.
// It keeps no cache and never reorders what the server returns.
type Client struct {
	baseURL   *url.URL
	http      Doer
	timeout   time.Duration
	logger    *slog.Logger
	userAgent string
}

// New creates a client for the API rooted at baseURL
// (for example http://localhost:3000/api).
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger:    slog.Default(),
		userAgent: "taskman",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client targets
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// List fetches all tasks in server order
func (c *Client) List(ctx context.Context) (*models.APIResponse[[]models.Task], error) {
	var resp models.APIResponse[[]models.Task]
	if err := c.do(ctx, http.MethodGet, tasksPath, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []models.Task{}
	}
	return &resp, nil
}

// Get fetches a single task by its server identifier
func (c *Client) Get(ctx context.Context, id string) (*models.APIResponse[models.Task], error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var resp models.APIResponse[models.Task]
	if err := c.do(ctx, http.MethodGet, taskPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create persists a draft. The returned task carries the server-assigned
// identifier and timestamps.
func (c *Client) Create(ctx context.Context, task models.Task) (*models.APIResponse[models.Task], error) {
	if !task.IsDraft() {
		return nil, ErrNotDraft
	}
	var resp models.APIResponse[models.Task]
	if err := c.do(ctx, http.MethodPost, tasksPath, task.Body(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update replaces every editable field of the task identified by id
func (c *Client) Update(ctx context.Context, id string, task models.Task) (*models.APIResponse[models.Task], error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var resp models.APIResponse[models.Task]
	if err := c.do(ctx, http.MethodPut, taskPath(id), task.Body(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Remove deletes the task identified by id. The payload is unspecified.
func (c *Client) Remove(ctx context.Context, id string) (*models.APIResponse[any], error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var resp models.APIResponse[any]
	if err := c.do(ctx, http.MethodDelete, taskPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func taskPath(id string) string {
	return tasksPath + "/" + url.PathEscape(id)
}

// do issues one request and decodes the envelope into out.
// Non-2xx responses become *StatusError.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("task api request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Debug("error closing response body", "error", cerr)
		}
	}()

	c.logger.Debug("task api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}
	return nil
}

// statusError builds a StatusError, preferring the envelope's own message
func statusError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return se
	}

	var env models.APIResponse[any]
	if json.Unmarshal(data, &env) == nil && (env.Error != "" || env.Message != "") {
		se.Message = env.Failure()
	}
	return se
}
