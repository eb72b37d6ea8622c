package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/instrumentation"
	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/internal/task"
)

// Config holds the dependencies and settings for a Client. It is
// passed explicitly to New so that isolated client instances can
// coexist; there is no process-wide setup.
type Config struct {
	// BaseURL is the root of the task API, e.g. "https://tasks.example.com/prod".
	BaseURL string

	// Tokens supplies the bearer credential for each request.
	Tokens session.TokenProvider

	// HTTPClient is the transport used for requests. Defaults to
	// http.DefaultClient; no extra timeouts or retries are layered on.
	HTTPClient *http.Client

	// Logger receives structured logs for each operation. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Metrics records per-operation observability metrics. Optional.
	Metrics *instrumentation.Metrics
}

// Client issues authenticated requests against the task API.
type Client struct {
	baseURL    string
	tokens     session.TokenProvider
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *instrumentation.Metrics
}

// New creates a task API client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("token provider is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     cfg.Tokens,
		httpClient: httpClient,
		logger:     logger,
		metrics:    cfg.Metrics,
	}, nil
}

// createPayload is the body for POST /tasks.
type createPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Deadline    *string `json:"deadline"`
}

// ListTasks fetches the full task collection. A 2xx response with an
// empty body yields an empty slice. Deadlines are canonicalized to
// RFC 3339 UTC or nil regardless of how the server formatted them.
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	if err := c.do(ctx, "list", http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}

	for i := range tasks {
		tasks[i].Deadline = task.NormalizeDeadline(tasks[i].Deadline)
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, nil
}

// CreateTask creates a new task from a draft. The server assigns the
// task ID; callers refresh the list to observe it.
func (c *Client) CreateTask(ctx context.Context, draft task.Draft) error {
	payload := createPayload{
		Title:       draft.Title,
		Description: draft.Description,
		Deadline:    task.EditableToWire(draft.Deadline),
	}
	return c.do(ctx, "create", http.MethodPost, "/tasks", payload, nil)
}

// UpdateTask replaces the task with the given ID. The full record is
// resent even for a single-field change; a missing status defaults to
// pending.
func (c *Client) UpdateTask(ctx context.Context, id int64, t task.Task) error {
	t.ID = id
	t.Status = t.Status.Effective()
	return c.do(ctx, "update", http.MethodPut, fmt.Sprintf("/tasks/%d", id), t, nil)
}

// DeleteTask deletes the task with the given ID.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// do runs one authenticated request against the task API. The token is
// fetched before any network I/O so a missing session never produces a
// request. body is JSON-encoded when non-nil and omitted entirely when
// nil; a non-2xx response becomes an *HTTPError; a 2xx response is
// decoded into out unless the body is empty or out is nil.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	start := time.Now()
	logger := logging.WithOperation(c.logger, "tasks."+operation)

	ctx, span := instrumentation.StartAPISpan(ctx, operation, method, path)
	defer span.End()

	err := c.roundTrip(ctx, method, path, body, out)
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
		instrumentation.SetSpanError(span, err)
		logger.Error("task API operation failed", logging.Err(err))
	} else {
		instrumentation.SetSpanSuccess(span)
		logger.Debug("task API operation completed")
	}
	c.metrics.RecordAPIOperation(ctx, operation, status, time.Since(start))

	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		// No session: fail before the network call.
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordHTTPRequest(ctx, method, path, 0)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	c.metrics.RecordHTTPRequest(ctx, method, path, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
		// Keep the server's structured error payload when it sent one;
		// anything else downgrades to the status line.
		if json.Valid(raw) {
			httpErr.Body = string(bytes.TrimSpace(raw))
		}
		return httpErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
