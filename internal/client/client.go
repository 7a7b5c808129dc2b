// Package client talks to the ForgeFit server over HTTP and keeps a local
// journal of submitted completions.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/claude/forgefit/internal/session"
	"github.com/google/uuid"
)

// ErrNotFound reports a 404 from the server.
var ErrNotFound = errors.New("not found")

// Client sends requests to the ForgeFit server over HTTP.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the ForgeFit server.
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchSchedule retrieves the user's calendar entries, date ordered.
// Retries up to 3 times with exponential backoff: fetches are safe to
// repeat.
func (c *Client) FetchSchedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	if err := c.getWithRetry(ctx, "/api/v1/schedule/calendar", &entries); err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	return entries, nil
}

// FetchPlans retrieves the workout plan catalog.
func (c *Client) FetchPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	if err := c.getWithRetry(ctx, "/api/v1/plans", &plans); err != nil {
		return nil, fmt.Errorf("fetching plans: %w", err)
	}
	return plans, nil
}

// FetchPlan retrieves one workout plan. Returns ErrNotFound when the
// identifier has no matching definition.
func (c *Client) FetchPlan(ctx context.Context, id uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := c.get(ctx, "/api/v1/plans/"+id.String(), &plan); err != nil {
		return nil, fmt.Errorf("fetching plan %s: %w", id, err)
	}
	return &plan, nil
}

// FetchProgress retrieves the user's reward state.
func (c *Client) FetchProgress(ctx context.Context) (*models.Progress, error) {
	var p models.Progress
	if err := c.getWithRetry(ctx, "/api/v1/progress", &p); err != nil {
		return nil, fmt.Errorf("fetching progress: %w", err)
	}
	return &p, nil
}

// Report submits a finished workout. Never retried: a repeat submission
// would double-credit progress.
func (c *Client) Report(ctx context.Context, req models.CompletionRequest) (*models.CompletionResult, error) {
	var result models.CompletionResult
	if err := c.post(ctx, "/api/v1/workouts/complete", req, &result); err != nil {
		return nil, fmt.Errorf("submitting completion: %w", err)
	}
	return &result, nil
}

// CompleteScheduled submits a finished workout against its schedule
// entry, marking the calendar day completed server-side.
func (c *Client) CompleteScheduled(ctx context.Context, entryID uuid.UUID, durationMinutes int) (*models.CompletionResult, error) {
	body := map[string]int{"duration_minutes": durationMinutes}
	var result models.CompletionResult
	if err := c.post(ctx, "/api/v1/schedule/"+entryID.String()+"/complete", body, &result); err != nil {
		return nil, fmt.Errorf("submitting scheduled completion: %w", err)
	}
	return &result, nil
}

// ScheduledReporter adapts CompleteScheduled to the session.Reporter
// interface, binding the report to one calendar entry.
type ScheduledReporter struct {
	Client  *Client
	EntryID uuid.UUID
}

var _ session.Reporter = (*ScheduledReporter)(nil)

func (r *ScheduledReporter) Report(ctx context.Context, req models.CompletionRequest) (*models.CompletionResult, error) {
	return r.Client.CompleteScheduled(ctx, r.EntryID, req.DurationMinutes)
}

var _ session.Reporter = (*Client)(nil)

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// retryBackoff is the base delay between fetch attempts. Tests shrink it.
var retryBackoff = time.Second

// getWithRetry repeats transient fetch failures with exponential backoff.
func (c *Client) getWithRetry(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff << uint(attempt-1)):
			}
		}
		lastErr = c.get(ctx, path, out)
		if lastErr == nil || errors.Is(lastErr, ErrNotFound) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
