package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the ForgeFit REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) ListPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	body, err := c.get(ctx, "/api/v1/plans", nil)
	if err != nil {
		return nil, err
	}

	var plans []models.WorkoutPlan
	if err := json.Unmarshal(body, &plans); err != nil {
		return nil, fmt.Errorf("httpclient: decode plans: %w", err)
	}
	return plans, nil
}

func (c *HTTPClient) GetPlan(ctx context.Context, id uuid.UUID) (*models.WorkoutPlan, error) {
	body, err := c.get(ctx, "/api/v1/plans/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var plan models.WorkoutPlan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return &plan, nil
}

// ListSchedule ignores userID: the remote server resolves identity from
// the transport.
func (c *HTTPClient) ListSchedule(ctx context.Context, _ int) ([]models.ScheduleEntry, error) {
	body, err := c.get(ctx, "/api/v1/schedule/calendar", nil)
	if err != nil {
		return nil, err
	}

	var entries []models.ScheduleEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode schedule: %w", err)
	}
	return entries, nil
}

func (c *HTTPClient) GetProgress(ctx context.Context, _ int) (models.Progress, error) {
	body, err := c.get(ctx, "/api/v1/progress", nil)
	if err != nil {
		return models.Progress{}, err
	}

	var p models.Progress
	if err := json.Unmarshal(body, &p); err != nil {
		return models.Progress{}, fmt.Errorf("httpclient: decode progress: %w", err)
	}
	return p, nil
}

func (c *HTTPClient) RecentSessions(ctx context.Context, _ int, since time.Time) ([]models.WorkoutSessionRecord, error) {
	days := int(time.Since(since).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	params := url.Values{}
	params.Set("days", fmt.Sprint(days))

	body, err := c.get(ctx, "/api/v1/sessions/recent", params)
	if err != nil {
		return nil, err
	}

	var sessions []models.WorkoutSessionRecord
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("httpclient: decode sessions: %w", err)
	}
	return sessions, nil
}
