package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://statsapi.mlb.com/api/v1"
	UserAgent      = "mlb-saturday-games/1.0 (github.com/pfrederiksen/mlb-saturday-games)"
	DefaultTimeout = 30 * time.Second

	// errorBodyLimit caps how much of a failed response is kept in a StatusError.
	errorBodyLimit = 512
)

// Config controls how the client reaches the Stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Query selects one team's schedule for a season.
type Query struct {
	TeamID   int
	Season   int
	SportID  int
	GameType string
	Hydrate  string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches team schedules from the Stats API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
}

// NewClient creates a client. Zero-valued fields fall back to package defaults; a
// caller-supplied HTTPClient is used as is.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = UserAgent
	}

	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: doer,
	}
}

// FetchTeamSchedule issues one GET against /schedule and decodes the body.
// Non-2xx answers yield a *StatusError; undecodable bodies wrap ErrDecode.
func (c *Client) FetchTeamSchedule(ctx context.Context, q Query) (*Response, error) {
	req, err := c.buildRequest(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule for team %d: %w", q.TeamID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w for team %d: %v", ErrDecode, q.TeamID, err)
	}
	return &out, nil
}

func (c *Client) buildRequest(ctx context.Context, q Query) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedule", nil)
	if err != nil {
		return nil, err
	}

	params := req.URL.Query()
	params.Set("teamId", strconv.Itoa(q.TeamID))
	params.Set("season", strconv.Itoa(q.Season))
	params.Set("sportId", strconv.Itoa(q.SportID))
	if q.GameType != "" {
		params.Set("gameType", q.GameType)
	}
	if q.Hydrate != "" {
		params.Set("hydrate", q.Hydrate)
	}
	req.URL.RawQuery = params.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}
