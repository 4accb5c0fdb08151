package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Pindexa/internal/config"
)

// Client talks to the football-data.org v4 REST API.
type Client struct {
	baseURL     string
	apiKey      string
	competition string
	http        *http.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg config.FootballDataConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	competition := cfg.Competition
	if competition == "" {
		competition = "PL"
	}
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		competition: competition,
		http:        httpClient,
	}
}

// Standings fetches the competition table.
func (c *Client) Standings(ctx context.Context) (StandingsResponse, error) {
	var resp StandingsResponse
	err := c.get(ctx, c.competitionPath("standings"), nil, &resp)
	return resp, err
}

// TopScorers fetches the leading goalscorers.
func (c *Client) TopScorers(ctx context.Context, limit int) (ScorersResponse, error) {
	var resp ScorersResponse
	query := url.Values{}
	query.Set("limit", fmt.Sprint(limit))
	err := c.get(ctx, c.competitionPath("scorers"), query, &resp)
	return resp, err
}

// ScheduledMatches fetches upcoming fixtures.
func (c *Client) ScheduledMatches(ctx context.Context, limit int) (MatchesResponse, error) {
	var resp MatchesResponse
	query := url.Values{}
	query.Set("status", "SCHEDULED")
	query.Set("limit", fmt.Sprint(limit))
	err := c.get(ctx, c.competitionPath("matches"), query, &resp)
	return resp, err
}

func (c *Client) competitionPath(resource string) string {
	return "/competitions/" + url.PathEscape(c.competition) + "/" + resource
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Auth-Token", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("football-data.org %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
