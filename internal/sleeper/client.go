// Package sleeper implements the SeasonDataPort over the public Sleeper
// fantasy-football API. All endpoints are unauthenticated reads.
package sleeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/leaguecentral/stats-api/internal/models"
)

const DefaultBaseURL = "https://api.sleeper.app/v1"

var (
	// ErrNotFound marks a 404 from the upstream API.
	ErrNotFound = errors.New("sleeper: not found")

	// ErrUpstream marks any other non-success upstream response.
	ErrUpstream = errors.New("sleeper: upstream failure")
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sleeper_upstream_requests_total",
		Help: "Requests to the Sleeper API by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	upstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sleeper_upstream_request_duration_seconds",
		Help:    "Duration of Sleeper API requests",
		Buckets: prometheus.DefBuckets,
	})
)

// Config configures the Sleeper client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger.Sugar(),
	}
}

func (c *Client) GetLeagueInfo(ctx context.Context, leagueID string) (*models.LeagueSeason, error) {
	var league models.LeagueSeason
	if err := c.getJSON(ctx, "league_info", fmt.Sprintf("/league/%s", leagueID), &league); err != nil {
		return nil, err
	}
	if league.LeagueID == "" {
		// Sleeper answers 200 with a JSON null body for unknown leagues.
		return nil, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}
	return &league, nil
}

func (c *Client) GetLeagueUsers(ctx context.Context, leagueID string) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "league_users", fmt.Sprintf("/league/%s/users", leagueID), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetLeagueRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	var rosters []models.Roster
	if err := c.getJSON(ctx, "league_rosters", fmt.Sprintf("/league/%s/rosters", leagueID), &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

func (c *Client) GetLeagueMatchups(ctx context.Context, leagueID string, week int) ([]models.WeeklyMatchup, error) {
	var matchups []models.WeeklyMatchup
	path := fmt.Sprintf("/league/%s/matchups/%d", leagueID, week)
	if err := c.getJSON(ctx, "league_matchups", path, &matchups); err != nil {
		return nil, err
	}
	for i := range matchups {
		matchups[i].Week = week
	}
	return matchups, nil
}

func (c *Client) GetUserLeagues(ctx context.Context, userID, season string) ([]models.LeagueSeason, error) {
	var leagues []models.LeagueSeason
	path := fmt.Sprintf("/user/%s/leagues/nfl/%s", userID, season)
	if err := c.getJSON(ctx, "user_leagues", path, &leagues); err != nil {
		return nil, err
	}
	return leagues, nil
}

// getJSON performs one GET against the Sleeper API and decodes the body into
// out. A JSON null body leaves out at its zero value.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	upstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		upstreamRequests.WithLabelValues(endpoint, "not_found").Inc()
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		c.logger.Warnw("Sleeper API non-success response", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s returned %d", ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		upstreamRequests.WithLabelValues(endpoint, "decode_error").Inc()
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, path, err)
	}
	upstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}
