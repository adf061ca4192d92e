package logic

import (
	"context"
	"errors"
	"sync"

	"github.com/leaguecentral/stats-api/internal/models"
)

var errMockNotFound = errors.New("mock: not found")

// MockSeasonDataPort
type MockSeasonDataPort struct {
	GetLeagueInfoFunc     func(ctx context.Context, leagueID string) (*models.LeagueSeason, error)
	GetLeagueUsersFunc    func(ctx context.Context, leagueID string) ([]models.User, error)
	GetLeagueRostersFunc  func(ctx context.Context, leagueID string) ([]models.Roster, error)
	GetLeagueMatchupsFunc func(ctx context.Context, leagueID string, week int) ([]models.WeeklyMatchup, error)
	GetUserLeaguesFunc    func(ctx context.Context, userID, season string) ([]models.LeagueSeason, error)

	mu        sync.Mutex
	InfoCalls int
}

func (m *MockSeasonDataPort) GetLeagueInfo(ctx context.Context, leagueID string) (*models.LeagueSeason, error) {
	m.mu.Lock()
	m.InfoCalls++
	m.mu.Unlock()
	if m.GetLeagueInfoFunc != nil {
		return m.GetLeagueInfoFunc(ctx, leagueID)
	}
	return nil, errMockNotFound
}

func (m *MockSeasonDataPort) GetLeagueUsers(ctx context.Context, leagueID string) ([]models.User, error) {
	if m.GetLeagueUsersFunc != nil {
		return m.GetLeagueUsersFunc(ctx, leagueID)
	}
	return nil, nil
}

func (m *MockSeasonDataPort) GetLeagueRosters(ctx context.Context, leagueID string) ([]models.Roster, error) {
	if m.GetLeagueRostersFunc != nil {
		return m.GetLeagueRostersFunc(ctx, leagueID)
	}
	return nil, nil
}

func (m *MockSeasonDataPort) GetLeagueMatchups(ctx context.Context, leagueID string, week int) ([]models.WeeklyMatchup, error) {
	if m.GetLeagueMatchupsFunc != nil {
		return m.GetLeagueMatchupsFunc(ctx, leagueID, week)
	}
	return nil, nil
}

func (m *MockSeasonDataPort) GetUserLeagues(ctx context.Context, userID, season string) ([]models.LeagueSeason, error) {
	if m.GetUserLeaguesFunc != nil {
		return m.GetUserLeaguesFunc(ctx, userID, season)
	}
	return nil, nil
}

// MockChainService
type MockChainService struct {
	ResolveChainFunc func(ctx context.Context, leagueID string) ([]string, error)
}

func (m *MockChainService) ResolveChain(ctx context.Context, leagueID string) ([]string, error) {
	if m.ResolveChainFunc != nil {
		return m.ResolveChainFunc(ctx, leagueID)
	}
	return []string{leagueID}, nil
}

// mapChainCache is an unbounded test cache.
type mapChainCache struct {
	mu      sync.Mutex
	entries map[string][]string
}

func newMapChainCache() *mapChainCache {
	return &mapChainCache{entries: make(map[string][]string)}
}

func (c *mapChainCache) Get(_ context.Context, leagueID string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	chain, ok := c.entries[leagueID]
	return chain, ok
}

func (c *mapChainCache) Set(_ context.Context, leagueID string, chain []string) {
	c.mu.Lock()
	c.entries[leagueID] = chain
	c.mu.Unlock()
}

// fixture helpers

func league(id, season, prev string, playoffTeams int) *models.LeagueSeason {
	return &models.LeagueSeason{
		LeagueID:         id,
		Name:             "Test League " + season,
		Season:           season,
		PreviousLeagueID: prev,
		Settings: models.LeagueSettings{
			PlayoffTeams:     playoffTeams,
			PlayoffWeekStart: 15,
		},
	}
}

func user(id, name string) models.User {
	return models.User{UserID: id, DisplayName: name}
}

func roster(rosterID int, ownerID string, wins, losses, ties, fpts, fptsDec int) models.Roster {
	return models.Roster{
		RosterID: rosterID,
		OwnerID:  ownerID,
		Settings: models.RosterSettings{
			Wins:        wins,
			Losses:      losses,
			Ties:        ties,
			FPts:        fpts,
			FPtsDecimal: fptsDec,
		},
	}
}

func fp(v float64) *float64 { return &v }
