package handlers

import (
	"context"

	"github.com/leaguecentral/stats-api/internal/models"
)

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

// MockAggregationService
type MockAggregationService struct {
	AggregateUserStatsFunc func(ctx context.Context, leagueID string) ([]models.AggregatedUserStats, error)
}

func (m *MockAggregationService) AggregateUserStats(ctx context.Context, leagueID string) ([]models.AggregatedUserStats, error) {
	if m.AggregateUserStatsFunc != nil {
		return m.AggregateUserStatsFunc(ctx, leagueID)
	}
	return nil, nil
}

// MockMetricsService
type MockMetricsService struct {
	GetTeamMetricsFunc func(ctx context.Context, leagueID, season string) ([]models.TeamMetrics, error)
}

func (m *MockMetricsService) GetTeamMetrics(ctx context.Context, leagueID, season string) ([]models.TeamMetrics, error) {
	if m.GetTeamMetricsFunc != nil {
		return m.GetTeamMetricsFunc(ctx, leagueID, season)
	}
	return nil, nil
}

// MockSeasonDataPort
type MockSeasonDataPort struct {
	GetLeagueInfoFunc     func(ctx context.Context, leagueID string) (*models.LeagueSeason, error)
	GetLeagueUsersFunc    func(ctx context.Context, leagueID string) ([]models.User, error)
	GetLeagueRostersFunc  func(ctx context.Context, leagueID string) ([]models.Roster, error)
	GetLeagueMatchupsFunc func(ctx context.Context, leagueID string, week int) ([]models.WeeklyMatchup, error)
	GetUserLeaguesFunc    func(ctx context.Context, userID, season string) ([]models.LeagueSeason, error)
}

func (m *MockSeasonDataPort) GetLeagueInfo(ctx context.Context, leagueID string) (*models.LeagueSeason, error) {
	if m.GetLeagueInfoFunc != nil {
		return m.GetLeagueInfoFunc(ctx, leagueID)
	}
	return &models.LeagueSeason{LeagueID: leagueID, Season: "2024"}, nil
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

// MockConfigStore
type MockConfigStore struct {
	LeagueIDFunc    func(ctx context.Context) (string, error)
	SetLeagueIDFunc func(ctx context.Context, leagueID string) error
}

func (m *MockConfigStore) LeagueID(ctx context.Context) (string, error) {
	if m.LeagueIDFunc != nil {
		return m.LeagueIDFunc(ctx)
	}
	return "123", nil
}

func (m *MockConfigStore) SetLeagueID(ctx context.Context, leagueID string) error {
	if m.SetLeagueIDFunc != nil {
		return m.SetLeagueIDFunc(ctx, leagueID)
	}
	return nil
}
