package logic

import (
	"context"

	"github.com/leaguecentral/stats-api/internal/models"
)

// SeasonDataPort is the read-only surface of the upstream league-data
// provider. Network and auth concerns live entirely behind it.
type SeasonDataPort interface {
	GetLeagueInfo(ctx context.Context, leagueID string) (*models.LeagueSeason, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]models.User, error)
	GetLeagueRosters(ctx context.Context, leagueID string) ([]models.Roster, error)
	GetLeagueMatchups(ctx context.Context, leagueID string, week int) ([]models.WeeklyMatchup, error)
	GetUserLeagues(ctx context.Context, userID, season string) ([]models.LeagueSeason, error)
}

// ChainCache stores resolved season chains keyed by the starting league ID.
// Implementations must be safe for concurrent use.
type ChainCache interface {
	Get(ctx context.Context, leagueID string) ([]string, bool)
	Set(ctx context.Context, leagueID string, chain []string)
}

// ChainService resolves the chain of linked league seasons.
type ChainService interface {
	ResolveChain(ctx context.Context, leagueID string) ([]string, error)
}

// AggregationService merges per-user roster outcomes across a season chain.
type AggregationService interface {
	AggregateUserStats(ctx context.Context, leagueID string) ([]models.AggregatedUserStats, error)
}

// MetricsService derives per-team performance metrics from weekly scoring.
// Season is a year label ("2024") or AllTime.
type MetricsService interface {
	GetTeamMetrics(ctx context.Context, leagueID, season string) ([]models.TeamMetrics, error)
}

// AllTime selects the merged whole-chain variant of GetTeamMetrics.
const AllTime = "all-time"
