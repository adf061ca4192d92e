package logic

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leaguecentral/stats-api/internal/models"
)

type aggregationService struct {
	port   SeasonDataPort
	chain  ChainService
	logger *zap.SugaredLogger

	// legacyChampionship keeps the historical roster-ID-1 championship count.
	// Roster IDs are arbitrary provider assignments, so the count is a proxy;
	// real detection needs playoff-bracket results the port does not expose.
	legacyChampionship bool
}

func NewAggregationService(port SeasonDataPort, chain ChainService, logger *zap.Logger, legacyChampionship bool) AggregationService {
	return &aggregationService{
		port:               port,
		chain:              chain,
		logger:             logger.Sugar(),
		legacyChampionship: legacyChampionship,
	}
}

// seasonSnapshot is one season's fetched data, ready to fold into the
// per-user accumulators.
type seasonSnapshot struct {
	Info    *models.LeagueSeason
	Users   []models.User
	Rosters []models.Roster
}

// AggregateUserStats resolves the season chain for leagueID and merges every
// user's roster outcomes across it. Unlike chain resolution, a fetch failure
// for any season fails the whole call: totals must never silently omit a
// season's contribution.
func (s *aggregationService) AggregateUserStats(ctx context.Context, leagueID string) ([]models.AggregatedUserStats, error) {
	chain, err := s.chain.ResolveChain(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("resolve chain: %w", err)
	}

	snapshots, err := s.fetchSeasons(ctx, chain)
	if err != nil {
		return nil, err
	}

	acc := make(map[string]*models.AggregatedUserStats)
	for _, snap := range snapshots {
		s.foldSeason(snap, acc)
	}

	out := make([]models.AggregatedUserStats, 0, len(acc))
	for _, a := range acc {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinPercentage != out[j].WinPercentage {
			return out[i].WinPercentage > out[j].WinPercentage
		}
		if out[i].PointsFor != out[j].PointsFor {
			return out[i].PointsFor > out[j].PointsFor
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

// fetchSeasons loads info, users and rosters for every season in the chain.
// Seasons have no data dependency on each other once the chain is known, so
// the fetches run concurrently; the first failure cancels the rest.
func (s *aggregationService) fetchSeasons(ctx context.Context, chain []string) ([]seasonSnapshot, error) {
	snapshots := make([]seasonSnapshot, len(chain))
	g, ctx := errgroup.WithContext(ctx)

	for i, id := range chain {
		g.Go(func() error {
			info, err := s.port.GetLeagueInfo(ctx, id)
			if err != nil {
				return fmt.Errorf("league info %s: %w", id, err)
			}
			users, err := s.port.GetLeagueUsers(ctx, id)
			if err != nil {
				return fmt.Errorf("league users %s: %w", id, err)
			}
			rosters, err := s.port.GetLeagueRosters(ctx, id)
			if err != nil {
				return fmt.Errorf("league rosters %s: %w", id, err)
			}
			snapshots[i] = seasonSnapshot{Info: info, Users: users, Rosters: rosters}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// foldSeason merges one season into the accumulators. Summed totals are
// order-independent across seasons; only BestFinish and the identity fields
// depend on visit order (newest season first, first identity seen wins).
func (s *aggregationService) foldSeason(snap seasonSnapshot, acc map[string]*models.AggregatedUserStats) {
	joined, report := joinUsersRosters(snap.Users, snap.Rosters)
	if report.Skipped() > 0 {
		s.logger.Warnw("Skipped unmatched records during aggregation",
			"league_id", snap.Info.LeagueID,
			"season", snap.Info.Season,
			"skipped_rosters", report.SkippedRosterIDs,
			"skipped_users", report.SkippedUserIDs,
		)
	}

	playoffTeams := snap.Info.Settings.PlayoffTeams

	for _, team := range joined {
		a, ok := acc[team.User.UserID]
		if !ok {
			a = &models.AggregatedUserStats{
				UserID:      team.User.UserID,
				DisplayName: team.User.DisplayName,
				TeamName:    team.User.TeamName(),
				Avatar:      team.User.Avatar,
				BestFinish:  team.Roster.RosterID,
			}
			acc[team.User.UserID] = a
		}

		set := team.Roster.Settings
		a.Wins += set.Wins
		a.Losses += set.Losses
		a.Ties += set.Ties
		a.PointsFor += set.PointsFor()
		a.PointsAgainst += set.PointsAgainst()
		a.Seasons++

		if team.Roster.RosterID < a.BestFinish {
			a.BestFinish = team.Roster.RosterID
		}
		if s.legacyChampionship && team.Roster.RosterID == 1 {
			a.Championships++
		}
		if playoffTeams > 0 && team.Roster.RosterID <= playoffTeams {
			a.PlayoffAppearances++
		}

		recomputeDerived(a)
	}
}

// recomputeDerived refreshes the percentage fields from the running totals.
// Idempotent: recomputing after every season equals a single final pass.
func recomputeDerived(a *models.AggregatedUserStats) {
	total := a.TotalGames()
	if total == 0 {
		a.WinPercentage = 0
		a.AveragePointsPerGame = 0
		return
	}
	a.WinPercentage = (float64(a.Wins) + 0.5*float64(a.Ties)) / float64(total) * 100
	a.AveragePointsPerGame = a.PointsFor / float64(total)
}
