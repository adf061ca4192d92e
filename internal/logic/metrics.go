package logic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/leaguecentral/stats-api/internal/models"
)

// ErrSeasonNotFound is returned when the requested season label is not part
// of the league's resolved chain.
var ErrSeasonNotFound = errors.New("season not found in league chain")

const (
	// explosiveFactor sets the "explosive week" bar at 120% of the
	// league-wide average score.
	explosiveFactor = 1.2

	// closeMargin is the absolute point margin under which a game counts as
	// close for the clutch score.
	closeMargin = 5.0

	// fallbackFinalWeek covers leagues that never configured a playoff start.
	fallbackFinalWeek = 18
)

type metricsService struct {
	port   SeasonDataPort
	chain  ChainService
	logger *zap.SugaredLogger
}

func NewMetricsService(port SeasonDataPort, chain ChainService, logger *zap.Logger) MetricsService {
	return &metricsService{
		port:   port,
		chain:  chain,
		logger: logger.Sugar(),
	}
}

// GetTeamMetrics computes derived metrics for one season of the chain rooted
// at leagueID, or for the whole chain when season is AllTime. Upstream fetch
// failures propagate; there is no partial result.
func (s *metricsService) GetTeamMetrics(ctx context.Context, leagueID, season string) ([]models.TeamMetrics, error) {
	chain, err := s.chain.ResolveChain(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("resolve chain: %w", err)
	}

	if season == AllTime {
		return s.allTimeMetrics(ctx, chain)
	}
	return s.singleSeasonMetrics(ctx, chain, season)
}

func (s *metricsService) singleSeasonMetrics(ctx context.Context, chain []string, season string) ([]models.TeamMetrics, error) {
	infos, err := s.fetchInfos(ctx, chain)
	if err != nil {
		return nil, err
	}

	var target *models.LeagueSeason
	for _, info := range infos {
		if info.Season == season {
			target = info
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrSeasonNotFound, season)
	}

	data, err := s.fetchSeasonData(ctx, target)
	if err != nil {
		return nil, err
	}

	teams, report := accumulateSeason(data)
	if report.Skipped() > 0 {
		s.logger.Warnw("Skipped unmatched records during metrics computation",
			"league_id", target.LeagueID, "skipped", report.Skipped())
	}
	return finalizeMetrics(teams), nil
}

func (s *metricsService) allTimeMetrics(ctx context.Context, chain []string) ([]models.TeamMetrics, error) {
	infos, err := s.fetchInfos(ctx, chain)
	if err != nil {
		return nil, err
	}

	seasons := make([]*seasonData, len(infos))
	g, gctx := errgroup.WithContext(ctx)
	for i, info := range infos {
		g.Go(func() error {
			data, err := s.fetchSeasonData(gctx, info)
			if err != nil {
				return err
			}
			seasons[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Counts merge across seasons; the percentage scores are recomputed once
	// over the merged totals, never averaged per season.
	merged := make(map[string]*teamAccumulator)
	for _, data := range seasons {
		teams, report := accumulateSeason(data)
		if report.Skipped() > 0 {
			s.logger.Warnw("Skipped unmatched records during metrics computation",
				"league_id", data.Info.LeagueID, "skipped", report.Skipped())
		}
		for userID, t := range teams {
			m, ok := merged[userID]
			if !ok {
				merged[userID] = t
				continue
			}
			m.merge(t)
		}
	}
	return finalizeMetrics(merged), nil
}

func (s *metricsService) fetchInfos(ctx context.Context, chain []string) ([]*models.LeagueSeason, error) {
	infos := make([]*models.LeagueSeason, len(chain))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range chain {
		g.Go(func() error {
			info, err := s.port.GetLeagueInfo(gctx, id)
			if err != nil {
				return fmt.Errorf("league info %s: %w", id, err)
			}
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// seasonData is everything one season's metrics computation consumes: the
// league record, its users and rosters, and the weekly matchup matrix
// (Weeks[i] holds week i+1).
type seasonData struct {
	Info    *models.LeagueSeason
	Users   []models.User
	Rosters []models.Roster
	Weeks   [][]models.WeeklyMatchup
}

func (s *metricsService) fetchSeasonData(ctx context.Context, info *models.LeagueSeason) (*seasonData, error) {
	data := &seasonData{Info: info}
	final := finalWeek(info)
	data.Weeks = make([][]models.WeeklyMatchup, final)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.port.GetLeagueUsers(gctx, info.LeagueID)
		if err != nil {
			return fmt.Errorf("league users %s: %w", info.LeagueID, err)
		}
		data.Users = users
		return nil
	})
	g.Go(func() error {
		rosters, err := s.port.GetLeagueRosters(gctx, info.LeagueID)
		if err != nil {
			return fmt.Errorf("league rosters %s: %w", info.LeagueID, err)
		}
		data.Rosters = rosters
		return nil
	})
	for w := 1; w <= final; w++ {
		g.Go(func() error {
			matchups, err := s.port.GetLeagueMatchups(gctx, info.LeagueID, w)
			if err != nil {
				return fmt.Errorf("league matchups %s week %d: %w", info.LeagueID, w, err)
			}
			for i := range matchups {
				matchups[i].Week = w
			}
			data.Weeks[w-1] = matchups
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// finalWeek is the last regular-season week to include. Playoff weeks are
// excluded when the league configures a playoff start.
func finalWeek(info *models.LeagueSeason) int {
	if info.Settings.PlayoffWeekStart > 1 {
		return info.Settings.PlayoffWeekStart - 1
	}
	return fallbackFinalWeek
}

// teamAccumulator is one team's running totals while metrics are computed.
// The same struct carries single-season and merged all-time state.
type teamAccumulator struct {
	user     models.User
	rosterID int

	wins, losses, ties int

	scores    []float64
	high, low float64
	weeks     int

	marginSum      float64
	explosiveGames int
	closeGames     int
	closeWins      int
}

func (t *teamAccumulator) addScore(score float64) {
	if t.weeks == 0 || score > t.high {
		t.high = score
	}
	if t.weeks == 0 || score < t.low {
		t.low = score
	}
	t.scores = append(t.scores, score)
	t.weeks++
}

func (t *teamAccumulator) merge(o *teamAccumulator) {
	t.wins += o.wins
	t.losses += o.losses
	t.ties += o.ties
	if o.weeks > 0 {
		if t.weeks == 0 || o.high > t.high {
			t.high = o.high
		}
		if t.weeks == 0 || o.low < t.low {
			t.low = o.low
		}
	}
	t.scores = append(t.scores, o.scores...)
	t.weeks += o.weeks
	t.marginSum += o.marginSum
	t.explosiveGames += o.explosiveGames
	t.closeGames += o.closeGames
	t.closeWins += o.closeWins
}

// accumulateSeason walks one season's weekly matchups and builds per-team
// accumulators keyed by user ID.
func accumulateSeason(data *seasonData) (map[string]*teamAccumulator, joinReport) {
	joined, report := joinUsersRosters(data.Users, data.Rosters)

	// League-wide average over every scored entry sets the explosive bar.
	var leagueSum float64
	var leagueCount int
	for _, week := range data.Weeks {
		for _, m := range week {
			if m.Points != nil {
				leagueSum += *m.Points
				leagueCount++
			}
		}
	}
	var leagueAvg float64
	if leagueCount > 0 {
		leagueAvg = leagueSum / float64(leagueCount)
	}
	explosiveBar := leagueAvg * explosiveFactor

	// Per-week lookup by roster ID, and opponent lookup by pairing ID.
	teams := make(map[string]*teamAccumulator, len(joined))
	byRoster := make(map[int]*teamAccumulator, len(joined))
	for _, j := range joined {
		t := &teamAccumulator{
			user:     j.User,
			rosterID: j.Roster.RosterID,
			wins:     j.Roster.Settings.Wins,
			losses:   j.Roster.Settings.Losses,
			ties:     j.Roster.Settings.Ties,
		}
		teams[j.User.UserID] = t
		byRoster[j.Roster.RosterID] = t
	}

	for _, week := range data.Weeks {
		for _, m := range week {
			t, ok := byRoster[m.RosterID]
			if !ok || m.Points == nil {
				continue
			}
			score := *m.Points
			t.addScore(score)
			t.marginSum += score - leagueAvg
			if score > explosiveBar {
				t.explosiveGames++
			}

			opp := findOpponent(week, m)
			if opp == nil || opp.Points == nil {
				continue
			}
			if math.Abs(score-*opp.Points) < closeMargin {
				t.closeGames++
				if score > *opp.Points {
					t.closeWins++
				}
			}
		}
	}

	return teams, report
}

// findOpponent locates the other roster sharing a pairing ID within the same
// week.
func findOpponent(week []models.WeeklyMatchup, m models.WeeklyMatchup) *models.WeeklyMatchup {
	for i := range week {
		if week[i].MatchupID == m.MatchupID && week[i].RosterID != m.RosterID {
			return &week[i]
		}
	}
	return nil
}

// finalizeMetrics turns accumulators into TeamMetrics, guarding every
// division: a team with zero weeks or zero close games gets zero scores, not
// NaN.
func finalizeMetrics(teams map[string]*teamAccumulator) []models.TeamMetrics {
	out := make([]models.TeamMetrics, 0, len(teams))
	for _, t := range teams {
		m := models.TeamMetrics{
			UserID:      t.user.UserID,
			RosterID:    t.rosterID,
			DisplayName: t.user.DisplayName,
			TeamName:    t.user.TeamName(),
		}

		m.Record.Wins = t.wins
		m.Record.Losses = t.losses
		m.Record.Ties = t.ties
		if games := t.wins + t.losses + t.ties; games > 0 {
			m.Record.WinPct = (float64(t.wins) + 0.5*float64(t.ties)) / float64(games) * 100
		}

		var total float64
		for _, s := range t.scores {
			total += s
		}
		m.Points.Total = total
		m.Points.High = t.high
		m.Points.Low = t.low

		if t.weeks > 0 {
			m.Points.Average = total / float64(t.weeks)
			m.Consistency.AvgMargin = t.marginSum / float64(t.weeks)
			m.Explosiveness.Score = float64(t.explosiveGames) / float64(t.weeks) * 100
		}
		m.Consistency.Score = ConsistencyScore(m.Points.Average, t.high, t.low)
		m.Consistency.StdDev = StdDev(t.scores)
		m.Explosiveness.ExplosiveGames = t.explosiveGames

		m.Clutch.CloseGames = t.closeGames
		m.Clutch.CloseWins = t.closeWins
		if t.closeGames > 0 {
			m.Clutch.Score = float64(t.closeWins) / float64(t.closeGames) * 100
		}

		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Record.WinPct != out[j].Record.WinPct {
			return out[i].Record.WinPct > out[j].Record.WinPct
		}
		if out[i].Points.Total != out[j].Points.Total {
			return out[i].Points.Total > out[j].Points.Total
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}
