package models

// AggregatedUserStats is one user's totals merged across an entire season
// chain. Rebuilt per aggregation run, never persisted.
type AggregatedUserStats struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	TeamName    string `json:"team_name"`
	Avatar      string `json:"avatar,omitempty"`

	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	Seasons       int     `json:"seasons"`

	// BestFinish is the lowest roster ID observed for the user. Roster IDs
	// are assigned by the provider, not by final standings, so this is a
	// documented proxy rather than a ranking guarantee.
	BestFinish int `json:"best_finish"`

	// Championships counts seasons where the user held roster ID 1. Gated by
	// the legacy heuristic option; a real signal needs playoff-bracket
	// results the provider does not expose here.
	Championships      int `json:"championships"`
	PlayoffAppearances int `json:"playoff_appearances"`

	WinPercentage        float64 `json:"win_percentage"`
	AveragePointsPerGame float64 `json:"avg_points_per_game"`
}

// TotalGames is the number of decided games in the accumulator.
func (a *AggregatedUserStats) TotalGames() int {
	return a.Wins + a.Losses + a.Ties
}

// TeamMetrics is the derived per-team performance breakdown for one season or
// for a whole chain.
type TeamMetrics struct {
	UserID      string `json:"user_id"`
	RosterID    int    `json:"roster_id"`
	DisplayName string `json:"display_name"`
	TeamName    string `json:"team_name"`

	Record        RecordMetrics        `json:"record"`
	Points        PointsMetrics        `json:"points"`
	Consistency   ConsistencyMetrics   `json:"consistency"`
	Explosiveness ExplosivenessMetrics `json:"explosiveness"`
	Clutch        ClutchMetrics        `json:"clutch"`
}

type RecordMetrics struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Ties   int     `json:"ties"`
	WinPct float64 `json:"win_pct"`
}

type PointsMetrics struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
}

// ConsistencyMetrics carries the canonical range-based score plus the
// standard deviation of the weekly series under its own name; the two are
// different figures and are never substituted for one another.
type ConsistencyMetrics struct {
	Score     float64 `json:"score"`
	StdDev    float64 `json:"stddev"`
	AvgMargin float64 `json:"avg_margin_vs_league"`
}

type ExplosivenessMetrics struct {
	Score          float64 `json:"score"`
	ExplosiveGames int     `json:"explosive_games"`
}

type ClutchMetrics struct {
	Score      float64 `json:"score"`
	CloseGames int     `json:"close_games"`
	CloseWins  int     `json:"close_wins"`
}
