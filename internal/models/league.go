package models

import "strconv"

// LeagueSeason is one season's league record as returned by the upstream
// provider. Immutable once fetched.
type LeagueSeason struct {
	LeagueID         string         `json:"league_id"`
	Name             string         `json:"name"`
	Season           string         `json:"season"` // year-like label, e.g. "2024"
	Status           string         `json:"status"`
	TotalRosters     int            `json:"total_rosters"`
	PreviousLeagueID string         `json:"previous_league_id,omitempty"`
	Settings         LeagueSettings `json:"settings"`
}

type LeagueSettings struct {
	NumTeams         int `json:"num_teams"`
	PlayoffTeams     int `json:"playoff_teams"`
	PlayoffWeekStart int `json:"playoff_week_start"`
}

// SeasonYear parses the season label as an integer year. Returns 0 when the
// label is not numeric.
func (l *LeagueSeason) SeasonYear() int {
	y, err := strconv.Atoi(l.Season)
	if err != nil {
		return 0
	}
	return y
}

// Roster is one team's season-long record within a league.
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	LeagueID string         `json:"league_id"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings carries the record and the split point totals. The upstream
// provider encodes each point total as a whole part plus a hundredths part.
type RosterSettings struct {
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Ties           int `json:"ties"`
	FPts           int `json:"fpts"`
	FPtsDecimal    int `json:"fpts_decimal"`
	FPtsAgainst    int `json:"fpts_against"`
	FPtsAgainstDec int `json:"fpts_against_decimal"`
	Rank           int `json:"rank,omitempty"`
	PlayoffSeed    int `json:"playoff_seed,omitempty"`
}

// PointsFor combines the split point-total fields into one decimal value:
// whole + hundredths/100.
func (s *RosterSettings) PointsFor() float64 {
	return float64(s.FPts) + float64(s.FPtsDecimal)/100
}

// PointsAgainst combines the split points-against fields.
func (s *RosterSettings) PointsAgainst() float64 {
	return float64(s.FPtsAgainst) + float64(s.FPtsAgainstDec)/100
}

// User is a league member.
type User struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Avatar      string       `json:"avatar,omitempty"`
	Metadata    UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	TeamName string `json:"team_name,omitempty"`
}

// TeamName returns the user's team-name override when set, otherwise the
// display name.
func (u *User) TeamName() string {
	if u.Metadata.TeamName != "" {
		return u.Metadata.TeamName
	}
	return u.DisplayName
}

// WeeklyMatchup is one roster's entry for one week. Two rosters share a
// MatchupID within the same week. Points is nil until the week is scored.
type WeeklyMatchup struct {
	Week      int      `json:"week"`
	RosterID  int      `json:"roster_id"`
	MatchupID int      `json:"matchup_id"`
	Points    *float64 `json:"points"`
}
