package handlers

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/leaguecentral/stats-api/internal/models"
)

type standingsRow struct {
	Rank          int     `json:"rank"`
	UserID        string  `json:"user_id"`
	TeamName      string  `json:"team_name"`
	DisplayName   string  `json:"display_name"`
	RosterID      int     `json:"roster_id"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
}

// GetStandings returns the current-season table for one league
// @Summary League Standings
// @Description Rosters joined to users, sorted by wins then points for
// @Tags League
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /league/{leagueID}/standings [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	leagueID, err := h.leagueIDParam(r, chi.URLParam(r, "leagueID"))
	if err != nil {
		h.errorResponse(w, http.StatusInternalServerError, "League config unavailable")
		return
	}

	var (
		users   []models.User
		rosters []models.Roster
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		users, err = h.port.GetLeagueUsers(ctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = h.port.GetLeagueRosters(ctx, leagueID)
		return err
	})
	if err := g.Wait(); err != nil {
		h.logger.Errorw("Failed to fetch standings data", "league_id", leagueID, "error", err)
		h.upstreamError(w, err, "Standings fetch failed")
		return
	}

	byUserID := make(map[string]models.User, len(users))
	for _, u := range users {
		byUserID[u.UserID] = u
	}

	rows := make([]standingsRow, 0, len(rosters))
	skipped := 0
	for _, roster := range rosters {
		u, ok := byUserID[roster.OwnerID]
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, standingsRow{
			UserID:        u.UserID,
			TeamName:      u.TeamName(),
			DisplayName:   u.DisplayName,
			RosterID:      roster.RosterID,
			Wins:          roster.Settings.Wins,
			Losses:        roster.Settings.Losses,
			Ties:          roster.Settings.Ties,
			PointsFor:     roster.Settings.PointsFor(),
			PointsAgainst: roster.Settings.PointsAgainst(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].PointsFor > rows[j].PointsFor
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"league_id": leagueID,
		"standings": rows,
		"skipped":   skipped,
	})
}
