package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leaguecentral/stats-api/internal/logic"
	"github.com/leaguecentral/stats-api/internal/sleeper"
)

// GetSeasonChain returns the ordered list of linked league seasons
// @Summary Season Chain
// @Description Resolve every league season linked to the given league, most recent first
// @Tags League
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /league/{leagueID}/chain [get]
func (h *Handler) GetSeasonChain(w http.ResponseWriter, r *http.Request) {
	leagueID, err := h.leagueIDParam(r, chi.URLParam(r, "leagueID"))
	if err != nil {
		h.logger.Errorw("Failed to resolve league ID", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "League config unavailable")
		return
	}

	chain, err := h.chain.ResolveChain(r.Context(), leagueID)
	if err != nil {
		h.logger.Errorw("Failed to resolve season chain", "league_id", leagueID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Chain resolution failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"league_id": leagueID,
		"chain":     chain,
		"seasons":   len(chain),
	})
}

// GetAllTimeStats returns per-user totals merged across the whole chain
// @Summary All-Time User Stats
// @Description Aggregate wins, points and finishes for every user across all linked seasons
// @Tags League
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /league/{leagueID}/alltime [get]
func (h *Handler) GetAllTimeStats(w http.ResponseWriter, r *http.Request) {
	leagueID, err := h.leagueIDParam(r, chi.URLParam(r, "leagueID"))
	if err != nil {
		h.errorResponse(w, http.StatusInternalServerError, "League config unavailable")
		return
	}

	stats, err := h.aggregation.AggregateUserStats(r.Context(), leagueID)
	if err != nil {
		h.logger.Errorw("Failed to aggregate user stats", "league_id", leagueID, "error", err)
		h.upstreamError(w, err, "Aggregation failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"league_id": leagueID,
		"users":     stats,
	})
}

// GetTeamMetrics returns derived per-team metrics for a season or all-time
// @Summary Team Metrics
// @Description Consistency, explosiveness and clutch scores per team
// @Tags League
// @Produce json
// @Param season query string false "Season year or all-time" default(all-time)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Unknown Season"
// @Router /league/{leagueID}/metrics [get]
func (h *Handler) GetTeamMetrics(w http.ResponseWriter, r *http.Request) {
	leagueID, err := h.leagueIDParam(r, chi.URLParam(r, "leagueID"))
	if err != nil {
		h.errorResponse(w, http.StatusInternalServerError, "League config unavailable")
		return
	}

	season := r.URL.Query().Get("season")
	if season == "" {
		season = logic.AllTime
	}

	metrics, err := h.teamMetrics.GetTeamMetrics(r.Context(), leagueID, season)
	if err != nil {
		if errors.Is(err, logic.ErrSeasonNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Season not in league chain")
			return
		}
		h.logger.Errorw("Failed to compute team metrics", "league_id", leagueID, "season", season, "error", err)
		h.upstreamError(w, err, "Metrics computation failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"league_id": leagueID,
		"season":    season,
		"teams":     metrics,
	})
}

// upstreamError maps port failures onto response codes: unknown leagues are
// the caller's mistake, everything else is a bad gateway.
func (h *Handler) upstreamError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, sleeper.ErrNotFound):
		h.errorResponse(w, http.StatusNotFound, "League not found")
	case errors.Is(err, sleeper.ErrUpstream):
		h.errorResponse(w, http.StatusBadGateway, message)
	default:
		h.errorResponse(w, http.StatusInternalServerError, message)
	}
}
