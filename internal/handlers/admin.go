package handlers

import (
	"encoding/json"
	"net/http"
)

type leagueConfigRequest struct {
	LeagueID string `json:"league_id" validate:"required,numeric"`
}

// GetLeagueConfig returns the dashboard's configured league ID
// @Summary Get League Config
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /admin/config [get]
func (h *Handler) GetLeagueConfig(w http.ResponseWriter, r *http.Request) {
	leagueID, err := h.configStore.LeagueID(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to read league config", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Config unavailable")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"league_id": leagueID})
}

// UpdateLeagueConfig sets the dashboard's league ID
// @Summary Update League Config
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /admin/config [put]
func (h *Handler) UpdateLeagueConfig(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req leagueConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "league_id must be a numeric identifier")
		return
	}

	// Reject IDs the upstream provider does not know before persisting.
	if _, err := h.port.GetLeagueInfo(r.Context(), req.LeagueID); err != nil {
		h.logger.Warnw("Rejected unknown league ID", "league_id", req.LeagueID, "error", err)
		h.errorResponse(w, http.StatusBadRequest, "Unknown league ID")
		return
	}

	if err := h.configStore.SetLeagueID(r.Context(), req.LeagueID); err != nil {
		h.logger.Errorw("Failed to persist league config", "league_id", req.LeagueID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Config write failed")
		return
	}

	h.logger.Infow("League config updated", "league_id", req.LeagueID)
	h.jsonResponse(w, http.StatusOK, map[string]string{"league_id": req.LeagueID})
}
