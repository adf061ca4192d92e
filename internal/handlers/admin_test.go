package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leaguecentral/stats-api/internal/models"
)

func TestGetLeagueConfig(t *testing.T) {
	h := newTestHandler(Config{
		ConfigStore: &MockConfigStore{
			LeagueIDFunc: func(ctx context.Context) (string, error) { return "456", nil },
		},
	})

	req := httptest.NewRequest("GET", "/api/v1/admin/config", nil)
	w := httptest.NewRecorder()
	h.GetLeagueConfig(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %v, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "456") {
		t.Errorf("body %q missing league ID", w.Body.String())
	}
}

func TestUpdateLeagueConfig(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		knownUpstream  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"league_id": "987654"}`,
			knownUpstream:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			body:           `{"league_id": `,
			knownUpstream:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing League ID",
			body:           `{}`,
			knownUpstream:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Non-Numeric League ID",
			body:           `{"league_id": "abc; DROP TABLE leagues;"}`,
			knownUpstream:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown Upstream League",
			body:           `{"league_id": "987654"}`,
			knownUpstream:  false,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved string
			port := &MockSeasonDataPort{}
			if !tt.knownUpstream {
				port.GetLeagueInfoFunc = func(ctx context.Context, leagueID string) (*models.LeagueSeason, error) {
					return nil, context.DeadlineExceeded
				}
			}

			h := newTestHandler(Config{
				Port: port,
				ConfigStore: &MockConfigStore{
					SetLeagueIDFunc: func(ctx context.Context, leagueID string) error {
						saved = leagueID
						return nil
					},
				},
			})

			req := httptest.NewRequest("PUT", "/api/v1/admin/config", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.UpdateLeagueConfig(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.expectedStatus == http.StatusOK && saved != "987654" {
				t.Errorf("saved league ID = %q, want 987654", saved)
			}
			if tt.expectedStatus != http.StatusOK && saved != "" {
				t.Errorf("league ID %q persisted despite rejection", saved)
			}
		})
	}
}
