package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/leaguecentral/stats-api/internal/models"
)

var (
	orphanedRosters = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_orphaned_rosters_total",
		Help: "Rosters skipped because no league user matched their owner",
	})

	orphanedUsers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_orphaned_users_total",
		Help: "Users skipped because they owned no roster in a season",
	})
)

// joinedTeam pairs a roster with its owning user for one season.
type joinedTeam struct {
	User   models.User
	Roster models.Roster
}

// joinReport lists the identifiers dropped by a join so callers can surface
// under-counting instead of losing it to a silent skip.
type joinReport struct {
	SkippedRosterIDs []int
	SkippedUserIDs   []string
}

func (r joinReport) Skipped() int {
	return len(r.SkippedRosterIDs) + len(r.SkippedUserIDs)
}

// joinUsersRosters matches each roster to its owner. Rosters without a known
// owner and users without a roster are excluded from the result and reported;
// partial upstream data must not abort the whole computation.
func joinUsersRosters(users []models.User, rosters []models.Roster) ([]joinedTeam, joinReport) {
	byUserID := make(map[string]models.User, len(users))
	for _, u := range users {
		byUserID[u.UserID] = u
	}

	var report joinReport
	joined := make([]joinedTeam, 0, len(rosters))
	owned := make(map[string]bool, len(rosters))

	for _, r := range rosters {
		u, ok := byUserID[r.OwnerID]
		if !ok {
			report.SkippedRosterIDs = append(report.SkippedRosterIDs, r.RosterID)
			orphanedRosters.Inc()
			continue
		}
		owned[r.OwnerID] = true
		joined = append(joined, joinedTeam{User: u, Roster: r})
	}

	for _, u := range users {
		if !owned[u.UserID] {
			report.SkippedUserIDs = append(report.SkippedUserIDs, u.UserID)
			orphanedUsers.Inc()
		}
	}

	return joined, report
}
