package logic

import (
	"testing"

	"github.com/leaguecentral/stats-api/internal/models"
)

func TestJoinUsersRosters(t *testing.T) {
	users := []models.User{
		user("u1", "Alice"),
		user("u2", "Bob"),
		user("ghost", "NoRoster"),
	}
	rosters := []models.Roster{
		roster(1, "u1", 0, 0, 0, 0, 0),
		roster(2, "u2", 0, 0, 0, 0, 0),
		roster(3, "unknown", 0, 0, 0, 0, 0),
	}

	joined, report := joinUsersRosters(users, rosters)

	if len(joined) != 2 {
		t.Fatalf("joined = %d pairs, want 2", len(joined))
	}
	if len(report.SkippedRosterIDs) != 1 || report.SkippedRosterIDs[0] != 3 {
		t.Errorf("skipped rosters = %v, want [3]", report.SkippedRosterIDs)
	}
	if len(report.SkippedUserIDs) != 1 || report.SkippedUserIDs[0] != "ghost" {
		t.Errorf("skipped users = %v, want [ghost]", report.SkippedUserIDs)
	}
	if report.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", report.Skipped())
	}
}

func TestJoinUsersRosters_Empty(t *testing.T) {
	joined, report := joinUsersRosters(nil, nil)
	if len(joined) != 0 || report.Skipped() != 0 {
		t.Errorf("empty join produced %d pairs, %d skipped", len(joined), report.Skipped())
	}
}
