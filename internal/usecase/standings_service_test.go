package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
)

func completedMatch(id, homeID, awayID string, homeScore, awayScore int) match.Match {
	return match.Match{
		ID:           id,
		TournamentID: memory.TournamentIDSundayCup,
		HomeTeamID:   homeID,
		AwayTeamID:   awayID,
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		ScheduledAt:  time.Date(2026, time.April, 5, 14, 0, 0, 0, time.UTC),
		RoundNumber:  1,
		Status:       match.StatusCompleted,
	}
}

func TestStandingsService_Table(t *testing.T) {
	store := memory.NewSeededStore()
	service := NewStandingsService(store.Tournaments(), store.Teams(), store.Matches())

	scheduled := completedMatch("m-ignored", memory.TeamIDNorthend, memory.TeamIDHillcrest, 9, 9)
	scheduled.Status = match.StatusScheduled

	fixtures := []match.Match{
		completedMatch("m-1", memory.TeamIDNorthend, memory.TeamIDRiverside, 2, 0),
		completedMatch("m-2", memory.TeamIDOldPort, memory.TeamIDHillcrest, 1, 1),
		completedMatch("m-3", memory.TeamIDNorthend, memory.TeamIDOldPort, 1, 3),
		completedMatch("m-4", memory.TeamIDRiverside, memory.TeamIDHillcrest, 2, 2),
		scheduled,
	}
	if err := store.Matches().ReplaceFixtures(t.Context(), memory.TournamentIDSundayCup, fixtures); err != nil {
		t.Fatalf("replace fixtures: %v", err)
	}

	rows, err := service.Table(t.Context(), memory.TournamentIDSundayCup)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	wantOrder := []string{
		memory.TeamIDOldPort,   // 4 pts
		memory.TeamIDNorthend,  // 3 pts
		memory.TeamIDHillcrest, // 2 pts
		memory.TeamIDRiverside, // 1 pt
	}
	for i, teamID := range wantOrder {
		if rows[i].TeamID != teamID {
			t.Fatalf("position %d = %s, want %s", i+1, rows[i].TeamID, teamID)
		}
		if rows[i].Position != i+1 {
			t.Fatalf("row %d position = %d, want %d", i, rows[i].Position, i+1)
		}
	}

	oldPort := rows[0]
	if oldPort.Played != 2 || oldPort.Won != 1 || oldPort.Drawn != 1 || oldPort.Lost != 0 {
		t.Fatalf("unexpected old port record: %+v", oldPort)
	}
	if oldPort.Points != 4 || oldPort.GoalsFor != 4 || oldPort.GoalsAgainst != 2 || oldPort.GoalDifference != 2 {
		t.Fatalf("unexpected old port tallies: %+v", oldPort)
	}

	// The scheduled match with scores set must not have counted.
	northend := rows[1]
	if northend.Played != 2 {
		t.Fatalf("northend played = %d, want 2", northend.Played)
	}
}

func TestStandingsService_Table_TieBreaks(t *testing.T) {
	store := memory.NewSeededStore()
	service := NewStandingsService(store.Tournaments(), store.Teams(), store.Matches())

	t.Run("goals scored break equal points and difference", func(t *testing.T) {
		// Northend and Old Port both win by two, but Northend scores three.
		fixtures := []match.Match{
			completedMatch("m-1", memory.TeamIDNorthend, memory.TeamIDRiverside, 3, 1),
			completedMatch("m-2", memory.TeamIDOldPort, memory.TeamIDHillcrest, 2, 0),
		}
		if err := store.Matches().ReplaceFixtures(t.Context(), memory.TournamentIDSundayCup, fixtures); err != nil {
			t.Fatalf("replace fixtures: %v", err)
		}

		rows, err := service.Table(t.Context(), memory.TournamentIDSundayCup)
		if err != nil {
			t.Fatalf("build table: %v", err)
		}

		wantOrder := []string{
			memory.TeamIDNorthend,
			memory.TeamIDOldPort,
			memory.TeamIDRiverside,
			memory.TeamIDHillcrest,
		}
		for i, teamID := range wantOrder {
			if rows[i].TeamID != teamID {
				t.Fatalf("position %d = %s, want %s", i+1, rows[i].TeamID, teamID)
			}
		}
	})

	t.Run("full ties keep registration order", func(t *testing.T) {
		fixtures := []match.Match{
			completedMatch("m-1", memory.TeamIDNorthend, memory.TeamIDRiverside, 1, 0),
			completedMatch("m-2", memory.TeamIDOldPort, memory.TeamIDHillcrest, 1, 0),
		}
		if err := store.Matches().ReplaceFixtures(t.Context(), memory.TournamentIDSundayCup, fixtures); err != nil {
			t.Fatalf("replace fixtures: %v", err)
		}

		rows, err := service.Table(t.Context(), memory.TournamentIDSundayCup)
		if err != nil {
			t.Fatalf("build table: %v", err)
		}

		wantOrder := []string{
			memory.TeamIDNorthend,
			memory.TeamIDOldPort,
			memory.TeamIDRiverside,
			memory.TeamIDHillcrest,
		}
		for i, teamID := range wantOrder {
			if rows[i].TeamID != teamID {
				t.Fatalf("position %d = %s, want %s", i+1, rows[i].TeamID, teamID)
			}
		}
	})
}

func TestStandingsService_Table_NoCompletedMatches(t *testing.T) {
	store := memory.NewSeededStore()
	service := NewStandingsService(store.Tournaments(), store.Teams(), store.Matches())

	rows, err := service.Table(t.Context(), memory.TournamentIDSundayCup)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Played != 0 || row.Points != 0 {
			t.Fatalf("expected blank record, got %+v", row)
		}
	}
}

func TestStandingsService_Table_UnknownTournament(t *testing.T) {
	store := memory.NewSeededStore()
	service := NewStandingsService(store.Tournaments(), store.Teams(), store.Matches())

	if _, err := service.Table(t.Context(), "no-such-cup"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
