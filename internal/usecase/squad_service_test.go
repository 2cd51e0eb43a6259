package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchday/internal/platform/logging"
)

func newSquadFixture(t *testing.T) (*memory.Store, *SquadService) {
	t.Helper()

	store := memory.NewSeededStore()
	fixtures := []match.Match{{
		ID:           liveMatchID,
		TournamentID: memory.TournamentIDSundayCup,
		HomeTeamID:   memory.TeamIDNorthend,
		AwayTeamID:   memory.TeamIDRiverside,
		ScheduledAt:  time.Date(2026, time.April, 5, 14, 0, 0, 0, time.UTC),
		RoundNumber:  1,
		Status:       match.StatusScheduled,
	}}
	if err := store.Matches().ReplaceFixtures(t.Context(), memory.TournamentIDSundayCup, fixtures); err != nil {
		t.Fatalf("replace fixtures: %v", err)
	}

	service := NewSquadService(
		store.Matches(),
		store.Teams(),
		store.Players(),
		store.Stats(),
		logging.NewNop(),
	)

	return store, service
}

func TestSquadService_SelectForMatch(t *testing.T) {
	_, service := newSquadFixture(t)

	selected, err := service.SelectForMatch(t.Context(), liveMatchID, memory.TeamIDNorthend, []string{
		"ne-gk-01",
		"ne-df-04",
		"ne-fw-09",
		"ne-df-04",  // duplicate, dropped
		"rs-gk-01",  // other team's player, dropped
		"no-such-p", // unknown, dropped
	})
	if err != nil {
		t.Fatalf("select squad: %v", err)
	}
	if len(selected) != 3 {
		t.Fatalf("expected 3 selected players, got %d", len(selected))
	}

	rows, err := service.SelectionForMatch(t.Context(), liveMatchID)
	if err != nil {
		t.Fatalf("list selection: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 selection rows, got %d", len(rows))
	}
	for _, row := range rows {
		if !row.IsSelected {
			t.Fatalf("row %s not marked selected", row.PlayerID)
		}
	}
}

func TestSquadService_SelectForMatch_Reselect(t *testing.T) {
	_, service := newSquadFixture(t)

	if _, err := service.SelectForMatch(t.Context(), liveMatchID, memory.TeamIDNorthend, []string{"ne-gk-01", "ne-df-04"}); err != nil {
		t.Fatalf("first selection: %v", err)
	}

	selected, err := service.SelectForMatch(t.Context(), liveMatchID, memory.TeamIDNorthend, []string{"ne-mf-08"})
	if err != nil {
		t.Fatalf("second selection: %v", err)
	}
	if len(selected) != 1 || selected[0].ID != "ne-mf-08" {
		t.Fatalf("unexpected second selection: %+v", selected)
	}

	rows, err := service.SelectionForMatch(t.Context(), liveMatchID)
	if err != nil {
		t.Fatalf("list selection: %v", err)
	}
	if len(rows) != 1 || rows[0].PlayerID != "ne-mf-08" {
		t.Fatalf("first selection not replaced: %+v", rows)
	}
}

func TestSquadService_SelectForMatch_ReselectKeepsOpponentRows(t *testing.T) {
	_, service := newSquadFixture(t)

	if _, err := service.SelectForMatch(t.Context(), liveMatchID, memory.TeamIDRiverside, []string{"rs-gk-01"}); err != nil {
		t.Fatalf("away selection: %v", err)
	}
	if _, err := service.SelectForMatch(t.Context(), liveMatchID, memory.TeamIDNorthend, []string{"ne-gk-01"}); err != nil {
		t.Fatalf("home selection: %v", err)
	}

	rows, err := service.SelectionForMatch(t.Context(), liveMatchID)
	if err != nil {
		t.Fatalf("list selection: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected both teams' selections to coexist, got %d rows", len(rows))
	}
}

func TestSquadService_SelectForMatch_Validation(t *testing.T) {
	_, service := newSquadFixture(t)

	if _, err := service.SelectForMatch(t.Context(), "no-such-match", memory.TeamIDNorthend, []string{"ne-gk-01"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for match, got %v", err)
	}
	if _, err := service.SelectForMatch(t.Context(), liveMatchID, memory.TeamIDOldPort, []string{"op-gk-13"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-playing team, got %v", err)
	}
	if _, err := service.SelectForMatch(t.Context(), "", memory.TeamIDNorthend, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty ids, got %v", err)
	}
}

func TestSquadService_SelectionForMatch_UnknownMatch(t *testing.T) {
	_, service := newSquadFixture(t)

	if _, err := service.SelectionForMatch(t.Context(), "no-such-match"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
