package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
)

func TestStatsService_CareerStats(t *testing.T) {
	store := memory.NewSeededStore()
	service := NewStatsService(store.Players(), store.Stats())

	// First read creates the zero row.
	career, err := service.CareerStats(t.Context(), "ne-fw-09")
	if err != nil {
		t.Fatalf("career stats: %v", err)
	}
	if career.PlayerID != "ne-fw-09" || career.Goals != 0 || career.MatchesPlayed != 0 {
		t.Fatalf("unexpected zero career: %+v", career)
	}
	if career.ShootingAccuracy() != 0 || career.GoalsPerMatch() != 0 {
		t.Fatalf("expected zero ratios, got %v / %v", career.ShootingAccuracy(), career.GoalsPerMatch())
	}

	career.Goals = 3
	career.MatchesPlayed = 2
	career.Shots = 8
	career.ShotsOnTarget = 5
	if err := store.Stats().UpdateCareer(t.Context(), career); err != nil {
		t.Fatalf("update career: %v", err)
	}

	career, err = service.CareerStats(t.Context(), "ne-fw-09")
	if err != nil {
		t.Fatalf("career stats reread: %v", err)
	}
	if career.ShootingAccuracy() != 62.5 {
		t.Fatalf("shooting accuracy = %v, want 62.5", career.ShootingAccuracy())
	}
	if career.GoalsPerMatch() != 1.5 {
		t.Fatalf("goals per match = %v, want 1.5", career.GoalsPerMatch())
	}

	if _, err := service.CareerStats(t.Context(), "no-such-player"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsService_RecentPerformances(t *testing.T) {
	store := memory.NewSeededStore()
	service := NewStatsService(store.Players(), store.Stats())

	base := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		perf := stats.Performance{
			PlayerID:      "rs-mf-10",
			MatchID:       string(rune('a' + i)),
			MinutesPlayed: 90,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.Stats().UpsertPerformance(t.Context(), perf); err != nil {
			t.Fatalf("upsert performance %d: %v", i, err)
		}
	}

	items, err := service.RecentPerformances(t.Context(), "rs-mf-10")
	if err != nil {
		t.Fatalf("recent performances: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].CreatedAt.Before(items[i].CreatedAt) {
			t.Fatalf("rows not newest-first at index %d", i)
		}
	}

	if _, err := service.RecentPerformances(t.Context(), "no-such-player"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsService_Leaderboards(t *testing.T) {
	store := memory.NewSeededStore()
	service := NewStatsService(store.Players(), store.Stats())

	seedCareer := func(playerID string, goals, assists, yellows, reds int) {
		career, err := store.Stats().GetOrCreateByPlayer(t.Context(), playerID)
		if err != nil {
			t.Fatalf("get career %s: %v", playerID, err)
		}
		career.Goals = goals
		career.Assists = assists
		career.YellowCards = yellows
		career.RedCards = reds
		if err := store.Stats().UpdateCareer(t.Context(), career); err != nil {
			t.Fatalf("update career %s: %v", playerID, err)
		}
	}

	seedCareer("ne-fw-09", 5, 1, 0, 0)
	seedCareer("rs-fw-11", 3, 4, 2, 1)
	seedCareer("op-mf-06", 0, 2, 5, 0)

	board, err := service.Leaderboards(t.Context())
	if err != nil {
		t.Fatalf("leaderboards: %v", err)
	}

	if len(board.TopScorers) != 2 {
		t.Fatalf("expected 2 scorers (zero rows skipped), got %d", len(board.TopScorers))
	}
	if board.TopScorers[0].PlayerID != "ne-fw-09" || board.TopScorers[0].Value != 5 {
		t.Fatalf("unexpected top scorer: %+v", board.TopScorers[0])
	}
	if board.TopScorers[0].PlayerName != "Ciaran Doyle" {
		t.Fatalf("scorer name not joined: %+v", board.TopScorers[0])
	}

	if board.TopAssists[0].PlayerID != "rs-fw-11" || board.TopAssists[0].Value != 4 {
		t.Fatalf("unexpected top assister: %+v", board.TopAssists[0])
	}

	// Most carded ranks by yellow plus red.
	if board.MostCarded[0].PlayerID != "op-mf-06" || board.MostCarded[0].Value != 5 {
		t.Fatalf("unexpected most carded: %+v", board.MostCarded[0])
	}
}
