package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/tournament"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchday/internal/platform/logging"
)

func newTournamentService(store *memory.Store) *TournamentService {
	return NewTournamentService(
		store.Tournaments(),
		store.Matches(),
		&sequenceIDGenerator{prefix: "trn"},
		logging.NewNop(),
	)
}

func TestTournamentService_Create(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTournamentService(store)

	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.Create(t.Context(), CreateTournamentInput{
		Name:      "  Spring Shield  ",
		StartDate: time.Date(2026, time.June, 1, 15, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create tournament: %v", err)
	}
	if created.ID != "trn-001" {
		t.Fatalf("unexpected id %s", created.ID)
	}
	if created.Name != "Spring Shield" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}
	if created.MaxTeams != tournament.DefaultTeamCapacity {
		t.Fatalf("max teams = %d, want default %d", created.MaxTeams, tournament.DefaultTeamCapacity)
	}
	if created.Status != tournament.StatusRegistration {
		t.Fatalf("status = %s, want registration", created.Status)
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("created at = %v, want %v", created.CreatedAt, now)
	}
}

func TestTournamentService_Create_Validation(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTournamentService(store)

	start := time.Date(2026, time.June, 1, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input CreateTournamentInput
	}{
		{"name too short", CreateTournamentInput{Name: "ab", StartDate: start}},
		{"missing start date", CreateTournamentInput{Name: "Spring Shield"}},
		{"capacity too small", CreateTournamentInput{Name: "Spring Shield", StartDate: start, MaxTeams: 3}},
		{"capacity too large", CreateTournamentInput{Name: "Spring Shield", StartDate: start, MaxTeams: 33}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Create(t.Context(), tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	t.Run("end before start", func(t *testing.T) {
		end := start.Add(-time.Hour)
		if _, err := service.Create(t.Context(), CreateTournamentInput{Name: "Spring Shield", StartDate: start, EndDate: &end}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestTournamentService_Delete_Cascades(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTournamentService(store)

	fixtures := []match.Match{completedMatch("m-1", memory.TeamIDNorthend, memory.TeamIDRiverside, 1, 0)}
	if err := store.Matches().ReplaceFixtures(t.Context(), memory.TournamentIDSundayCup, fixtures); err != nil {
		t.Fatalf("replace fixtures: %v", err)
	}

	if err := service.Delete(t.Context(), memory.TournamentIDSundayCup); err != nil {
		t.Fatalf("delete tournament: %v", err)
	}

	if _, err := service.Get(t.Context(), memory.TournamentIDSundayCup); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, ok, err := store.Teams().GetByID(t.Context(), memory.TeamIDNorthend); err != nil || ok {
		t.Fatalf("team survived cascade: ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Matches().GetByID(t.Context(), "m-1"); err != nil || ok {
		t.Fatalf("match survived cascade: ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Players().GetByID(t.Context(), "ne-gk-01"); err != nil || ok {
		t.Fatalf("player survived cascade: ok=%v err=%v", ok, err)
	}
}

func TestTournamentService_List(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTournamentService(store)

	items, err := service.List(t.Context())
	if err != nil {
		t.Fatalf("list tournaments: %v", err)
	}
	if len(items) != 1 || items[0].ID != memory.TournamentIDSundayCup {
		t.Fatalf("unexpected tournaments: %+v", items)
	}
}

func TestTournamentService_Matches(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTournamentService(store)

	if _, err := service.Matches(t.Context(), "no-such-cup"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items, err := service.Matches(t.Context(), memory.TournamentIDSundayCup)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no matches before fixtures, got %d", len(items))
	}
}
