package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pitchside/matchday/internal/domain/tournament"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchday/internal/platform/logging"
)

func newTeamService(store *memory.Store) *TeamService {
	return NewTeamService(
		store.Tournaments(),
		store.Teams(),
		&sequenceIDGenerator{prefix: "team"},
		logging.NewNop(),
	)
}

func TestTeamService_Register(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTeamService(store)

	created, err := service.Register(t.Context(), RegisterTeamInput{
		TournamentID: memory.TournamentIDSundayCup,
		Name:         "  Dockside Wanderers ",
		City:         "Dockside",
	})
	if err != nil {
		t.Fatalf("register team: %v", err)
	}
	if created.Name != "Dockside Wanderers" {
		t.Fatalf("name not trimmed: %q", created.Name)
	}
	if created.TournamentID != memory.TournamentIDSundayCup {
		t.Fatalf("unexpected tournament id: %s", created.TournamentID)
	}

	items, err := service.ListByTournament(t.Context(), memory.TournamentIDSundayCup)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 teams, got %d", len(items))
	}
}

func TestTeamService_Register_CapacityFull(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTeamService(store)

	small := tournament.Tournament{
		ID:        "tiny-cup",
		Name:      "Tiny Cup",
		StartDate: time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC),
		MaxTeams:  tournament.MinTeamCapacity,
		Status:    tournament.StatusRegistration,
		CreatedAt: time.Now(),
	}
	if err := store.Tournaments().Create(t.Context(), small); err != nil {
		t.Fatalf("create tournament: %v", err)
	}

	for i := 0; i < tournament.MinTeamCapacity; i++ {
		if _, err := service.Register(t.Context(), RegisterTeamInput{
			TournamentID: "tiny-cup",
			Name:         fmt.Sprintf("Team %d", i+1),
		}); err != nil {
			t.Fatalf("register team %d: %v", i+1, err)
		}
	}

	if _, err := service.Register(t.Context(), RegisterTeamInput{TournamentID: "tiny-cup", Name: "One Too Many"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput when full, got %v", err)
	}
}

func TestTeamService_Register_Validation(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTeamService(store)

	if _, err := service.Register(t.Context(), RegisterTeamInput{TournamentID: "no-such-cup", Name: "Ghost FC"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Register(t.Context(), RegisterTeamInput{TournamentID: memory.TournamentIDSundayCup, Name: "X"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short name, got %v", err)
	}

	year := 1799
	if _, err := service.Register(t.Context(), RegisterTeamInput{
		TournamentID: memory.TournamentIDSundayCup,
		Name:         "Ancient FC",
		FoundedYear:  &year,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for founded year, got %v", err)
	}
}

func TestTeamService_Delete_CascadesPlayers(t *testing.T) {
	store := memory.NewSeededStore()
	service := newTeamService(store)

	if err := service.Delete(t.Context(), memory.TeamIDNorthend); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	if _, err := service.Get(t.Context(), memory.TeamIDNorthend); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, ok, err := store.Players().GetByID(t.Context(), "ne-gk-01"); err != nil || ok {
		t.Fatalf("player survived team delete: ok=%v err=%v", ok, err)
	}

	remaining, err := service.ListByTournament(t.Context(), memory.TournamentIDSundayCup)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(remaining) != 3 {
		t.Fatalf("expected 3 remaining teams, got %d", len(remaining))
	}
}
