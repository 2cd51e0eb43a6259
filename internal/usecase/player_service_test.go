package usecase

import (
	"errors"
	"testing"

	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchday/internal/platform/logging"
)

func newPlayerService(store *memory.Store) *PlayerService {
	return NewPlayerService(
		store.Teams(),
		store.Players(),
		&sequenceIDGenerator{prefix: "ply"},
		logging.NewNop(),
	)
}

func TestPlayerService_Create(t *testing.T) {
	store := memory.NewSeededStore()
	service := newPlayerService(store)

	created, err := service.Create(t.Context(), CreatePlayerInput{
		TeamID:       memory.TeamIDNorthend,
		Name:         "Rory Whitfield",
		Position:     player.PositionMidfielder,
		JerseyNumber: 6,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if !created.IsAvailable {
		t.Fatalf("new player should start available")
	}

	items, err := service.ListByTeam(t.Context(), memory.TeamIDNorthend)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 players, got %d", len(items))
	}

	// Roster listing is ordered by jersey number.
	for i := 1; i < len(items); i++ {
		if items[i-1].JerseyNumber > items[i].JerseyNumber {
			t.Fatalf("roster not ordered by jersey: %d before %d", items[i-1].JerseyNumber, items[i].JerseyNumber)
		}
	}
}

func TestPlayerService_Create_DuplicateJersey(t *testing.T) {
	store := memory.NewSeededStore()
	service := newPlayerService(store)

	_, err := service.Create(t.Context(), CreatePlayerInput{
		TeamID:       memory.TeamIDNorthend,
		Name:         "Second Keeper",
		Position:     player.PositionGoalkeeper,
		JerseyNumber: 1, // taken by ne-gk-01
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate jersey, got %v", err)
	}

	// The same number is fine on another team.
	if _, err := service.Create(t.Context(), CreatePlayerInput{
		TeamID:       memory.TeamIDOldPort,
		Name:         "Another One",
		Position:     player.PositionDefender,
		JerseyNumber: 4,
	}); err != nil {
		t.Fatalf("create on other team: %v", err)
	}
}

func TestPlayerService_Create_Validation(t *testing.T) {
	store := memory.NewSeededStore()
	service := newPlayerService(store)

	if _, err := service.Create(t.Context(), CreatePlayerInput{TeamID: "no-such-team", Name: "Ghost", Position: player.PositionForward, JerseyNumber: 99}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	cases := []struct {
		name  string
		input CreatePlayerInput
	}{
		{"bad position", CreatePlayerInput{TeamID: memory.TeamIDNorthend, Name: "Bad Pos", Position: "striker", JerseyNumber: 55}},
		{"jersey zero", CreatePlayerInput{TeamID: memory.TeamIDNorthend, Name: "No Number", Position: player.PositionForward, JerseyNumber: 0}},
		{"jersey too high", CreatePlayerInput{TeamID: memory.TeamIDNorthend, Name: "Big Number", Position: player.PositionForward, JerseyNumber: 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Create(t.Context(), tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPlayerService_ToggleAvailability(t *testing.T) {
	store := memory.NewSeededStore()
	service := newPlayerService(store)

	available, err := service.ToggleAvailability(t.Context(), "ne-fw-09")
	if err != nil {
		t.Fatalf("toggle availability: %v", err)
	}
	if available {
		t.Fatalf("expected player to become unavailable")
	}

	available, err = service.ToggleAvailability(t.Context(), "ne-fw-09")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !available {
		t.Fatalf("expected player to become available again")
	}

	if _, err := service.ToggleAvailability(t.Context(), "no-such-player"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
