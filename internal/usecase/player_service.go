package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/team"
	idgen "github.com/pitchside/matchday/internal/platform/id"
	"github.com/pitchside/matchday/internal/platform/logging"
)

type CreatePlayerInput struct {
	TeamID       string
	Name         string
	Position     player.Position
	JerseyNumber int
	Age          *int
	Nationality  string
}

type PlayerService struct {
	teamRepo team.Repository
	plyRepo  player.Repository
	idGen    idgen.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewPlayerService(
	teamRepo team.Repository,
	plyRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		teamRepo: teamRepo,
		plyRepo:  plyRepo,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

// Create adds a player to a team. Jersey numbers are unique within the team.
func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.TeamID == "" {
		return player.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, ok, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team: %w", err)
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	_, taken, err := s.plyRepo.GetByTeamAndJersey(ctx, input.TeamID, input.JerseyNumber)
	if err != nil {
		return player.Player{}, fmt.Errorf("check jersey number: %w", err)
	}
	if taken {
		return player.Player{}, fmt.Errorf("%w: jersey number %d is already taken", ErrInvalidInput, input.JerseyNumber)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:           playerID,
		TeamID:       input.TeamID,
		Name:         strings.TrimSpace(input.Name),
		Position:     input.Position,
		JerseyNumber: input.JerseyNumber,
		Age:          input.Age,
		Nationality:  strings.TrimSpace(input.Nationality),
		IsAvailable:  true,
		CreatedAt:    s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.plyRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created",
		"team_id", input.TeamID,
		"player_id", item.ID,
		"jersey", item.JerseyNumber,
	)

	return item, nil
}

func (s *PlayerService) Get(ctx context.Context, id string) (player.Player, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, ok, err := s.plyRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, id)
	}

	return item, nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	items, err := s.plyRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

// ToggleAvailability flips the player's availability flag and returns the
// new value.
func (s *PlayerService) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}

	next := !item.IsAvailable
	if err := s.plyRepo.SetAvailability(ctx, id, next); err != nil {
		return false, fmt.Errorf("set availability: %w", err)
	}

	s.logger.InfoContext(ctx, "player availability toggled", "player_id", id, "available", next)
	return next, nil
}
