package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/domain/team"
	"github.com/pitchside/matchday/internal/domain/tournament"
	idgen "github.com/pitchside/matchday/internal/platform/id"
	"github.com/pitchside/matchday/internal/platform/logging"
)

type RegisterTeamInput struct {
	TournamentID string
	Name         string
	City         string
	FoundedYear  *int
	CoachID      string
}

type TeamService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewTeamService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

// Register adds a team to a tournament, rejecting registrations beyond the
// tournament's capacity.
func (s *TeamService) Register(ctx context.Context, input RegisterTeamInput) (team.Team, error) {
	input.TournamentID = strings.TrimSpace(input.TournamentID)
	if input.TournamentID == "" {
		return team.Team{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, ok, err := s.tournamentRepo.GetByID(ctx, input.TournamentID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get tournament: %w", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, input.TournamentID)
	}

	count, err := s.teamRepo.CountByTournament(ctx, input.TournamentID)
	if err != nil {
		return team.Team{}, fmt.Errorf("count teams: %w", err)
	}
	if count >= t.MaxTeams {
		return team.Team{}, fmt.Errorf("%w: tournament %s is full (%d/%d teams)", ErrInvalidInput, t.Name, count, t.MaxTeams)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:           teamID,
		TournamentID: input.TournamentID,
		Name:         strings.TrimSpace(input.Name),
		City:         strings.TrimSpace(input.City),
		FoundedYear:  input.FoundedYear,
		CoachID:      strings.TrimSpace(input.CoachID),
		CreatedAt:    s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team registered",
		"tournament_id", input.TournamentID,
		"team_id", item.ID,
		"name", item.Name,
	)

	return item, nil
}

func (s *TeamService) Get(ctx context.Context, id string) (team.Team, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, ok, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, id)
	}

	return item, nil
}

func (s *TeamService) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	_, ok, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	items, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

// Delete removes the team and its players.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", id)
	return nil
}
