package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/tournament"
	idgen "github.com/pitchside/matchday/internal/platform/id"
	"github.com/pitchside/matchday/internal/platform/logging"
)

type CreateTournamentInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	MaxTeams    int
}

type TournamentService struct {
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewTournamentService(
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TournamentService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	tournamentID, err := s.idGen.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}

	maxTeams := input.MaxTeams
	if maxTeams == 0 {
		maxTeams = tournament.DefaultTeamCapacity
	}

	t := tournament.Tournament{
		ID:          tournamentID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MaxTeams:    maxTeams,
		Status:      tournament.StatusRegistration,
		CreatedAt:   s.now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tournamentRepo.Create(ctx, t); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament created", "tournament_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *TournamentService) Get(ctx context.Context, id string) (tournament.Tournament, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, ok, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !ok {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, id)
	}

	return t, nil
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return items, nil
}

// Delete removes the tournament and everything it owns.
func (s *TournamentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament deleted", "tournament_id", id)
	return nil
}

// Matches lists the tournament's fixtures ordered by schedule.
func (s *TournamentService) Matches(ctx context.Context, id string) ([]match.Match, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	items, err := s.matchRepo.ListByTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list tournament matches: %w", err)
	}

	return items, nil
}
