package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/team"
	"github.com/pitchside/matchday/internal/domain/tournament"
	idgen "github.com/pitchside/matchday/internal/platform/id"
	"github.com/pitchside/matchday/internal/platform/logging"
)

// matchInterval spaces consecutive fixtures on the calendar.
const matchInterval = 3 * 24 * time.Hour

// FixtureService builds the round-robin schedule of a tournament.
type FixtureService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	idGen          idgen.Generator
	logger         *logging.Logger
}

func NewFixtureService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		idGen:          idGen,
		logger:         logger,
	}
}

// Generate replaces the tournament's schedule with a single round-robin:
// every pair of registered teams meets exactly once, the earlier-enumerated
// team at home, matches spaced three days apart from the tournament start.
// The tournament comes out active. The whole regeneration is one atomic
// storage operation, so re-running it never leaves a partial schedule.
func (s *FixtureService) Generate(ctx context.Context, tournamentID string) (int, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return 0, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, ok, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return 0, fmt.Errorf("get tournament: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return 0, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) < 2 {
		return 0, fmt.Errorf("%w: fixtures need at least 2 teams, found %d", ErrInsufficientTeams, len(teams))
	}

	matches, err := s.buildRoundRobin(t, teams)
	if err != nil {
		return 0, err
	}

	if err := s.matchRepo.ReplaceFixtures(ctx, tournamentID, matches); err != nil {
		return 0, fmt.Errorf("replace fixtures: %w", err)
	}

	s.logger.InfoContext(ctx, "fixtures generated",
		"tournament_id", tournamentID,
		"teams", len(teams),
		"matches", len(matches),
	)

	return len(matches), nil
}

func (s *FixtureService) buildRoundRobin(t tournament.Tournament, teams []team.Team) ([]match.Match, error) {
	matches := make([]match.Match, 0, len(teams)*(len(teams)-1)/2)
	index := 0

	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			matchID, err := s.idGen.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate match id: %w", err)
			}

			matches = append(matches, match.Match{
				ID:           matchID,
				TournamentID: t.ID,
				HomeTeamID:   teams[i].ID,
				AwayTeamID:   teams[j].ID,
				ScheduledAt:  t.StartDate.Add(time.Duration(index) * matchInterval),
				RoundNumber:  1,
				Status:       match.StatusScheduled,
			})
			index++
		}
	}

	return matches, nil
}
