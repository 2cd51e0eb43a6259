package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/domain/team"
	"github.com/pitchside/matchday/internal/platform/logging"
)

// SquadService designates which players of a team are selected for a match.
type SquadService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	plyRepo   player.Repository
	statsRepo stats.Repository
	logger    *logging.Logger
	now       func() time.Time
}

func NewSquadService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	plyRepo player.Repository,
	statsRepo stats.Repository,
	logger *logging.Logger,
) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SquadService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		plyRepo:   plyRepo,
		statsRepo: statsRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// SelectForMatch replaces the team's selection for the match with the given
// player ids. Ids that do not belong to the team are dropped silently, and
// the previous selection of every team player is cleared first, so calling
// twice leaves only the second set selected. Returns the players that made
// the cut.
func (s *SquadService) SelectForMatch(ctx context.Context, matchID, teamID string, playerIDs []string) ([]player.Player, error) {
	matchID = strings.TrimSpace(matchID)
	teamID = strings.TrimSpace(teamID)
	if matchID == "" || teamID == "" {
		return nil, fmt.Errorf("%w: match id and team id are required", ErrInvalidInput)
	}

	m, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if !m.HasTeam(teamID) {
		return nil, fmt.Errorf("%w: team %s does not play in match %s", ErrInvalidInput, teamID, matchID)
	}

	_, ok, err = s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	roster, err := s.plyRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}

	rosterByID := make(map[string]player.Player, len(roster))
	rosterIDs := make([]string, 0, len(roster))
	for _, p := range roster {
		rosterByID[p.ID] = p
		rosterIDs = append(rosterIDs, p.ID)
	}

	now := s.now()
	selected := make([]player.Player, 0, len(playerIDs))
	rows := make([]stats.Performance, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		id = strings.TrimSpace(id)
		p, ok := rosterByID[id]
		if !ok {
			// Foreign or unknown ids are ignored, not rejected.
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		selected = append(selected, p)
		rows = append(rows, stats.Performance{
			PlayerID:   p.ID,
			MatchID:    matchID,
			IsSelected: true,
			CreatedAt:  now,
		})
	}

	if err := s.statsRepo.ReplaceSelection(ctx, matchID, rosterIDs, rows); err != nil {
		return nil, fmt.Errorf("replace selection: %w", err)
	}

	s.logger.InfoContext(ctx, "squad selected",
		"match_id", matchID,
		"team_id", teamID,
		"requested", len(playerIDs),
		"selected", len(selected),
	)

	return selected, nil
}

// SelectionForMatch lists the current selection rows of a match.
func (s *SquadService) SelectionForMatch(ctx context.Context, matchID string) ([]stats.Performance, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	_, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	rows, err := s.statsRepo.ListPerformancesByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match performances: %w", err)
	}

	out := rows[:0]
	for _, row := range rows {
		if row.IsSelected {
			out = append(out, row)
		}
	}

	return out, nil
}
