package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/standings"
	"github.com/pitchside/matchday/internal/domain/team"
	"github.com/pitchside/matchday/internal/domain/tournament"
)

const standingsWorkers = 4

// StandingsService derives the league table of a tournament from its
// completed matches. The table is recomputed on every call; nothing is
// cached or incrementally maintained.
type StandingsService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
}

func NewStandingsService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
) *StandingsService {
	return &StandingsService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
	}
}

// Table returns one row per registered team, ranked by points, then goal
// difference, then goals scored, all descending. Teams tied on all three
// keys keep their registration order.
func (s *StandingsService) Table(ctx context.Context, tournamentID string) ([]standings.Row, error) {
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

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	completed, err := s.matchRepo.ListCompletedByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}

	rows := make([]standings.Row, len(teams))

	pool, err := ants.NewPool(standingsWorkers)
	if err != nil {
		return nil, fmt.Errorf("create standings pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, t := range teams {
		i, t := i, t
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			rows[i] = buildRow(t, completed)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit standings task: %w", err)
		}
	}
	workers.Wait()

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows, nil
}

func buildRow(t team.Team, completed []match.Match) standings.Row {
	row := standings.Row{TeamID: t.ID, TeamName: t.Name}

	for _, m := range completed {
		if !m.HasTeam(t.ID) {
			continue
		}

		goalsFor, goalsAgainst := m.HomeScore, m.AwayScore
		if m.AwayTeamID == t.ID {
			goalsFor, goalsAgainst = m.AwayScore, m.HomeScore
		}

		row.Played++
		row.GoalsFor += goalsFor
		row.GoalsAgainst += goalsAgainst

		switch {
		case goalsFor > goalsAgainst:
			row.Won++
			row.Points += 3
		case goalsFor == goalsAgainst:
			row.Drawn++
			row.Points++
		default:
			row.Lost++
		}
	}

	row.GoalDifference = row.GoalsFor - row.GoalsAgainst
	return row
}
