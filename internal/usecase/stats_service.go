package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/sourcegraph/conc/pool"
)

const (
	recentPerformancesLimit = 10
	leaderboardLimit        = 10
)

// Leaderboard ranks the top players across the whole system.
type Leaderboard struct {
	TopScorers []stats.LeaderboardEntry
	TopAssists []stats.LeaderboardEntry
	MostCarded []stats.LeaderboardEntry
}

// StatsService exposes career statistics and per-match performance reads.
type StatsService struct {
	plyRepo   player.Repository
	statsRepo stats.Repository
}

func NewStatsService(plyRepo player.Repository, statsRepo stats.Repository) *StatsService {
	return &StatsService{
		plyRepo:   plyRepo,
		statsRepo: statsRepo,
	}
}

// CareerStats returns the player's career aggregate, creating the zero row
// at the storage boundary on first access.
func (s *StatsService) CareerStats(ctx context.Context, playerID string) (stats.PlayerStats, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return stats.PlayerStats{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, ok, err := s.plyRepo.GetByID(ctx, playerID)
	if err != nil {
		return stats.PlayerStats{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return stats.PlayerStats{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	out, err := s.statsRepo.GetOrCreateByPlayer(ctx, playerID)
	if err != nil {
		return stats.PlayerStats{}, fmt.Errorf("get career stats: %w", err)
	}

	return out, nil
}

// RecentPerformances returns the player's last 10 match records, newest
// first.
func (s *StatsService) RecentPerformances(ctx context.Context, playerID string) ([]stats.Performance, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, ok, err := s.plyRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	items, err := s.statsRepo.ListRecentByPlayer(ctx, playerID, recentPerformancesLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent performances: %w", err)
	}

	return items, nil
}

// Leaderboards fetches the three boards concurrently.
func (s *StatsService) Leaderboards(ctx context.Context) (Leaderboard, error) {
	var board Leaderboard

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		entries, err := s.statsRepo.TopScorers(ctx, leaderboardLimit)
		if err != nil {
			return fmt.Errorf("top scorers: %w", err)
		}
		board.TopScorers = entries
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.statsRepo.TopAssists(ctx, leaderboardLimit)
		if err != nil {
			return fmt.Errorf("top assists: %w", err)
		}
		board.TopAssists = entries
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.statsRepo.MostCarded(ctx, leaderboardLimit)
		if err != nil {
			return fmt.Errorf("most carded: %w", err)
		}
		board.MostCarded = entries
		return nil
	})

	if err := p.Wait(); err != nil {
		return Leaderboard{}, err
	}

	return board, nil
}
