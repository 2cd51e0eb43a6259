package memory

import (
	"context"
	"sort"

	"github.com/pitchside/matchday/internal/domain/stats"
)

type StatsRepository struct {
	store *Store
}

func (r *StatsRepository) GetOrCreateByPlayer(_ context.Context, playerID string) (stats.PlayerStats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.careers[playerID]
	if !ok {
		s = stats.PlayerStats{PlayerID: playerID}
		r.store.careers[playerID] = s
	}

	return s, nil
}

func (r *StatsRepository) UpdateCareer(_ context.Context, s stats.PlayerStats) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.careers[s.PlayerID] = s
	return nil
}

func (r *StatsRepository) GetPerformance(_ context.Context, playerID, matchID string) (stats.Performance, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.performances[performanceKey(playerID, matchID)]
	if !ok {
		return stats.Performance{}, false, nil
	}

	return p, true, nil
}

func (r *StatsRepository) UpsertPerformance(_ context.Context, p stats.Performance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.performances[performanceKey(p.PlayerID, p.MatchID)] = p
	return nil
}

func (r *StatsRepository) ListPerformancesByMatch(_ context.Context, matchID string) ([]stats.Performance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]stats.Performance, 0)
	for _, p := range r.store.performances {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PlayerID < out[j].PlayerID
	})

	return out, nil
}

func (r *StatsRepository) ListRecentByPlayer(_ context.Context, playerID string, limit int) ([]stats.Performance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]stats.Performance, 0)
	for _, p := range r.store.performances {
		if p.PlayerID == playerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].MatchID < out[j].MatchID
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}

	return out, nil
}

func (r *StatsRepository) ReplaceSelection(_ context.Context, matchID string, teamPlayerIDs []string, rows []stats.Performance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, playerID := range teamPlayerIDs {
		delete(r.store.performances, performanceKey(playerID, matchID))
	}
	for _, p := range rows {
		r.store.performances[performanceKey(p.PlayerID, p.MatchID)] = p
	}

	return nil
}

func (r *StatsRepository) TopScorers(_ context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	return r.leaderboard(limit, func(s stats.PlayerStats) int { return s.Goals })
}

func (r *StatsRepository) TopAssists(_ context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	return r.leaderboard(limit, func(s stats.PlayerStats) int { return s.Assists })
}

func (r *StatsRepository) MostCarded(_ context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	return r.leaderboard(limit, func(s stats.PlayerStats) int { return s.YellowCards + s.RedCards })
}

func (r *StatsRepository) leaderboard(limit int, value func(stats.PlayerStats) int) ([]stats.LeaderboardEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]stats.LeaderboardEntry, 0)
	for playerID, career := range r.store.careers {
		v := value(career)
		if v == 0 {
			continue
		}
		entry := stats.LeaderboardEntry{PlayerID: playerID, Value: v}
		if p, ok := r.store.players[playerID]; ok {
			entry.PlayerName = p.Name
			entry.TeamID = p.TeamID
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}

	return out, nil
}
