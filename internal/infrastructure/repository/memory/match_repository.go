package memory

import (
	"context"
	"sort"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/tournament"
)

type MatchRepository struct {
	store *Store
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.matches[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.listByTournamentLocked(tournamentID, ""), nil
}

func (r *MatchRepository) ListCompletedByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.listByTournamentLocked(tournamentID, match.StatusCompleted), nil
}

func (r *MatchRepository) listByTournamentLocked(tournamentID, status string) []match.Match {
	out := make([]match.Match, 0)
	for _, m := range r.store.matches {
		if m.TournamentID != tournamentID {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func (r *MatchRepository) ReplaceFixtures(_ context.Context, tournamentID string, matches []match.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, m := range r.store.matches {
		if m.TournamentID == tournamentID {
			r.store.deleteMatchLocked(id)
		}
	}
	for _, m := range matches {
		r.store.matches[m.ID] = m
	}
	if t, ok := r.store.tournaments[tournamentID]; ok {
		t.Status = tournament.StatusActive
		r.store.tournaments[tournamentID] = t
	}

	return nil
}

func (r *MatchRepository) ApplyLiveUpdate(_ context.Context, m match.Match, ev *match.Event, stats *match.Stats) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.matches[m.ID] = m
	if ev != nil {
		r.store.events[m.ID] = append(r.store.events[m.ID], *ev)
	}
	if stats != nil {
		r.store.matchStats[m.ID] = *stats
	}

	return nil
}

func (r *MatchRepository) ListEventsByMatch(_ context.Context, matchID string, limit int) ([]match.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := r.store.events[matchID]
	if limit <= 0 || limit > len(events) {
		limit = len(events)
	}

	// Events are stored in append order; walk backwards for newest first.
	out := make([]match.Event, 0, limit)
	for i := len(events) - 1; i >= len(events)-limit; i-- {
		out = append(out, events[i])
	}

	return out, nil
}

func (r *MatchRepository) CountEventsByType(_ context.Context, matchID, eventType string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, ev := range r.store.events[matchID] {
		if ev.Type == eventType {
			count++
		}
	}

	return count, nil
}

func (r *MatchRepository) GetOrCreateStats(_ context.Context, matchID string) (match.Stats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st, ok := r.store.matchStats[matchID]
	if !ok {
		st = match.NewStats(matchID)
		r.store.matchStats[matchID] = st
	}

	return st, nil
}
