package memory

import (
	"context"
	"sort"

	"github.com/pitchside/matchday/internal/domain/tournament"
)

type TournamentRepository struct {
	store *Store
}

func (r *TournamentRepository) Create(_ context.Context, t tournament.Tournament) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.tournaments[t.ID] = t
	return nil
}

func (r *TournamentRepository) GetByID(_ context.Context, id string) (tournament.Tournament, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tournaments[id]
	if !ok {
		return tournament.Tournament{}, false, nil
	}

	return t, true, nil
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.store.tournaments))
	for _, t := range r.store.tournaments {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *TournamentRepository) UpdateStatus(_ context.Context, id, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.tournaments[id]
	if !ok {
		return nil
	}
	t.Status = status
	r.store.tournaments[id] = t

	return nil
}

func (r *TournamentRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for matchID, m := range r.store.matches {
		if m.TournamentID == id {
			r.store.deleteMatchLocked(matchID)
		}
	}
	for teamID, t := range r.store.teams {
		if t.TournamentID == id {
			r.store.deleteTeamLocked(teamID)
		}
	}
	delete(r.store.tournaments, id)

	return nil
}
