package memory

import (
	"context"
	"sort"

	"github.com/pitchside/matchday/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.players[p.ID] = p
	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.players[id]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.store.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].JerseyNumber < out[j].JerseyNumber
	})

	return out, nil
}

func (r *PlayerRepository) GetByTeamAndJersey(_ context.Context, teamID string, jerseyNumber int) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.players {
		if p.TeamID == teamID && p.JerseyNumber == jerseyNumber {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) SetAvailability(_ context.Context, id string, available bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.players[id]
	if !ok {
		return nil
	}
	p.IsAvailable = available
	r.store.players[id] = p

	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.deletePlayerLocked(id)
	return nil
}
