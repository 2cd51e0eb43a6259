// Package memory holds the in-memory repositories used for local runs and
// tests. All entities live in one Store behind a single lock so that
// cross-entity operations, fixture regeneration and cascading deletes, stay
// atomic the same way the SQL transactions keep them atomic in postgres.
package memory

import (
	"sync"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/domain/team"
	"github.com/pitchside/matchday/internal/domain/tournament"
	"github.com/pitchside/matchday/internal/domain/user"
)

type Store struct {
	mu sync.RWMutex

	tournaments  map[string]tournament.Tournament
	teams        map[string]team.Team
	players      map[string]player.Player
	matches      map[string]match.Match
	events       map[string][]match.Event
	matchStats   map[string]match.Stats
	careers      map[string]stats.PlayerStats
	performances map[string]stats.Performance
	users        map[string]user.User
}

func NewStore() *Store {
	return &Store{
		tournaments:  make(map[string]tournament.Tournament),
		teams:        make(map[string]team.Team),
		players:      make(map[string]player.Player),
		matches:      make(map[string]match.Match),
		events:       make(map[string][]match.Event),
		matchStats:   make(map[string]match.Stats),
		careers:      make(map[string]stats.PlayerStats),
		performances: make(map[string]stats.Performance),
		users:        make(map[string]user.User),
	}
}

func (s *Store) Tournaments() *TournamentRepository { return &TournamentRepository{store: s} }
func (s *Store) Teams() *TeamRepository             { return &TeamRepository{store: s} }
func (s *Store) Players() *PlayerRepository         { return &PlayerRepository{store: s} }
func (s *Store) Matches() *MatchRepository          { return &MatchRepository{store: s} }
func (s *Store) Stats() *StatsRepository            { return &StatsRepository{store: s} }
func (s *Store) Users() *UserRepository             { return &UserRepository{store: s} }

func performanceKey(playerID, matchID string) string {
	return playerID + "::" + matchID
}

// deleteTeamLocked removes the team, its players and everything keyed to
// those players. Caller holds the write lock.
func (s *Store) deleteTeamLocked(teamID string) {
	for id, p := range s.players {
		if p.TeamID != teamID {
			continue
		}
		s.deletePlayerLocked(id)
	}
	delete(s.teams, teamID)
}

func (s *Store) deletePlayerLocked(playerID string) {
	for key, perf := range s.performances {
		if perf.PlayerID == playerID {
			delete(s.performances, key)
		}
	}
	delete(s.careers, playerID)
	delete(s.players, playerID)
}

func (s *Store) deleteMatchLocked(matchID string) {
	for key, perf := range s.performances {
		if perf.MatchID == matchID {
			delete(s.performances, key)
		}
	}
	delete(s.events, matchID)
	delete(s.matchStats, matchID)
	delete(s.matches, matchID)
}
