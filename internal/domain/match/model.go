package match

import (
	"fmt"
	"time"
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Side identifies which half of a fixture an event or score belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

func (s Side) Valid() bool {
	return s == SideHome || s == SideAway
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

const (
	EventKickoff      = "kickoff"
	EventGoal         = "goal"
	EventCard         = "card"
	EventSubstitution = "substitution"
	EventFinalWhistle = "final_whistle"
)

// Match is one fixture between two distinct teams of a tournament.
type Match struct {
	ID           string
	TournamentID string
	HomeTeamID   string
	AwayTeamID   string
	ScheduledAt  time.Time
	Venue        string
	RoundNumber  int
	Status       string
	HomeScore    int
	AwayScore    int
	CreatedAt    time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TournamentID == "" {
		return fmt.Errorf("match tournament id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match requires both home and away teams")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match teams must differ")
	}
	if m.ScheduledAt.IsZero() {
		return fmt.Errorf("match schedule datetime is required")
	}
	if m.RoundNumber < 1 {
		return fmt.Errorf("match round number must be >= 1")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match scores cannot be negative")
	}
	switch m.Status {
	case StatusScheduled, StatusInProgress, StatusCompleted:
	default:
		return fmt.Errorf("invalid match status: %s", m.Status)
	}

	return nil
}

// TeamID returns the team occupying the given side.
func (m Match) TeamID(side Side) string {
	if side == SideHome {
		return m.HomeTeamID
	}
	return m.AwayTeamID
}

// HasTeam reports whether teamID plays in this match.
func (m Match) HasTeam(teamID string) bool {
	return teamID != "" && (m.HomeTeamID == teamID || m.AwayTeamID == teamID)
}

// Event is one append-only entry in a match's live log. Events are never
// edited or deleted; creation order is the feed order.
type Event struct {
	ID          string
	MatchID     string
	Minute      int
	Type        string
	TeamID      string
	PlayerID    string
	Description string
	CreatedAt   time.Time
}

// Stats holds the two-sided live counters of a match. HomePossession and
// AwayPossession always sum to 100.
type Stats struct {
	MatchID           string
	HomePossession    int
	AwayPossession    int
	HomeShots         int
	AwayShots         int
	HomeShotsOnTarget int
	AwayShotsOnTarget int
	HomeCorners       int
	AwayCorners       int
	HomeFouls         int
	AwayFouls         int
	HomeYellowCards   int
	AwayYellowCards   int
	HomeRedCards      int
	AwayRedCards      int
	UpdatedAt         time.Time
}

// NewStats returns the baseline counters for a match that has no stats row
// yet: an even possession split and everything else at zero.
func NewStats(matchID string) Stats {
	return Stats{
		MatchID:        matchID,
		HomePossession: 50,
		AwayPossession: 50,
	}
}
