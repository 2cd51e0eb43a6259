package postgres

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
)

type matchTableModel struct {
	ID           string    `db:"id"`
	TournamentID string    `db:"tournament_id"`
	HomeTeamID   string    `db:"home_team_id"`
	AwayTeamID   string    `db:"away_team_id"`
	ScheduledAt  time.Time `db:"scheduled_at"`
	Venue        string    `db:"venue"`
	RoundNumber  int       `db:"round_number"`
	Status       string    `db:"status"`
	HomeScore    int       `db:"home_score"`
	AwayScore    int       `db:"away_score"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		ScheduledAt:  m.ScheduledAt,
		Venue:        m.Venue,
		RoundNumber:  m.RoundNumber,
		Status:       m.Status,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		CreatedAt:    m.CreatedAt,
	}
}

func matchToArgs(m match.Match) map[string]any {
	return map[string]any{
		"id":            m.ID,
		"tournament_id": m.TournamentID,
		"home_team_id":  m.HomeTeamID,
		"away_team_id":  m.AwayTeamID,
		"scheduled_at":  m.ScheduledAt,
		"venue":         m.Venue,
		"round_number":  m.RoundNumber,
		"status":        m.Status,
		"home_score":    m.HomeScore,
		"away_score":    m.AwayScore,
		"created_at":    m.CreatedAt,
	}
}

type eventTableModel struct {
	ID          string    `db:"id"`
	MatchID     string    `db:"match_id"`
	Minute      int       `db:"minute"`
	Type        string    `db:"type"`
	TeamID      string    `db:"team_id"`
	PlayerID    string    `db:"player_id"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m eventTableModel) toDomain() match.Event {
	return match.Event{
		ID:          m.ID,
		MatchID:     m.MatchID,
		Minute:      m.Minute,
		Type:        m.Type,
		TeamID:      m.TeamID,
		PlayerID:    m.PlayerID,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

type matchStatsTableModel struct {
	MatchID           string    `db:"match_id"`
	HomePossession    int       `db:"home_possession"`
	AwayPossession    int       `db:"away_possession"`
	HomeShots         int       `db:"home_shots"`
	AwayShots         int       `db:"away_shots"`
	HomeShotsOnTarget int       `db:"home_shots_on_target"`
	AwayShotsOnTarget int       `db:"away_shots_on_target"`
	HomeCorners       int       `db:"home_corners"`
	AwayCorners       int       `db:"away_corners"`
	HomeFouls         int       `db:"home_fouls"`
	AwayFouls         int       `db:"away_fouls"`
	HomeYellowCards   int       `db:"home_yellow_cards"`
	AwayYellowCards   int       `db:"away_yellow_cards"`
	HomeRedCards      int       `db:"home_red_cards"`
	AwayRedCards      int       `db:"away_red_cards"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (m matchStatsTableModel) toDomain() match.Stats {
	return match.Stats{
		MatchID:           m.MatchID,
		HomePossession:    m.HomePossession,
		AwayPossession:    m.AwayPossession,
		HomeShots:         m.HomeShots,
		AwayShots:         m.AwayShots,
		HomeShotsOnTarget: m.HomeShotsOnTarget,
		AwayShotsOnTarget: m.AwayShotsOnTarget,
		HomeCorners:       m.HomeCorners,
		AwayCorners:       m.AwayCorners,
		HomeFouls:         m.HomeFouls,
		AwayFouls:         m.AwayFouls,
		HomeYellowCards:   m.HomeYellowCards,
		AwayYellowCards:   m.AwayYellowCards,
		HomeRedCards:      m.HomeRedCards,
		AwayRedCards:      m.AwayRedCards,
		UpdatedAt:         m.UpdatedAt,
	}
}

func statsToArgs(s match.Stats) map[string]any {
	return map[string]any{
		"match_id":             s.MatchID,
		"home_possession":      s.HomePossession,
		"away_possession":      s.AwayPossession,
		"home_shots":           s.HomeShots,
		"away_shots":           s.AwayShots,
		"home_shots_on_target": s.HomeShotsOnTarget,
		"away_shots_on_target": s.AwayShotsOnTarget,
		"home_corners":         s.HomeCorners,
		"away_corners":         s.AwayCorners,
		"home_fouls":           s.HomeFouls,
		"away_fouls":           s.AwayFouls,
		"home_yellow_cards":    s.HomeYellowCards,
		"away_yellow_cards":    s.AwayYellowCards,
		"home_red_cards":       s.HomeRedCards,
		"away_red_cards":       s.AwayRedCards,
		"updated_at":           s.UpdatedAt,
	}
}
