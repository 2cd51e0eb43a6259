package postgres

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/stats"
)

type playerStatsTableModel struct {
	PlayerID      string    `db:"player_id"`
	Goals         int       `db:"goals"`
	Assists       int       `db:"assists"`
	YellowCards   int       `db:"yellow_cards"`
	RedCards      int       `db:"red_cards"`
	MatchesPlayed int       `db:"matches_played"`
	MinutesPlayed int       `db:"minutes_played"`
	Shots         int       `db:"shots"`
	ShotsOnTarget int       `db:"shots_on_target"`
	Passes        int       `db:"passes"`
	PassAccuracy  float64   `db:"pass_accuracy"`
	Tackles       int       `db:"tackles"`
	Interceptions int       `db:"interceptions"`
	CleanSheets   int       `db:"clean_sheets"`
	Saves         int       `db:"saves"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (m playerStatsTableModel) toDomain() stats.PlayerStats {
	return stats.PlayerStats{
		PlayerID:      m.PlayerID,
		Goals:         m.Goals,
		Assists:       m.Assists,
		YellowCards:   m.YellowCards,
		RedCards:      m.RedCards,
		MatchesPlayed: m.MatchesPlayed,
		MinutesPlayed: m.MinutesPlayed,
		Shots:         m.Shots,
		ShotsOnTarget: m.ShotsOnTarget,
		Passes:        m.Passes,
		PassAccuracy:  m.PassAccuracy,
		Tackles:       m.Tackles,
		Interceptions: m.Interceptions,
		CleanSheets:   m.CleanSheets,
		Saves:         m.Saves,
		UpdatedAt:     m.UpdatedAt,
	}
}

type performanceTableModel struct {
	PlayerID        string    `db:"player_id"`
	MatchID         string    `db:"match_id"`
	Goals           int       `db:"goals"`
	Assists         int       `db:"assists"`
	YellowCards     int       `db:"yellow_cards"`
	RedCards        int       `db:"red_cards"`
	MinutesPlayed   int       `db:"minutes_played"`
	Shots           int       `db:"shots"`
	ShotsOnTarget   int       `db:"shots_on_target"`
	Passes          int       `db:"passes"`
	PassesCompleted int       `db:"passes_completed"`
	Tackles         int       `db:"tackles"`
	Interceptions   int       `db:"interceptions"`
	Saves           int       `db:"saves"`
	Rating          float64   `db:"rating"`
	IsSelected      bool      `db:"is_selected"`
	IsPlaying       bool      `db:"is_playing"`
	CreatedAt       time.Time `db:"created_at"`
}

func (m performanceTableModel) toDomain() stats.Performance {
	return stats.Performance{
		PlayerID:        m.PlayerID,
		MatchID:         m.MatchID,
		Goals:           m.Goals,
		Assists:         m.Assists,
		YellowCards:     m.YellowCards,
		RedCards:        m.RedCards,
		MinutesPlayed:   m.MinutesPlayed,
		Shots:           m.Shots,
		ShotsOnTarget:   m.ShotsOnTarget,
		Passes:          m.Passes,
		PassesCompleted: m.PassesCompleted,
		Tackles:         m.Tackles,
		Interceptions:   m.Interceptions,
		Saves:           m.Saves,
		Rating:          m.Rating,
		IsSelected:      m.IsSelected,
		IsPlaying:       m.IsPlaying,
		CreatedAt:       m.CreatedAt,
	}
}

func performanceToArgs(p stats.Performance) map[string]any {
	return map[string]any{
		"player_id":        p.PlayerID,
		"match_id":         p.MatchID,
		"goals":            p.Goals,
		"assists":          p.Assists,
		"yellow_cards":     p.YellowCards,
		"red_cards":        p.RedCards,
		"minutes_played":   p.MinutesPlayed,
		"shots":            p.Shots,
		"shots_on_target":  p.ShotsOnTarget,
		"passes":           p.Passes,
		"passes_completed": p.PassesCompleted,
		"tackles":          p.Tackles,
		"interceptions":    p.Interceptions,
		"saves":            p.Saves,
		"rating":           p.Rating,
		"is_selected":      p.IsSelected,
		"is_playing":       p.IsPlaying,
		"created_at":       p.CreatedAt,
	}
}
