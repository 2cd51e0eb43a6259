package postgres

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/player"
)

type playerTableModel struct {
	ID           string    `db:"id"`
	TeamID       string    `db:"team_id"`
	Name         string    `db:"name"`
	Position     string    `db:"position"`
	JerseyNumber int       `db:"jersey_number"`
	Age          *int      `db:"age"`
	Nationality  string    `db:"nationality"`
	IsAvailable  bool      `db:"is_available"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Name:         m.Name,
		Position:     player.Position(m.Position),
		JerseyNumber: m.JerseyNumber,
		Age:          m.Age,
		Nationality:  m.Nationality,
		IsAvailable:  m.IsAvailable,
		CreatedAt:    m.CreatedAt,
	}
}
