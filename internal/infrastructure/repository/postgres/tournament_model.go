package postgres

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/tournament"
)

type tournamentTableModel struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	MaxTeams    int        `db:"max_teams"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (m tournamentTableModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		MaxTeams:    m.MaxTeams,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}
