package postgres

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/team"
)

type teamTableModel struct {
	ID           string     `db:"id"`
	TournamentID string     `db:"tournament_id"`
	Name         string     `db:"name"`
	City         string     `db:"city"`
	FoundedYear  *int       `db:"founded_year"`
	CoachID      string     `db:"coach_id"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		Name:         m.Name,
		City:         m.City,
		FoundedYear:  m.FoundedYear,
		CoachID:      m.CoachID,
		CreatedAt:    m.CreatedAt,
	}
}
