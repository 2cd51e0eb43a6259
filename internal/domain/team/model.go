package team

import (
	"fmt"
	"time"
)

// Team is a registered club inside one tournament.
type Team struct {
	ID           string
	TournamentID string
	Name         string
	City         string
	FoundedYear  *int
	CoachID      string
	CreatedAt    time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.TournamentID == "" {
		return fmt.Errorf("team tournament id is required")
	}
	if len(t.Name) < 2 || len(t.Name) > 80 {
		return fmt.Errorf("team name must be 2-80 characters")
	}
	if len(t.City) > 80 {
		return fmt.Errorf("team city cannot exceed 80 characters")
	}
	if t.FoundedYear != nil && (*t.FoundedYear < 1800 || *t.FoundedYear > 2025) {
		return fmt.Errorf("team founded year must be between 1800 and 2025")
	}

	return nil
}
