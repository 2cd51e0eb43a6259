package tournament

import (
	"fmt"
	"time"
)

const (
	StatusRegistration = "registration"
	StatusActive       = "active"
	StatusCompleted    = "completed"
)

const (
	MinTeamCapacity     = 4
	MaxTeamCapacity     = 32
	DefaultTeamCapacity = 16
)

// Tournament is a single competition. Teams register while the status is
// registration; generating fixtures flips it to active.
type Tournament struct {
	ID          string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	MaxTeams    int
	Status      string
	CreatedAt   time.Time
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if len(t.Name) < 3 || len(t.Name) > 100 {
		return fmt.Errorf("tournament name must be 3-100 characters")
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("tournament start date is required")
	}
	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("tournament end date cannot precede the start date")
	}
	if t.MaxTeams < MinTeamCapacity || t.MaxTeams > MaxTeamCapacity {
		return fmt.Errorf("tournament capacity must be %d-%d teams", MinTeamCapacity, MaxTeamCapacity)
	}
	switch t.Status {
	case StatusRegistration, StatusActive, StatusCompleted:
	default:
		return fmt.Errorf("invalid tournament status: %s", t.Status)
	}

	return nil
}
