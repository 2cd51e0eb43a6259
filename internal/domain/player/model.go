package player

import (
	"fmt"
	"time"
)

// Position categorizes where a player lines up.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

const (
	MinJerseyNumber = 1
	MaxJerseyNumber = 99
)

// Player belongs to exactly one team. JerseyNumber is unique within the team.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	Position     Position
	JerseyNumber int
	Age          *int
	Nationality  string
	IsAvailable  bool
	CreatedAt    time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if len(p.Name) < 2 || len(p.Name) > 80 {
		return fmt.Errorf("player name must be 2-80 characters")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.JerseyNumber < MinJerseyNumber || p.JerseyNumber > MaxJerseyNumber {
		return fmt.Errorf("jersey number must be between %d and %d", MinJerseyNumber, MaxJerseyNumber)
	}
	if p.Age != nil && (*p.Age < 16 || *p.Age > 45) {
		return fmt.Errorf("player age must be between 16 and 45")
	}
	if len(p.Nationality) > 50 {
		return fmt.Errorf("player nationality cannot exceed 50 characters")
	}

	return nil
}
