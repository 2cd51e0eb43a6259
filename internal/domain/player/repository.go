package player

import "context"

type Repository interface {
	Create(ctx context.Context, p Player) error
	GetByID(ctx context.Context, id string) (Player, bool, error)
	// ListByTeam returns players ordered by jersey number ascending.
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByTeamAndJersey(ctx context.Context, teamID string, jerseyNumber int) (Player, bool, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
}
