package team

import "context"

type Repository interface {
	Create(ctx context.Context, t Team) error
	GetByID(ctx context.Context, id string) (Team, bool, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Team, error)
	CountByTournament(ctx context.Context, tournamentID string) (int, error)
	// Delete removes the team and cascades to its players.
	Delete(ctx context.Context, id string) error
}
