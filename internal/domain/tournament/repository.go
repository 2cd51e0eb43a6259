package tournament

import "context"

type Repository interface {
	Create(ctx context.Context, t Tournament) error
	GetByID(ctx context.Context, id string) (Tournament, bool, error)
	// List returns tournaments ordered by creation time descending.
	List(ctx context.Context) ([]Tournament, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// Delete removes the tournament and cascades to its teams, players,
	// matches, events and statistics.
	Delete(ctx context.Context, id string) error
}
