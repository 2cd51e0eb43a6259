package match

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Match, bool, error)
	// ListByTournament returns matches ordered by scheduled datetime ascending.
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	// ListCompletedByTournament feeds the standings computation.
	ListCompletedByTournament(ctx context.Context, tournamentID string) ([]Match, error)

	// ReplaceFixtures atomically deletes every existing match of the
	// tournament, inserts the given schedule and marks the tournament active.
	// Either all of it commits or none of it does.
	ReplaceFixtures(ctx context.Context, tournamentID string, matches []Match) error

	// ApplyLiveUpdate commits a match row update together with an optional
	// appended event and an optional statistics upsert in one transaction.
	ApplyLiveUpdate(ctx context.Context, m Match, ev *Event, stats *Stats) error

	// ListEventsByMatch returns at most limit events, most recently created
	// first.
	ListEventsByMatch(ctx context.Context, matchID string, limit int) ([]Event, error)
	CountEventsByType(ctx context.Context, matchID, eventType string) (int, error)

	// GetOrCreateStats lazily creates the statistics row (50/50 possession,
	// zero counters) on first access. Idempotent.
	GetOrCreateStats(ctx context.Context, matchID string) (Stats, error)
}
