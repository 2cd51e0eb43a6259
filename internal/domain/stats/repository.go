package stats

import "context"

// LeaderboardEntry pairs a player id with the aggregate the board ranks by.
type LeaderboardEntry struct {
	PlayerID   string
	PlayerName string
	TeamID     string
	Value      int
}

type Repository interface {
	// GetOrCreateByPlayer lazily creates the zero-valued career row on first
	// access. Idempotent; an explicit write path, not a read side effect.
	GetOrCreateByPlayer(ctx context.Context, playerID string) (PlayerStats, error)
	UpdateCareer(ctx context.Context, s PlayerStats) error

	GetPerformance(ctx context.Context, playerID, matchID string) (Performance, bool, error)
	UpsertPerformance(ctx context.Context, p Performance) error
	// ListPerformancesByMatch returns every performance row of the match.
	ListPerformancesByMatch(ctx context.Context, matchID string) ([]Performance, error)
	// ListRecentByPlayer returns at most limit rows, newest first.
	ListRecentByPlayer(ctx context.Context, playerID string, limit int) ([]Performance, error)

	// ReplaceSelection atomically clears the selection rows of every listed
	// team player for the match, then upserts the given rows. Full-replace
	// semantics for squad selection.
	ReplaceSelection(ctx context.Context, matchID string, teamPlayerIDs []string, rows []Performance) error

	TopScorers(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	TopAssists(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	MostCarded(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
