package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/tournament"
)

const matchColumns = `id, tournament_id, home_team_id, away_team_id, scheduled_at, venue, round_number, status, home_score, away_score, created_at`

const insertMatchQuery = `
INSERT INTO matches (id, tournament_id, home_team_id, away_team_id, scheduled_at, venue, round_number, status, home_score, away_score, created_at)
VALUES (:id, :tournament_id, :home_team_id, :away_team_id, :scheduled_at, :venue, :round_number, :status, :home_score, :away_score, :created_at)`

const upsertMatchStatsQuery = `
INSERT INTO match_stats (match_id, home_possession, away_possession, home_shots, away_shots,
    home_shots_on_target, away_shots_on_target, home_corners, away_corners, home_fouls, away_fouls,
    home_yellow_cards, away_yellow_cards, home_red_cards, away_red_cards, updated_at)
VALUES (:match_id, :home_possession, :away_possession, :home_shots, :away_shots,
    :home_shots_on_target, :away_shots_on_target, :home_corners, :away_corners, :home_fouls, :away_fouls,
    :home_yellow_cards, :away_yellow_cards, :home_red_cards, :away_red_cards, :updated_at)
ON CONFLICT (match_id) DO UPDATE SET
    home_possession = EXCLUDED.home_possession,
    away_possession = EXCLUDED.away_possession,
    home_shots = EXCLUDED.home_shots,
    away_shots = EXCLUDED.away_shots,
    home_shots_on_target = EXCLUDED.home_shots_on_target,
    away_shots_on_target = EXCLUDED.away_shots_on_target,
    home_corners = EXCLUDED.home_corners,
    away_corners = EXCLUDED.away_corners,
    home_fouls = EXCLUDED.home_fouls,
    away_fouls = EXCLUDED.away_fouls,
    home_yellow_cards = EXCLUDED.home_yellow_cards,
    away_yellow_cards = EXCLUDED.away_yellow_cards,
    home_red_cards = EXCLUDED.home_red_cards,
    away_red_cards = EXCLUDED.away_red_cards,
    updated_at = EXCLUDED.updated_at`

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1 ORDER BY scheduled_at, id`

	return r.selectMatches(ctx, query, tournamentID)
}

func (r *MatchRepository) ListCompletedByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1 AND status = $2 ORDER BY scheduled_at, id`

	return r.selectMatches(ctx, query, tournamentID, match.StatusCompleted)
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args ...any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) ReplaceFixtures(ctx context.Context, tournamentID string, matches []match.Match) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for fixture replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("delete old fixtures: %w", err)
	}
	for _, m := range matches {
		if _, err := tx.NamedExecContext(ctx, insertMatchQuery, matchToArgs(m)); err != nil {
			return fmt.Errorf("insert fixture: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, `UPDATE tournaments SET status = $1 WHERE id = $2`, tournament.StatusActive, tournamentID); err != nil {
		return fmt.Errorf("activate tournament: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit fixture replace: %w", err)
	}

	return nil
}

func (r *MatchRepository) ApplyLiveUpdate(ctx context.Context, m match.Match, ev *match.Event, stats *match.Stats) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for live update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const updateMatchQuery = `
UPDATE matches
SET status = :status, home_score = :home_score, away_score = :away_score
WHERE id = :id`

	if _, err := tx.NamedExecContext(ctx, updateMatchQuery, matchToArgs(m)); err != nil {
		return fmt.Errorf("update match: %w", err)
	}

	if ev != nil {
		const insertEventQuery = `
INSERT INTO match_events (id, match_id, minute, type, team_id, player_id, description, created_at)
VALUES (:id, :match_id, :minute, :type, :team_id, :player_id, :description, :created_at)`

		args := map[string]any{
			"id":          ev.ID,
			"match_id":    ev.MatchID,
			"minute":      ev.Minute,
			"type":        ev.Type,
			"team_id":     ev.TeamID,
			"player_id":   ev.PlayerID,
			"description": ev.Description,
			"created_at":  ev.CreatedAt,
		}
		if _, err := tx.NamedExecContext(ctx, insertEventQuery, args); err != nil {
			return fmt.Errorf("insert match event: %w", err)
		}
	}

	if stats != nil {
		if _, err := tx.NamedExecContext(ctx, upsertMatchStatsQuery, statsToArgs(*stats)); err != nil {
			return fmt.Errorf("upsert match stats: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit live update: %w", err)
	}

	return nil
}

func (r *MatchRepository) ListEventsByMatch(ctx context.Context, matchID string, limit int) ([]match.Event, error) {
	const query = `
SELECT id, match_id, minute, type, team_id, player_id, description, created_at
FROM match_events
WHERE match_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, matchID, limit); err != nil {
		return nil, fmt.Errorf("select match events: %w", err)
	}

	out := make([]match.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) CountEventsByType(ctx context.Context, matchID, eventType string) (int, error) {
	const query = `SELECT COUNT(*) FROM match_events WHERE match_id = $1 AND type = $2`

	var count int
	if err := r.db.GetContext(ctx, &count, query, matchID, eventType); err != nil {
		return 0, fmt.Errorf("count match events: %w", err)
	}

	return count, nil
}

func (r *MatchRepository) GetOrCreateStats(ctx context.Context, matchID string) (match.Stats, error) {
	baseline := match.NewStats(matchID)

	const insertQuery = `
INSERT INTO match_stats (match_id, home_possession, away_possession)
VALUES ($1, $2, $3)
ON CONFLICT (match_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, insertQuery, baseline.MatchID, baseline.HomePossession, baseline.AwayPossession); err != nil {
		return match.Stats{}, fmt.Errorf("insert match stats baseline: %w", err)
	}

	const selectQuery = `
SELECT match_id, home_possession, away_possession, home_shots, away_shots,
    home_shots_on_target, away_shots_on_target, home_corners, away_corners, home_fouls, away_fouls,
    home_yellow_cards, away_yellow_cards, home_red_cards, away_red_cards, updated_at
FROM match_stats
WHERE match_id = $1`

	var row matchStatsTableModel
	if err := r.db.GetContext(ctx, &row, selectQuery, matchID); err != nil {
		return match.Stats{}, fmt.Errorf("get match stats: %w", err)
	}

	return row.toDomain(), nil
}
