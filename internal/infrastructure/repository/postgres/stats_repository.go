package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pitchside/matchday/internal/domain/stats"
)

const playerStatsColumns = `player_id, goals, assists, yellow_cards, red_cards, matches_played, minutes_played,
    shots, shots_on_target, passes, pass_accuracy, tackles, interceptions, clean_sheets, saves, updated_at`

const performanceColumns = `player_id, match_id, goals, assists, yellow_cards, red_cards, minutes_played,
    shots, shots_on_target, passes, passes_completed, tackles, interceptions, saves, rating,
    is_selected, is_playing, created_at`

const upsertPerformanceQuery = `
INSERT INTO player_performances (player_id, match_id, goals, assists, yellow_cards, red_cards, minutes_played,
    shots, shots_on_target, passes, passes_completed, tackles, interceptions, saves, rating,
    is_selected, is_playing, created_at)
VALUES (:player_id, :match_id, :goals, :assists, :yellow_cards, :red_cards, :minutes_played,
    :shots, :shots_on_target, :passes, :passes_completed, :tackles, :interceptions, :saves, :rating,
    :is_selected, :is_playing, :created_at)
ON CONFLICT (player_id, match_id) DO UPDATE SET
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    minutes_played = EXCLUDED.minutes_played,
    shots = EXCLUDED.shots,
    shots_on_target = EXCLUDED.shots_on_target,
    passes = EXCLUDED.passes,
    passes_completed = EXCLUDED.passes_completed,
    tackles = EXCLUDED.tackles,
    interceptions = EXCLUDED.interceptions,
    saves = EXCLUDED.saves,
    rating = EXCLUDED.rating,
    is_selected = EXCLUDED.is_selected,
    is_playing = EXCLUDED.is_playing`

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) GetOrCreateByPlayer(ctx context.Context, playerID string) (stats.PlayerStats, error) {
	const insertQuery = `
INSERT INTO player_stats (player_id)
VALUES ($1)
ON CONFLICT (player_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, insertQuery, playerID); err != nil {
		return stats.PlayerStats{}, fmt.Errorf("insert player stats baseline: %w", err)
	}

	selectQuery := `SELECT ` + playerStatsColumns + ` FROM player_stats WHERE player_id = $1`

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, selectQuery, playerID); err != nil {
		return stats.PlayerStats{}, fmt.Errorf("get player stats: %w", err)
	}

	return row.toDomain(), nil
}

func (r *StatsRepository) UpdateCareer(ctx context.Context, s stats.PlayerStats) error {
	const query = `
UPDATE player_stats
SET goals = :goals,
    assists = :assists,
    yellow_cards = :yellow_cards,
    red_cards = :red_cards,
    matches_played = :matches_played,
    minutes_played = :minutes_played,
    shots = :shots,
    shots_on_target = :shots_on_target,
    passes = :passes,
    pass_accuracy = :pass_accuracy,
    tackles = :tackles,
    interceptions = :interceptions,
    clean_sheets = :clean_sheets,
    saves = :saves,
    updated_at = :updated_at
WHERE player_id = :player_id`

	args := map[string]any{
		"player_id":       s.PlayerID,
		"goals":           s.Goals,
		"assists":         s.Assists,
		"yellow_cards":    s.YellowCards,
		"red_cards":       s.RedCards,
		"matches_played":  s.MatchesPlayed,
		"minutes_played":  s.MinutesPlayed,
		"shots":           s.Shots,
		"shots_on_target": s.ShotsOnTarget,
		"passes":          s.Passes,
		"pass_accuracy":   s.PassAccuracy,
		"tackles":         s.Tackles,
		"interceptions":   s.Interceptions,
		"clean_sheets":    s.CleanSheets,
		"saves":           s.Saves,
		"updated_at":      s.UpdatedAt,
	}
	if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("update player stats: %w", err)
	}

	return nil
}

func (r *StatsRepository) GetPerformance(ctx context.Context, playerID, matchID string) (stats.Performance, bool, error) {
	query := `SELECT ` + performanceColumns + ` FROM player_performances WHERE player_id = $1 AND match_id = $2`

	var row performanceTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID, matchID); err != nil {
		if isNotFound(err) {
			return stats.Performance{}, false, nil
		}
		return stats.Performance{}, false, fmt.Errorf("get performance: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *StatsRepository) UpsertPerformance(ctx context.Context, p stats.Performance) error {
	if _, err := r.db.NamedExecContext(ctx, upsertPerformanceQuery, performanceToArgs(p)); err != nil {
		return fmt.Errorf("upsert performance: %w", err)
	}

	return nil
}

func (r *StatsRepository) ListPerformancesByMatch(ctx context.Context, matchID string) ([]stats.Performance, error) {
	query := `SELECT ` + performanceColumns + ` FROM player_performances WHERE match_id = $1 ORDER BY player_id`

	return r.selectPerformances(ctx, query, matchID)
}

func (r *StatsRepository) ListRecentByPlayer(ctx context.Context, playerID string, limit int) ([]stats.Performance, error) {
	query := `SELECT ` + performanceColumns + ` FROM player_performances WHERE player_id = $1 ORDER BY created_at DESC, match_id LIMIT $2`

	return r.selectPerformances(ctx, query, playerID, limit)
}

func (r *StatsRepository) selectPerformances(ctx context.Context, query string, args ...any) ([]stats.Performance, error) {
	var rows []performanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select performances: %w", err)
	}

	out := make([]stats.Performance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *StatsRepository) ReplaceSelection(ctx context.Context, matchID string, teamPlayerIDs []string, rows []stats.Performance) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for selection replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const deleteQuery = `DELETE FROM player_performances WHERE match_id = $1 AND player_id = ANY($2)`

	if _, err := tx.ExecContext(ctx, deleteQuery, matchID, pq.Array(teamPlayerIDs)); err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	for _, p := range rows {
		if _, err := tx.NamedExecContext(ctx, upsertPerformanceQuery, performanceToArgs(p)); err != nil {
			return fmt.Errorf("insert selection row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit selection replace: %w", err)
	}

	return nil
}

func (r *StatsRepository) TopScorers(ctx context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	return r.leaderboard(ctx, `s.goals`, limit)
}

func (r *StatsRepository) TopAssists(ctx context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	return r.leaderboard(ctx, `s.assists`, limit)
}

func (r *StatsRepository) MostCarded(ctx context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	return r.leaderboard(ctx, `s.yellow_cards + s.red_cards`, limit)
}

func (r *StatsRepository) leaderboard(ctx context.Context, valueExpr string, limit int) ([]stats.LeaderboardEntry, error) {
	query := `
SELECT s.player_id, p.name AS player_name, p.team_id, ` + valueExpr + ` AS value
FROM player_stats s
JOIN players p ON p.id = s.player_id
WHERE ` + valueExpr + ` > 0
ORDER BY value DESC, p.name
LIMIT $1`

	var rows []struct {
		PlayerID   string `db:"player_id"`
		PlayerName string `db:"player_name"`
		TeamID     string `db:"team_id"`
		Value      int    `db:"value"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("select leaderboard: %w", err)
	}

	out := make([]stats.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.LeaderboardEntry{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			TeamID:     row.TeamID,
			Value:      row.Value,
		})
	}

	return out, nil
}
