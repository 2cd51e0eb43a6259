package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/matchday/internal/domain/tournament"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) Create(ctx context.Context, t tournament.Tournament) error {
	const query = `
INSERT INTO tournaments (id, name, description, start_date, end_date, max_teams, status, created_at)
VALUES (:id, :name, :description, :start_date, :end_date, :max_teams, :status, :created_at)`

	args := map[string]any{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"start_date":  t.StartDate,
		"end_date":    t.EndDate,
		"max_teams":   t.MaxTeams,
		"status":      t.Status,
		"created_at":  t.CreatedAt,
	}
	if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}

	return nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, id string) (tournament.Tournament, bool, error) {
	const query = `
SELECT id, name, description, start_date, end_date, max_teams, status, created_at
FROM tournaments
WHERE id = $1`

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	const query = `
SELECT id, name, description, start_date, end_date, max_teams, status, created_at
FROM tournaments
ORDER BY created_at DESC, id`

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TournamentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	const query = `UPDATE tournaments SET status = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("update tournament status: %w", err)
	}

	return nil
}

// Delete relies on ON DELETE CASCADE to drop teams, players, matches,
// events and statistics with the tournament.
func (r *TournamentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tournaments WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}

	return nil
}
