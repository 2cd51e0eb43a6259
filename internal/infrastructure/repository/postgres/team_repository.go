package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/matchday/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	const query = `
INSERT INTO teams (id, tournament_id, name, city, founded_year, coach_id, created_at)
VALUES (:id, :tournament_id, :name, :city, :founded_year, :coach_id, :created_at)`

	args := map[string]any{
		"id":            t.ID,
		"tournament_id": t.TournamentID,
		"name":          t.Name,
		"city":          t.City,
		"founded_year":  t.FoundedYear,
		"coach_id":      t.CoachID,
		"created_at":    t.CreatedAt,
	}
	if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	const query = `
SELECT id, tournament_id, name, city, founded_year, coach_id, created_at
FROM teams
WHERE id = $1`

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	const query = `
SELECT id, tournament_id, name, city, founded_year, coach_id, created_at
FROM teams
WHERE tournament_id = $1
ORDER BY created_at, name`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) CountByTournament(ctx context.Context, tournamentID string) (int, error) {
	const query = `SELECT COUNT(*) FROM teams WHERE tournament_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, tournamentID); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}

	return count, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM teams WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}
