package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pitchside/matchday/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	const query = `
INSERT INTO players (id, team_id, name, position, jersey_number, age, nationality, is_available, created_at)
VALUES (:id, :team_id, :name, :position, :jersey_number, :age, :nationality, :is_available, :created_at)`

	args := map[string]any{
		"id":            p.ID,
		"team_id":       p.TeamID,
		"name":          p.Name,
		"position":      string(p.Position),
		"jersey_number": p.JerseyNumber,
		"age":           p.Age,
		"nationality":   p.Nationality,
		"is_available":  p.IsAvailable,
		"created_at":    p.CreatedAt,
	}
	if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	const query = `
SELECT id, team_id, name, position, jersey_number, age, nationality, is_available, created_at
FROM players
WHERE id = $1`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	const query = `
SELECT id, team_id, name, position, jersey_number, age, nationality, is_available, created_at
FROM players
WHERE team_id = $1
ORDER BY jersey_number`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByTeamAndJersey(ctx context.Context, teamID string, jerseyNumber int) (player.Player, bool, error) {
	const query = `
SELECT id, team_id, name, position, jersey_number, age, nationality, is_available, created_at
FROM players
WHERE team_id = $1
  AND jersey_number = $2`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, teamID, jerseyNumber); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by jersey: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	const query = `UPDATE players SET is_available = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, available, id); err != nil {
		return fmt.Errorf("update player availability: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM players WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}
