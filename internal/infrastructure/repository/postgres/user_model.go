package postgres

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/user"
)

type userTableModel struct {
	ID          string    `db:"id"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Role        string    `db:"role"`
	TeamID      string    `db:"team_id"`
	Nationality string    `db:"nationality"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Role:        user.Role(m.Role),
		TeamID:      m.TeamID,
		Nationality: m.Nationality,
		CreatedAt:   m.CreatedAt,
	}
}
