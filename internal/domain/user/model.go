package user

import (
	"fmt"
	"time"
)

// Role is a flat tag replacing the original single-table inheritance:
// behavior differences are expressed through capability checks, not subtypes.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCoach   Role = "coach"
	RoleReferee Role = "referee"
	RolePlain   Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RoleReferee, RolePlain:
		return true
	default:
		return false
	}
}

// User is one account. TeamID is the coach payload, Nationality the referee
// payload; both stay empty for other roles.
type User struct {
	ID          string
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Role        Role
	TeamID      string
	Nationality string
	CreatedAt   time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if len(u.Username) < 4 || len(u.Username) > 80 {
		return fmt.Errorf("username must be 4-80 characters")
	}
	if u.Email == "" || len(u.Email) > 120 {
		return fmt.Errorf("user email is required and cannot exceed 120 characters")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("invalid user role: %s", u.Role)
	}

	return nil
}

func (u User) CanManageTournaments() bool {
	return u.Role == RoleAdmin
}

func (u User) CanManageTeam(teamID string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.Role == RoleCoach && u.TeamID != "" && u.TeamID == teamID
}

func (u User) CanOfficiate() bool {
	return u.Role == RoleAdmin || u.Role == RoleReferee
}

// Principal is the authenticated identity attached to a request by the
// token verifier.
type Principal struct {
	UserID string
	Role   Role
	TeamID string
}

func (p Principal) CanManageTournaments() bool {
	return p.Role == RoleAdmin
}

func (p Principal) CanManageTeam(teamID string) bool {
	if p.Role == RoleAdmin {
		return true
	}
	return p.Role == RoleCoach && p.TeamID != "" && p.TeamID == teamID
}

func (p Principal) CanOfficiate() bool {
	return p.Role == RoleAdmin || p.Role == RoleReferee
}
