package memory

import (
	"context"
	"time"

	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/team"
	"github.com/pitchside/matchday/internal/domain/tournament"
	"github.com/pitchside/matchday/internal/domain/user"
)

// Seed identifiers, stable so local runs and tests can refer to them.
const (
	TournamentIDSundayCup = "sunday-cup-2026"

	TeamIDNorthend  = "northend-fc"
	TeamIDRiverside = "riverside-united"
	TeamIDOldPort   = "old-port-athletic"
	TeamIDHillcrest = "hillcrest-rovers"

	UserIDAdmin   = "seed-admin"
	UserIDCoach   = "seed-coach-northend"
	UserIDReferee = "seed-referee"
)

func seedTime(day int) time.Time {
	return time.Date(2026, time.March, day, 10, 0, 0, 0, time.UTC)
}

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:          TournamentIDSundayCup,
			Name:        "Sunday Cup 2026",
			Description: "Amateur round-robin cup",
			StartDate:   time.Date(2026, time.April, 5, 14, 0, 0, 0, time.UTC),
			MaxTeams:    tournament.DefaultTeamCapacity,
			Status:      tournament.StatusRegistration,
			CreatedAt:   seedTime(1),
		},
	}
}

func SeedTeams() []team.Team {
	founded := func(year int) *int { return &year }

	return []team.Team{
		{ID: TeamIDNorthend, TournamentID: TournamentIDSundayCup, Name: "Northend FC", City: "Northend", FoundedYear: founded(1974), CoachID: UserIDCoach, CreatedAt: seedTime(2)},
		{ID: TeamIDRiverside, TournamentID: TournamentIDSundayCup, Name: "Riverside United", City: "Riverside", FoundedYear: founded(1988), CreatedAt: seedTime(3)},
		{ID: TeamIDOldPort, TournamentID: TournamentIDSundayCup, Name: "Old Port Athletic", City: "Old Port", FoundedYear: founded(1952), CreatedAt: seedTime(4)},
		{ID: TeamIDHillcrest, TournamentID: TournamentIDSundayCup, Name: "Hillcrest Rovers", City: "Hillcrest", FoundedYear: founded(2003), CreatedAt: seedTime(5)},
	}
}

func SeedPlayers() []player.Player {
	age := func(n int) *int { return &n }
	mk := func(id, teamID, name string, pos player.Position, jersey int, years int, nationality string) player.Player {
		return player.Player{
			ID:           id,
			TeamID:       teamID,
			Name:         name,
			Position:     pos,
			JerseyNumber: jersey,
			Age:          age(years),
			Nationality:  nationality,
			IsAvailable:  true,
			CreatedAt:    seedTime(6),
		}
	}

	return []player.Player{
		mk("ne-gk-01", TeamIDNorthend, "Tomas Herring", player.PositionGoalkeeper, 1, 29, "England"),
		mk("ne-df-04", TeamIDNorthend, "Abel Mensah", player.PositionDefender, 4, 26, "Ghana"),
		mk("ne-mf-08", TeamIDNorthend, "Luka Brandt", player.PositionMidfielder, 8, 24, "Germany"),
		mk("ne-fw-09", TeamIDNorthend, "Ciaran Doyle", player.PositionForward, 9, 27, "Ireland"),
		mk("rs-gk-01", TeamIDRiverside, "Mateo Vidal", player.PositionGoalkeeper, 1, 31, "Spain"),
		mk("rs-df-05", TeamIDRiverside, "Owen Pritchard", player.PositionDefender, 5, 23, "Wales"),
		mk("rs-mf-10", TeamIDRiverside, "Sandro Leite", player.PositionMidfielder, 10, 28, "Brazil"),
		mk("rs-fw-11", TeamIDRiverside, "Vasil Petrov", player.PositionForward, 11, 25, "Bulgaria"),
		mk("op-gk-13", TeamIDOldPort, "Jonas Friis", player.PositionGoalkeeper, 13, 33, "Denmark"),
		mk("op-df-02", TeamIDOldPort, "Ethan Caldwell", player.PositionDefender, 2, 22, "Scotland"),
		mk("op-mf-06", TeamIDOldPort, "Amir Haddad", player.PositionMidfielder, 6, 26, "Morocco"),
		mk("op-fw-07", TeamIDOldPort, "Dario Conti", player.PositionForward, 7, 30, "Italy"),
		mk("hc-gk-01", TeamIDHillcrest, "Pieter Vos", player.PositionGoalkeeper, 1, 35, "Netherlands"),
		mk("hc-df-03", TeamIDHillcrest, "Marcus Lindgren", player.PositionDefender, 3, 24, "Sweden"),
		mk("hc-mf-14", TeamIDHillcrest, "Yuto Sakamoto", player.PositionMidfielder, 14, 21, "Japan"),
		mk("hc-fw-19", TeamIDHillcrest, "Felix Aubert", player.PositionForward, 19, 26, "France"),
	}
}

func SeedUsers() []user.User {
	return []user.User{
		{ID: UserIDAdmin, Username: "league.admin", Email: "admin@matchday.local", FirstName: "Dana", LastName: "Okafor", Role: user.RoleAdmin, CreatedAt: seedTime(1)},
		{ID: UserIDCoach, Username: "coach.northend", Email: "coach@northend.local", FirstName: "Pat", LastName: "Herriot", Role: user.RoleCoach, TeamID: TeamIDNorthend, CreatedAt: seedTime(2)},
		{ID: UserIDReferee, Username: "whistle.keeper", Email: "ref@matchday.local", FirstName: "Sol", LastName: "Marchetti", Role: user.RoleReferee, Nationality: "Italy", CreatedAt: seedTime(3)},
	}
}

// NewSeededStore returns a store preloaded with one tournament in
// registration, four teams and a small roster each. Local runs without a
// database start from this.
func NewSeededStore() *Store {
	s := NewStore()
	ctx := context.Background()

	for _, t := range SeedTournaments() {
		_ = s.Tournaments().Create(ctx, t)
	}
	for _, t := range SeedTeams() {
		_ = s.Teams().Create(ctx, t)
	}
	for _, p := range SeedPlayers() {
		_ = s.Players().Create(ctx, p)
	}
	for _, u := range SeedUsers() {
		_ = s.Users().Create(ctx, u)
	}

	return s
}
