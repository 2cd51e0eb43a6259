package httpapi

import (
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/standings"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/domain/team"
	"github.com/pitchside/matchday/internal/domain/tournament"
	"github.com/pitchside/matchday/internal/domain/user"
	"github.com/pitchside/matchday/internal/usecase"
)

type createTournamentRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"omitempty"`
	MaxTeams    int    `json:"max_teams" validate:"omitempty,min=4,max=32"`
}

type registerTeamRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=80"`
	City        string `json:"city" validate:"omitempty,max=80"`
	FoundedYear *int   `json:"founded_year" validate:"omitempty,min=1800,max=2025"`
	CoachID     string `json:"coach_id" validate:"omitempty"`
}

type createPlayerRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=80"`
	Position     string `json:"position" validate:"required,oneof=goalkeeper defender midfielder forward"`
	JerseyNumber int    `json:"jersey_number" validate:"required,min=1,max=99"`
	Age          *int   `json:"age" validate:"omitempty,min=16,max=45"`
	Nationality  string `json:"nationality" validate:"omitempty,max=50"`
}

type recordGoalRequest struct {
	Side     string `json:"side" validate:"required,oneof=home away"`
	ScorerID string `json:"scorer_id" validate:"omitempty"`
	AssistID string `json:"assist_id" validate:"omitempty"`
}

type recordCardRequest struct {
	Side     string `json:"side" validate:"required,oneof=home away"`
	PlayerID string `json:"player_id" validate:"omitempty"`
	Color    string `json:"color" validate:"required,oneof=yellow red"`
}

type setFinalScoreRequest struct {
	HomeScore *int `json:"home_score" validate:"required,min=0,max=20"`
	AwayScore *int `json:"away_score" validate:"required,min=0,max=20"`
}

type selectSquadRequest struct {
	TeamID    string   `json:"team_id" validate:"required"`
	PlayerIDs []string `json:"player_ids" validate:"required,min=1,dive,required"`
}

type createUserRequest struct {
	Username    string `json:"username" validate:"required,min=4,max=80"`
	Email       string `json:"email" validate:"required,email,max=120"`
	FirstName   string `json:"first_name" validate:"omitempty,max=80"`
	LastName    string `json:"last_name" validate:"omitempty,max=80"`
	Role        string `json:"role" validate:"omitempty,oneof=admin coach referee user"`
	TeamID      string `json:"team_id" validate:"omitempty"`
	Nationality string `json:"nationality" validate:"omitempty,max=50"`
}

type tournamentDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	MaxTeams    int    `json:"maxTeams"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

type teamDTO struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	Name         string `json:"name"`
	City         string `json:"city,omitempty"`
	FoundedYear  *int   `json:"foundedYear,omitempty"`
	CoachID      string `json:"coachId,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

type playerDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"teamId"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	Age          *int   `json:"age,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	IsAvailable  bool   `json:"isAvailable"`
	CreatedAt    string `json:"createdAt"`
}

type matchDTO struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	HomeTeamID   string `json:"homeTeamId"`
	AwayTeamID   string `json:"awayTeamId"`
	ScheduledAt  string `json:"scheduledAt"`
	Venue        string `json:"venue,omitempty"`
	RoundNumber  int    `json:"roundNumber"`
	Status       string `json:"status"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
}

type matchEventDTO struct {
	ID          string `json:"id"`
	MatchID     string `json:"matchId"`
	Minute      int    `json:"minute"`
	Type        string `json:"type"`
	TeamID      string `json:"teamId,omitempty"`
	PlayerID    string `json:"playerId,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type matchStatsDTO struct {
	MatchID           string `json:"matchId"`
	HomePossession    int    `json:"homePossession"`
	AwayPossession    int    `json:"awayPossession"`
	HomeShots         int    `json:"homeShots"`
	AwayShots         int    `json:"awayShots"`
	HomeShotsOnTarget int    `json:"homeShotsOnTarget"`
	AwayShotsOnTarget int    `json:"awayShotsOnTarget"`
	HomeCorners       int    `json:"homeCorners"`
	AwayCorners       int    `json:"awayCorners"`
	HomeFouls         int    `json:"homeFouls"`
	AwayFouls         int    `json:"awayFouls"`
	HomeYellowCards   int    `json:"homeYellowCards"`
	AwayYellowCards   int    `json:"awayYellowCards"`
	HomeRedCards      int    `json:"homeRedCards"`
	AwayRedCards      int    `json:"awayRedCards"`
}

type matchSnapshotDTO struct {
	Match      matchDTO        `json:"match"`
	Events     []matchEventDTO `json:"events"`
	Statistics matchStatsDTO   `json:"statistics"`
}

type teamDetailDTO struct {
	teamDTO
	Record *standingsRowDTO `json:"record,omitempty"`
}

type standingsRowDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type careerStatsDTO struct {
	PlayerID         string  `json:"playerId"`
	Goals            int     `json:"goals"`
	Assists          int     `json:"assists"`
	YellowCards      int     `json:"yellowCards"`
	RedCards         int     `json:"redCards"`
	MatchesPlayed    int     `json:"matchesPlayed"`
	MinutesPlayed    int     `json:"minutesPlayed"`
	Shots            int     `json:"shots"`
	ShotsOnTarget    int     `json:"shotsOnTarget"`
	ShootingAccuracy float64 `json:"shootingAccuracy"`
	GoalsPerMatch    float64 `json:"goalsPerMatch"`
	AssistsPerMatch  float64 `json:"assistsPerMatch"`
	CleanSheets      int     `json:"cleanSheets"`
	Saves            int     `json:"saves"`
}

type performanceDTO struct {
	PlayerID      string  `json:"playerId"`
	MatchID       string  `json:"matchId"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	YellowCards   int     `json:"yellowCards"`
	RedCards      int     `json:"redCards"`
	MinutesPlayed int     `json:"minutesPlayed"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shotsOnTarget"`
	PassAccuracy  float64 `json:"passAccuracy"`
	Rating        float64 `json:"rating"`
	IsSelected    bool    `json:"isSelected"`
	IsPlaying     bool    `json:"isPlaying"`
}

type leaderboardEntryDTO struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamID     string `json:"teamId"`
	Value      int    `json:"value"`
}

type leaderboardDTO struct {
	TopScorers []leaderboardEntryDTO `json:"topScorers"`
	TopAssists []leaderboardEntryDTO `json:"topAssists"`
	MostCarded []leaderboardEntryDTO `json:"mostCarded"`
}

type userDTO struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Role        string `json:"role"`
	TeamID      string `json:"teamId,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	dto := tournamentDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   formatTime(t.StartDate),
		MaxTeams:    t.MaxTeams,
		Status:      t.Status,
		CreatedAt:   formatTime(t.CreatedAt),
	}
	if t.EndDate != nil {
		dto.EndDate = formatTime(*t.EndDate)
	}

	return dto
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:           t.ID,
		TournamentID: t.TournamentID,
		Name:         t.Name,
		City:         t.City,
		FoundedYear:  t.FoundedYear,
		CoachID:      t.CoachID,
		CreatedAt:    formatTime(t.CreatedAt),
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:           p.ID,
		TeamID:       p.TeamID,
		Name:         p.Name,
		Position:     string(p.Position),
		JerseyNumber: p.JerseyNumber,
		Age:          p.Age,
		Nationality:  p.Nationality,
		IsAvailable:  p.IsAvailable,
		CreatedAt:    formatTime(p.CreatedAt),
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		ScheduledAt:  formatTime(m.ScheduledAt),
		Venue:        m.Venue,
		RoundNumber:  m.RoundNumber,
		Status:       m.Status,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
	}
}

func matchEventToDTO(ev match.Event) matchEventDTO {
	return matchEventDTO{
		ID:          ev.ID,
		MatchID:     ev.MatchID,
		Minute:      ev.Minute,
		Type:        ev.Type,
		TeamID:      ev.TeamID,
		PlayerID:    ev.PlayerID,
		Description: ev.Description,
		CreatedAt:   formatTime(ev.CreatedAt),
	}
}

func matchStatsToDTO(st match.Stats) matchStatsDTO {
	return matchStatsDTO{
		MatchID:           st.MatchID,
		HomePossession:    st.HomePossession,
		AwayPossession:    st.AwayPossession,
		HomeShots:         st.HomeShots,
		AwayShots:         st.AwayShots,
		HomeShotsOnTarget: st.HomeShotsOnTarget,
		AwayShotsOnTarget: st.AwayShotsOnTarget,
		HomeCorners:       st.HomeCorners,
		AwayCorners:       st.AwayCorners,
		HomeFouls:         st.HomeFouls,
		AwayFouls:         st.AwayFouls,
		HomeYellowCards:   st.HomeYellowCards,
		AwayYellowCards:   st.AwayYellowCards,
		HomeRedCards:      st.HomeRedCards,
		AwayRedCards:      st.AwayRedCards,
	}
}

func snapshotToDTO(s usecase.Snapshot) matchSnapshotDTO {
	events := make([]matchEventDTO, 0, len(s.Events))
	for _, ev := range s.Events {
		events = append(events, matchEventToDTO(ev))
	}

	return matchSnapshotDTO{
		Match:      matchToDTO(s.Match),
		Events:     events,
		Statistics: matchStatsToDTO(s.Stats),
	}
}

func standingsRowToDTO(row standings.Row) standingsRowDTO {
	return standingsRowDTO{
		Position:       row.Position,
		TeamID:         row.TeamID,
		TeamName:       row.TeamName,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
	}
}

func careerStatsToDTO(s stats.PlayerStats) careerStatsDTO {
	return careerStatsDTO{
		PlayerID:         s.PlayerID,
		Goals:            s.Goals,
		Assists:          s.Assists,
		YellowCards:      s.YellowCards,
		RedCards:         s.RedCards,
		MatchesPlayed:    s.MatchesPlayed,
		MinutesPlayed:    s.MinutesPlayed,
		Shots:            s.Shots,
		ShotsOnTarget:    s.ShotsOnTarget,
		ShootingAccuracy: s.ShootingAccuracy(),
		GoalsPerMatch:    s.GoalsPerMatch(),
		AssistsPerMatch:  s.AssistsPerMatch(),
		CleanSheets:      s.CleanSheets,
		Saves:            s.Saves,
	}
}

func performanceToDTO(p stats.Performance) performanceDTO {
	return performanceDTO{
		PlayerID:      p.PlayerID,
		MatchID:       p.MatchID,
		Goals:         p.Goals,
		Assists:       p.Assists,
		YellowCards:   p.YellowCards,
		RedCards:      p.RedCards,
		MinutesPlayed: p.MinutesPlayed,
		Shots:         p.Shots,
		ShotsOnTarget: p.ShotsOnTarget,
		PassAccuracy:  p.PassAccuracy(),
		Rating:        p.Rating,
		IsSelected:    p.IsSelected,
		IsPlaying:     p.IsPlaying,
	}
}

func leaderboardEntriesToDTO(entries []stats.LeaderboardEntry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, leaderboardEntryDTO{
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			TeamID:     e.TeamID,
			Value:      e.Value,
		})
	}

	return out
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        string(u.Role),
		TeamID:      u.TeamID,
		Nationality: u.Nationality,
		CreatedAt:   formatTime(u.CreatedAt),
	}
}
