package stats

import (
	"math"
	"time"
)

// PlayerStats is the career aggregate of one player, updated as matches
// complete. Derived ratios are computed on read, never stored.
type PlayerStats struct {
	PlayerID       string
	Goals          int
	Assists        int
	YellowCards    int
	RedCards       int
	MatchesPlayed  int
	MinutesPlayed  int
	Shots          int
	ShotsOnTarget  int
	Passes         int
	PassAccuracy   float64
	Tackles        int
	Interceptions  int
	CleanSheets    int
	Saves          int
	UpdatedAt      time.Time
}

// ShootingAccuracy is shots-on-target over shots as a percentage, 0 when the
// player has not taken a shot.
func (s PlayerStats) ShootingAccuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return round1(float64(s.ShotsOnTarget) / float64(s.Shots) * 100)
}

// GoalsPerMatch is 0 when no matches were played.
func (s PlayerStats) GoalsPerMatch() float64 {
	if s.MatchesPlayed == 0 {
		return 0
	}
	return round2(float64(s.Goals) / float64(s.MatchesPlayed))
}

// AssistsPerMatch is 0 when no matches were played.
func (s PlayerStats) AssistsPerMatch() float64 {
	if s.MatchesPlayed == 0 {
		return 0
	}
	return round2(float64(s.Assists) / float64(s.MatchesPlayed))
}

// Performance is one player's record for one match, unique per
// (player, match). Selection rows are created by squad selection and filled
// in by the live engine.
type Performance struct {
	PlayerID         string
	MatchID          string
	Goals            int
	Assists          int
	YellowCards      int
	RedCards         int
	MinutesPlayed    int
	Shots            int
	ShotsOnTarget    int
	Passes           int
	PassesCompleted  int
	Tackles          int
	Interceptions    int
	Saves            int
	Rating           float64
	IsSelected       bool
	IsPlaying        bool
	CreatedAt        time.Time
}

// PassAccuracy is completed passes over attempted as a percentage, 0 when no
// passes were attempted.
func (p Performance) PassAccuracy() float64 {
	if p.Passes == 0 {
		return 0
	}
	return round1(float64(p.PassesCompleted) / float64(p.Passes) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
