// Package standings holds the derived league-table row. Rows are computed on
// demand from completed matches and never persisted, so there is no
// repository here.
package standings

// Row is one team's aggregated competitive record within a tournament.
type Row struct {
	TeamID         string
	TeamName       string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Position       int
}
