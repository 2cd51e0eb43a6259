package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/domain/tournament"
)

func scheduledMatch(id string, day int) match.Match {
	return match.Match{
		ID:           id,
		TournamentID: TournamentIDSundayCup,
		HomeTeamID:   TeamIDNorthend,
		AwayTeamID:   TeamIDRiverside,
		ScheduledAt:  time.Date(2026, time.April, day, 14, 0, 0, 0, time.UTC),
		Venue:        "Northend FC Ground",
		RoundNumber:  1,
		Status:       match.StatusScheduled,
		CreatedAt:    seedTime(10),
	}
}

func TestTournamentRepository_DeleteCascades(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	ctx := t.Context()

	m := scheduledMatch("m-1", 5)
	require.NoError(t, store.Matches().ReplaceFixtures(ctx, TournamentIDSundayCup, []match.Match{m}))
	require.NoError(t, store.Matches().ApplyLiveUpdate(ctx, m, &match.Event{ID: "ev-1", MatchID: "m-1", Type: match.EventKickoff}, nil))
	require.NoError(t, store.Stats().UpsertPerformance(ctx, stats.Performance{PlayerID: "ne-gk-01", MatchID: "m-1", IsSelected: true}))
	require.NoError(t, store.Stats().UpdateCareer(ctx, stats.PlayerStats{PlayerID: "ne-gk-01", Goals: 1}))

	require.NoError(t, store.Tournaments().Delete(ctx, TournamentIDSundayCup))

	_, found, err := store.Tournaments().GetByID(ctx, TournamentIDSundayCup)
	require.NoError(t, err)
	require.False(t, found, "tournament should be gone")

	_, found, err = store.Teams().GetByID(ctx, TeamIDNorthend)
	require.NoError(t, err)
	require.False(t, found, "teams should cascade")

	_, found, err = store.Players().GetByID(ctx, "ne-gk-01")
	require.NoError(t, err)
	require.False(t, found, "players should cascade")

	_, found, err = store.Matches().GetByID(ctx, "m-1")
	require.NoError(t, err)
	require.False(t, found, "matches should cascade")

	events, err := store.Matches().ListEventsByMatch(ctx, "m-1", 0)
	require.NoError(t, err)
	require.Empty(t, events, "events should cascade")

	_, found, err = store.Stats().GetPerformance(ctx, "ne-gk-01", "m-1")
	require.NoError(t, err)
	require.False(t, found, "performances should cascade")

	career, err := store.Stats().GetOrCreateByPlayer(ctx, "ne-gk-01")
	require.NoError(t, err)
	require.Zero(t, career.Goals, "career rows should cascade with the player")
}

func TestTeamRepository_DeleteCascadesPlayers(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	ctx := t.Context()

	require.NoError(t, store.Stats().UpdateCareer(ctx, stats.PlayerStats{PlayerID: "ne-fw-09", Goals: 3}))
	require.NoError(t, store.Teams().Delete(ctx, TeamIDNorthend))

	_, found, err := store.Players().GetByID(ctx, "ne-fw-09")
	require.NoError(t, err)
	require.False(t, found)

	count, err := store.Teams().CountByTournament(ctx, TournamentIDSundayCup)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	career, err := store.Stats().GetOrCreateByPlayer(ctx, "ne-fw-09")
	require.NoError(t, err)
	require.Zero(t, career.Goals)
}

func TestMatchRepository_ReplaceFixtures(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	ctx := t.Context()

	old := scheduledMatch("m-old", 5)
	require.NoError(t, store.Matches().ReplaceFixtures(ctx, TournamentIDSundayCup, []match.Match{old}))
	require.NoError(t, store.Matches().ApplyLiveUpdate(ctx, old, &match.Event{ID: "ev-1", MatchID: "m-old", Type: match.EventKickoff}, &match.Stats{MatchID: "m-old", HomePossession: 60, AwayPossession: 40}))

	replacement := scheduledMatch("m-new", 12)
	require.NoError(t, store.Matches().ReplaceFixtures(ctx, TournamentIDSundayCup, []match.Match{replacement}))

	_, found, err := store.Matches().GetByID(ctx, "m-old")
	require.NoError(t, err)
	require.False(t, found, "old fixtures should be removed")

	events, err := store.Matches().ListEventsByMatch(ctx, "m-old", 0)
	require.NoError(t, err)
	require.Empty(t, events, "old events should be removed with the fixture")

	got, found, err := store.Matches().GetByID(ctx, "m-new")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, match.StatusScheduled, got.Status)

	cup, found, err := store.Tournaments().GetByID(ctx, TournamentIDSundayCup)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, tournament.StatusActive, cup.Status, "generating fixtures activates the tournament")
}

func TestMatchRepository_ListByTournamentOrdersBySchedule(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	ctx := t.Context()

	fixtures := []match.Match{scheduledMatch("m-b", 12), scheduledMatch("m-a", 5), scheduledMatch("m-c", 5)}
	require.NoError(t, store.Matches().ReplaceFixtures(ctx, TournamentIDSundayCup, fixtures))

	got, err := store.Matches().ListByTournament(ctx, TournamentIDSundayCup)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "m-a", got[0].ID, "equal kickoff times break by id")
	require.Equal(t, "m-c", got[1].ID)
	require.Equal(t, "m-b", got[2].ID)
}

func TestMatchRepository_ListEventsNewestFirst(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	ctx := t.Context()

	m := scheduledMatch("m-1", 5)
	require.NoError(t, store.Matches().ReplaceFixtures(ctx, TournamentIDSundayCup, []match.Match{m}))
	for i, evType := range []string{match.EventKickoff, match.EventGoal, match.EventCard, match.EventGoal} {
		ev := match.Event{ID: string(rune('a' + i)), MatchID: "m-1", Minute: i * 10, Type: evType}
		require.NoError(t, store.Matches().ApplyLiveUpdate(ctx, m, &ev, nil))
	}

	all, err := store.Matches().ListEventsByMatch(ctx, "m-1", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "d", all[0].ID, "newest event comes first")
	require.Equal(t, "a", all[3].ID)

	limited, err := store.Matches().ListEventsByMatch(ctx, "m-1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, "d", limited[0].ID)
	require.Equal(t, "c", limited[1].ID)

	goals, err := store.Matches().CountEventsByType(ctx, "m-1", match.EventGoal)
	require.NoError(t, err)
	require.Equal(t, 2, goals)
}

func TestStatsRepository_ReplaceSelectionKeepsOpponentRows(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	ctx := t.Context()

	require.NoError(t, store.Stats().ReplaceSelection(ctx, "m-1", []string{"ne-gk-01", "ne-fw-09"}, []stats.Performance{
		{PlayerID: "ne-gk-01", MatchID: "m-1", IsSelected: true},
		{PlayerID: "ne-fw-09", MatchID: "m-1", IsSelected: true},
	}))
	require.NoError(t, store.Stats().ReplaceSelection(ctx, "m-1", []string{"rs-gk-01"}, []stats.Performance{
		{PlayerID: "rs-gk-01", MatchID: "m-1", IsSelected: true},
	}))

	// Reselecting the home side replaces only home rows.
	require.NoError(t, store.Stats().ReplaceSelection(ctx, "m-1", []string{"ne-gk-01", "ne-fw-09"}, []stats.Performance{
		{PlayerID: "ne-fw-09", MatchID: "m-1", IsSelected: true},
	}))

	rows, err := store.Stats().ListPerformancesByMatch(ctx, "m-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "ne-fw-09", rows[0].PlayerID)
	require.Equal(t, "rs-gk-01", rows[1].PlayerID)
}

func TestStatsRepository_ListRecentByPlayer(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	ctx := t.Context()

	base := time.Date(2026, time.April, 5, 16, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		p := stats.Performance{
			PlayerID:  "ne-fw-09",
			MatchID:   string(rune('a' + i)),
			Goals:     i,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.Stats().UpsertPerformance(ctx, p))
	}

	recent, err := store.Stats().ListRecentByPlayer(ctx, "ne-fw-09", 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	require.Equal(t, "d", recent[0].MatchID, "most recent performance first")
	require.Equal(t, 3, recent[0].Goals)
	require.Equal(t, "b", recent[2].MatchID)
}

func TestStatsRepository_Leaderboards(t *testing.T) {
	t.Parallel()

	store := NewSeededStore()
	ctx := t.Context()

	require.NoError(t, store.Stats().UpdateCareer(ctx, stats.PlayerStats{PlayerID: "ne-fw-09", Goals: 5, Assists: 1}))
	require.NoError(t, store.Stats().UpdateCareer(ctx, stats.PlayerStats{PlayerID: "rs-fw-11", Goals: 5, Assists: 4, YellowCards: 2, RedCards: 1}))
	require.NoError(t, store.Stats().UpdateCareer(ctx, stats.PlayerStats{PlayerID: "op-mf-06", Assists: 2, YellowCards: 5}))

	scorers, err := store.Stats().TopScorers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, scorers, 2, "players with zero goals are skipped")
	// Equal values fall back to name order, Ciaran Doyle before Vasil Petrov.
	require.Equal(t, "ne-fw-09", scorers[0].PlayerID)
	require.Equal(t, "Ciaran Doyle", scorers[0].PlayerName)
	require.Equal(t, TeamIDNorthend, scorers[0].TeamID)
	require.Equal(t, 5, scorers[0].Value)
	require.Equal(t, "rs-fw-11", scorers[1].PlayerID)

	assists, err := store.Stats().TopAssists(ctx, 1)
	require.NoError(t, err)
	require.Len(t, assists, 1, "limit truncates the board")
	require.Equal(t, "rs-fw-11", assists[0].PlayerID)
	require.Equal(t, 4, assists[0].Value)

	carded, err := store.Stats().MostCarded(ctx, 10)
	require.NoError(t, err)
	require.Len(t, carded, 2)
	require.Equal(t, "op-mf-06", carded[0].PlayerID)
	require.Equal(t, 5, carded[0].Value)
	require.Equal(t, "rs-fw-11", carded[1].PlayerID)
	require.Equal(t, 3, carded[1].Value, "yellow and red cards count together")
}
