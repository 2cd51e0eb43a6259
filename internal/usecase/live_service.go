package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/domain/team"
	idgen "github.com/pitchside/matchday/internal/platform/id"
	"github.com/pitchside/matchday/internal/platform/logging"
	"github.com/pitchside/matchday/internal/platform/simrand"
)

const recentEventsLimit = 10

// Snapshot is a consistent point-in-time read of a live match for polling
// clients.
type Snapshot struct {
	Match  match.Match
	Events []match.Event
	Stats  match.Stats
}

// RecordGoalInput identifies the scoring side and, optionally, who scored
// and assisted.
type RecordGoalInput struct {
	MatchID  string
	Side     match.Side
	ScorerID string
	AssistID string
}

// RecordCardInput identifies the punished side and, optionally, the booked
// player. Color is "yellow" or "red".
type RecordCardInput struct {
	MatchID  string
	Side     match.Side
	PlayerID string
	Color    string
}

// LiveService drives a match through scheduled -> in_progress -> completed
// and maintains the match and player aggregates as events accumulate.
// Mutations of one match are serialized through a per-match lock so the
// final score always equals the sum of recorded goal events.
type LiveService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	plyRepo   player.Repository
	statsRepo stats.Repository
	rng       simrand.Source
	idGen     idgen.Generator
	logger    *logging.Logger
	now       func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLiveService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	plyRepo player.Repository,
	statsRepo stats.Repository,
	rng simrand.Source,
	idGen idgen.Generator,
	logger *logging.Logger,
) *LiveService {
	if logger == nil {
		logger = logging.Default()
	}
	if rng == nil {
		rng = simrand.NewFromTime()
	}

	return &LiveService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		plyRepo:   plyRepo,
		statsRepo: statsRepo,
		rng:       rng,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
		locks:     make(map[string]*sync.Mutex),
	}
}

// Start transitions a scheduled match to in_progress and appends the kickoff
// event at minute 0.
func (s *LiveService) Start(ctx context.Context, matchID string) (match.Match, error) {
	unlock := s.lockMatch(matchID)
	defer unlock()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if m.Status != match.StatusScheduled {
		return match.Match{}, fmt.Errorf("%w: cannot start a %s match", ErrInvalidTransition, m.Status)
	}

	ev, err := s.newEvent(m.ID, 0, match.EventKickoff, "", "", "The match is underway!")
	if err != nil {
		return match.Match{}, err
	}

	m.Status = match.StatusInProgress
	if err := s.matchRepo.ApplyLiveUpdate(ctx, m, &ev, nil); err != nil {
		return match.Match{}, fmt.Errorf("apply kickoff: %w", err)
	}

	s.logger.InfoContext(ctx, "match started", "match_id", m.ID)
	return m, nil
}

// RecordGoal credits a goal to the given side while the match is in
// progress, appends the goal event and rolls the simulated shot and
// possession counters forward. When a scorer is known the per-match
// performance and career totals move in the same commit.
func (s *LiveService) RecordGoal(ctx context.Context, input RecordGoalInput) (Snapshot, error) {
	if !input.Side.Valid() {
		return Snapshot{}, fmt.Errorf("%w: side must be home or away, got %q", ErrInvalidSide, input.Side)
	}

	unlock := s.lockMatch(input.MatchID)
	defer unlock()

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return Snapshot{}, err
	}
	if m.Status != match.StatusInProgress {
		return Snapshot{}, fmt.Errorf("%w: cannot score in a %s match", ErrInvalidTransition, m.Status)
	}

	scoringTeam, ok, err := s.teamRepo.GetByID(ctx, m.TeamID(input.Side))
	if err != nil {
		return Snapshot{}, fmt.Errorf("get scoring team: %w", err)
	}
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: team=%s", ErrNotFound, m.TeamID(input.Side))
	}

	if input.Side == match.SideHome {
		m.HomeScore++
	} else {
		m.AwayScore++
	}

	st, err := s.matchRepo.GetOrCreateStats(ctx, m.ID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get match stats: %w", err)
	}
	s.applyGoalToStats(&st, input.Side)

	minute := s.rng.IntBetween(1, 90)
	description := fmt.Sprintf("GOAL! %s scores!", scoringTeam.Name)
	ev, err := s.newEvent(m.ID, minute, match.EventGoal, scoringTeam.ID, input.ScorerID, description)
	if err != nil {
		return Snapshot{}, err
	}

	if err := s.matchRepo.ApplyLiveUpdate(ctx, m, &ev, &st); err != nil {
		return Snapshot{}, fmt.Errorf("apply goal: %w", err)
	}

	if err := s.creditGoal(ctx, m, scoringTeam.ID, input.ScorerID, input.AssistID); err != nil {
		return Snapshot{}, err
	}

	s.logger.InfoContext(ctx, "goal recorded",
		"match_id", m.ID,
		"side", string(input.Side),
		"team", scoringTeam.Name,
		"minute", minute,
		"home_score", m.HomeScore,
		"away_score", m.AwayScore,
	)

	return s.snapshotLocked(ctx, m)
}

// RecordCard books a player on the given side while the match is in
// progress.
func (s *LiveService) RecordCard(ctx context.Context, input RecordCardInput) (Snapshot, error) {
	if !input.Side.Valid() {
		return Snapshot{}, fmt.Errorf("%w: side must be home or away, got %q", ErrInvalidSide, input.Side)
	}
	color := strings.ToLower(strings.TrimSpace(input.Color))
	if color != "yellow" && color != "red" {
		return Snapshot{}, fmt.Errorf("%w: card color must be yellow or red, got %q", ErrInvalidInput, input.Color)
	}

	unlock := s.lockMatch(input.MatchID)
	defer unlock()

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return Snapshot{}, err
	}
	if m.Status != match.StatusInProgress {
		return Snapshot{}, fmt.Errorf("%w: cannot book in a %s match", ErrInvalidTransition, m.Status)
	}

	bookedTeam, ok, err := s.teamRepo.GetByID(ctx, m.TeamID(input.Side))
	if err != nil {
		return Snapshot{}, fmt.Errorf("get booked team: %w", err)
	}
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: team=%s", ErrNotFound, m.TeamID(input.Side))
	}

	st, err := s.matchRepo.GetOrCreateStats(ctx, m.ID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get match stats: %w", err)
	}
	s.applyCardToStats(&st, input.Side, color)

	minute := s.rng.IntBetween(1, 90)
	description := fmt.Sprintf("%s card for %s", strings.ToUpper(color[:1])+color[1:], bookedTeam.Name)
	ev, err := s.newEvent(m.ID, minute, match.EventCard, bookedTeam.ID, input.PlayerID, description)
	if err != nil {
		return Snapshot{}, err
	}

	if err := s.matchRepo.ApplyLiveUpdate(ctx, m, &ev, &st); err != nil {
		return Snapshot{}, fmt.Errorf("apply card: %w", err)
	}

	if input.PlayerID != "" {
		if err := s.creditCard(ctx, m.ID, bookedTeam.ID, input.PlayerID, color); err != nil {
			return Snapshot{}, err
		}
	}

	s.logger.InfoContext(ctx, "card recorded",
		"match_id", m.ID,
		"side", string(input.Side),
		"color", color,
	)

	return s.snapshotLocked(ctx, m)
}

// End transitions an in_progress match to completed, appends the final
// whistle at minute 90 and credits appearance totals to every selected
// player.
func (s *LiveService) End(ctx context.Context, matchID string) (match.Match, error) {
	unlock := s.lockMatch(matchID)
	defer unlock()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if m.Status != match.StatusInProgress {
		return match.Match{}, fmt.Errorf("%w: cannot end a %s match", ErrInvalidTransition, m.Status)
	}

	ev, err := s.newEvent(m.ID, 90, match.EventFinalWhistle, "", "", "Full time!")
	if err != nil {
		return match.Match{}, err
	}

	m.Status = match.StatusCompleted
	if err := s.matchRepo.ApplyLiveUpdate(ctx, m, &ev, nil); err != nil {
		return match.Match{}, fmt.Errorf("apply final whistle: %w", err)
	}

	if err := s.creditAppearances(ctx, m); err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match ended",
		"match_id", m.ID,
		"home_score", m.HomeScore,
		"away_score", m.AwayScore,
	)

	return m, nil
}

// SetFinalScore overwrites both scores and forces the match completed
// without touching the event log. Escape hatch for backfilling results that
// were never driven live.
func (s *LiveService) SetFinalScore(ctx context.Context, matchID string, homeScore, awayScore int) (match.Match, error) {
	if homeScore < 0 || homeScore > 20 || awayScore < 0 || awayScore > 20 {
		return match.Match{}, fmt.Errorf("%w: scores must be between 0 and 20", ErrInvalidInput)
	}

	unlock := s.lockMatch(matchID)
	defer unlock()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	m.HomeScore = homeScore
	m.AwayScore = awayScore
	m.Status = match.StatusCompleted
	if err := s.matchRepo.ApplyLiveUpdate(ctx, m, nil, nil); err != nil {
		return match.Match{}, fmt.Errorf("apply score correction: %w", err)
	}

	s.logger.InfoContext(ctx, "match score corrected",
		"match_id", m.ID,
		"home_score", homeScore,
		"away_score", awayScore,
	)

	return m, nil
}

// Snapshot returns the current score, status, the last 10 events (newest
// first) and the statistics counters. It takes the same per-match lock as
// the mutation paths so a poll never pairs a stale score with a newer event
// log.
func (s *LiveService) Snapshot(ctx context.Context, matchID string) (Snapshot, error) {
	unlock := s.lockMatch(matchID)
	defer unlock()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return Snapshot{}, err
	}

	return s.snapshotLocked(ctx, m)
}

func (s *LiveService) snapshotLocked(ctx context.Context, m match.Match) (Snapshot, error) {
	events, err := s.matchRepo.ListEventsByMatch(ctx, m.ID, recentEventsLimit)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list match events: %w", err)
	}

	st, err := s.matchRepo.GetOrCreateStats(ctx, m.ID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get match stats: %w", err)
	}

	return Snapshot{Match: m, Events: events, Stats: st}, nil
}

func (s *LiveService) applyGoalToStats(st *match.Stats, side match.Side) {
	shots := s.rng.IntBetween(1, 3)
	delta := s.rng.IntBetween(-5, 5)

	if side == match.SideHome {
		st.HomeShots += shots
		st.HomeShotsOnTarget++
		st.HomePossession = clampPercent(st.HomePossession + delta)
		st.AwayPossession = 100 - st.HomePossession
	} else {
		st.AwayShots += shots
		st.AwayShotsOnTarget++
		st.AwayPossession = clampPercent(st.AwayPossession + delta)
		st.HomePossession = 100 - st.AwayPossession
	}
	st.UpdatedAt = s.now()
}

func (s *LiveService) applyCardToStats(st *match.Stats, side match.Side, color string) {
	fouls := s.rng.IntBetween(0, 2)

	if side == match.SideHome {
		st.HomeFouls += fouls
		if color == "red" {
			st.HomeRedCards++
		} else {
			st.HomeYellowCards++
		}
	} else {
		st.AwayFouls += fouls
		if color == "red" {
			st.AwayRedCards++
		} else {
			st.AwayYellowCards++
		}
	}
	st.UpdatedAt = s.now()
}

// creditGoal moves the scorer's (and assister's) per-match and career
// counters. Players outside the scoring team's match are ignored rather than
// rejected: the goal itself already committed.
func (s *LiveService) creditGoal(ctx context.Context, m match.Match, teamID, scorerID, assistID string) error {
	if scorerID != "" {
		ok, err := s.playerOnTeam(ctx, scorerID, teamID)
		if err != nil {
			return err
		}
		if ok {
			if err := s.bumpPerformance(ctx, scorerID, m.ID, func(p *stats.Performance) {
				p.Goals++
				p.Shots++
				p.ShotsOnTarget++
			}); err != nil {
				return err
			}
			if err := s.bumpCareer(ctx, scorerID, func(cs *stats.PlayerStats) {
				cs.Goals++
				cs.Shots++
				cs.ShotsOnTarget++
			}); err != nil {
				return err
			}
		}
	}

	if assistID != "" && assistID != scorerID {
		ok, err := s.playerOnTeam(ctx, assistID, teamID)
		if err != nil {
			return err
		}
		if ok {
			if err := s.bumpPerformance(ctx, assistID, m.ID, func(p *stats.Performance) {
				p.Assists++
			}); err != nil {
				return err
			}
			if err := s.bumpCareer(ctx, assistID, func(cs *stats.PlayerStats) {
				cs.Assists++
			}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *LiveService) creditCard(ctx context.Context, matchID, teamID, playerID, color string) error {
	ok, err := s.playerOnTeam(ctx, playerID, teamID)
	if err != nil || !ok {
		return err
	}

	if err := s.bumpPerformance(ctx, playerID, matchID, func(p *stats.Performance) {
		if color == "red" {
			p.RedCards++
		} else {
			p.YellowCards++
		}
	}); err != nil {
		return err
	}

	return s.bumpCareer(ctx, playerID, func(cs *stats.PlayerStats) {
		if color == "red" {
			cs.RedCards++
		} else {
			cs.YellowCards++
		}
	})
}

// creditAppearances adds a played match and 90 minutes to every selected
// player, plus a clean sheet for goalkeepers whose side conceded nothing.
func (s *LiveService) creditAppearances(ctx context.Context, m match.Match) error {
	rows, err := s.statsRepo.ListPerformancesByMatch(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("list match performances: %w", err)
	}

	for _, row := range rows {
		if !row.IsSelected {
			continue
		}

		p, ok, err := s.plyRepo.GetByID(ctx, row.PlayerID)
		if err != nil {
			return fmt.Errorf("get player %s: %w", row.PlayerID, err)
		}
		if !ok {
			continue
		}

		conceded := m.AwayScore
		if p.TeamID == m.AwayTeamID {
			conceded = m.HomeScore
		}

		if err := s.bumpPerformance(ctx, row.PlayerID, m.ID, func(perf *stats.Performance) {
			perf.IsPlaying = false
			perf.MinutesPlayed += 90
		}); err != nil {
			return err
		}

		if err := s.bumpCareer(ctx, row.PlayerID, func(cs *stats.PlayerStats) {
			cs.MatchesPlayed++
			cs.MinutesPlayed += 90
			if p.Position == player.PositionGoalkeeper && conceded == 0 {
				cs.CleanSheets++
			}
		}); err != nil {
			return err
		}
	}

	return nil
}

func (s *LiveService) playerOnTeam(ctx context.Context, playerID, teamID string) (bool, error) {
	p, ok, err := s.plyRepo.GetByID(ctx, playerID)
	if err != nil {
		return false, fmt.Errorf("get player %s: %w", playerID, err)
	}
	return ok && p.TeamID == teamID, nil
}

func (s *LiveService) bumpPerformance(ctx context.Context, playerID, matchID string, mutate func(*stats.Performance)) error {
	perf, ok, err := s.statsRepo.GetPerformance(ctx, playerID, matchID)
	if err != nil {
		return fmt.Errorf("get performance: %w", err)
	}
	if !ok {
		perf = stats.Performance{PlayerID: playerID, MatchID: matchID, CreatedAt: s.now()}
	}

	mutate(&perf)
	if err := s.statsRepo.UpsertPerformance(ctx, perf); err != nil {
		return fmt.Errorf("upsert performance: %w", err)
	}

	return nil
}

func (s *LiveService) bumpCareer(ctx context.Context, playerID string, mutate func(*stats.PlayerStats)) error {
	cs, err := s.statsRepo.GetOrCreateByPlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get career stats: %w", err)
	}

	mutate(&cs)
	cs.UpdatedAt = s.now()
	if err := s.statsRepo.UpdateCareer(ctx, cs); err != nil {
		return fmt.Errorf("update career stats: %w", err)
	}

	return nil
}

func (s *LiveService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return m, nil
}

func (s *LiveService) newEvent(matchID string, minute int, eventType, teamID, playerID, description string) (match.Event, error) {
	eventID, err := s.idGen.NewID()
	if err != nil {
		return match.Event{}, fmt.Errorf("generate event id: %w", err)
	}

	return match.Event{
		ID:          eventID,
		MatchID:     matchID,
		Minute:      minute,
		Type:        eventType,
		TeamID:      teamID,
		PlayerID:    playerID,
		Description: description,
		CreatedAt:   s.now(),
	}, nil
}

// lockMatch serializes mutations and snapshot reads per match id.
func (s *LiveService) lockMatch(matchID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[matchID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[matchID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
