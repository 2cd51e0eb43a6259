package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/usecase"
)

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	teamID := r.PathValue("teamID")
	principal, err := requireTeamManager(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createPlayerRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		TeamID:       teamID,
		Name:         req.Name,
		Position:     player.Position(req.Position),
		JerseyNumber: req.JerseyNumber,
		Age:          req.Age,
		Nationality:  req.Nationality,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", teamID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(p))
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.playerService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) TogglePlayerAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TogglePlayerAvailability")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	principal, err := requireTeamManager(ctx, p.TeamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	available, err := h.playerService.ToggleAvailability(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle availability failed", "player_id", playerID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"isAvailable": available})
}

func (h *Handler) GetPlayerCareerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerCareerStats")
	defer span.End()

	playerID := r.PathValue("playerID")
	career, err := h.statsService.CareerStats(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get career stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, careerStatsToDTO(career))
}

func (h *Handler) ListPlayerPerformances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerPerformances")
	defer span.End()

	playerID := r.PathValue("playerID")
	performances, err := h.statsService.RecentPerformances(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list performances failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]performanceDTO, 0, len(performances))
	for _, p := range performances {
		items = append(items, performanceToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboards")
	defer span.End()

	board, err := h.statsService.Leaderboards(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get leaderboards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardDTO{
		TopScorers: leaderboardEntriesToDTO(board.TopScorers),
		TopAssists: leaderboardEntriesToDTO(board.TopAssists),
		MostCarded: leaderboardEntriesToDTO(board.MostCarded),
	})
}
