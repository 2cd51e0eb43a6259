package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/pitchside/matchday/internal/usecase"
)

func (h *Handler) SelectMatchSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectMatchSquad")
	defer span.End()

	var req selectSquadRequest
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

	principal, err := requireTeamManager(ctx, req.TeamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	selected, err := h.squadService.SelectForMatch(ctx, matchID, req.TeamID, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "select squad failed", "match_id", matchID, "team_id", req.TeamID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(selected))
	for _, p := range selected {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchSquad")
	defer span.End()

	matchID := r.PathValue("matchID")
	rows, err := h.squadService.SelectionForMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match squad failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]performanceDTO, 0, len(rows))
	for _, p := range rows {
		items = append(items, performanceToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
