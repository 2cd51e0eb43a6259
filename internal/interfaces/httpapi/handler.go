package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pitchside/matchday/internal/domain/user"
	"github.com/pitchside/matchday/internal/platform/logging"
	"github.com/pitchside/matchday/internal/usecase"
)

type Handler struct {
	tournamentService *usecase.TournamentService
	teamService       *usecase.TeamService
	playerService     *usecase.PlayerService
	fixtureService    *usecase.FixtureService
	standingsService  *usecase.StandingsService
	liveService       *usecase.LiveService
	squadService      *usecase.SquadService
	statsService      *usecase.StatsService
	userService       *usecase.UserService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	fixtureService *usecase.FixtureService,
	standingsService *usecase.StandingsService,
	liveService *usecase.LiveService,
	squadService *usecase.SquadService,
	statsService *usecase.StatsService,
	userService *usecase.UserService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tournamentService: tournamentService,
		teamService:       teamService,
		playerService:     playerService,
		fixtureService:    fixtureService,
		standingsService:  standingsService,
		liveService:       liveService,
		squadService:      squadService,
		statsService:      statsService,
		userService:       userService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}

	return principal, nil
}

func requireTournamentAdmin(ctx context.Context) (user.Principal, error) {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return user.Principal{}, err
	}
	if !principal.CanManageTournaments() {
		return user.Principal{}, fmt.Errorf("%w: admin role required", usecase.ErrUnauthorized)
	}

	return principal, nil
}

func requireTeamManager(ctx context.Context, teamID string) (user.Principal, error) {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return user.Principal{}, err
	}
	if !principal.CanManageTeam(teamID) {
		return user.Principal{}, fmt.Errorf("%w: not a manager of team %s", usecase.ErrUnauthorized, teamID)
	}

	return principal, nil
}

func requireOfficial(ctx context.Context) (user.Principal, error) {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return user.Principal{}, err
	}
	if !principal.CanOfficiate() {
		return user.Principal{}, fmt.Errorf("%w: referee or admin role required", usecase.ErrUnauthorized)
	}

	return principal, nil
}
