package app

import (
	"fmt"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/pitchside/matchday/internal/config"
	"github.com/pitchside/matchday/internal/domain/match"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/domain/stats"
	"github.com/pitchside/matchday/internal/domain/team"
	"github.com/pitchside/matchday/internal/domain/tournament"
	"github.com/pitchside/matchday/internal/domain/user"
	"github.com/pitchside/matchday/internal/infrastructure/account/statictoken"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchday/internal/infrastructure/repository/postgres"
	"github.com/pitchside/matchday/internal/interfaces/httpapi"
	idgen "github.com/pitchside/matchday/internal/platform/id"
	"github.com/pitchside/matchday/internal/platform/logging"
	"github.com/pitchside/matchday/internal/platform/simrand"
	"github.com/pitchside/matchday/internal/usecase"
)

type repositorySet struct {
	tournaments tournament.Repository
	teams       team.Repository
	players     player.Repository
	matches     match.Repository
	stats       stats.Repository
	users       user.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router. The
// returned cleanup releases repository resources and must be called after
// the server stops.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeRepos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	idGen := idgen.NewRandomGenerator()
	rng := simrand.NewFromTime()
	if cfg.SimRandSeed != 0 {
		rng = simrand.New(cfg.SimRandSeed)
	}

	tournamentSvc := usecase.NewTournamentService(repos.tournaments, repos.matches, idGen, logger)
	teamSvc := usecase.NewTeamService(repos.tournaments, repos.teams, idGen, logger)
	playerSvc := usecase.NewPlayerService(repos.teams, repos.players, idGen, logger)
	fixtureSvc := usecase.NewFixtureService(repos.tournaments, repos.teams, repos.matches, idGen, logger)
	standingsSvc := usecase.NewStandingsService(repos.tournaments, repos.teams, repos.matches)
	liveSvc := usecase.NewLiveService(repos.matches, repos.teams, repos.players, repos.stats, rng, idGen, logger)
	squadSvc := usecase.NewSquadService(repos.matches, repos.teams, repos.players, repos.stats, logger)
	statsSvc := usecase.NewStatsService(repos.players, repos.stats)
	userSvc := usecase.NewUserService(repos.users, idGen, logger)

	verifier := statictoken.NewVerifier(principalTable(cfg.AccessTokens), logger)

	handler := httpapi.NewHandler(
		tournamentSvc,
		teamSvc,
		playerSvc,
		fixtureSvc,
		standingsSvc,
		liveSvc,
		squadSvc,
		statsSvc,
		userSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = closeRepos()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeRepos, nil
}

func principalTable(entries []config.AccessToken) map[string]user.Principal {
	out := make(map[string]user.Principal, len(entries))
	for _, entry := range entries {
		out[entry.Token] = user.Principal{
			UserID: entry.UserID,
			Role:   user.Role(entry.Role),
			TeamID: entry.TeamID,
		}
	}

	return out
}

// buildRepositories returns postgres-backed repositories when DB_URL is
// set, and the seeded in-memory store otherwise.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositorySet, func() error, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		store := memory.NewSeededStore()
		logger.Info("repositories ready", "backend", "memory", "seeded", true)

		return repositorySet{
			tournaments: store.Tournaments(),
			teams:       store.Teams(),
			players:     store.Players(),
			matches:     store.Matches(),
			stats:       store.Stats(),
			users:       store.Users(),
		}, func() error { return nil }, nil
	}

	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dsn)),
	)
	if err != nil {
		return repositorySet{}, nil, crerr.Wrap(err, "connect postgres")
	}

	logger.Info("repositories ready", "backend", "postgres", "database", dbNameFromURL(dsn))

	return repositorySet{
		tournaments: postgres.NewTournamentRepository(db),
		teams:       postgres.NewTeamRepository(db),
		players:     postgres.NewPlayerRepository(db),
		matches:     postgres.NewMatchRepository(db),
		stats:       postgres.NewStatsRepository(db),
		users:       postgres.NewUserRepository(db),
	}, db.Close, nil
}
