package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/teams", handler.ListTeamsByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matches", handler.ListMatchesByTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerCareerStats)
	mux.HandleFunc("GET /v1/players/{playerID}/performances", handler.ListPlayerPerformances)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchSnapshot)
	mux.HandleFunc("GET /v1/matches/{matchID}/squad", handler.GetMatchSquad)
	mux.HandleFunc("GET /v1/leaderboards", handler.GetLeaderboards)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerTournamentAdminRoutes(mux, handler, verifier)
	registerSquadRoutes(mux, handler, verifier)
	registerLiveRoutes(mux, handler, verifier)
	registerUserRoutes(mux, handler, verifier)
}

func registerTournamentAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/tournaments", RequireAuth(verifier, http.HandlerFunc(handler.CreateTournament)))
	mux.Handle("DELETE /v1/tournaments/{tournamentID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTournament)))
	mux.Handle("POST /v1/tournaments/{tournamentID}/teams", RequireAuth(verifier, http.HandlerFunc(handler.RegisterTeam)))
	mux.Handle("POST /v1/tournaments/{tournamentID}/fixtures", RequireAuth(verifier, http.HandlerFunc(handler.GenerateFixtures)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("POST /v1/teams/{teamID}/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("POST /v1/players/{playerID}/availability", RequireAuth(verifier, http.HandlerFunc(handler.TogglePlayerAvailability)))
}

func registerSquadRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/matches/{matchID}/squad", RequireAuth(verifier, http.HandlerFunc(handler.SelectMatchSquad)))
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/matches/{matchID}/start", RequireAuth(verifier, http.HandlerFunc(handler.StartMatch)))
	mux.Handle("POST /v1/matches/{matchID}/goals", RequireAuth(verifier, http.HandlerFunc(handler.RecordGoal)))
	mux.Handle("POST /v1/matches/{matchID}/cards", RequireAuth(verifier, http.HandlerFunc(handler.RecordCard)))
	mux.Handle("POST /v1/matches/{matchID}/end", RequireAuth(verifier, http.HandlerFunc(handler.EndMatch)))
	mux.Handle("PUT /v1/matches/{matchID}/score", RequireAuth(verifier, http.HandlerFunc(handler.SetFinalScore)))
}

func registerUserRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/users", RequireAuth(verifier, http.HandlerFunc(handler.CreateUser)))
	mux.Handle("GET /v1/users", RequireAuth(verifier, http.HandlerFunc(handler.ListUsers)))
	mux.Handle("GET /v1/users/{userID}", RequireAuth(verifier, http.HandlerFunc(handler.GetUser)))
}
