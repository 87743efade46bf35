package server

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"rivals-tracker/internal/middleware"
)

// SetupRouter wires every route onto a mux router.
func SetupRouter(handler *Handler, logger zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(middleware.RequestID(logger))

	apiRouter.HandleFunc("/heroes", handler.GetHeroes).Methods("GET")
	apiRouter.HandleFunc("/heroes/{name}", handler.GetHero).Methods("GET")
	apiRouter.HandleFunc("/heroes/{name}/stats", handler.GetHeroStats).Methods("GET")

	apiRouter.HandleFunc("/maps", handler.GetMaps).Methods("GET")
	apiRouter.HandleFunc("/maps/names", handler.GetMapNames).Methods("GET")
	apiRouter.HandleFunc("/maps/{id:[0-9]+}", handler.GetMap).Methods("GET")

	apiRouter.HandleFunc("/player/{query}", handler.GetPlayer).Methods("GET")
	apiRouter.HandleFunc("/player/{query}/match-history", handler.GetMatchHistory).Methods("GET")

	apiRouter.HandleFunc("/battlepass", handler.GetBattlePass).Methods("GET")
	apiRouter.HandleFunc("/ratelimit", handler.GetRateLimit).Methods("GET")

	return router
}
