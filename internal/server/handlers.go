package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"rivals-tracker/internal/api"
	"rivals-tracker/internal/apperr"
	"rivals-tracker/internal/assets"
	"rivals-tracker/internal/domain"
)

// Handler dependencies are interfaces so tests can swap in fakes
// without a database or an upstream API.

type HeroProvider interface {
	GetHeroes(ctx context.Context) ([]domain.Hero, error)
	GetHero(ctx context.Context, name string) (*domain.Hero, error)
	GetHeroStats(ctx context.Context, name string) (json.RawMessage, error)
}

type MapProvider interface {
	GetMaps(ctx context.Context) ([]domain.GameMap, error)
	GetMap(ctx context.Context, id int64) (*domain.GameMap, error)
	Names(ctx context.Context, ids []int64) (map[int64]string, error)
}

type PlayerProvider interface {
	GetPlayer(ctx context.Context, query string) (*domain.PlayerStats, error)
	GetMatchHistory(ctx context.Context, query, season string, page int) (*domain.MatchHistory, error)
	GetBattlePass(ctx context.Context, season string) (json.RawMessage, error)
}

type RateLimitProvider interface {
	GetRateLimitInfo() api.RateLimitInfo
}

type Handler struct {
	heroes  HeroProvider
	maps    MapProvider
	players PlayerProvider
	limits  RateLimitProvider
	views   *viewBuilder
	logger  zerolog.Logger
}

func NewHandler(heroes HeroProvider, maps MapProvider, players PlayerProvider, limits RateLimitProvider, resolver *assets.Resolver, logger zerolog.Logger) *Handler {
	return &Handler{
		heroes:  heroes,
		maps:    maps,
		players: players,
		limits:  limits,
		views:   newViewBuilder(resolver),
		logger:  logger,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "healthy",
		"service": "rivals-tracker",
	})
}

func (h *Handler) GetHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroes.GetHeroes(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}
	writeJSON(w, h.views.Heroes(heroes, r.URL.Query().Get("query")))
}

func (h *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	hero, err := h.heroes.GetHero(r.Context(), name)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	writeJSON(w, h.views.Hero(*hero))
}

func (h *Handler) GetHeroStats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	stats, err := h.heroes.GetHeroStats(r.Context(), name)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(stats)
}

func (h *Handler) GetMaps(w http.ResponseWriter, r *http.Request) {
	maps, err := h.maps.GetMaps(r.Context())
	if err != nil {
		apperr.Write(w, err)
		return
	}
	writeJSON(w, h.views.Maps(maps))
}

func (h *Handler) GetMap(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid map id", http.StatusBadRequest)
		return
	}
	m, err := h.maps.GetMap(r.Context(), id)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	writeJSON(w, h.views.Map(*m))
}

// GetMapNames resolves display names for a comma-separated id list.
// Unresolvable ids are simply absent from the result.
func (h *Handler) GetMapNames(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		http.Error(w, "ids query parameter is required", http.StatusBadRequest)
		return
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			http.Error(w, "invalid map id: "+part, http.StatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	names, err := h.maps.Names(r.Context(), ids)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	out := make(map[string]string, len(names))
	for id, name := range names {
		out[strconv.FormatInt(id, 10)] = name
	}
	writeJSON(w, out)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	query := mux.Vars(r)["query"]
	stats, err := h.players.GetPlayer(r.Context(), query)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	writeJSON(w, h.views.Player(*stats))
}

func (h *Handler) GetMatchHistory(w http.ResponseWriter, r *http.Request) {
	query := mux.Vars(r)["query"]
	season := r.URL.Query().Get("season")
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	history, err := h.players.GetMatchHistory(r.Context(), query, season, page)
	if err != nil {
		apperr.Write(w, err)
		return
	}
	writeJSON(w, h.views.MatchHistory(*history))
}

func (h *Handler) GetBattlePass(w http.ResponseWriter, r *http.Request) {
	body, err := h.players.GetBattlePass(r.Context(), r.URL.Query().Get("season"))
	if err != nil {
		apperr.Write(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (h *Handler) GetRateLimit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.limits.GetRateLimitInfo())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
