package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"rivals-tracker/internal/api"
	"rivals-tracker/internal/constants"
	"rivals-tracker/internal/domain"
	"rivals-tracker/internal/normalize"
	"rivals-tracker/internal/repository"
)

type PlayerService struct {
	rivals *api.RivalsClient
	cache  *repository.CacheRepository
	norm   *normalize.Normalizer
	logger zerolog.Logger
}

func NewPlayerService(rivals *api.RivalsClient, cache *repository.CacheRepository, norm *normalize.Normalizer, logger zerolog.Logger) *PlayerService {
	return &PlayerService{rivals: rivals, cache: cache, norm: norm, logger: logger}
}

// GetPlayer looks a player up by uid or name. The query string doubles
// as the display-name fallback when the payload omits one.
func (s *PlayerService) GetPlayer(ctx context.Context, query string) (*domain.PlayerStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("query", query).Msg("getting player")

	body, err := fetchCached(ctx, s.cache, s.logger, "player:"+query, constants.PlayerCacheTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.rivals.GetPlayerStats(ctx, query)
		})
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to fetch player")
		return nil, fmt.Errorf("failed to fetch player: %w", err)
	}

	return s.norm.PlayerStats(body, query)
}

func (s *PlayerService) GetMatchHistory(ctx context.Context, query, season string, page int) (*domain.MatchHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	s.logger.Info().Str("query", query).Str("season", season).Int("page", page).Msg("getting match history")

	key := "match-history:" + query + ":" + season + ":" + strconv.Itoa(page)
	body, err := fetchCached(ctx, s.cache, s.logger, key, constants.MatchHistoryCacheTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.rivals.GetMatchHistory(ctx, query, season, page)
		})
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to fetch match history")
		return nil, fmt.Errorf("failed to fetch match history: %w", err)
	}

	return s.norm.MatchHistory(body)
}

// GetBattlePass returns the raw battle pass payload for a season.
func (s *PlayerService) GetBattlePass(ctx context.Context, season string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	body, err := fetchCached(ctx, s.cache, s.logger, "battlepass:"+season, constants.BattlePassCacheTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.rivals.GetBattlePass(ctx, season)
		})
	if err != nil {
		s.logger.Error().Err(err).Str("season", season).Msg("failed to fetch battle pass")
		return nil, fmt.Errorf("failed to fetch battle pass: %w", err)
	}
	return body, nil
}
