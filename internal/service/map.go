package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"rivals-tracker/internal/api"
	"rivals-tracker/internal/constants"
	"rivals-tracker/internal/domain"
	"rivals-tracker/internal/normalize"
	"rivals-tracker/internal/repository"
)

type MapService struct {
	rivals *api.RivalsClient
	cache  *repository.CacheRepository
	norm   *normalize.Normalizer
	logger zerolog.Logger
}

func NewMapService(rivals *api.RivalsClient, cache *repository.CacheRepository, norm *normalize.Normalizer, logger zerolog.Logger) *MapService {
	return &MapService{rivals: rivals, cache: cache, norm: norm, logger: logger}
}

func (s *MapService) GetMaps(ctx context.Context) ([]domain.GameMap, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	body, err := fetchCached(ctx, s.cache, s.logger, "maps", constants.MapCacheTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.rivals.GetMaps(ctx)
		})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch maps")
		return nil, fmt.Errorf("failed to fetch maps: %w", err)
	}

	maps, err := s.norm.Maps(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("maps payload rejected")
		return nil, err
	}

	s.logger.Info().Int("count", len(maps)).Msg("maps fetched")
	return maps, nil
}

func (s *MapService) GetMap(ctx context.Context, id int64) (*domain.GameMap, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Int64("id", id).Msg("getting map")

	body, err := fetchCached(ctx, s.cache, s.logger, "map:"+strconv.FormatInt(id, 10), constants.MapCacheTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.rivals.GetMapByID(ctx, id)
		})
	if err != nil {
		s.logger.Error().Err(err).Int64("id", id).Msg("failed to fetch map")
		return nil, fmt.Errorf("failed to fetch map: %w", err)
	}

	return s.norm.MapByID(body)
}

// Names resolves display names for a set of map ids, fetching each map
// concurrently. Ids that fail to fetch or have no extractable name are
// logged and left out of the result rather than failing the batch.
func (s *MapService) Names(ctx context.Context, ids []int64) (map[int64]string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	var mu sync.Mutex
	names := make(map[int64]string, len(unique))

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range unique {
		id := id
		g.Go(func() error {
			body, err := fetchCached(gctx, s.cache, s.logger, "map:"+strconv.FormatInt(id, 10), constants.MapCacheTTL,
				func(ctx context.Context) (json.RawMessage, error) {
					return s.rivals.GetMapByID(ctx, id)
				})
			if err != nil {
				s.logger.Warn().Err(err).Int64("id", id).Msg("map name lookup failed")
				return nil
			}
			name, ok := normalize.MapName(body)
			if !ok {
				s.logger.Warn().Int64("id", id).Msg("map payload has no extractable name")
				return nil
			}
			mu.Lock()
			names[id] = name
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info().Int("requested", len(unique)).Int("resolved", len(names)).Msg("map names resolved")
	return names, nil
}
