package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"rivals-tracker/internal/api"
	"rivals-tracker/internal/constants"
	"rivals-tracker/internal/domain"
	"rivals-tracker/internal/normalize"
	"rivals-tracker/internal/repository"
)

type HeroService struct {
	rivals *api.RivalsClient
	cache  *repository.CacheRepository
	norm   *normalize.Normalizer
	logger zerolog.Logger
}

func NewHeroService(rivals *api.RivalsClient, cache *repository.CacheRepository, norm *normalize.Normalizer, logger zerolog.Logger) *HeroService {
	return &HeroService{rivals: rivals, cache: cache, norm: norm, logger: logger}
}

func (s *HeroService) GetHeroes(ctx context.Context) ([]domain.Hero, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	body, err := fetchCached(ctx, s.cache, s.logger, "heroes", constants.HeroCacheTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.rivals.GetHeroes(ctx)
		})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch heroes")
		return nil, fmt.Errorf("failed to fetch heroes: %w", err)
	}

	heroes, err := s.norm.Heroes(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("heroes payload rejected")
		return nil, err
	}

	s.logger.Info().Int("count", len(heroes)).Msg("heroes fetched")
	return heroes, nil
}

func (s *HeroService) GetHero(ctx context.Context, name string) (*domain.Hero, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("name", name).Msg("getting hero")

	body, err := fetchCached(ctx, s.cache, s.logger, "hero:"+name, constants.HeroCacheTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.rivals.GetHeroByName(ctx, name)
		})
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to fetch hero")
		return nil, fmt.Errorf("failed to fetch hero: %w", err)
	}

	return s.norm.Hero(body, name)
}

// GetHeroStats returns the raw per-hero stats payload. There is no
// fixed upstream shape for it, so it passes through untouched.
func (s *HeroService) GetHeroStats(ctx context.Context, name string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	body, err := fetchCached(ctx, s.cache, s.logger, "hero-stats:"+name, constants.HeroCacheTTL,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.rivals.GetHeroStats(ctx, name)
		})
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to fetch hero stats")
		return nil, fmt.Errorf("failed to fetch hero stats: %w", err)
	}
	return body, nil
}
