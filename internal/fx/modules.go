package fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"rivals-tracker/internal/api"
	"rivals-tracker/internal/assets"
	"rivals-tracker/internal/config"
	"rivals-tracker/internal/database"
	"rivals-tracker/internal/logger"
	"rivals-tracker/internal/normalize"
	"rivals-tracker/internal/repository"
	"rivals-tracker/internal/server"
	"rivals-tracker/internal/service"
)

// ProvideLogger builds the application logger at the level the
// configuration asks for; unknown level names fall back to info.
func ProvideLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return logger.SetLevel(level)
}

func ProvideNormalizer(cfg *config.Config, log zerolog.Logger) *normalize.Normalizer {
	policy := normalize.DefaultPolicy()
	policy.WarnOnDefault = cfg.NormalizeWarnings
	return normalize.New(policy, log)
}

func ProvideHandler(
	heroes *service.HeroService,
	maps *service.MapService,
	players *service.PlayerService,
	rivals *api.RivalsClient,
	resolver *assets.Resolver,
	log zerolog.Logger,
) *server.Handler {
	return server.NewHandler(heroes, maps, players, rivals, resolver, log)
}

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(ProvideLogger),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewCacheRepository),
	// api client
	fx.Provide(api.NewRivalsClient),
	// normalization + assets
	fx.Provide(ProvideNormalizer),
	fx.Provide(assets.NewResolver),
	// svc
	fx.Provide(service.NewHeroService),
	fx.Provide(service.NewMapService),
	fx.Provide(service.NewPlayerService),
	// server
	fx.Provide(ProvideHandler),
)
