package constants

import "time"

const (
	HeroCacheTTL         = 1 * time.Hour
	MapCacheTTL          = 1 * time.Hour
	PlayerCacheTTL       = 5 * time.Minute
	MatchHistoryCacheTTL = 5 * time.Minute
	BattlePassCacheTTL   = 1 * time.Hour
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

// Cache rows older than this are pruned at startup. Well beyond every
// TTL, so a prune never races a fresh read.
const CachePruneMaxAge = 24 * time.Hour

const (
	MatchHistoryPageSize = 20
)
