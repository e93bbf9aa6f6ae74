package modules

import (
	"legendstats/api/cache"
	"legendstats/api/handlers"
	"legendstats/fetcher/analytics"
	"legendstats/fetcher/assets"
	"legendstats/fetcher/data"
	"legendstats/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleDependencies are the shared resources every handler builds on.
type ModuleDependencies struct {
	DB        *gorm.DB
	Redis     *redis.RedisClient
	MemCache  *cache.MemCache
	Riot      *data.Registry
	Analytics *analytics.Fetcher
	Assets    *assets.Loader
}

// Module containing the necessary handlers.
type Module struct {
	Router             *gin.Engine
	PlayerHandler      *handlers.PlayerHandler
	MatchHandler       *handlers.MatchHandler
	TierlistHandler    *handlers.TierlistHandler
	LiveHandler        *handlers.LiveHandler
	LeaderboardHandler *handlers.LeaderboardHandler
	PatchHandler       *handlers.PatchHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router:             router,
		PlayerHandler:      initializePlayerHandler(deps),
		MatchHandler:       initializeMatchHandler(deps),
		TierlistHandler:    initializeTierlistHandler(deps),
		LiveHandler:        initializeLiveHandler(deps),
		LeaderboardHandler: initializeLeaderboardHandler(deps),
		PatchHandler:       initializePatchHandler(deps),
	}
}
