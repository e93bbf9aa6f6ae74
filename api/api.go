package main

import (
	"log"

	"legendstats/api/cache"
	"legendstats/api/modules"
	"legendstats/api/routes"
	"legendstats/fetcher/analytics"
	"legendstats/fetcher/assets"
	"legendstats/fetcher/data"
	"legendstats/fetcher/requests"
	"legendstats/pkg/config"
	"legendstats/pkg/database"
	"legendstats/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't load the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Couldn't connect to the database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get the underlying connection: %v", err)
	}
	if err := database.RunMigrations(cfg, sqlDB); err != nil {
		log.Fatalf("Couldn't run the migrations: %v", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Couldn't connect to redis: %v", err)
	}
	defer redisClient.Close()

	memCache := cache.NewMemCache()
	defer memCache.Close()

	riotClient := requests.NewClient(cfg.ApiKey)

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		DB:        db,
		Redis:     redisClient,
		MemCache:  memCache,
		Riot:      data.NewRegistry(riotClient),
		Analytics: analytics.CreateFetcher(riotClient, cfg.Analytics.BaseURL),
		Assets:    assets.CreateLoader(riotClient, redisClient),
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.PlayerHandler,
		module.MatchHandler,
		module.TierlistHandler,
		module.LiveHandler,
		module.LeaderboardHandler,
		module.PatchHandler,
	)

	// Start the server.
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Couldn't start the server: %v", err)
	}
}
