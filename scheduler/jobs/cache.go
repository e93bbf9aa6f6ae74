package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"legendstats/fetcher/assets"
	"legendstats/fetcher/requests"
	"legendstats/pkg/config"
	"legendstats/pkg/redis"
)

// RevalidateAssets refreshes the Data Dragon caches on Redis.
// Runs daily so the champion names follow new patches.
func RevalidateAssets(cfg *config.Config) error {
	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("couldn't get redis connection: %w", err)
	}
	defer redisClient.Close()

	loader := assets.CreateLoader(requests.NewClient(cfg.ApiKey), redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Println("Starting asset cache revalidation")

	if _, err := loader.RevalidateVersionCache(ctx); err != nil {
		return fmt.Errorf("couldn't revalidate the version cache: %w", err)
	}
	if _, err := loader.RevalidateChampionCache(ctx, "en_US"); err != nil {
		return fmt.Errorf("couldn't revalidate the champion cache: %w", err)
	}

	log.Println("Finished asset cache revalidation")
	return nil
}
