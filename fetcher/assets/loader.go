package assets

import (
	"legendstats/fetcher/requests"
	"legendstats/pkg/redis"
)

// Loader resolves DDragon static data, caching it on Redis.
type Loader struct {
	client *requests.Client
	redis  *redis.RedisClient
}

// Create a instance of the asset loader.
func CreateLoader(client *requests.Client, redisClient *redis.RedisClient) *Loader {
	return &Loader{
		client: client,
		redis:  redisClient,
	}
}
