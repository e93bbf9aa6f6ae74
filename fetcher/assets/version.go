package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Get the latest version of the data from the ddragon.
// Tries the Redis cache first, revalidating on a miss.
func (l *Loader) GetLatestVersion(ctx context.Context) (string, error) {
	result, err := l.redis.LIndex(ctx, versionKey, 0).Result()
	if err == nil {
		return result, nil
	}

	versions, err := l.RevalidateVersionCache(ctx)
	if err != nil {
		return "", err
	}
	return versions[0], nil
}

// Get all the versions from the ddragon.
// Set the latest three on the Redis cache and return.
func (l *Loader) RevalidateVersionCache(ctx context.Context) ([]string, error) {
	url := fmt.Sprint(ddragon, "api/versions.json")
	resp, err := l.client.Request(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the current version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	if len(versions) == 0 {
		return nil, errors.New("no versions available")
	}

	// Only the latest three versions are relevant for the site.
	keep := versions
	if len(keep) > 3 {
		keep = keep[:3]
	}

	pipe := l.redis.Pipeline()
	pipe.Del(ctx, versionKey)
	for _, version := range keep {
		pipe.RPush(ctx, versionKey, version)
	}
	pipe.Expire(ctx, versionKey, assetsTtl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("couldn't store the versions on redis: %w", err)
	}

	return versions, nil
}
