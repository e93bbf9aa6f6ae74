package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Get the champion names keyed by their numeric id.
// Tries the Redis cache first, revalidating on a miss.
func (l *Loader) GetChampionNames(ctx context.Context) (map[int]string, error) {
	cached, err := l.redis.Get(ctx, championsKey)
	if err == nil {
		names := make(map[int]string)
		if err := json.Unmarshal([]byte(cached), &names); err == nil {
			return names, nil
		}
	}

	return l.RevalidateChampionCache(ctx, "en_US")
}

// Get the champions from the datadragon and rebuild the Redis cache.
func (l *Loader) RevalidateChampionCache(ctx context.Context, language string) (map[int]string, error) {
	latestVersion, err := l.GetLatestVersion(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%scdn/%s/data/%s/champion.json", ddragon, latestVersion, language)
	resp, err := l.client.Request(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champion data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var championsData fullChampion
	if err := json.NewDecoder(resp.Body).Decode(&championsData); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	names := make(map[int]string, len(championsData.Data))
	for _, champion := range championsData.Data {
		key, err := strconv.Atoi(champion.Key)
		if err != nil {
			continue
		}
		names[key] = champion.Name
	}

	encoded, err := json.Marshal(names)
	if err != nil {
		return nil, err
	}
	if err := l.redis.Set(ctx, championsKey, encoded, assetsTtl); err != nil {
		return nil, fmt.Errorf("couldn't store the champions on redis: %w", err)
	}

	return names, nil
}
