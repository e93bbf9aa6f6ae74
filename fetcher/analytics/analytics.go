package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"legendstats/fetcher/requests"
	"legendstats/pkg/tierlist"

	"golang.org/x/sync/errgroup"
)

const defaultBaseUrl = "https://cdn.merakianalytics.com/riot/lol/resources/latest/en-US"

// Positions used by the analytics source mapped to the site roles.
var roleMap = map[string]tierlist.Role{
	"TOP":     tierlist.RoleTop,
	"JUNGLE":  tierlist.RoleJungle,
	"MIDDLE":  tierlist.RoleMid,
	"BOTTOM":  tierlist.RoleAdc,
	"UTILITY": tierlist.RoleSupport,
}

// Fetcher pulls the champion play rates from the analytics CDN.
type Fetcher struct {
	client  *requests.Client
	baseUrl string
}

// Create a instance of the analytics fetcher.
// A empty baseUrl falls back to the public CDN.
func CreateFetcher(client *requests.Client, baseUrl string) *Fetcher {
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}
	return &Fetcher{
		client:  client,
		baseUrl: baseUrl,
	}
}

// Raw champion from the champions.json file.
type rawChampion struct {
	Id        int      `json:"id"`
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Positions []string `json:"positions"`
}

type rawRate struct {
	PlayRate float64 `json:"playRate"`
}

// Raw play rates from the championrates.json file.
// The outer key is the numeric champion id, the inner one the position.
type rawRates struct {
	Patch string                           `json:"patch"`
	Data  map[string]map[string]rawRate `json:"data"`
}

// GetEntries fetches both analytics files and merges them into one
// play rate entry per champion and played position.
func (f *Fetcher) GetEntries(ctx context.Context) ([]tierlist.AnalyticsEntry, error) {
	var champions map[string]rawChampion
	var rates rawRates

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return f.getJson(groupCtx, f.baseUrl+"/champions.json", &champions)
	})
	group.Go(func() error {
		return f.getJson(groupCtx, f.baseUrl+"/championrates.json", &rates)
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var entries []tierlist.AnalyticsEntry
	for _, champion := range champions {
		championRates, ok := rates.Data[fmt.Sprint(champion.Id)]
		if !ok {
			continue
		}

		for _, position := range champion.Positions {
			role, ok := roleMap[position]
			if !ok {
				continue
			}

			playRate := championRates[position].PlayRate
			if playRate <= 0 {
				continue
			}

			entries = append(entries, tierlist.AnalyticsEntry{
				ChampionId:   champion.Key,
				ChampionName: champion.Name,
				Role:         role,
				PickRate:     math.Round(playRate*100) / 100,
			})
		}
	}

	return entries, nil
}

func (f *Fetcher) getJson(ctx context.Context, url string, target any) error {
	resp, err := f.client.Request(ctx, url)
	if err != nil {
		return fmt.Errorf("analytics request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to parse API response: %w", err)
	}
	return nil
}
