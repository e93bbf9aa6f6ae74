package assets

import "time"

// Consts used across the package.
const (
	ddragon      = "https://ddragon.leagueoflegends.com/"
	versionKey   = "ddragon:versions"
	championsKey = "ddragon:champions"
	assetsTtl    = 24 * time.Hour
)

// Definition for extracting the champion data.
type fullChampion struct {
	Data map[string]championEntry `json:"data"`
}

// Single champion entry from the DDragon champion.json.
// The key comes as a numeric string.
type championEntry struct {
	Key  string `json:"key"`
	Id   string `json:"id"`
	Name string `json:"name"`
}
