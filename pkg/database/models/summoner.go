package models

import (
	"time"

	"legendstats/pkg/regions"
)

// SummonerIndex is the search index, upserted on every profile view.
type SummonerIndex struct {
	Puuid       string           `gorm:"primaryKey;type:char(78)"`
	Region      regions.Platform `gorm:"primaryKey;type:varchar(5)"`
	RiotId      string           `gorm:"type:varchar(106);index:idx_riot_id_search"`
	ProfileIcon int
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
