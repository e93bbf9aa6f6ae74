package models

import (
	"time"

	"legendstats/pkg/regions"
)

// RankSnapshot is one point in time observation of a player rank, appended
// every time a profile is viewed. Rows are never updated or deleted here,
// retention is handled outside the service.
type RankSnapshot struct {
	ID uint `gorm:"primaryKey"`

	Puuid  string           `gorm:"type:char(78);index:idx_snapshot_lookup,priority:1"`
	Region regions.Platform `gorm:"type:varchar(5);index:idx_snapshot_lookup,priority:2"`

	QueueType    string `gorm:"type:queue_type;index:idx_snapshot_lookup,priority:3"`
	Tier         string `gorm:"type:tier_type"`
	Division     string `gorm:"type:division_type"`
	LeaguePoints int
	Wins         int
	Losses       int

	FetchedAt time.Time `gorm:"autoCreateTime;index:idx_snapshot_lookup,priority:4"`
}
