package models

import (
	"time"

	"legendstats/pkg/regions"

	"gorm.io/datatypes"
)

// MatchCache stores raw match payloads opportunistically, so repeated
// profile views don't hit the upstream API for the same match.
type MatchCache struct {
	MatchId  string           `gorm:"primaryKey;type:varchar(20)"`
	Region   regions.Platform `gorm:"type:varchar(5)"`
	Data     datatypes.JSON   `gorm:"type:jsonb"`
	CachedAt time.Time        `gorm:"autoCreateTime"`
}

// BlobCache is a generic keyed blob with a timestamp, used for the tier list
// output and the winrate aggregate. TTL checks happen on read.
type BlobCache struct {
	CacheKey string         `gorm:"primaryKey;type:varchar(100)"`
	Data     datatypes.JSON `gorm:"type:jsonb"`
	CachedAt time.Time      `gorm:"autoCreateTime"`
}
