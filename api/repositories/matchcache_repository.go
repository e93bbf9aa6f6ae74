package repositories

import (
	"errors"
	"time"

	"legendstats/pkg/database/models"
	"legendstats/pkg/regions"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Matches basically never change after the game ended, the TTL only
// guards against schema drift on new patches.
const matchCacheTtl = 7 * 24 * time.Hour

// Public Interface.
type MatchCacheRepository interface {
	GetMatch(matchId string) ([]byte, error)
	SetMatch(matchId string, region regions.Platform, data []byte) error
}

// Match cache repository structure.
type matchCacheRepository struct {
	db *gorm.DB
}

// Create a match cache repository.
func NewMatchCacheRepository(db *gorm.DB) MatchCacheRepository {
	return &matchCacheRepository{db: db}
}

// GetMatch returns the raw cached payload, or nil when missing or stale.
func (mr *matchCacheRepository) GetMatch(matchId string) ([]byte, error) {
	var cached models.MatchCache
	err := mr.db.Where("match_id = ?", matchId).First(&cached).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if time.Since(cached.CachedAt) > matchCacheTtl {
		return nil, nil
	}
	return cached.Data, nil
}

// SetMatch upserts the raw match payload.
func (mr *matchCacheRepository) SetMatch(matchId string, region regions.Platform, data []byte) error {
	entry := &models.MatchCache{
		MatchId:  matchId,
		Region:   region,
		Data:     data,
		CachedAt: time.Now(),
	}
	return mr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"region", "data", "cached_at"}),
	}).Create(entry).Error
}
