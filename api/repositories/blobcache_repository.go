package repositories

import (
	"errors"
	"time"

	"legendstats/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cache keys used by the services.
const (
	WinrateAggregateKey = "winrate:aggregate"
	TierlistKeyPrefix   = "tierlist:"
)

// Public Interface.
type BlobCacheRepository interface {
	GetKey(key string, maxAge time.Duration) ([]byte, error)
	SetKey(key string, data []byte) error
}

// Blob cache repository structure.
// Works as a database fallback behind the Redis cache.
type blobCacheRepository struct {
	db *gorm.DB
}

// Create a blob cache repository.
func NewBlobCacheRepository(db *gorm.DB) BlobCacheRepository {
	return &blobCacheRepository{db: db}
}

// GetKey gets the given key value.
// Returns nil when the key is missing or older than maxAge.
func (br *blobCacheRepository) GetKey(key string, maxAge time.Duration) ([]byte, error) {
	var entry models.BlobCache
	err := br.db.Where("cache_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if maxAge > 0 && time.Since(entry.CachedAt) > maxAge {
		return nil, nil
	}
	return entry.Data, nil
}

// SetKey upserts the given key value.
func (br *blobCacheRepository) SetKey(key string, data []byte) error {
	entry := &models.BlobCache{
		CacheKey: key,
		Data:     data,
		CachedAt: time.Now(),
	}
	return br.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "cached_at"}),
	}).Create(entry).Error
}
