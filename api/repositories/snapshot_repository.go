package repositories

import (
	"legendstats/pkg/database/models"
	"legendstats/pkg/regions"

	"gorm.io/gorm"
)

// Public Interface.
type SnapshotRepository interface {
	Create(snapshot *models.RankSnapshot) error
	ListByPlayer(puuid string, region regions.Platform) ([]models.RankSnapshot, error)
}

// Snapshot repository structure.
type snapshotRepository struct {
	db *gorm.DB
}

// Create a snapshot repository.
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Create appends a new rank observation. Rows are append only.
func (sr *snapshotRepository) Create(snapshot *models.RankSnapshot) error {
	return sr.db.Create(snapshot).Error
}

// ListByPlayer returns every snapshot for a player ordered by fetch time.
func (sr *snapshotRepository) ListByPlayer(puuid string, region regions.Platform) ([]models.RankSnapshot, error) {
	var snapshots []models.RankSnapshot
	err := sr.db.
		Where("puuid = ? AND region = ?", puuid, region).
		Order("fetched_at ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
