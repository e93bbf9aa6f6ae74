package repositories

import (
	"legendstats/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const searchLimit = 20

// Public Interface.
type SummonerRepository interface {
	Upsert(summoner *models.SummonerIndex) error
	SearchByRiotId(query string) ([]models.SummonerIndex, error)
}

// Summoner repository structure.
type summonerRepository struct {
	db *gorm.DB
}

// Create a summoner repository.
func NewSummonerRepository(db *gorm.DB) SummonerRepository {
	return &summonerRepository{db: db}
}

// Upsert refreshes the search index entry for a player.
func (sr *summonerRepository) Upsert(summoner *models.SummonerIndex) error {
	return sr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "puuid"}, {Name: "region"}},
		DoUpdates: clause.AssignmentColumns([]string{"riot_id", "profile_icon", "updated_at"}),
	}).Create(summoner).Error
}

// SearchByRiotId returns players whose riot id starts with the query.
func (sr *summonerRepository) SearchByRiotId(query string) ([]models.SummonerIndex, error) {
	var summoners []models.SummonerIndex
	err := sr.db.
		Where("riot_id ILIKE ?", query+"%").
		Order("updated_at DESC").
		Limit(searchLimit).
		Find(&summoners).Error
	if err != nil {
		return nil, err
	}
	return summoners, nil
}
