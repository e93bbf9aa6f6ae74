package repositories

import (
	"errors"

	"legendstats/pkg/database/models"

	"gorm.io/gorm"
)

// Public Interface.
type PatchNoteRepository interface {
	List(limit int) ([]models.PatchNote, error)
	GetByVersion(version string) (*models.PatchNote, error)
}

// Patch note repository structure.
type patchNoteRepository struct {
	db *gorm.DB
}

// Create a patch note repository.
func NewPatchNoteRepository(db *gorm.DB) PatchNoteRepository {
	return &patchNoteRepository{db: db}
}

// List returns the newest patch notes first.
func (pr *patchNoteRepository) List(limit int) ([]models.PatchNote, error) {
	if limit <= 0 {
		limit = 10
	}

	var notes []models.PatchNote
	err := pr.db.
		Order("published_at DESC NULLS LAST").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// GetByVersion returns a single patch note, nil when absent.
func (pr *patchNoteRepository) GetByVersion(version string) (*models.PatchNote, error) {
	var note models.PatchNote
	err := pr.db.Where("version = ?", version).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}
