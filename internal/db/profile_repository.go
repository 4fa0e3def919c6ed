package db

import (
	"errors"

	"github.com/velmora/aetheria/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository stores one SessionProfile document per viewer key. Every
// write is a whole-document replace; callers read-modify-write the full
// value and the last write wins.
type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// Load fetches the document for key. The second return value reports whether
// a document exists; a missing document is not an error.
func (repo *ProfileRepository) Load(key string) (models.SessionProfile, bool, error) {
	var profile models.SessionProfile
	err := repo.database.Where("key = ?", key).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SessionProfile{}, false, nil
	}
	if err != nil {
		return models.SessionProfile{}, false, err
	}
	return profile, true, nil
}

// Save replaces the whole document.
func (repo *ProfileRepository) Save(profile *models.SessionProfile) error {
	return repo.database.Save(profile).Error
}

// Clear removes the document entirely; a subsequent Load reports absence and
// the session flow restarts at onboarding.
func (repo *ProfileRepository) Clear(key string) error {
	return repo.database.Where("key = ?", key).Delete(&models.SessionProfile{}).Error
}
