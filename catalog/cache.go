package catalog

import (
	"github.com/littlelemon/restaurant-app/models"
	"gorm.io/gorm"
)

// Cache is the on-disk copy of the menu, so a restart serves the last good
// fetch before the next one completes.
type Cache struct {
	DB *gorm.DB
}

func NewCache(db *gorm.DB) *Cache {
	return &Cache{DB: db}
}

// Save replaces the cached rows with items in one transaction, mirroring
// the in-memory ReplaceAll semantics.
func (s *Cache) Save(items []models.MenuItem) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// Load reads the cached rows in insertion order.
func (s *Cache) Load() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
