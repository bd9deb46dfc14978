package prefs

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preference is one persisted key-value pair. The column is named pref_key
// because "key" is reserved in MySQL.
type Preference struct {
	Key   string `gorm:"column:pref_key;primaryKey;type:varchar(64)"`
	Value string `gorm:"column:pref_value;type:varchar(255);not null"`
}

// GormStore persists preferences in a single table so session state
// survives a restart.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) get(key string) (string, bool) {
	var pref Preference
	err := s.DB.First(&pref, "pref_key = ?", key).Error
	if err != nil {
		return "", false
	}
	return pref.Value, true
}

func (s *GormStore) put(key, value string) error {
	pref := Preference{Key: key, Value: value}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"pref_value"}),
	}).Create(&pref).Error
}

func (s *GormStore) GetBool(key string, def bool) bool {
	v, ok := s.get(key)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}

func (s *GormStore) GetString(key string, def string) string {
	v, ok := s.get(key)
	if !ok {
		return def
	}
	return v
}

func (s *GormStore) PutBool(key string, value bool) error {
	return s.put(key, strconv.FormatBool(value))
}

func (s *GormStore) PutString(key string, value string) error {
	return s.put(key, value)
}

func (s *GormStore) ClearAll() error {
	err := s.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Preference{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
