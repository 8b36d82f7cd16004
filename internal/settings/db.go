package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/graffic/citas-go/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preference is a persisted key-value pair
type Preference struct {
	Key       string `gorm:"primaryKey;size:100"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for Preference
func (Preference) TableName() string {
	return "preferences"
}

// DBStore keeps preferences in the preferences table of the SQLite database
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates the preferences table if needed and returns the store
func NewDBStore(db *storage.DB) (*DBStore, error) {
	if err := db.AutoMigrate(&Preference{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preferences table: %w", err)
	}
	return &DBStore{db: db.DB}, nil
}

// Get returns the value stored under key
func (s *DBStore) Get(ctx context.Context, key string) (string, bool, error) {
	var pref Preference
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get preference: %w", err)
	}
	return pref.Value, true, nil
}

// Set inserts or replaces the value stored under key
func (s *DBStore) Set(ctx context.Context, key, value string) error {
	pref := Preference{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}
