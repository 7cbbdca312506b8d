package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordStore is the durable key-value collaborator. Get returns the last value
// written under key; there are no transactions.
type RecordStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type Record struct {
	Key       string         `gorm:"type:text;primary_key" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Record) TableName() string {
	return "records"
}

type gormRecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) RecordStore {
	return &gormRecordStore{db: db}
}

// Get implements RecordStore.
func (s *gormRecordStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec Record
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

// Set implements RecordStore.
func (s *gormRecordStore) Set(ctx context.Context, key string, value []byte) error {
	rec := Record{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

func getJSON(ctx context.Context, store RecordStore, key string, target any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	return true, nil
}

func setJSON(ctx context.Context, store RecordStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %s: %w", key, err)
	}
	return store.Set(ctx, key, raw)
}
