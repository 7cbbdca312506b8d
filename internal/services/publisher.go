package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ministry/tender-engine/internal/models"
)

// Publisher surfaces entries in the public catalog. Upsert is idempotent by entry id.
type Publisher interface {
	Upsert(ctx context.Context, entry models.ListingEntry) error
}

type PublicListing struct {
	ID        string              `gorm:"type:text;primary_key" json:"id"`
	TenderID  string              `gorm:"type:text;index" json:"tender_id"`
	Kind      string              `gorm:"type:text" json:"kind"`
	Title     string              `gorm:"type:text" json:"title"`
	Status    models.TenderStatus `gorm:"type:text" json:"status"`
	Payload   datatypes.JSON      `gorm:"type:jsonb" json:"payload"`
	UpdatedAt time.Time           `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (PublicListing) TableName() string {
	return "public_listings"
}

type gormPublisher struct {
	db *gorm.DB
}

func NewGormPublisher(db *gorm.DB) Publisher {
	return &gormPublisher{db: db}
}

func (p *gormPublisher) Upsert(ctx context.Context, entry models.ListingEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode listing payload: %w", err)
	}

	listing := PublicListing{
		ID:        entry.ID,
		TenderID:  entry.TenderID,
		Kind:      entry.Kind,
		Title:     entry.Title,
		Status:    entry.Status,
		Payload:   datatypes.JSON(payload),
		UpdatedAt: time.Now(),
	}
	err = p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&listing).Error
	if err != nil {
		return fmt.Errorf("failed to upsert listing %s: %w", entry.ID, err)
	}
	return nil
}

type logPublisher struct{}

// NewLogPublisher logs listing entries instead of storing them. It is the
// publisher of the in-memory store mode.
func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) Upsert(ctx context.Context, entry models.ListingEntry) error {
	log.Printf("📰 Listing %s (%s) %q -> %s\n", entry.ID, entry.Kind, entry.Title, entry.Status)
	return nil
}
