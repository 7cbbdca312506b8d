package repositories

import (
	"context"
	"errors"
	"fmt"

	"ministry/tender-engine/internal/models"
)

var ErrTenderNotFound = errors.New("tender not found")

const tenderIndexKey = "tenders"

func tenderKey(id string) string {
	return "tender:" + id
}

type TenderRepository interface {
	FindByID(ctx context.Context, id string) (*models.TenderRecord, error)
	FindAll(ctx context.Context) ([]models.TenderRecord, error)
	Save(ctx context.Context, rec *models.TenderRecord) error
}

type tenderRepository struct {
	store RecordStore
}

func NewTenderRepository(store RecordStore) TenderRepository {
	return &tenderRepository{store: store}
}

// FindByID implements TenderRepository.
func (r *tenderRepository) FindByID(ctx context.Context, id string) (*models.TenderRecord, error) {
	var rec models.TenderRecord
	found, err := getJSON(ctx, r.store, tenderKey(id), &rec)
	if err != nil {
		return nil, fmt.Errorf("failed to find tender: %w", err)
	}
	if !found {
		return nil, ErrTenderNotFound
	}
	return &rec, nil
}

// FindAll implements TenderRepository. Tenders come back in creation order.
func (r *tenderRepository) FindAll(ctx context.Context) ([]models.TenderRecord, error) {
	ids, err := r.index(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]models.TenderRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := r.FindByID(ctx, id)
		if errors.Is(err, ErrTenderNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// Save implements TenderRepository. The whole record is one write; a new
// tender is added to the index only after its record is stored.
func (r *tenderRepository) Save(ctx context.Context, rec *models.TenderRecord) error {
	if rec.Tender.ID == "" {
		return fmt.Errorf("failed to save tender: missing id")
	}
	if err := setJSON(ctx, r.store, tenderKey(rec.Tender.ID), rec); err != nil {
		return fmt.Errorf("failed to save tender: %w", err)
	}

	ids, err := r.index(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == rec.Tender.ID {
			return nil
		}
	}
	if err := setJSON(ctx, r.store, tenderIndexKey, append(ids, rec.Tender.ID)); err != nil {
		return fmt.Errorf("failed to update tender index: %w", err)
	}
	return nil
}

func (r *tenderRepository) index(ctx context.Context) ([]string, error) {
	var ids []string
	if _, err := getJSON(ctx, r.store, tenderIndexKey, &ids); err != nil {
		return nil, fmt.Errorf("failed to read tender index: %w", err)
	}
	return ids, nil
}
