package repositories

import (
	"context"
	"fmt"

	"ministry/tender-engine/internal/models"
)

func bidsKey(tenderID string) string {
	return "bids:" + tenderID
}

type BidRepository interface {
	FindByTender(ctx context.Context, tenderID string) ([]models.Bid, error)
	SaveForTender(ctx context.Context, tenderID string, bids []models.Bid) error
}

type bidRepository struct {
	store RecordStore
}

func NewBidRepository(store RecordStore) BidRepository {
	return &bidRepository{store: store}
}

// FindByTender implements BidRepository. A tender without bids yields an empty slice.
func (r *bidRepository) FindByTender(ctx context.Context, tenderID string) ([]models.Bid, error) {
	bids := []models.Bid{}
	if _, err := getJSON(ctx, r.store, bidsKey(tenderID), &bids); err != nil {
		return nil, fmt.Errorf("failed to find bids: %w", err)
	}
	return bids, nil
}

// SaveForTender implements BidRepository.
func (r *bidRepository) SaveForTender(ctx context.Context, tenderID string, bids []models.Bid) error {
	for _, bid := range bids {
		if bid.TenderID != tenderID {
			return fmt.Errorf("failed to save bids: bid from %s belongs to tender %s", bid.BidderID, bid.TenderID)
		}
	}
	if err := setJSON(ctx, r.store, bidsKey(tenderID), bids); err != nil {
		return fmt.Errorf("failed to save bids: %w", err)
	}
	return nil
}
