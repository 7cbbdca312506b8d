package repositories

import (
	"context"
	"fmt"

	"ministry/tender-engine/internal/models"
)

func vendorKey(vendorID string) string {
	return "vendor:" + vendorID
}

type VendorWorkflowRepository interface {
	// FindByVendor returns nil without error when the vendor has no record.
	FindByVendor(ctx context.Context, vendorID string) (*models.VendorWorkflowStatus, error)
	Save(ctx context.Context, status *models.VendorWorkflowStatus) error
}

type vendorWorkflowRepository struct {
	store RecordStore
}

func NewVendorWorkflowRepository(store RecordStore) VendorWorkflowRepository {
	return &vendorWorkflowRepository{store: store}
}

// FindByVendor implements VendorWorkflowRepository.
func (r *vendorWorkflowRepository) FindByVendor(ctx context.Context, vendorID string) (*models.VendorWorkflowStatus, error) {
	var status models.VendorWorkflowStatus
	found, err := getJSON(ctx, r.store, vendorKey(vendorID), &status)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor workflow: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &status, nil
}

// Save implements VendorWorkflowRepository.
func (r *vendorWorkflowRepository) Save(ctx context.Context, status *models.VendorWorkflowStatus) error {
	if status.VendorID == "" {
		return fmt.Errorf("failed to save vendor workflow: missing vendor id")
	}
	if err := setJSON(ctx, r.store, vendorKey(status.VendorID), status); err != nil {
		return fmt.Errorf("failed to save vendor workflow: %w", err)
	}
	return nil
}
