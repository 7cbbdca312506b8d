package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"

	"ministry/tender-engine/internal/models"
)

func TestMemoryRecordStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRecordStore()

	_, found, err := store.Get(ctx, "missing")
	check.NoError(t, err)
	check.False(t, found)

	value := []byte(`{"a":1}`)
	assert.NoError(t, store.Set(ctx, "k", value))
	value[2] = 'b'

	got, found, err := store.Get(ctx, "k")
	check.NoError(t, err)
	check.True(t, found)
	check.Equal(t, `{"a":1}`, string(got))

	assert.NoError(t, store.Set(ctx, "k", []byte(`{"a":2}`)))
	got, _, _ = store.Get(ctx, "k")
	check.Equal(t, `{"a":2}`, string(got))
	check.Equal(t, 1, store.Keys())
}

func TestMemoryRecordStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewMemoryRecordStore()

	check.Error(t, store.Set(ctx, "k", []byte("1")))
	_, _, err := store.Get(ctx, "k")
	check.Error(t, err)
}

func TestTenderRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewTenderRepository(NewMemoryRecordStore())
	closeDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	first := &models.TenderRecord{Tender: models.Tender{
		ID:             "t-1",
		Title:          "School furniture",
		EstimatedValue: decimal.RequireFromString("125000.75"),
		CloseDate:      &closeDate,
		Status:         models.TenderDraft,
	}}
	second := &models.TenderRecord{Tender: models.Tender{ID: "t-2", Title: "Medical supplies", Status: models.TenderDraft}}

	assert.NoError(t, repo.Save(ctx, first))
	assert.NoError(t, repo.Save(ctx, second))

	first.Tender.Status = models.TenderPublished
	assert.NoError(t, repo.Save(ctx, first))

	got, err := repo.FindByID(ctx, "t-1")
	assert.NoError(t, err)
	check.Equal(t, models.TenderPublished, got.Tender.Status)
	check.True(t, got.Tender.EstimatedValue.Equal(decimal.RequireFromString("125000.75")))
	check.True(t, got.Tender.CloseDate.Equal(closeDate))

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	check.Equal(t, 2, len(all))
	check.Equal(t, "t-1", all[0].Tender.ID)
	check.Equal(t, "t-2", all[1].Tender.ID)
}

func TestTenderRepository_NotFound(t *testing.T) {
	repo := NewTenderRepository(NewMemoryRecordStore())

	_, err := repo.FindByID(context.Background(), "nope")

	check.True(t, errors.Is(err, ErrTenderNotFound))
}

func TestTenderRepository_RejectsMissingID(t *testing.T) {
	repo := NewTenderRepository(NewMemoryRecordStore())

	check.Error(t, repo.Save(context.Background(), &models.TenderRecord{}))
}

func TestBidRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBidRepository(NewMemoryRecordStore())

	bids, err := repo.FindByTender(ctx, "t-1")
	assert.NoError(t, err)
	check.NotNil(t, bids)
	check.Equal(t, 0, len(bids))

	assert.NoError(t, repo.SaveForTender(ctx, "t-1", []models.Bid{
		{TenderID: "t-1", BidderID: "v-1", BidAmount: decimal.NewFromInt(900)},
		{TenderID: "t-1", BidderID: "v-2", BidAmount: decimal.NewFromInt(950)},
	}))

	bids, err = repo.FindByTender(ctx, "t-1")
	assert.NoError(t, err)
	check.Equal(t, 2, len(bids))
	check.Equal(t, "v-2", bids[1].BidderID)

	other, err := repo.FindByTender(ctx, "t-2")
	assert.NoError(t, err)
	check.Equal(t, 0, len(other))
}

func TestBidRepository_RejectsForeignBid(t *testing.T) {
	repo := NewBidRepository(NewMemoryRecordStore())

	err := repo.SaveForTender(context.Background(), "t-1", []models.Bid{{TenderID: "t-2", BidderID: "v-1"}})

	check.Error(t, err)
}

func TestVendorWorkflowRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorWorkflowRepository(NewMemoryRecordStore())

	missing, err := repo.FindByVendor(ctx, "v-1")
	check.NoError(t, err)
	check.True(t, missing == nil)

	assert.NoError(t, repo.Save(ctx, &models.VendorWorkflowStatus{
		VendorID:              "v-1",
		RegistrationCompleted: true,
		FinalApprovalStatus:   models.ApprovalPending,
	}))

	got, err := repo.FindByVendor(ctx, "v-1")
	assert.NoError(t, err)
	check.True(t, got.RegistrationCompleted)
	check.Equal(t, models.ApprovalPending, got.FinalApprovalStatus)

	check.Error(t, repo.Save(ctx, &models.VendorWorkflowStatus{}))
}
