package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/repositories"
)

type sentNotification struct {
	RecipientID string
	Subject     string
	Body        string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (n *recordingNotifier) Send(ctx context.Context, recipientID, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{RecipientID: recipientID, Subject: subject, Body: body})
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type recordingPublisher struct {
	mu      sync.Mutex
	entries []models.ListingEntry
	err     error
}

func (p *recordingPublisher) Upsert(ctx context.Context, entry models.ListingEntry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, entry)
	return p.err
}

// flakyStore fails writes whose key starts with failPrefix.
type flakyStore struct {
	*repositories.MemoryRecordStore
	failPrefix string
}

func (f *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failPrefix != "" && strings.HasPrefix(key, f.failPrefix) {
		return errors.New("store unavailable")
	}
	return f.MemoryRecordStore.Set(ctx, key, value)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	store     *flakyStore
	clock     *fakeClock
	notifier  *recordingNotifier
	publisher *recordingPublisher
	gate      WorkflowGateService
	service   TenderService
	tenders   repositories.TenderRepository
	bids      repositories.BidRepository
}

func newHarness() *harness {
	store := &flakyStore{MemoryRecordStore: repositories.NewMemoryRecordStore()}
	clock := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	notifier := &recordingNotifier{}
	publisher := &recordingPublisher{}
	tenders := repositories.NewTenderRepository(store)
	bids := repositories.NewBidRepository(store)
	gate := NewWorkflowGateService(repositories.NewVendorWorkflowRepository(store), clock.Now)

	return &harness{
		store:     store,
		clock:     clock,
		notifier:  notifier,
		publisher: publisher,
		gate:      gate,
		tenders:   tenders,
		bids:      bids,
		service:   NewTenderService(tenders, bids, gate, notifier, publisher, "procurement-committee", clock.Now),
	}
}
