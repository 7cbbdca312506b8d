package services

import (
	"context"
	"testing"
	"time"

	"github.com/peterldowns/testy/check"

	"ministry/tender-engine/internal/models"
)

type countingTenderService struct {
	TenderService
	calls chan struct{}
}

func (s *countingTenderService) RecheckStatuses(ctx context.Context) ([]models.Tender, error) {
	s.calls <- struct{}{}
	return nil, nil
}

func TestWorker_TriggerRunsRecheck(t *testing.T) {
	svc := &countingTenderService{calls: make(chan struct{}, 4)}
	w := NewWorker(svc, time.Hour)
	w.Start(context.Background())
	defer w.Stop()

	w.Trigger()

	select {
	case <-svc.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("recheck did not run after trigger")
	}
}

func TestWorker_TickRunsRecheck(t *testing.T) {
	svc := &countingTenderService{calls: make(chan struct{}, 16)}
	w := NewWorker(svc, 10*time.Millisecond)
	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-svc.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("recheck did not run on tick")
	}
}

func TestWorker_StopIsIdempotent(t *testing.T) {
	svc := &countingTenderService{calls: make(chan struct{}, 1)}
	w := NewWorker(svc, time.Hour)
	w.Start(context.Background())

	w.Stop()
	w.Stop()

	w.Trigger()
	check.Equal(t, 0, len(svc.calls))
}

func TestWorker_ClosesOverdueTenders(t *testing.T) {
	h := newHarness()
	tdr := h.publishedTender(t, "2026-03-01")
	w := NewWorker(h.service, time.Hour)
	w.Start(context.Background())

	w.Trigger()
	deadline := time.Now().Add(2 * time.Second)
	for h.status(t, tdr.ID) != models.TenderClosed && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()

	check.Equal(t, models.TenderClosed, h.status(t, tdr.ID))
	check.Equal(t, 1, h.notifier.count())
}
