package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// Worker drives the periodic status recheck. Ticks run one at a time on a
// single goroutine.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	// Trigger asks for a recheck as soon as possible without waiting for the next tick.
	Trigger()
}

type worker struct {
	tenderService TenderService
	interval      time.Duration
	triggerChan   chan struct{}
	stopChan      chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
}

func NewWorker(tenderService TenderService, interval time.Duration) Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &worker{
		tenderService: tenderService,
		interval:      interval,
		triggerChan:   make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting status recheck worker every %s\n", w.interval)

	w.wg.Add(1)
	go w.run(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		log.Println("🛑 Stopping worker...")
		close(w.stopChan)
	})
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// Trigger implements Worker. A pending trigger absorbs further ones.
func (w *worker) Trigger() {
	select {
	case w.triggerChan <- struct{}{}:
	default:
	}
}

func (w *worker) run(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Status recheck worker stopped")
			return
		case <-ctx.Done():
			log.Println("🔄 Status recheck worker context done")
			return
		case <-ticker.C:
			w.recheck(ctx)
		case <-w.triggerChan:
			w.recheck(ctx)
		}
	}
}

func (w *worker) recheck(ctx context.Context) {
	tenders, err := w.tenderService.RecheckStatuses(ctx)
	if err != nil {
		log.Printf("⚠️  Status recheck failed: %v\n", err)
		return
	}
	log.Printf("🔄 Rechecked %d tenders\n", len(tenders))
}
