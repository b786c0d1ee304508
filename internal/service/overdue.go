package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultOverduePeriod is used when the caller supplies a non-positive
// period for the overdue watcher.
const DefaultOverduePeriod = 10 * time.Second

type watcherState int

const (
	watcherIdle watcherState = iota
	watcherRunning
	watcherStopped
)

// OverdueWatcher periodically counts unpaid invoices past their due date
// and hands the count to a caller-supplied publish function. A transient
// query failure is logged and the schedule continues.
type OverdueWatcher struct {
	invoices *InvoiceService
	period   time.Duration
	publish  func(int)
	log      *zap.Logger

	mu     sync.Mutex
	state  watcherState
	cancel context.CancelFunc
	done   chan struct{}
}

// NewOverdueWatcher builds a watcher over the invoice service. A period ≤ 0
// falls back to DefaultOverduePeriod.
func NewOverdueWatcher(invoices *InvoiceService, period time.Duration, publish func(int), log *zap.Logger) *OverdueWatcher {
	if period <= 0 {
		period = DefaultOverduePeriod
	}

	return &OverdueWatcher{
		invoices: invoices,
		period:   period,
		publish:  publish,
		log:      log,
	}
}

// Start launches the background worker. It ticks immediately and then once
// per period. Calling Start on a running or stopped watcher is a no-op.
func (w *OverdueWatcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != watcherIdle {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	w.state = watcherRunning

	go w.run(ctx)
}

func (w *OverdueWatcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.period)
	defer ticker.Stop()

	w.tick(ctx)

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *OverdueWatcher) tick(ctx context.Context) {
	views, err := w.invoices.FindAll(ctx)
	if err != nil {
		w.log.Warn("overdue scan failed", zap.Error(err))
		return
	}

	now := time.Now()
	count := 0

	for _, v := range views {
		if v.Overdue(now) {
			count++
		}
	}

	if ctx.Err() != nil {
		return
	}

	w.publish(count)
}

// Close stops the schedule and interrupts any in-flight scan. The watcher
// cannot be restarted afterwards.
func (w *OverdueWatcher) Close() {
	w.mu.Lock()
	wasRunning := w.state == watcherRunning
	w.state = watcherStopped
	w.mu.Unlock()

	if !wasRunning {
		return
	}

	w.cancel()
	<-w.done
}
