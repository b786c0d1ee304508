package changelog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultRefreshPeriod is used when the caller supplies a non-positive
// period for the audit view.
const DefaultRefreshPeriod = 5 * time.Second

type refresherState int

const (
	stateIdle refresherState = iota
	stateRunning
	stateStopped
)

// Refresher periodically replays the log and hands the result to a
// caller-supplied publish function. The publish function owns the handoff to
// the UI thread; the refresher makes no assumption about which goroutine
// runs the sink behind it. A transient read failure is logged and the
// schedule continues.
type Refresher struct {
	log     *Log
	period  time.Duration
	publish func([]Entry)
	logger  *zap.Logger

	mu     sync.Mutex
	state  refresherState
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher builds a refresher over log. A period ≤ 0 falls back to
// DefaultRefreshPeriod.
func NewRefresher(log *Log, period time.Duration, publish func([]Entry), logger *zap.Logger) *Refresher {
	if period <= 0 {
		period = DefaultRefreshPeriod
	}

	return &Refresher{
		log:     log,
		period:  period,
		publish: publish,
		logger:  logger,
	}
}

// Start launches the background worker. It ticks immediately and then once
// per period. Calling Start on a running or stopped refresher is a no-op.
func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateIdle {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	r.state = stateRunning

	go r.run(ctx)
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	r.tick(ctx)

	for {
		select {
		case <-ticker.C:
			r.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	entries, err := r.log.ReadAll()
	if err != nil {
		r.logger.Warn("change log replay failed", zap.Error(err))
		return
	}

	// A close during the replay discards the in-flight result.
	if ctx.Err() != nil {
		return
	}

	r.publish(entries)
}

// Close stops the schedule and interrupts any in-flight tick. The refresher
// cannot be restarted afterwards.
func (r *Refresher) Close() {
	r.mu.Lock()
	wasRunning := r.state == stateRunning
	r.state = stateStopped
	r.mu.Unlock()

	if !wasRunning {
		return
	}

	r.cancel()
	<-r.done
}
