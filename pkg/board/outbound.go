package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/models"
)

var pushCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reelpipe_board_pushes_total",
	Help: "Outbound board status writes, by result.",
}, []string{"result"})

// Pusher mirrors task status changes to board pages. Pushes are
// debounced: enqueueing a newer status for a page before the previous one
// was flushed replaces it, so each page costs at most one API call per
// flush cycle. Pushing never blocks the pipeline.
type Pusher struct {
	api         API
	flushEvery  time.Duration
	maxAttempts int

	mu      sync.Mutex
	pending map[string]models.Status

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewPusher creates a Pusher. api may be nil, which disables outbound
// sync: Push becomes a no-op.
func NewPusher(api API, cfg *config.BoardConfig) *Pusher {
	return &Pusher{
		api:         api,
		flushEvery:  cfg.FlushInterval,
		maxAttempts: cfg.MaxPushRetries,
		pending:     make(map[string]models.Status),
		stopCh:      make(chan struct{}),
		logger:      slog.Default().With("component", "board-pusher"),
	}
}

// Push queues a status write for a page. Worker-internal statuses with no
// board name are dropped.
func (p *Pusher) Push(pageID string, status models.Status) {
	if p.api == nil || pageID == "" {
		return
	}
	if _, ok := BoardName(status); !ok {
		return
	}
	p.mu.Lock()
	p.pending[pageID] = status
	p.mu.Unlock()
}

// Start begins the flush loop.
func (p *Pusher) Start(ctx context.Context) {
	if p.api == nil {
		p.logger.Info("Outbound board sync disabled")
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.flushEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-p.stopCh:
				// Final flush so review-gate statuses land on the board
				// before shutdown.
				p.flush(context.Background())
				return
			case <-ticker.C:
				p.flush(ctx)
			}
		}
	}()
}

// Stop flushes outstanding pushes and stops the loop.
func (p *Pusher) Stop() {
	if p.api == nil {
		return
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// flush drains the pending map and writes each page once, retrying
// individual writes with linear backoff. A page that keeps failing is
// dropped after maxAttempts; the next status change re-queues it.
func (p *Pusher) flush(ctx context.Context) {
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		return
	}
	batch := p.pending
	p.pending = make(map[string]models.Status)
	p.mu.Unlock()

	for pageID, status := range batch {
		name, _ := BoardName(status)
		if err := p.pushOne(ctx, pageID, name); err != nil {
			pushCounter.WithLabelValues("error").Inc()
			p.logger.Error("Giving up on board status push",
				"page_id", pageID, "status", string(status), "error", err)
			continue
		}
		pushCounter.WithLabelValues("ok").Inc()
	}
}

func (p *Pusher) pushOne(ctx context.Context, pageID, boardStatus string) error {
	var err error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		err = p.api.UpdateStatus(ctx, pageID, boardStatus)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		p.logger.Warn("Board status push failed",
			"page_id", pageID, "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	return err
}
