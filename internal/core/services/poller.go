package services

import (
	"context"
	"sync"
	"time"

	"github.com/ragbase/kbchat/internal/core/ports/driving"
	"github.com/ragbase/kbchat/internal/logger"
)

// Poller refreshes the document listing on a fixed interval. The loop
// is tied to the context passed to Start so teardown cancels the
// outstanding timer deterministically. There is no backoff or jitter:
// a failed refresh is logged and the next tick proceeds as normal.
type Poller struct {
	feed     driving.DocumentService
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewPoller creates a poller over the given document service.
// A non-positive interval falls back to 10 seconds.
func NewPoller(feed driving.DocumentService, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Poller{feed: feed, interval: interval}
}

// Start performs an immediate refresh and then refreshes every
// interval. It blocks until the context is cancelled or Stop is
// called.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil // Already running
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.mu.Unlock()

	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.stopCh:
			return nil
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

// Stop shuts the poller down and waits for an in-flight refresh.
func (p *Poller) Stop() error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	close(p.stopCh)
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

// Running reports whether the poller loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// refresh performs one listing fetch. Errors are logged, not surfaced:
// the feed keeps its previous listing.
func (p *Poller) refresh(ctx context.Context) {
	p.wg.Add(1)
	defer p.wg.Done()

	if _, err := p.feed.Refresh(ctx); err != nil {
		logger.Warn("document resync failed: %v", err)
	}
}
