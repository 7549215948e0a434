package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Poller periodically runs a named refresh function. A tick that
// arrives while a refresh is still in flight is skipped, so two
// refreshes of the same data never run concurrently.
type Poller struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running sync.Mutex
}

func NewPoller(name string, interval time.Duration, fn func(ctx context.Context) error) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		name:     name,
		interval: interval,
		fn:       fn,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs an immediate refresh and then ticks until Stop.
func (p *Poller) Start() {
	p.wg.Add(1)
	go p.run()
	slog.Info("Poller started", "name", p.name, "interval", p.interval)
}

// Stop cancels the poll loop and waits for an in-flight refresh to finish.
func (p *Poller) Stop() {
	p.cancel()
	p.wg.Wait()
	slog.Info("Poller stopped", "name", p.name)
}

func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.refresh()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.refresh()
		}
	}
}

func (p *Poller) refresh() {
	if !p.running.TryLock() {
		slog.Debug("Poller refresh still in flight, skipping tick", "name", p.name)
		return
	}
	defer p.running.Unlock()

	start := time.Now()
	if err := p.fn(p.ctx); err != nil {
		slog.Error("Poller refresh failed", "name", p.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Poller refresh completed", "name", p.name, "duration", time.Since(start))
}

// RunOnce triggers a single guarded refresh outside the tick loop.
func (p *Poller) RunOnce(ctx context.Context) error {
	if !p.running.TryLock() {
		return nil
	}
	defer p.running.Unlock()
	return p.fn(ctx)
}
