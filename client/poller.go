package client

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/deviill007/ShakeHubInShop/entity"
)

const DefaultPollInterval = 5 * time.Second

// OrderPoller re-fetches the pending orders on a fixed interval for as long
// as the admin view is open. Each completed fetch replaces the list
// wholesale; there is no diffing and no in-flight guard, so a fetch slower
// than the interval overlaps the next tick and results land in completion
// order.
type OrderPoller struct {
	admin    *AdminClient
	interval time.Duration

	mu     sync.Mutex
	orders []entity.Order

	stop     chan struct{}
	stopOnce sync.Once
}

func NewOrderPoller(admin *AdminClient, interval time.Duration) *OrderPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &OrderPoller{
		admin:    admin,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start fetches once immediately, then on every tick until Stop or the
// context ends.
func (p *OrderPoller) Start(ctx context.Context) {
	go p.fetch(ctx)
	go func() {
		t := time.NewTicker(p.interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				go p.fetch(ctx)
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop tears the timer down. Safe to call more than once.
func (p *OrderPoller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

func (p *OrderPoller) fetch(ctx context.Context) {
	orders, err := p.admin.FetchPending(ctx)
	if err != nil {
		// Stale list stays until the next tick succeeds.
		log.Println("fetch pending orders:", err)
		return
	}
	p.mu.Lock()
	p.orders = orders
	p.mu.Unlock()
}

// Orders is a snapshot of the last successful fetch.
func (p *OrderPoller) Orders() []entity.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entity.Order, len(p.orders))
	copy(out, p.orders)
	return out
}

// ClearOrder marks the order ready and drops it from the local list right
// away rather than waiting out the next tick.
func (p *OrderPoller) ClearOrder(ctx context.Context, orderID uint) error {
	if err := p.admin.MarkReady(ctx, orderID); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.orders[:0]
	for _, o := range p.orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	p.orders = kept
	return nil
}
