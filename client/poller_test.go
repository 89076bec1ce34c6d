package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deviill007/ShakeHubInShop/entity"
)

// fakeOrderAPI serves the two order endpoints from an in-memory list.
type fakeOrderAPI struct {
	mu     sync.Mutex
	orders []entity.Order
}

func (f *fakeOrderAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/order/get", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		pending := []entity.Order{}
		for _, o := range f.orders {
			if o.Status == entity.OrderStatusPending {
				pending = append(pending, o)
			}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "orders": pending})
	})
	mux.HandleFunc("/api/order/update", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OrderID uint `json:"orderId"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.orders {
			if f.orders[i].ID == req.OrderID {
				f.orders[i].Status = entity.OrderStatusReady
				json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "order": f.orders[i]})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Order not found"})
	})
	return mux
}

func (f *fakeOrderAPI) add(o entity.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, o)
}

func TestPollerPicksUpNewOrders(t *testing.T) {
	api := &fakeOrderAPI{}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	p := NewOrderPoller(NewAdminClient(srv.URL), 20*time.Millisecond)
	p.Start(context.Background())
	defer p.Stop()

	api.add(entity.Order{ID: 1, Table: "5", Total: 250, Status: entity.OrderStatusPending})

	assert.Eventually(t, func() bool {
		return len(p.Orders()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestPollerClearOrderRemovesLocally(t *testing.T) {
	api := &fakeOrderAPI{}
	api.add(entity.Order{ID: 1, Table: "5", Total: 250, Status: entity.OrderStatusPending})
	api.add(entity.Order{ID: 2, Table: "7", Total: 100, Status: entity.OrderStatusPending})

	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	p := NewOrderPoller(NewAdminClient(srv.URL), 20*time.Millisecond)
	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool {
		return len(p.Orders()) == 2
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, p.ClearOrder(context.Background(), 1))

	// Gone immediately, and it stays gone across later ticks.
	remaining := p.Orders()
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(2), remaining[0].ID)
	assert.Never(t, func() bool {
		for _, o := range p.Orders() {
			if o.ID == 1 {
				return true
			}
		}
		return false
	}, 150*time.Millisecond, 20*time.Millisecond)
}

func TestPollerClearUnknownOrder(t *testing.T) {
	api := &fakeOrderAPI{}
	srv := httptest.NewServer(api.handler())
	defer srv.Close()

	p := NewOrderPoller(NewAdminClient(srv.URL), 20*time.Millisecond)
	err := p.ClearOrder(context.Background(), 404)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestPollerKeepsStaleListOnFetchFailure(t *testing.T) {
	api := &fakeOrderAPI{}
	api.add(entity.Order{ID: 1, Table: "5", Total: 250, Status: entity.OrderStatusPending})

	var down bool
	var mu sync.Mutex
	inner := api.handler()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		failing := down
		mu.Unlock()
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		inner.ServeHTTP(w, r)
	}))
	defer srv.Close()

	p := NewOrderPoller(NewAdminClient(srv.URL), 20*time.Millisecond)
	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool {
		return len(p.Orders()) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	down = true
	mu.Unlock()

	// Failed ticks leave the previous list in place.
	assert.Never(t, func() bool {
		return len(p.Orders()) != 1
	}, 150*time.Millisecond, 20*time.Millisecond)
}
