package emitter

import (
	"sync"

	"github.com/retaildemo/eventgen/internal/models"
	"github.com/retaildemo/eventgen/internal/utils"
)

// OrderHistory is a bounded buffer of recently emitted orders. Dependent
// events (out-of-stock notices) sample from it; once full, new orders
// overwrite the oldest entries.
type OrderHistory struct {
	mu       sync.RWMutex
	orders   []models.OnlineOrder
	next     int
	capacity int
}

// NewOrderHistory creates an empty history with the given capacity.
func NewOrderHistory(capacity int) *OrderHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &OrderHistory{
		orders:   make([]models.OnlineOrder, 0, capacity),
		capacity: capacity,
	}
}

// Add records an order, evicting the oldest once at capacity.
func (h *OrderHistory) Add(order models.OnlineOrder) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.orders) < h.capacity {
		h.orders = append(h.orders, order)
		return
	}
	h.orders[h.next] = order
	h.next = (h.next + 1) % h.capacity
}

// Random returns one recorded order chosen uniformly at random. The
// second return value is false while the history is empty.
func (h *OrderHistory) Random(rng *utils.Random) (models.OnlineOrder, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.orders) == 0 {
		return models.OnlineOrder{}, false
	}
	return h.orders[rng.IntN(len(h.orders))], true
}

// Len reports how many orders are currently buffered.
func (h *OrderHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.orders)
}
