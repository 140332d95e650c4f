package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/gopetstore/petstore/internal/domains/store/domain"
	"github.com/gopetstore/petstore/internal/domains/store/ports"
	"github.com/gopetstore/petstore/internal/shared/identity"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the in-memory order collection plus the fixed inventory
// mapping. The inventory is pre-seeded and read-only; no operation here
// mutates it.
type Repository struct {
	mu        sync.RWMutex
	orders    map[int64]*domain.Order
	order     []int64
	inventory map[string]int32
}

func NewRepository() *Repository {
	return &Repository{
		orders: map[int64]*domain.Order{},
		inventory: map[string]int32{
			"available": 5,
			"pending":   3,
			"sold":      2,
		},
	}
}

// Save inserts or replaces an order. An order without an id gets the next
// free one, recomputed from the current maximum key.
func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	if clone.ID == 0 {
		clone.ID = identity.NextID(r.orders)
	}
	if _, ok := r.orders[clone.ID]; !ok {
		r.order = append(r.order, clone.ID)
	}
	r.orders[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, id := range r.order {
		clone := *r.orders[id]
		list = append(list, &clone)
	}
	return list, nil
}

// Inventory returns a copy of the fixed status-to-count mapping.
func (r *Repository) Inventory(_ context.Context) (map[string]int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[string]int32, len(r.inventory))
	for status, count := range r.inventory {
		result[status] = count
	}
	return result, nil
}
