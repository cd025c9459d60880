package repository

import (
	"context"
	"sync"

	"github.com/rabwill/pizza-api/internal/domain/entities"
	"github.com/rabwill/pizza-api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// OrderMemoryRepository is the in-memory order store used when DynamoDB is
// not reachable at startup. The mutex covers the whole read-modify-write of
// UpdateStatusByID so the pending check and the flip are atomic, matching
// the conditional-update semantics of the DynamoDB repository.

type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders []entities.Order
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	o.ID = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderMemoryRepository) List(context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *OrderMemoryRepository) UpdateStatusByID(_ context.Context, id string, from, to entities.OrderStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID != id {
			continue
		}
		if o.Status != from {
			return entities.Order{}, nil
		}
		o.Status = to
		r.orders[i] = o
		return o, nil
	}
	return entities.Order{}, nil
}
