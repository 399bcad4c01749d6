package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository is safe for concurrent use: it backs the API
// when ORDERS_BACKEND=memory, not just tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string][]DrinkRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string][]DrinkRecord),
	}
}

func (r *InMemoryRepository) CreateOrder(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	r.orders[id] = []DrinkRecord{}
	return id, nil
}

func (r *InMemoryRepository) AddDrink(ctx context.Context, orderID string, rec DrinkRecord) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drinks, ok := r.orders[orderID]
	if !ok {
		return 0, ErrOrderNotFound
	}
	r.orders[orderID] = append(drinks, rec)
	return len(drinks), nil
}

func (r *InMemoryRepository) UpdateDrinkSize(ctx context.Context, orderID string, index int, size string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	drinks, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if index < 0 || index >= len(drinks) {
		return ErrDrinkNotFound
	}
	drinks[index].Size = size
	return nil
}

func (r *InMemoryRepository) GetDrinks(ctx context.Context, orderID string) ([]DrinkRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drinks, ok := r.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}

	out := make([]DrinkRecord, len(drinks))
	copy(out, drinks)
	return out, nil
}
