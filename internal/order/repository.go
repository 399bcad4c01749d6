package order

import (
	"context"
	"errors"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrDrinkNotFound = errors.New("drink not found in order")
)

// DrinkRecord is the stored form of a drink line: already-normalized
// base, canonical size name, and flavor list.
type DrinkRecord struct {
	Base    string
	Size    string
	Flavors []string
}

// Repository defines the data-access contract for orders.
// Service depends ONLY on this interface.
type Repository interface {
	CreateOrder(ctx context.Context) (string, error)
	AddDrink(ctx context.Context, orderID string, rec DrinkRecord) (int, error)
	UpdateDrinkSize(ctx context.Context, orderID string, index int, size string) error
	GetDrinks(ctx context.Context, orderID string) ([]DrinkRecord, error)
}
