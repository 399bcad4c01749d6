package order

import (
	"context"
	"errors"
	"testing"

	"cinos/internal/drink"
)

func TestServiceAddDrinkNormalizesInput(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	orderID, err := service.CreateOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line, err := service.AddDrink(ctx, orderID, "latte", []string{"vanilla"}, "large")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.Index != 0 {
		t.Errorf("expected index 0, got %d", line.Index)
	}
	if line.Base != "Latte" || line.Size != "LARGE" {
		t.Errorf("unexpected line: %+v", line)
	}
}

func TestServiceAddDrinkInvalidSizeWritesNothing(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	orderID, err := service.CreateOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.AddDrink(ctx, orderID, "latte", nil, "venti")
	var sizeErr *drink.InvalidSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected InvalidSizeError, got %v", err)
	}

	drinks, err := repo.GetDrinks(ctx, orderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drinks) != 0 {
		t.Errorf("invalid drink must not be stored, got %d rows", len(drinks))
	}
}

func TestServiceAddDrinkUnknownOrder(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.AddDrink(context.Background(), "missing", "latte", nil, "small")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestServiceChangeDrinkSize(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	orderID, err := service.CreateOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.AddDrink(ctx, orderID, "latte", nil, "small"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line, err := service.ChangeDrinkSize(ctx, orderID, 0, "mega")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Size != "MEGA" {
		t.Errorf("expected size MEGA, got %s", line.Size)
	}

	totals, err := service.GetTotals(ctx, orderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != 2.15 {
		t.Errorf("expected subtotal 2.15 after resize, got %.4f", totals.Subtotal)
	}
}

func TestServiceChangeDrinkSizeInvalid(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	orderID, err := service.CreateOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.AddDrink(ctx, orderID, "latte", nil, "small"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.ChangeDrinkSize(ctx, orderID, 0, "gigantic")
	var sizeErr *drink.InvalidSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected InvalidSizeError, got %v", err)
	}

	// Stored size must be untouched.
	summary, err := service.GetOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Drinks[0].Size != "SMALL" {
		t.Errorf("failed resize must not change stored size, got %s", summary.Drinks[0].Size)
	}
}

func TestServiceChangeDrinkSizeBadIndex(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	orderID, err := service.CreateOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.ChangeDrinkSize(ctx, orderID, 3, "small")
	if !errors.Is(err, ErrDrinkNotFound) {
		t.Fatalf("expected ErrDrinkNotFound, got %v", err)
	}
}

func TestServiceReceiptFlow(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	orderID, err := service.CreateOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.AddDrink(ctx, orderID, "latte", []string{"vanilla"}, "large"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.AddDrink(ctx, orderID, "espresso", nil, "small"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receipt, err := service.GetReceipt(ctx, orderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(receipt.Drinks) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(receipt.Drinks))
	}
	if receipt.Subtotal != 3.70 || receipt.Tax != 0.27 || receipt.Total != 3.97 {
		t.Errorf("unexpected receipt totals: %+v", receipt)
	}
}

func TestServiceGetReceiptUnknownOrder(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.GetReceipt(context.Background(), "missing")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
