package order

import (
	"context"

	"cinos/internal/drink"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// DrinkLine is the API view of a stored drink.
type DrinkLine struct {
	Index       int      `json:"index"`
	Base        string   `json:"base"`
	Size        string   `json:"size"`
	Flavors     []string `json:"flavors"`
	Description string   `json:"description"`
}

// OrderSummary is the API view of a whole order.
type OrderSummary struct {
	ID     string      `json:"order_id"`
	Drinks []DrinkLine `json:"drinks"`
	Totals Totals      `json:"totals"`
}

// --------------------------------------------------
// CREATE ORDER
// --------------------------------------------------
func (s *Service) CreateOrder(ctx context.Context) (string, error) {
	return s.repo.CreateOrder(ctx)
}

// --------------------------------------------------
// ADD DRINK (validation before any write)
// --------------------------------------------------
func (s *Service) AddDrink(
	ctx context.Context,
	orderID string,
	base string,
	flavors []string,
	size string,
) (*DrinkLine, error) {

	d, err := drink.New(base, flavors, size)
	if err != nil {
		return nil, err
	}

	index, err := s.repo.AddDrink(ctx, orderID, DrinkRecord{
		Base:    d.Base(),
		Size:    d.Size(),
		Flavors: d.Flavors(),
	})
	if err != nil {
		return nil, err
	}

	return &DrinkLine{
		Index:       index,
		Base:        d.Base(),
		Size:        d.Size(),
		Flavors:     d.Flavors(),
		Description: d.Describe(),
	}, nil
}

// --------------------------------------------------
// CHANGE DRINK SIZE
// --------------------------------------------------
func (s *Service) ChangeDrinkSize(
	ctx context.Context,
	orderID string,
	index int,
	size string,
) (*DrinkLine, error) {

	drinks, err := s.repo.GetDrinks(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(drinks) {
		return nil, ErrDrinkNotFound
	}

	d, err := drink.New(drinks[index].Base, drinks[index].Flavors, drinks[index].Size)
	if err != nil {
		return nil, err
	}

	// The stored row is updated only after the size passes validation.
	if err := d.SetSize(size); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDrinkSize(ctx, orderID, index, d.Size()); err != nil {
		return nil, err
	}

	return &DrinkLine{
		Index:       index,
		Base:        d.Base(),
		Size:        d.Size(),
		Flavors:     d.Flavors(),
		Description: d.Describe(),
	}, nil
}

// --------------------------------------------------
// READ SIDE: SUMMARY / TOTALS / RECEIPT
// --------------------------------------------------

func (s *Service) GetOrder(ctx context.Context, orderID string) (*OrderSummary, error) {
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lines := make([]DrinkLine, 0, o.Len())
	for i, d := range o.Drinks() {
		lines = append(lines, DrinkLine{
			Index:       i,
			Base:        d.Base(),
			Size:        d.Size(),
			Flavors:     d.Flavors(),
			Description: d.Describe(),
		})
	}

	return &OrderSummary{
		ID:     orderID,
		Drinks: lines,
		Totals: o.Totals(),
	}, nil
}

func (s *Service) GetTotals(ctx context.Context, orderID string) (Totals, error) {
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return Totals{}, err
	}
	return o.Totals(), nil
}

func (s *Service) GetReceipt(ctx context.Context, orderID string) (Receipt, error) {
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return Receipt{}, err
	}
	return o.Receipt(), nil
}

// loadOrder rebuilds the domain order from stored rows. Stored rows
// are already normalized, so rebuilding cannot fail validation unless
// the store was tampered with.
func (s *Service) loadOrder(ctx context.Context, orderID string) (*Order, error) {
	records, err := s.repo.GetDrinks(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o := NewOrder()
	for _, rec := range records {
		d, err := drink.New(rec.Base, rec.Flavors, rec.Size)
		if err != nil {
			return nil, err
		}
		if err := o.AddDrink(d); err != nil {
			return nil, err
		}
	}
	return o, nil
}
