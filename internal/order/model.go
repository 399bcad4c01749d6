package order

import (
	"errors"
	"math"

	"cinos/internal/drink"
)

// TaxRate is the flat sales tax applied to every order.
const TaxRate = 0.0725

// ErrInvalidItem is returned when something other than a drink is
// added to an order.
var ErrInvalidItem = errors.New("only drinks can be added to an order")

// Order is an ordered collection of drinks. Insertion order is
// preserved and duplicates are allowed. Totals are derived on demand,
// never stored.
type Order struct {
	drinks []*drink.Drink
}

// Totals holds the order amounts, rounded to two decimals.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ReceiptLine is a per-drink receipt entry with its own rounded cost.
type ReceiptLine struct {
	Base string  `json:"base"`
	Size string  `json:"size"`
	Cost float64 `json:"cost"`
}

// Receipt is the structured order summary: line items plus totals.
type Receipt struct {
	Drinks   []ReceiptLine `json:"drinks"`
	Subtotal float64       `json:"subtotal"`
	Tax      float64       `json:"tax"`
	Total    float64       `json:"total"`
}

// NewOrder creates an empty order.
func NewOrder() *Order {
	return &Order{}
}

// AddDrink appends a drink to the order. Nil drinks and zero-value
// drinks (constructed without drink.New, so their size is outside the
// catalog) are rejected with ErrInvalidItem and the order is left
// unchanged.
func (o *Order) AddDrink(d *drink.Drink) error {
	if d == nil {
		return ErrInvalidItem
	}
	if _, err := drink.ParseSize(d.Size()); err != nil {
		return ErrInvalidItem
	}
	o.drinks = append(o.drinks, d)
	return nil
}

// Drinks returns a copy of the drink list in insertion order.
func (o *Order) Drinks() []*drink.Drink {
	drinks := make([]*drink.Drink, len(o.drinks))
	copy(drinks, o.drinks)
	return drinks
}

// Len returns the number of drinks in the order.
func (o *Order) Len() int {
	return len(o.drinks)
}

// Totals sums the unrounded drink costs, applies tax, and rounds all
// three amounts only in the returned value.
func (o *Order) Totals() Totals {
	var subtotal float64
	for _, d := range o.drinks {
		subtotal += d.Cost()
	}
	tax := subtotal * TaxRate

	return Totals{
		Subtotal: round2(subtotal),
		Tax:      round2(tax),
		Total:    round2(subtotal + tax),
	}
}

// Receipt builds the full receipt. Each line item is rounded from its
// own unrounded cost, independently of the aggregate rounding on the
// unrounded sum, so the printed subtotal may differ by a cent from the
// sum of the printed lines. Intentional: the aggregate is not
// recomputed from rounded line items.
func (o *Order) Receipt() Receipt {
	lines := make([]ReceiptLine, 0, len(o.drinks))
	for _, d := range o.drinks {
		lines = append(lines, ReceiptLine{
			Base: d.Base(),
			Size: d.Size(),
			Cost: round2(d.Cost()),
		})
	}

	totals := o.Totals()
	return Receipt{
		Drinks:   lines,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}
}

// round2 rounds to two decimals for monetary presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
