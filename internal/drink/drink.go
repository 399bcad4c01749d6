package drink

import (
	"fmt"
	"strings"
)

// FlavorCost is the flat surcharge per added flavor.
const FlavorCost = 0.15

// Drink is the domain entity: a base type, a validated size, and any
// number of flavor add-ins. Fields stay unexported so the size can
// never hold a value outside the catalog.
type Drink struct {
	base    string
	size    Size
	flavors []string
}

// New builds a Drink. Base and flavors are normalized to capitalized
// form; size is resolved case-insensitively and defaults to MEDIUM
// when empty.
func New(base string, flavors []string, size string) (*Drink, error) {
	if size == "" {
		size = string(SizeMedium)
	}

	resolved, err := ParseSize(size)
	if err != nil {
		return nil, err
	}

	normalized := make([]string, 0, len(flavors))
	for _, flavor := range flavors {
		normalized = append(normalized, capitalize(flavor))
	}

	return &Drink{
		base:    capitalize(base),
		size:    resolved,
		flavors: normalized,
	}, nil
}

// Base returns the normalized base name.
func (d *Drink) Base() string {
	return d.base
}

// Size returns the canonical uppercase size name.
func (d *Drink) Size() string {
	return string(d.size)
}

// SetSize replaces the current size after re-validation. The drink is
// left unchanged when the name is not in the catalog.
func (d *Drink) SetSize(size string) error {
	resolved, err := ParseSize(size)
	if err != nil {
		return err
	}
	d.size = resolved
	return nil
}

// Flavors returns a copy of the flavor list.
func (d *Drink) Flavors() []string {
	flavors := make([]string, len(d.flavors))
	copy(flavors, d.flavors)
	return flavors
}

// Cost is recomputed on every call so it always reflects the current
// size and flavors. The value is unrounded; rounding happens only at
// presentation boundaries (receipt and totals).
func (d *Drink) Cost() float64 {
	return d.size.BasePrice() + float64(len(d.flavors))*FlavorCost
}

// Describe renders a human-readable summary of the drink.
func (d *Drink) Describe() string {
	flavors := "None"
	if len(d.flavors) > 0 {
		flavors = strings.Join(d.flavors, ", ")
	}
	return fmt.Sprintf("Drink(base='%s', size='%s', flavors=[%s], cost=$%.2f)",
		d.base, d.size, flavors, d.Cost())
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
