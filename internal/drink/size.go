package drink

import (
	"fmt"
	"strings"
)

// Size is one of the fixed cup sizes sold at the counter.
type Size string

const (
	SizeSmall  Size = "SMALL"
	SizeMedium Size = "MEDIUM"
	SizeLarge  Size = "LARGE"
	SizeMega   Size = "MEGA"
)

// The size catalog is closed: four sizes, fixed base prices.
// Order matters for error messages and the /sizes endpoint.
var sizeCatalog = []Size{SizeSmall, SizeMedium, SizeLarge, SizeMega}

var sizePrices = map[Size]float64{
	SizeSmall:  1.50,
	SizeMedium: 1.75,
	SizeLarge:  2.05,
	SizeMega:   2.15,
}

// InvalidSizeError is returned whenever a size name does not match
// the catalog. The message enumerates the valid names.
type InvalidSizeError struct {
	Name string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid size '%s', available sizes: %s",
		e.Name, strings.Join(SizeNames(), ", "))
}

// ParseSize resolves a case-insensitive size name against the catalog.
func ParseSize(name string) (Size, error) {
	size := Size(strings.ToUpper(name))
	if _, ok := sizePrices[size]; !ok {
		return "", &InvalidSizeError{Name: name}
	}
	return size, nil
}

// BasePrice returns the catalog price for the size.
func (s Size) BasePrice() float64 {
	return sizePrices[s]
}

// SizeNames returns the valid size names in catalog order.
func SizeNames() []string {
	names := make([]string, 0, len(sizeCatalog))
	for _, s := range sizeCatalog {
		names = append(names, string(s))
	}
	return names
}

// SizeEntry pairs a size name with its base price for the public catalog.
type SizeEntry struct {
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
}

// Sizes returns the full catalog in order, for the GET /sizes endpoint.
func Sizes() []SizeEntry {
	entries := make([]SizeEntry, 0, len(sizeCatalog))
	for _, s := range sizeCatalog {
		entries = append(entries, SizeEntry{
			Name:      string(s),
			BasePrice: sizePrices[s],
		})
	}
	return entries
}
