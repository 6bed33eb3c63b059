// internal/domain/catalog/filter.go
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Criteria selects items for a catalog view. The zero value matches
// everything: no search text, all categories, no price ceiling.
type Criteria struct {
	SearchText       string
	Category         Category
	MaxPrice         decimal.NullDecimal
	FreeShippingOnly bool
}

// PriceAtMost returns a MaxPrice value for Criteria
func PriceAtMost(limit decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(limit)
}

// Matches reports whether item satisfies every criterion
func (c Criteria) Matches(item Item) bool {
	if c.SearchText != "" {
		needle := strings.ToLower(c.SearchText)
		if !strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Brand), needle) {
			return false
		}
	}

	if c.Category != AllCategories && c.Category != item.Category {
		return false
	}

	if c.MaxPrice.Valid && item.Price.GreaterThan(c.MaxPrice.Decimal) {
		return false
	}

	if c.FreeShippingOnly && !item.FreeShipping {
		return false
	}

	return true
}

// FilterItems returns the items matching c, in input order
func FilterItems(items []Item, c Criteria) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if c.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
