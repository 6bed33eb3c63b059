// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/petshop-catalog/internal/domain/catalog"
)

// Line is a by-id reference to a catalog item plus the wanted quantity.
// The item itself stays in the catalog.
type Line struct {
	ItemID   catalog.ItemID `json:"item_id"`
	Quantity int            `json:"quantity"`
}

// Totals represents calculated cart totals
type Totals struct {
	LineCount     int             `json:"line_count"`     // Number of distinct items
	TotalQuantity int             `json:"total_quantity"` // Sum of all quantities
	SubTotal      decimal.Decimal `json:"sub_total"`
}

// PriceResolver looks up the current unit price of an item
type PriceResolver interface {
	UnitPrice(id catalog.ItemID) (decimal.Decimal, bool)
}

// PriceResolverFunc adapts a function to PriceResolver
type PriceResolverFunc func(id catalog.ItemID) (decimal.Decimal, bool)

func (f PriceResolverFunc) UnitPrice(id catalog.ItemID) (decimal.Decimal, bool) {
	return f(id)
}
