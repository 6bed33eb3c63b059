// internal/domain/catalog/entity.go
package catalog

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrUnknownCategory is returned when a category name cannot be parsed
var ErrUnknownCategory = errors.New("unknown category")

// ItemID identifies an Item for its whole lifetime
type ItemID = uuid.UUID

// ParseItemID parses the textual form of an ItemID
func ParseItemID(s string) (ItemID, error) {
	return uuid.Parse(s)
}

// Category is the closed set of shop departments. AllCategories is only
// meaningful as a filter value; no Item carries it.
type Category int

const (
	AllCategories Category = iota
	Food
	Utilities
	Accessories
	Healthcare
)

var categoryNames = map[Category]string{
	AllCategories: "All Categories",
	Food:          "Food",
	Utilities:     "Utilities",
	Accessories:   "Accessories",
	Healthcare:    "Healthcare",
}

// Categories returns the real categories in display order
func Categories() []Category {
	return []Category{Food, Utilities, Accessories, Healthcare}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether c is one of the four item categories
func (c Category) Valid() bool {
	return c >= Food && c <= Healthcare
}

// ParseCategory maps user input to a Category. "all" and "all categories"
// select AllCategories.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "all categories", "":
		return AllCategories, nil
	case "food":
		return Food, nil
	case "utilities":
		return Utilities, nil
	case "accessories":
		return Accessories, nil
	case "healthcare":
		return Healthcare, nil
	}
	return AllCategories, errors.Wrapf(ErrUnknownCategory, "%q", s)
}

// Item is a product in the shop catalog. Stock is the only field that
// changes after creation, and only through Catalog.DecreaseStock.
type Item struct {
	ID           ItemID          `json:"id"`
	Name         string          `json:"name"`
	Category     Category        `json:"category"`
	Brand        string          `json:"brand"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"review_count"`
	FreeShipping bool            `json:"free_shipping"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Business methods for Item
func (i Item) InStock() bool {
	return i.Stock > 0
}

func (i Item) LowStock(threshold int) bool {
	return i.Stock <= threshold
}
