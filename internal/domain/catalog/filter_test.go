package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteria_Matches(t *testing.T) {
	kibble := fixtureItem("Chicken Kibble", Food, "49.95", 10)
	kibble.Brand = "Royal Canin"
	kibble.FreeShipping = true

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{name: "zero criteria", criteria: Criteria{}, want: true},
		{name: "name substring case-insensitive", criteria: Criteria{SearchText: "KIBB"}, want: true},
		{name: "brand substring", criteria: Criteria{SearchText: "canin"}, want: true},
		{name: "no text match", criteria: Criteria{SearchText: "leash"}, want: false},
		{name: "same category", criteria: Criteria{Category: Food}, want: true},
		{name: "other category", criteria: Criteria{Category: Healthcare}, want: false},
		{name: "under price", criteria: Criteria{MaxPrice: PriceAtMost(decimal.NewFromInt(50))}, want: true},
		{name: "over price", criteria: Criteria{MaxPrice: PriceAtMost(decimal.NewFromInt(40))}, want: false},
		{name: "free shipping only", criteria: Criteria{FreeShippingOnly: true}, want: true},
		{
			name:     "all combined",
			criteria: Criteria{SearchText: "chicken", Category: Food, MaxPrice: PriceAtMost(decimal.NewFromInt(50)), FreeShippingOnly: true},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(kibble))
		})
	}

	paid := kibble
	paid.FreeShipping = false
	assert.False(t, Criteria{FreeShippingOnly: true}.Matches(paid))
}

func TestCatalog_FilterCategoryExactness(t *testing.T) {
	c := New()
	c.Initialize(map[Category]int{Food: 5, Utilities: 5, Accessories: 5, Healthcare: 5}, NewGenerator(7))

	food := c.Filter(Criteria{Category: Food})
	require.Len(t, food, 5)
	for _, item := range food {
		assert.Equal(t, Food, item.Category)
	}

	assert.Len(t, c.Filter(Criteria{Category: AllCategories}), 20)
}

func TestCatalog_FilterPriceBoundary(t *testing.T) {
	atLimit := fixtureItem("Bandana", Accessories, "50.00", 3)
	overLimit := fixtureItem("Collar", Accessories, "50.01", 3)
	c := New()
	c.Seed(atLimit, overLimit)

	got := c.Filter(Criteria{MaxPrice: PriceAtMost(decimal.NewFromInt(50))})

	assert.Equal(t, []Item{atLimit}, got)
}

func TestFilterItems_PreservesOrder(t *testing.T) {
	a := fixtureItem("Cat Tunnel", Accessories, "300.00", 1)
	b := fixtureItem("Litter Box", Utilities, "200.00", 1)
	d := fixtureItem("Cat Tree", Utilities, "900.00", 1)

	got := FilterItems([]Item{a, b, d}, Criteria{SearchText: "cat"})

	assert.Equal(t, []Item{a, d}, got)
}
