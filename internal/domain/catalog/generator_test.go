package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(2024).Generate(Food, 8)
	b := NewGenerator(2024).Generate(Food, 8)

	require.Len(t, a, 8)
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Brand, b[i].Brand)
		assert.True(t, a[i].Price.Equal(b[i].Price))
		assert.Equal(t, a[i].Stock, b[i].Stock)
		assert.Equal(t, a[i].Rating, b[i].Rating)
		assert.Equal(t, a[i].ReviewCount, b[i].ReviewCount)
		assert.Equal(t, a[i].FreeShipping, b[i].FreeShipping)
	}

	c := NewGenerator(2025).Generate(Food, 8)
	assert.NotEqual(t, a[0].ID, c[0].ID)
}

func TestGenerator_Ranges(t *testing.T) {
	low := decimal.NewFromInt(10)
	high := decimal.NewFromInt(1000)
	seen := map[ItemID]bool{}

	gen := NewGenerator(99)
	for _, category := range Categories() {
		for _, item := range gen.Generate(category, 200) {
			assert.Equal(t, category, item.Category)
			assert.False(t, seen[item.ID], "duplicate id")
			seen[item.ID] = true

			assert.True(t, item.Price.GreaterThanOrEqual(low), item.Price.String())
			assert.True(t, item.Price.LessThanOrEqual(high), item.Price.String())
			assert.True(t, item.Price.Equal(item.Price.Round(2)), "price has more than two decimals")

			assert.GreaterOrEqual(t, item.Stock, minStock)
			assert.LessOrEqual(t, item.Stock, maxStock)
			assert.GreaterOrEqual(t, item.Rating, 1.0)
			assert.LessOrEqual(t, item.Rating, 5.0)
			assert.GreaterOrEqual(t, item.ReviewCount, 0)
			assert.LessOrEqual(t, item.ReviewCount, maxReviews)
			assert.NotEmpty(t, item.Name)
			assert.NotEmpty(t, item.Brand)
		}
	}
}

func TestGenerator_InvalidInput(t *testing.T) {
	gen := NewGenerator(1)
	assert.Empty(t, gen.Generate(AllCategories, 3))
	assert.Empty(t, gen.Generate(Food, 0))
	assert.Empty(t, gen.Generate(Food, -1))
}
