package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Initialize(t *testing.T) {
	c := New()
	var notified [][]Item
	c.AddChangeListener(func(items []Item) { notified = append(notified, items) })

	counts := map[Category]int{Food: 3, Utilities: 2, Accessories: 0, Healthcare: 1}
	c.Initialize(counts, NewGenerator(42))

	all := c.GetAll()
	require.Len(t, all, 6)
	require.Len(t, notified, 1)
	assert.Equal(t, all, notified[0])

	perCategory := map[Category]int{}
	for _, item := range all {
		perCategory[item.Category]++
	}
	assert.Equal(t, map[Category]int{Food: 3, Utilities: 2, Healthcare: 1}, perCategory)

	// Categories are generated in canonical order
	assert.Equal(t, Food, all[0].Category)
	assert.Equal(t, Healthcare, all[5].Category)
}

func TestCatalog_InitializeTwiceIsNoOp(t *testing.T) {
	c := New()
	c.Initialize(map[Category]int{Food: 2}, NewGenerator(1))
	first := c.GetAll()

	calls := 0
	c.AddChangeListener(func([]Item) { calls++ })
	c.Initialize(map[Category]int{Food: 5}, NewGenerator(2))

	assert.Equal(t, first, c.GetAll())
	assert.Zero(t, calls)
}

func TestCatalog_FindByID(t *testing.T) {
	f := fixtureItem("Salmon Pate", Food, "20.00", 10)
	c := New()
	c.Seed(f)

	got, ok := c.FindByID(f.ID)
	require.True(t, ok)
	assert.Equal(t, f, got)

	missing, ok := c.FindByID(uuid.New())
	assert.False(t, ok)
	assert.Equal(t, Item{}, missing)
}

func TestCatalog_GetAllIsSnapshot(t *testing.T) {
	f := fixtureItem("Salmon Pate", Food, "20.00", 10)
	c := New()
	c.Seed(f)

	all := c.GetAll()
	all[0].Stock = 999

	got, _ := c.FindByID(f.ID)
	assert.Equal(t, 10, got.Stock)
}

func TestCatalog_SeedSkipsDuplicates(t *testing.T) {
	f := fixtureItem("Salmon Pate", Food, "20.00", 10)
	c := New()
	c.Seed(f, f)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_DecreaseStock(t *testing.T) {
	tests := []struct {
		name   string
		stock  int
		amount int
		want   int
	}{
		{name: "partial", stock: 10, amount: 3, want: 7},
		{name: "exact", stock: 10, amount: 10, want: 0},
		{name: "clamps at zero", stock: 10, amount: 25, want: 0},
		{name: "zero amount", stock: 10, amount: 0, want: 10},
		{name: "negative amount counts as zero", stock: 10, amount: -4, want: 10},
		{name: "already empty", stock: 0, amount: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fixtureItem("Chew Toy", Accessories, "15.00", tt.stock)
			c := New()
			c.Seed(f)

			require.True(t, c.DecreaseStock(f.ID, tt.amount))

			got, _ := c.FindByID(f.ID)
			assert.Equal(t, tt.want, got.Stock)
		})
	}
}

func TestCatalog_DecreaseStockNotifies(t *testing.T) {
	f := fixtureItem("Chew Toy", Accessories, "15.00", 10)
	c := New()
	c.Seed(f)

	var seen []int
	c.AddChangeListener(func(items []Item) {
		// Listener observes the post-mutation state
		seen = append(seen, items[0].Stock)
		current, _ := c.FindByID(f.ID)
		assert.Equal(t, items[0].Stock, current.Stock)
	})

	c.DecreaseStock(f.ID, 4)
	c.DecreaseStock(f.ID, 4)

	assert.Equal(t, []int{6, 2}, seen)
}

func TestCatalog_DecreaseStockUnknownID(t *testing.T) {
	c := New()
	c.Seed(fixtureItem("Chew Toy", Accessories, "15.00", 10))

	calls := 0
	c.AddChangeListener(func([]Item) { calls++ })

	assert.False(t, c.DecreaseStock(uuid.New(), 1))
	assert.Zero(t, calls)
	assert.Empty(t, c.Movements())
}

func TestCatalog_Movements(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	f := fixtureItem("Ear Cleaner", Healthcare, "120.00", 4)
	c := New(WithClock(func() time.Time { return at }))
	c.Seed(f)

	c.DecreaseStock(f.ID, 3)
	c.DecreaseStock(f.ID, 5)

	movements := c.Movements()
	require.Len(t, movements, 2)

	assert.Equal(t, Movement{ItemID: f.ID, Requested: 3, PreviousQuantity: 4, NewQuantity: 1, At: at}, movements[0])
	assert.False(t, movements[0].Clamped())
	assert.Equal(t, 3, movements[0].Applied())

	assert.True(t, movements[1].Clamped())
	assert.Equal(t, 1, movements[1].Applied())
	assert.Equal(t, 0, movements[1].NewQuantity)
}

func TestCatalog_LowStock(t *testing.T) {
	low := fixtureItem("Dewormer", Healthcare, "300.00", 2)
	ok := fixtureItem("Multivitamin", Healthcare, "300.00", 20)
	c := New(WithLowStockThreshold(3))
	c.Seed(low, ok)

	assert.Equal(t, []Item{low}, c.LowStock())

	c.DecreaseStock(ok.ID, 17)
	assert.Len(t, c.LowStock(), 2)
}

func TestCatalog_UnitPrice(t *testing.T) {
	f := fixtureItem("Kibble", Food, "49.95", 1)
	c := New()
	c.Seed(f)

	price, ok := c.UnitPrice(f.ID)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("49.95").Equal(price))

	_, ok = c.UnitPrice(uuid.New())
	assert.False(t, ok)
}

func TestCatalog_FilterDoesNotNotify(t *testing.T) {
	c := New()
	c.Seed(fixtureItem("Kibble", Food, "49.95", 1))

	calls := 0
	c.AddChangeListener(func([]Item) { calls++ })

	_ = c.Filter(Criteria{SearchText: "kib"})
	assert.Zero(t, calls)
}
