// internal/domain/catalog/service.go
package catalog

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/petshop-catalog/internal/pkg/logger"
	"github.com/your-org/petshop-catalog/internal/pkg/notify"
)

// DefaultLowStockThreshold matches the product default used by the admin screens
const DefaultLowStockThreshold = 5

// Catalog owns the authoritative set of Items. Queries return copies;
// listeners receive a snapshot after every change and run outside the lock.
type Catalog struct {
	mu          sync.RWMutex
	items       []*Item
	index       map[ItemID]*Item
	movements   []Movement
	initialized bool

	lowStockThreshold int
	listeners         notify.Listeners[[]Item]
	logger            logrus.FieldLogger
	now               func() time.Time
}

// Option configures a Catalog
type Option func(*Catalog)

// WithLogger sets the catalog logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithLowStockThreshold sets the stock level at or below which an item is low
func WithLowStockThreshold(threshold int) Option {
	return func(c *Catalog) {
		c.lowStockThreshold = threshold
	}
}

// WithClock overrides the movement timestamp source
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// New creates an empty catalog
func New(opts ...Option) *Catalog {
	c := &Catalog{
		index:             make(map[ItemID]*Item),
		lowStockThreshold: DefaultLowStockThreshold,
		logger:            logger.Discard(),
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize generates the sample inventory, counts[c] items per category.
// Only the first call has any effect.
func (c *Catalog) Initialize(counts map[Category]int, gen *Generator) {
	if gen == nil {
		gen = NewGenerator(0)
	}

	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		c.logger.Warn("Catalog already initialized, ignoring")
		return
	}

	for _, category := range Categories() {
		for _, item := range gen.Generate(category, counts[category]) {
			c.insertLocked(item)
		}
		c.logger.WithFields(logrus.Fields{
			"category": category.String(),
			"count":    counts[category],
		}).Debug("Generated sample items")
	}
	c.initialized = true
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.WithField("items", len(snapshot)).Info("Catalog initialized")
	c.listeners.Notify(snapshot)
}

// Seed installs explicit items, skipping IDs already present, and marks the
// catalog initialized.
func (c *Catalog) Seed(items ...Item) {
	c.mu.Lock()
	for _, item := range items {
		if _, exists := c.index[item.ID]; exists {
			c.logger.WithField("item_id", item.ID).Warn("Duplicate item ID in seed, skipping")
			continue
		}
		c.insertLocked(item)
	}
	c.initialized = true
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.listeners.Notify(snapshot)
}

// GetAll returns a snapshot of all items in creation order
func (c *Catalog) GetAll() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Len returns the number of items
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// FindByID returns the item with id, if present
func (c *Catalog) FindByID(id ItemID) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// UnitPrice resolves the current price of id
func (c *Catalog) UnitPrice(id ItemID) (decimal.Decimal, bool) {
	item, ok := c.FindByID(id)
	if !ok {
		return decimal.Zero, false
	}
	return item.Price, true
}

// Filter returns the items matching criteria, in creation order. It does
// not notify listeners.
func (c *Catalog) Filter(criteria Criteria) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if criteria.Matches(*item) {
			out = append(out, *item)
		}
	}
	return out
}

// LowStock returns the items at or below the low-stock threshold
func (c *Catalog) LowStock() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Item
	for _, item := range c.items {
		if item.LowStock(c.lowStockThreshold) {
			out = append(out, *item)
		}
	}
	return out
}

// DecreaseStock removes amount units from id's stock, clamping at zero.
// Negative amounts count as zero. It reports false for unknown IDs, which
// leave the catalog untouched and fire no notification.
func (c *Catalog) DecreaseStock(id ItemID, amount int) bool {
	if amount < 0 {
		amount = 0
	}

	c.mu.Lock()
	item, ok := c.index[id]
	if !ok {
		c.mu.Unlock()
		c.logger.WithField("item_id", id).Debug("Stock decrease for unknown item ignored")
		return false
	}

	movement := Movement{
		ItemID:           id,
		Requested:        amount,
		PreviousQuantity: item.Stock,
		NewQuantity:      max(0, item.Stock-amount),
		At:               c.now().UTC(),
	}
	item.Stock = movement.NewQuantity
	c.movements = append(c.movements, movement)
	lowStock := item.LowStock(c.lowStockThreshold)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	entry := c.logger.WithFields(logrus.Fields{
		"item_id":  id,
		"previous": movement.PreviousQuantity,
		"new":      movement.NewQuantity,
	})
	if movement.Clamped() {
		entry.Warn("Stock decrease exceeded stock on hand, clamped to zero")
	} else {
		entry.Debug("Stock decreased")
	}
	if lowStock {
		entry.Info("Item is low on stock")
	}

	c.listeners.Notify(snapshot)
	return true
}

// Movements returns the stock decrease ledger in the order applied
func (c *Catalog) Movements() []Movement {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Movement, len(c.movements))
	copy(out, c.movements)
	return out
}

// AddChangeListener registers cb to receive the full item snapshot after
// initialization, seeding and every stock decrease.
func (c *Catalog) AddChangeListener(cb func([]Item)) {
	c.listeners.Add(cb)
}

func (c *Catalog) insertLocked(item Item) {
	if item.Stock < 0 {
		item.Stock = 0
	}
	stored := item
	c.items = append(c.items, &stored)
	c.index[stored.ID] = &stored
}

func (c *Catalog) snapshotLocked() []Item {
	out := make([]Item, len(c.items))
	for i, item := range c.items {
		out[i] = *item
	}
	return out
}
