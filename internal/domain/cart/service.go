// internal/domain/cart/service.go
package cart

import (
	"slices"
	"sync"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/petshop-catalog/internal/domain/catalog"
	"github.com/your-org/petshop-catalog/internal/pkg/logger"
	"github.com/your-org/petshop-catalog/internal/pkg/notify"
)

// ErrInvalidQuantity is returned by AddItem for non-positive quantities
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Cart tracks wanted quantities per item for one shopping session. Every
// mutating call notifies listeners exactly once, after the change.
type Cart struct {
	mu       sync.Mutex
	lines    map[catalog.ItemID]*Line
	order    []catalog.ItemID
	resolver PriceResolver

	listeners notify.Listeners[Totals]
	logger    logrus.FieldLogger
}

// Option configures a Cart
type Option func(*Cart)

// WithLogger sets the cart logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Cart) {
		c.logger = logger
	}
}

// New creates an empty cart that prices lines through resolver
func New(resolver PriceResolver, opts ...Option) *Cart {
	c := &Cart{
		lines:    make(map[catalog.ItemID]*Line),
		resolver: resolver,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddItem adds quantity units of id, merging into an existing line
func (c *Cart) AddItem(id catalog.ItemID, quantity int) error {
	if quantity <= 0 {
		return errors.Wrapf(ErrInvalidQuantity, "add %d of %s", quantity, id)
	}

	c.mu.Lock()
	if line, ok := c.lines[id]; ok {
		line.Quantity += quantity
	} else {
		c.insertLocked(id, quantity)
	}
	newQuantity := c.lines[id].Quantity
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"item_id":  id,
		"added":    quantity,
		"quantity": newQuantity,
	}).Debug("Item added to cart")

	c.changed()
	return nil
}

// UpdateQuantity sets id's quantity to exactly quantity. Zero or less
// removes the line.
func (c *Cart) UpdateQuantity(id catalog.ItemID, quantity int) {
	c.mu.Lock()
	if quantity <= 0 {
		c.removeLocked(id)
	} else if line, ok := c.lines[id]; ok {
		line.Quantity = quantity
	} else {
		c.insertLocked(id, quantity)
	}
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"item_id":  id,
		"quantity": max(0, quantity),
	}).Debug("Cart quantity updated")

	c.changed()
}

// RemoveItem deletes id's line if present
func (c *Cart) RemoveItem(id catalog.ItemID) {
	c.mu.Lock()
	c.removeLocked(id)
	c.mu.Unlock()

	c.logger.WithField("item_id", id).Debug("Item removed from cart")
	c.changed()
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = make(map[catalog.ItemID]*Line)
	c.order = nil
	c.mu.Unlock()

	c.logger.Debug("Cart cleared")
	c.changed()
}

// Lines returns a snapshot of the lines in the order they were first added
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Quantity returns the quantity held for id, zero if absent
func (c *Cart) Quantity(id catalog.ItemID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[id]; ok {
		return line.Quantity
	}
	return 0
}

// TotalItems returns the sum of all quantities
func (c *Cart) TotalItems() int {
	return c.Totals().TotalQuantity
}

// TotalPrice returns the sum of quantity × unit price, with prices resolved
// now. Lines the resolver cannot price contribute nothing.
func (c *Cart) TotalPrice() decimal.Decimal {
	return c.Totals().SubTotal
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Totals calculates the cart totals against current prices
func (c *Cart) Totals() Totals {
	lines := c.Lines()

	totals := Totals{
		LineCount: len(lines),
		SubTotal:  decimal.Zero,
	}
	for _, line := range lines {
		totals.TotalQuantity += line.Quantity

		price, ok := c.resolver.UnitPrice(line.ItemID)
		if !ok {
			c.logger.WithField("item_id", line.ItemID).Warn("No price for cart line")
			continue
		}
		totals.SubTotal = totals.SubTotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return totals
}

// AddChangeListener registers cb to receive fresh totals after each mutation
func (c *Cart) AddChangeListener(cb func(Totals)) {
	c.listeners.Add(cb)
}

func (c *Cart) changed() {
	c.listeners.Notify(c.Totals())
}

func (c *Cart) insertLocked(id catalog.ItemID, quantity int) {
	c.lines[id] = &Line{ItemID: id, Quantity: quantity}
	c.order = append(c.order, id)
}

func (c *Cart) removeLocked(id catalog.ItemID) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	c.order = slices.DeleteFunc(c.order, func(other catalog.ItemID) bool {
		return other == id
	})
}
