// internal/domain/checkout/service.go
package checkout

import (
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/petshop-catalog/internal/domain/cart"
	"github.com/your-org/petshop-catalog/internal/domain/catalog"
	"github.com/your-org/petshop-catalog/internal/pkg/logger"
)

var (
	// ErrEmptyCart rejects a checkout of a cart with no lines
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutInProgress rejects an attempt made while another is running
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// Cart is the part of the cart the workflow drives
type Cart interface {
	Lines() []cart.Line
	Clear()
}

// StockKeeper is the part of the catalog the workflow drives
type StockKeeper interface {
	FindByID(id catalog.ItemID) (catalog.Item, bool)
	DecreaseStock(id catalog.ItemID, amount int) bool
}

// Workflow turns cart contents into stock decreases and resets the cart
type Workflow struct {
	mu    sync.Mutex
	state State

	cart   Cart
	stock  StockKeeper
	logger logrus.FieldLogger
	now    func() time.Time
}

// Option configures a Workflow
type Option func(*Workflow)

// WithLogger sets the workflow logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(w *Workflow) {
		w.logger = logger
	}
}

// WithClock overrides the receipt timestamp source
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) {
		w.now = now
	}
}

// New creates an idle checkout workflow
func New(c Cart, stock StockKeeper, opts ...Option) *Workflow {
	w := &Workflow{
		state:  StateIdle,
		cart:   c,
		stock:  stock,
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns the current workflow state
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Attempt runs one checkout. An empty cart is rejected before anything is
// touched; otherwise every line's quantity leaves stock and the cart is
// cleared. The workflow is idle again when Attempt returns.
func (w *Workflow) Attempt() Result {
	w.mu.Lock()
	if w.state != StateIdle {
		w.mu.Unlock()
		w.logger.Warn("Checkout requested while another is in progress")
		return Result{Status: StatusRejected, Err: ErrCheckoutInProgress}
	}

	lines := w.cart.Lines()
	if len(lines) == 0 {
		w.mu.Unlock()
		w.logger.Info("Checkout rejected: cart is empty")
		return Result{Status: StatusRejected, Err: ErrEmptyCart}
	}
	w.state = StateReviewing
	w.mu.Unlock()

	defer w.setState(StateIdle)

	receipt := w.buildReceipt(lines)

	for _, line := range lines {
		if !w.stock.DecreaseStock(line.ItemID, line.Quantity) {
			w.logger.WithField("item_id", line.ItemID).Warn("Cart line refers to an item missing from the catalog")
		}
	}
	w.cart.Clear()

	w.setState(StateCompleted)
	w.logger.WithFields(logrus.Fields{
		"order_number": receipt.OrderNumber,
		"lines":        len(receipt.Lines),
		"total_items":  receipt.TotalItems,
		"total":        receipt.Total.StringFixed(2),
	}).Info("Checkout completed")

	return Result{Status: StatusCompleted, Receipt: receipt}
}

func (w *Workflow) setState(s State) {
	w.mu.Lock()
	w.state = s
	w.mu.Unlock()
}

func (w *Workflow) buildReceipt(lines []cart.Line) *Receipt {
	receipt := &Receipt{
		OrderNumber: newOrderNumber(),
		Lines:       make([]ReceiptLine, 0, len(lines)),
		Total:       decimal.Zero,
		CompletedAt: w.now().UTC(),
	}

	for _, line := range lines {
		rl := ReceiptLine{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: decimal.Zero,
			LineTotal: decimal.Zero,
		}
		if item, ok := w.stock.FindByID(line.ItemID); ok {
			rl.Name = item.Name
			rl.UnitPrice = item.Price
			rl.LineTotal = item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}

		receipt.Lines = append(receipt.Lines, rl)
		receipt.TotalItems += rl.Quantity
		receipt.Total = receipt.Total.Add(rl.LineTotal)
	}

	return receipt
}

func newOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:12]
}
