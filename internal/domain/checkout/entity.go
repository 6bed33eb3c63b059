// internal/domain/checkout/entity.go
package checkout

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/petshop-catalog/internal/domain/catalog"
)

// State is the checkout workflow state
type State int

const (
	StateIdle State = iota
	StateReviewing
	StateCompleted
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReviewing:
		return "reviewing"
	case StateCompleted:
		return "completed"
	case StateRejected:
		return "rejected"
	}
	return "unknown"
}

// Status is the outcome of one checkout attempt
type Status int

const (
	StatusCompleted Status = iota + 1
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusRejected:
		return "rejected"
	}
	return "unknown"
}

// Result reports a checkout attempt. A rejected attempt carries the reason
// in Err and no Receipt.
type Result struct {
	Status  Status
	Err     error
	Receipt *Receipt
}

// OK reports whether the checkout completed
func (r Result) OK() bool {
	return r.Status == StatusCompleted
}

// Receipt summarizes a completed checkout, priced before stock was touched
type Receipt struct {
	OrderNumber string          `json:"order_number"`
	Lines       []ReceiptLine   `json:"lines"`
	TotalItems  int             `json:"total_items"`
	Total       decimal.Decimal `json:"total"`
	CompletedAt time.Time       `json:"completed_at"`
}

// ReceiptLine is one purchased item on a receipt
type ReceiptLine struct {
	ItemID    catalog.ItemID  `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}
