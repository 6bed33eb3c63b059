// internal/domain/catalog/movement.go
package catalog

import "time"

// Movement records one stock decrease applied to an Item
type Movement struct {
	ItemID           ItemID    `json:"item_id"`
	Requested        int       `json:"requested"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	At               time.Time `json:"at"`
}

// Applied returns how many units actually left stock
func (m Movement) Applied() int {
	return m.PreviousQuantity - m.NewQuantity
}

// Clamped reports whether the request exceeded the stock on hand
func (m Movement) Clamped() bool {
	return m.Requested > m.PreviousQuantity
}
