package domain

import (
	"fmt"
	"time"
)

// StockRecord is the persisted quantity for one product. The product id is
// immutable once created; quantity is the only mutable field and never goes
// negative.
type StockRecord struct {
	ID        ID
	ProductID ProductID
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewStockRecord(productID ProductID, quantity int) *StockRecord {
	return &StockRecord{
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// CurrentQuantity reads the quantity of a possibly absent record. A product
// with no stock record has quantity zero.
func CurrentQuantity(record *StockRecord) int {
	if record == nil {
		return 0
	}
	return record.Quantity
}

type InsufficientStockError struct {
	Current int
	Delta   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: current quantity %d, requested change %d", e.Current, e.Delta)
}

// ApplyDelta computes the new quantity after a signed stock change. The only
// failure mode is a change that would drive the quantity negative; a zero
// delta is a legal no-op.
func ApplyDelta(current, delta int) (int, error) {
	next := current + delta
	if next < 0 {
		return 0, &InsufficientStockError{Current: current, Delta: delta}
	}
	return next, nil
}

// StockView is the read-only composite returned to callers: local quantity
// plus the remote product snapshot. Exists is false only when the product
// could not be confirmed, in which case product fields are absent.
type StockView struct {
	ProductID ProductID
	Quantity  int
	Exists    bool
	Product   *ProductRef
}

func NewStockView(record *StockRecord, product *ProductRef) *StockView {
	view := &StockView{Quantity: CurrentQuantity(record)}
	if record != nil {
		view.ProductID = record.ProductID
	}
	if product != nil {
		view.ProductID = product.ID
		view.Exists = true
		view.Product = product
	}
	return view
}

type StockChangedEvent struct {
	ProductID   ProductID `json:"product_id"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	Delta       int       `json:"delta"`
	ChangedAt   time.Time `json:"changed_at"`
}

func (e *StockChangedEvent) GetName() string {
	return "stock.changed"
}

func (e *StockChangedEvent) GetEntityName() string {
	return "stock"
}

func NewStockChangedEvent(productID ProductID, oldQuantity, newQuantity, delta int, changedAt time.Time) *StockChangedEvent {
	return &StockChangedEvent{
		ProductID:   productID,
		OldQuantity: oldQuantity,
		NewQuantity: newQuantity,
		Delta:       delta,
		ChangedAt:   changedAt,
	}
}
