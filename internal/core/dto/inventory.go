package dto

// UpdateStockRequest carries a signed stock change: negative for consumption,
// positive for replenishment. Bound through a pointer so an explicit zero
// still passes the required check.
type UpdateStockRequest struct {
	ChangeQuantity *int `json:"change_quantity" binding:"required"`
}
