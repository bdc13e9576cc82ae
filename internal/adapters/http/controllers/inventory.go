package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novashop/inventory/internal/adapters/http/handlers"
	"github.com/novashop/inventory/internal/core/domain"
	"github.com/novashop/inventory/internal/core/dto"
	"github.com/novashop/inventory/internal/core/service"
	"github.com/novashop/inventory/internal/core/serviceerrors"
)

type InventoryController struct {
	inventoryService *service.InventoryService
}

func NewInventoryController(inventoryService *service.InventoryService) *InventoryController {
	return &InventoryController{inventoryService: inventoryService}
}

// StockResponse is the attributes block of the inventory resource. Product
// fields are filled from the remote snapshot taken during the operation.
type StockResponse struct {
	ProductID     int64   `json:"productId"`
	Quantity      int     `json:"quantity"`
	ProductExists bool    `json:"productExists"`
	Name          string  `json:"name,omitempty"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price,omitempty"`
	SKU           string  `json:"sku,omitempty"`
}

func NewStockResponse(view *domain.StockView) StockResponse {
	response := StockResponse{
		ProductID:     int64(view.ProductID),
		Quantity:      view.Quantity,
		ProductExists: view.Exists,
	}
	if view.Product != nil {
		response.Name = view.Product.Name
		response.Description = view.Product.Description
		response.Price = view.Product.Price.ToFloat()
		response.SKU = view.Product.SKU
	}
	return response
}

// GetStock returns the available quantity for a product, confirming the
// product against the products service first.
func (ic *InventoryController) GetStock(c *gin.Context) {
	productID, ok := domain.ParseProductID(c.Param("productId"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}

	view, err := ic.inventoryService.CheckStock(c.Request.Context(), productID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, handlers.Single(productID.String(), "inventory", NewStockResponse(view)))
}

// UpdateStock applies a signed quantity change. Negative values consume
// stock, positive values replenish it.
func (ic *InventoryController) UpdateStock(c *gin.Context) {
	productID, ok := domain.ParseProductID(c.Param("productId"))
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}

	var request dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	view, err := ic.inventoryService.ApplyDelta(c.Request.Context(), idempotencyKey, productID, *request.ChangeQuantity)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, handlers.Single(productID.String(), "inventory", NewStockResponse(view)))
}
