package port

import (
	"context"

	"github.com/novashop/inventory/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// StockPort persists stock records keyed by product id. SaveWithOutbox
// upserts the record and writes the change event to the outbox as one unit;
// concurrent saves for the same product must serialize around the caller's
// read-validate-write sequence (delegated to the storage transaction).
type StockPort interface {
	FindByProductID(ctx context.Context, productID domain.ProductID) (*domain.StockRecord, error)
	SaveWithOutbox(ctx context.Context, record *domain.StockRecord, event domain.Event) (*domain.StockRecord, error)
}
