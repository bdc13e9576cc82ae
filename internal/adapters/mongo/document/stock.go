package document

import (
	"time"

	"github.com/novashop/inventory/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StockDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID int64              `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (doc StockDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *StockDocument) ToDomain() *domain.StockRecord {
	return &domain.StockRecord{
		ID:        domain.ID(doc.ID.Hex()),
		ProductID: domain.ProductID(doc.ProductID),
		Quantity:  doc.Quantity,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func ToStockDocument(record *domain.StockRecord) *StockDocument {
	return &StockDocument{
		ProductID: int64(record.ProductID),
		Quantity:  record.Quantity,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
