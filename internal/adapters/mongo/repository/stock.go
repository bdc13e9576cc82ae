package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/novashop/inventory/internal/adapters/mongo/document"
	"github.com/novashop/inventory/internal/adapters/outbox"
	"github.com/novashop/inventory/internal/core/domain"
	"github.com/novashop/inventory/internal/core/logger"
	"github.com/novashop/inventory/internal/core/port"
)

type StockRepository struct {
	*BaseRepository[document.StockDocument]
	collection *mongo.Collection
	outbox     outbox.Repository
}

// NewStockRepository keeps one stock document per product, enforced by a
// unique index on product_id. The caller owns transaction boundaries; both
// methods run against whatever session the context carries.
func NewStockRepository(db *mongo.Database, outbox outbox.Repository) port.StockPort {
	repo := &StockRepository{
		BaseRepository: NewBaseRepository[document.StockDocument](db, "stocks"),
		collection:     db.Collection("stocks"),
		outbox:         outbox,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "stocks",
		})
	}

	return repo
}

func (r *StockRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "product_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *StockRepository) FindByProductID(ctx context.Context, productID domain.ProductID) (*domain.StockRecord, error) {
	doc, err := r.FindOne(ctx, bson.M{"product_id": int64(productID)})
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

// SaveWithOutbox upserts the record and inserts the outbox entry in one go.
// The unique product_id index makes a racing first-write surface as a
// duplicate key conflict instead of a second document.
func (r *StockRepository) SaveWithOutbox(ctx context.Context, record *domain.StockRecord, event domain.Event) (*domain.StockRecord, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	doc := document.ToStockDocument(record)
	doc.UpdatedAt = time.Now()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	update := bson.M{
		"$set": bson.M{
			"quantity":   doc.Quantity,
			"updated_at": doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"product_id": doc.ProductID,
			"created_at": doc.CreatedAt,
		},
	}

	var saved document.StockDocument
	err = r.collection.
		FindOneAndUpdate(ctx, bson.M{"product_id": doc.ProductID}, update, opts).
		Decode(&saved)
	if err != nil {
		return nil, parseError(err)
	}

	entry := outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  eventData,
	}
	if err := r.outbox.Insert(ctx, entry); err != nil {
		return nil, err
	}

	return saved.ToDomain(), nil
}
