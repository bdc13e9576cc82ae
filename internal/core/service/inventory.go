package service

import (
	"context"
	"fmt"
	"time"

	"github.com/novashop/inventory/internal/core/domain"
	"github.com/novashop/inventory/internal/core/logger"
	"github.com/novashop/inventory/internal/core/port"
	"github.com/novashop/inventory/internal/core/serviceerrors"
	"github.com/novashop/inventory/internal/core/utils"
)

const stockViewCacheTTL = 30 * time.Second

// InventoryService orchestrates one stock operation at a time: confirm the
// product exists remotely, validate the delta against the ledger rules, then
// persist. Product confirmation always happens before any local read, and
// nothing is persisted on either failure kind.
type InventoryService struct {
	stockRepository port.StockPort
	products        port.ProductGatewayPort
	viewCache       port.CachePort[domain.StockView]
	idempotency     *IdempotencyService[domain.StockView]
	txManager       port.TransactionManager
}

func NewInventoryService(
	stockRepository port.StockPort,
	products port.ProductGatewayPort,
	viewCache port.CachePort[domain.StockView],
	idempotency *IdempotencyService[domain.StockView],
	txManager port.TransactionManager,
) *InventoryService {
	return &InventoryService{
		stockRepository: stockRepository,
		products:        products,
		viewCache:       viewCache,
		idempotency:     idempotency,
		txManager:       txManager,
	}
}

func (s *InventoryService) cacheKey(productID domain.ProductID) string {
	return fmt.Sprintf("stock:%s", productID)
}

// resolveProduct confirms the product exists before any local state is
// touched. A degraded lookup reads as not found to the caller but is logged
// separately so unreachable-remote fallbacks stay visible in operations.
func (s *InventoryService) resolveProduct(ctx context.Context, productID domain.ProductID) (*domain.ProductRef, error) {
	outcome, err := s.products.Lookup(ctx, productID)
	if err != nil {
		return nil, err
	}

	switch outcome.Status {
	case domain.LookupFound:
		return outcome.Product, nil
	case domain.LookupDegraded:
		logger.Warn(ctx, "inventory: products lookup degraded, treating product as absent", map[string]any{
			"product_id": productID.String(),
			"cause":      outcome.Cause.Error(),
		})
	default:
		logger.Info(ctx, "inventory: product not found", map[string]any{
			"product_id": productID.String(),
		})
	}

	return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %s not found in products service", productID))
}

func (s *InventoryService) loadRecord(ctx context.Context, productID domain.ProductID) (*domain.StockRecord, error) {
	record, err := s.stockRepository.FindByProductID(ctx, productID)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (s *InventoryService) storeView(ctx context.Context, view *domain.StockView) {
	if err := s.viewCache.Set(ctx, s.cacheKey(view.ProductID), view, stockViewCacheTTL); err != nil {
		logger.Error(ctx, "cache: set stock view failed", err, map[string]any{
			"product_id": view.ProductID.String(),
		})
	}
}

// CheckStock returns the current quantity for a confirmed product. Read-only:
// a product with no local record reports quantity zero and nothing is created.
// A cached view short-circuits the remote confirmation, so a product removed
// remotely can still read as present until the view's TTL expires.
func (s *InventoryService) CheckStock(ctx context.Context, productID domain.ProductID) (*domain.StockView, error) {
	cached, err := s.viewCache.Get(ctx, s.cacheKey(productID))
	if err != nil {
		logger.Error(ctx, "cache: get stock view failed", err, map[string]any{
			"product_id": productID.String(),
		})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.resolveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	record, err := s.loadRecord(ctx, productID)
	if err != nil {
		return nil, err
	}

	view := domain.NewStockView(record, product)
	s.storeView(ctx, view)
	return view, nil
}

func (s *InventoryService) processDelta(ctx context.Context, productID domain.ProductID, delta int) (*domain.StockView, error) {
	product, err := s.resolveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var (
		saved       *domain.StockRecord
		oldQuantity int
	)
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		record, err := s.loadRecord(txCtx, productID)
		if err != nil {
			return err
		}

		oldQuantity = domain.CurrentQuantity(record)
		next, err := domain.ApplyDelta(oldQuantity, delta)
		if err != nil {
			return serviceerrors.NewInvalidRequestError(fmt.Sprintf(
				"insufficient stock for product %s: current quantity %d, requested change %d",
				productID, oldQuantity, delta,
			))
		}

		now := time.Now()
		if record == nil {
			record = domain.NewStockRecord(productID, next)
		} else {
			record.Quantity = next
			record.UpdatedAt = now
		}

		// The caller may have timed out during the remote lookup; never start
		// the write once cancellation has been observed.
		if err := txCtx.Err(); err != nil {
			return err
		}

		event := domain.NewStockChangedEvent(productID, oldQuantity, next, delta, now)
		saved, err = s.stockRepository.SaveWithOutbox(txCtx, record, event)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Stock updated", map[string]any{
		"product_id":   productID.String(),
		"old_quantity": oldQuantity,
		"new_quantity": saved.Quantity,
		"delta":        delta,
	})

	view := domain.NewStockView(saved, product)
	s.storeView(ctx, view)
	return view, nil
}

// ApplyDelta applies a signed stock change for a confirmed product, creating
// the record on first replenishment. An optional idempotency key makes
// retried requests return the first result instead of double-applying.
func (s *InventoryService) ApplyDelta(ctx context.Context, idempotencyKey string, productID domain.ProductID, delta int) (*domain.StockView, error) {
	if idempotencyKey == "" {
		return s.processDelta(ctx, productID, delta)
	}

	payloadHash := utils.HashJSON(map[string]any{
		"product_id": productID,
		"delta":      delta,
	})

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	view, err := s.processDelta(ctx, productID, delta)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, view)

	return view, nil
}
