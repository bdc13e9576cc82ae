package port

import (
	"context"

	"github.com/novashop/inventory/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductGatewayPort performs one resilient remote product lookup per call.
// Transport failures never escape: once the retry policy is exhausted the
// outcome degrades to "absent". The error return is non-nil only when the
// caller's context is cancelled.
type ProductGatewayPort interface {
	Lookup(ctx context.Context, id domain.ProductID) (domain.LookupOutcome, error)
}
