package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/novashop/inventory/internal/adapters/config"
	"github.com/novashop/inventory/internal/core/domain"
	"github.com/novashop/inventory/internal/core/logger"
)

var errProductNotFound = errors.New("product not found")

// productAttributes is the attributes block the products service returns
// inside its JSON:API document.
type productAttributes struct {
	ProductID   int64   `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
}

type productDocument struct {
	Data *struct {
		ID         string             `json:"id"`
		Type       string             `json:"type"`
		Attributes *productAttributes `json:"attributes"`
	} `json:"data"`
}

// Client talks to the remote products service. Transient failures are
// retried on a fixed interval under one hard deadline for the whole lookup;
// once retries or the deadline run out the lookup degrades instead of
// failing, so a broken remote never takes stock operations down with it.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	maxRetries    uint64
	retryInterval time.Duration
	callTimeout   time.Duration
}

func NewClient(cfg config.ProductsConfig) *Client {
	return &Client{
		httpClient:    &http.Client{},
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		maxRetries:    uint64(cfg.MaxRetries),
		retryInterval: cfg.RetryInterval,
		callTimeout:   cfg.CallTimeout,
	}
}

func (c *Client) Lookup(ctx context.Context, id domain.ProductID) (domain.LookupOutcome, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	var product *domain.ProductRef

	operation := func() error {
		found, err := c.fetch(lookupCtx, id)
		if err != nil {
			return err
		}
		product = found
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), c.maxRetries),
		lookupCtx,
	)

	notify := func(err error, _ time.Duration) {
		logger.Warn(ctx, "products: lookup attempt failed, retrying", map[string]any{
			"product_id": id.String(),
			"error":      err.Error(),
		})
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if ctx.Err() != nil {
			return domain.LookupOutcome{}, ctx.Err()
		}
		if errors.Is(err, errProductNotFound) {
			return domain.NewNotFoundOutcome(), nil
		}
		logger.Error(ctx, "products: lookup exhausted retries, degrading to absent", err, map[string]any{
			"product_id": id.String(),
		})
		return domain.NewDegradedOutcome(err), nil
	}

	if product == nil {
		return domain.NewNotFoundOutcome(), nil
	}
	return domain.NewFoundOutcome(product), nil
}

// fetch performs a single attempt. Permanent errors stop the retry loop,
// anything else is considered transient.
func (c *Client) fetch(ctx context.Context, id domain.ProductID) (*domain.ProductRef, error) {
	url := fmt.Sprintf("%s/api/products/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("products request failed: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(errProductNotFound)
	case res.StatusCode >= 500:
		return nil, fmt.Errorf("products service returned %d", res.StatusCode)
	case res.StatusCode >= 400:
		return nil, backoff.Permanent(fmt.Errorf("products service rejected request with %d", res.StatusCode))
	}

	var doc productDocument
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("products response decode failed: %w", err))
	}

	// A 200 without data or attributes still means the product is unknown.
	if doc.Data == nil || doc.Data.Attributes == nil {
		return nil, backoff.Permanent(errProductNotFound)
	}

	attrs := doc.Data.Attributes

	// The requested id is authoritative; a body naming a different product
	// is treated as unknown rather than trusted.
	if attrs.ProductID != 0 && attrs.ProductID != int64(id) {
		return nil, backoff.Permanent(errProductNotFound)
	}

	return &domain.ProductRef{
		ID:          id,
		Name:        attrs.Name,
		Description: attrs.Description,
		Price:       domain.NewAmountFromFloat(attrs.Price),
		SKU:         attrs.SKU,
	}, nil
}
