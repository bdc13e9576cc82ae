package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novashop/inventory/internal/adapters/http/controllers"
	"github.com/novashop/inventory/internal/core/domain"
	"github.com/novashop/inventory/internal/core/port/mock"
	"github.com/novashop/inventory/internal/core/service"
	"go.uber.org/mock/gomock"
)

type controllerMocks struct {
	stockRepo *mock.MockStockPort
	products  *mock.MockProductGatewayPort
	viewCache *mock.MockCachePort[domain.StockView]
	txManager *mock.MockTransactionManager
}

func setupInventoryRouter(t *testing.T) (*gin.Engine, *controllerMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := &controllerMocks{
		stockRepo: mock.NewMockStockPort(ctrl),
		products:  mock.NewMockProductGatewayPort(ctrl),
		viewCache: mock.NewMockCachePort[domain.StockView](ctrl),
		txManager: mock.NewMockTransactionManager(ctrl),
	}

	idemCache := mock.NewMockCachePort[service.IdempotencyEntry[domain.StockView]](ctrl)
	idemSvc := service.NewIdempotencyService[domain.StockView](idemCache, 15*time.Minute, 50*time.Millisecond, 500*time.Millisecond)
	svc := service.NewInventoryService(m.stockRepo, m.products, m.viewCache, idemSvc, m.txManager)
	controller := controllers.NewInventoryController(svc)

	router := gin.New()
	router.GET("/api/v1/inventory/:productId", controller.GetStock)
	router.POST("/api/v1/inventory/:productId/update", controller.UpdateStock)

	return router, m
}

type jsonAPIResponse struct {
	Data *struct {
		ID         string `json:"id"`
		Type       string `json:"type"`
		Attributes struct {
			ProductID     int64   `json:"productId"`
			Quantity      int     `json:"quantity"`
			ProductExists bool    `json:"productExists"`
			Name          string  `json:"name"`
			Price         float64 `json:"price"`
			SKU           string  `json:"sku"`
		} `json:"attributes"`
	} `json:"data"`
	Errors []struct {
		Status string `json:"status"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) jsonAPIResponse {
	t.Helper()
	var response jsonAPIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

func TestInventoryController_GetStock(t *testing.T) {
	t.Run("returns stock for existing product", func(t *testing.T) {
		router, m := setupInventoryRouter(t)

		m.viewCache.EXPECT().Get(gomock.Any(), "stock:7").Return(nil, nil)
		m.products.EXPECT().
			Lookup(gomock.Any(), domain.ProductID(7)).
			Return(domain.NewFoundOutcome(&domain.ProductRef{
				ID:    7,
				Name:  "Test Product",
				Price: domain.NewAmountFromFloat(29.99),
				SKU:   "SKU123",
			}), nil)
		m.stockRepo.EXPECT().
			FindByProductID(gomock.Any(), domain.ProductID(7)).
			Return(domain.NewStockRecord(7, 10), nil)
		m.viewCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/7", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		response := decodeResponse(t, w)
		if response.Data == nil || response.Data.ID != "7" || response.Data.Type != "inventory" {
			t.Fatalf("unexpected data block: %+v", response.Data)
		}
		if response.Data.Attributes.Quantity != 10 || !response.Data.Attributes.ProductExists {
			t.Fatalf("unexpected attributes: %+v", response.Data.Attributes)
		}
		if response.Data.Attributes.SKU != "SKU123" {
			t.Fatalf("expected product fields in attributes, got %+v", response.Data.Attributes)
		}
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		router, m := setupInventoryRouter(t)

		m.viewCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.products.EXPECT().
			Lookup(gomock.Any(), domain.ProductID(99)).
			Return(domain.NewNotFoundOutcome(), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/99", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		response := decodeResponse(t, w)
		if len(response.Errors) != 1 || response.Errors[0].Title != "Resource not found" {
			t.Fatalf("unexpected errors: %+v", response.Errors)
		}
		if !strings.Contains(response.Errors[0].Detail, "99") {
			t.Fatalf("expected product id in detail, got %q", response.Errors[0].Detail)
		}
	})

	t.Run("invalid product id maps to 400", func(t *testing.T) {
		router, _ := setupInventoryRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/abc", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		response := decodeResponse(t, w)
		if len(response.Errors) != 1 || response.Errors[0].Title != "Invalid request" {
			t.Fatalf("unexpected errors: %+v", response.Errors)
		}
	})
}

func TestInventoryController_UpdateStock(t *testing.T) {
	t.Run("applies change and returns updated stock", func(t *testing.T) {
		router, m := setupInventoryRouter(t)

		m.products.EXPECT().
			Lookup(gomock.Any(), domain.ProductID(7)).
			Return(domain.NewFoundOutcome(&domain.ProductRef{ID: 7, Name: "Test Product"}), nil)
		m.txManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		m.stockRepo.EXPECT().
			FindByProductID(gomock.Any(), domain.ProductID(7)).
			Return(domain.NewStockRecord(7, 10), nil)
		m.stockRepo.EXPECT().
			SaveWithOutbox(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *domain.StockRecord, _ domain.Event) (*domain.StockRecord, error) {
				return record, nil
			})
		m.viewCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/7/update", strings.NewReader(`{"change_quantity": -5}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		response := decodeResponse(t, w)
		if response.Data == nil || response.Data.Attributes.Quantity != 5 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("insufficient stock maps to 400 with quantities in detail", func(t *testing.T) {
		router, m := setupInventoryRouter(t)

		m.products.EXPECT().
			Lookup(gomock.Any(), domain.ProductID(7)).
			Return(domain.NewFoundOutcome(&domain.ProductRef{ID: 7}), nil)
		m.txManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		m.stockRepo.EXPECT().
			FindByProductID(gomock.Any(), domain.ProductID(7)).
			Return(domain.NewStockRecord(7, 10), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/7/update", strings.NewReader(`{"change_quantity": -20}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		response := decodeResponse(t, w)
		if len(response.Errors) != 1 {
			t.Fatalf("unexpected errors: %+v", response.Errors)
		}
		detail := response.Errors[0].Detail
		if !strings.Contains(detail, "10") || !strings.Contains(detail, "-20") {
			t.Fatalf("expected quantities in detail, got %q", detail)
		}
	})

	t.Run("missing change_quantity maps to 400", func(t *testing.T) {
		router, _ := setupInventoryRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/7/update", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero change_quantity is accepted", func(t *testing.T) {
		router, m := setupInventoryRouter(t)

		m.products.EXPECT().
			Lookup(gomock.Any(), domain.ProductID(7)).
			Return(domain.NewFoundOutcome(&domain.ProductRef{ID: 7}), nil)
		m.txManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		m.stockRepo.EXPECT().
			FindByProductID(gomock.Any(), domain.ProductID(7)).
			Return(domain.NewStockRecord(7, 10), nil)
		m.stockRepo.EXPECT().
			SaveWithOutbox(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *domain.StockRecord, _ domain.Event) (*domain.StockRecord, error) {
				return record, nil
			})
		m.viewCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/7/update", strings.NewReader(`{"change_quantity": 0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		response := decodeResponse(t, w)
		if response.Data == nil || response.Data.Attributes.Quantity != 10 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}
