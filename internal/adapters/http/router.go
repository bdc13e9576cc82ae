package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novashop/inventory/internal/adapters/config"
	"github.com/novashop/inventory/internal/adapters/http/controllers"
	"github.com/novashop/inventory/internal/adapters/http/middleware"
)

type Router struct {
	healthController    *controllers.HealthController
	inventoryController *controllers.InventoryController
	rateLimiter         middleware.RateLimiter
	apiKey              string
}

func NewRouter(
	healthController *controllers.HealthController,
	inventoryController *controllers.InventoryController,
	rateLimiter middleware.RateLimiter,
	apiKey string,
) *Router {
	return &Router{
		healthController:    healthController,
		inventoryController: inventoryController,
		rateLimiter:         rateLimiter,
		apiKey:              apiKey,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		inventoryGroup := v1Group.Group("/inventory", middleware.RequireAPIKey(r.apiKey))
		inventoryGroup.GET("/:productId", r.inventoryController.GetStock)
		inventoryGroup.POST("/:productId/update", middleware.RateLimit(rl, 20, 1*time.Minute), r.inventoryController.UpdateStock)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
