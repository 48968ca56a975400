// Package router wires the handlers onto a gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/lunchledger/internal/config"
	"github.com/mmynk/lunchledger/internal/handler"
	"github.com/mmynk/lunchledger/internal/middleware"
	"github.com/mmynk/lunchledger/internal/service"
	"github.com/mmynk/lunchledger/internal/storage"
)

// SetupRouter configures the gin engine, services and routes. The store is
// injected here and threaded through the services; nothing holds global
// connection state.
func SetupRouter(cfg *config.Config, store storage.Store) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	users := handler.NewUserHandler(service.NewUserService(store))
	restaurantSvc := service.NewRestaurantService(store)
	restaurants := handler.NewRestaurantHandler(restaurantSvc)
	menuItems := handler.NewMenuItemHandler(service.NewMenuItemService(store), restaurantSvc)
	debtSvc := service.NewDebtService(store)
	debts := handler.NewDebtHandler(debtSvc)
	export := handler.NewExportHandler(debtSvc)
	health := handler.NewHealthHandler(store)

	api := r.Group("/api")

	api.GET("/users", users.List)
	api.POST("/users", users.Create)
	api.PUT("/users", users.Update)
	api.DELETE("/users", users.Delete)

	api.GET("/restaurants", restaurants.List)
	api.POST("/restaurants", restaurants.Create)
	api.PUT("/restaurants", restaurants.Update)
	api.DELETE("/restaurants", restaurants.Delete)

	api.GET("/menu-items", menuItems.List)
	api.POST("/menu-items", menuItems.Create)
	api.PUT("/menu-items", menuItems.Update)
	api.DELETE("/menu-items", menuItems.Delete)

	api.GET("/debts", debts.List)
	api.POST("/debts", debts.Create)
	// PUT returns the pairwise summary, not an update. Inherited contract:
	// the interface this replaces used PUT for the summary read and callers
	// depend on it. New callers should use GET /api/debts/summary.
	api.PUT("/debts", debts.Summaries)
	api.DELETE("/debts", debts.Delete)
	api.GET("/debts/summary", debts.Summaries)

	api.GET("/stats", debts.Stats)
	api.GET("/export/xlsx", export.ExportXLSX)

	r.GET("/healthz", health.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
