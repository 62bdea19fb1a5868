// Package server assembles the application: config, database, cache,
// services, routes, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/controllers"
	"github.com/washpoint/washpoint/app/repositories"
	"github.com/washpoint/washpoint/app/routes"
	"github.com/washpoint/washpoint/app/services"
	"github.com/washpoint/washpoint/config"
	"github.com/washpoint/washpoint/pkg/cache"
	"github.com/washpoint/washpoint/pkg/database"
	"github.com/washpoint/washpoint/pkg/logger"
	"github.com/washpoint/washpoint/pkg/metrics"
	"github.com/washpoint/washpoint/pkg/middleware"
	"github.com/washpoint/washpoint/pkg/reqid"
	"github.com/washpoint/washpoint/pkg/router"
)

// Services is the wired service layer, exposed so the CLI and tests can
// reach the same object graph the HTTP handlers use.
type Services struct {
	Clients    *services.ClientService
	Categories *services.CategoryService
	Prices     *services.PriceService
	Orders     *services.OrderService
	Pricing    *services.PricingService
}

// Wire builds the full service graph on top of db.
func Wire(db *gorm.DB) Services {
	clientRepo := repositories.NewClientRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	priceRepo := repositories.NewPriceRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	pricing := services.NewPricingService(priceRepo)
	clientSvc := services.NewClientService(clientRepo, orderRepo)
	categorySvc := services.NewCategoryService(categoryRepo, priceRepo, orderRepo)
	priceSvc := services.NewPriceService(priceRepo, categoryRepo, orderRepo)
	orderSvc := services.NewOrderService(db, orderRepo, clientRepo, categoryRepo, pricing, clientSvc, categorySvc)

	return Services{
		Clients:    clientSvc,
		Categories: categorySvc,
		Prices:     priceSvc,
		Orders:     orderSvc,
		Pricing:    pricing,
	}
}

// BuildHandler constructs the router with the full middleware stack and all
// routes mounted. Tests drive this handler directly with httptest.
func BuildHandler(svc Services) http.Handler {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)

	r.Get("/metrics", "metrics", metrics.Handler())

	routes.Register(r, routes.Controllers{
		Clients:    controllers.NewClientController(svc.Clients),
		Categories: controllers.NewCategoryController(svc.Categories),
		Prices:     controllers.NewPriceController(svc.Prices),
		Orders:     controllers.NewOrderController(svc.Orders),
	})

	return r.Handler()
}

// Routes builds the router the same way BuildHandler does and returns the
// named route table, for route:list.
func Routes() []router.RouteInfo {
	r := router.New()
	r.Get("/metrics", "metrics", metrics.Handler())
	routes.Register(r, routes.Controllers{
		Clients:    controllers.NewClientController(nil),
		Categories: controllers.NewCategoryController(nil),
		Prices:     controllers.NewPriceController(nil),
		Orders:     controllers.NewOrderController(nil),
	})
	return r.Routes()
}

// Run boots the application and serves HTTP until SIGINT/SIGTERM, then
// drains in-flight requests before returning.
func Run() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// Cache is optional: a missing Redis degrades to direct DB reads.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, running without it", "error", err)
	}

	handler := BuildHandler(Wire(database.DB))

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
