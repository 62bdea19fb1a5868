// Package routes wires the HTTP surface: every endpoint, grouped per
// resource under /api/v1.
package routes

import (
	"net/http"

	"github.com/washpoint/washpoint/app/controllers"
	"github.com/washpoint/washpoint/pkg/response"
	"github.com/washpoint/washpoint/pkg/router"
)

// Controllers bundles the handler set Register mounts.
type Controllers struct {
	Clients    *controllers.ClientController
	Categories *controllers.CategoryController
	Prices     *controllers.PriceController
	Orders     *controllers.OrderController
}

// Register mounts all API routes on r.
func Register(r *router.Router, c Controllers) {
	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	api := r.Group("/api/v1")

	clients := api.Group("/clients")
	clients.Get("/", "clients.index", c.Clients.Index)
	clients.Post("/", "clients.store", c.Clients.Store)
	clients.Get("/{id}", "clients.show", c.Clients.Show)
	clients.Patch("/{id}", "clients.update", c.Clients.Update)
	clients.Delete("/{id}", "clients.destroy", c.Clients.Destroy)

	categories := api.Group("/categories")
	categories.Get("/", "categories.index", c.Categories.Index)
	categories.Post("/", "categories.store", c.Categories.Store)
	categories.Get("/{id}", "categories.show", c.Categories.Show)
	categories.Patch("/{id}", "categories.update", c.Categories.Update)
	categories.Delete("/{id}", "categories.destroy", c.Categories.Destroy)

	prices := api.Group("/prices")
	prices.Get("/", "prices.index", c.Prices.Index)
	prices.Post("/", "prices.store", c.Prices.Store)
	prices.Get("/{id}", "prices.show", c.Prices.Show)
	prices.Patch("/{id}", "prices.update", c.Prices.Update)
	prices.Delete("/{id}", "prices.destroy", c.Prices.Destroy)

	orders := api.Group("/orders")
	orders.Get("/", "orders.index", c.Orders.Index)
	orders.Post("/", "orders.store", c.Orders.Store)
	orders.Post("/integrated", "orders.integrated", c.Orders.StoreIntegrated)
	orders.Get("/{id}", "orders.show", c.Orders.Show)
	orders.Get("/{id}/details", "orders.details", c.Orders.ShowDetails)
	orders.Patch("/{id}", "orders.update", c.Orders.Update)
	orders.Delete("/{id}", "orders.destroy", c.Orders.Destroy)
}
