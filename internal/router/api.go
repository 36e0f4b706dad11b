package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wrenchworks/autoservice/internal/handler"
)

// registerAPIRoutes wires the business route groups: car, mechanic and
// order CRUD plus the analytics endpoints.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	cars := r.Group("/cars")
	cars.POST("", handler.Handle(h.Cars.Handler, h.Cars.Create, http.StatusCreated))
	cars.GET("", handler.Handle(h.Cars.Handler, h.Cars.List, http.StatusOK))
	cars.GET("/:id", handler.Handle(h.Cars.Handler, h.Cars.Get, http.StatusOK))
	cars.PUT("/:id", handler.Handle(h.Cars.Handler, h.Cars.Update, http.StatusOK))
	cars.DELETE("/:id", handler.Handle(h.Cars.Handler, h.Cars.Delete, http.StatusOK))

	mechanics := r.Group("/mechanics")
	mechanics.POST("", handler.Handle(h.Mechanics.Handler, h.Mechanics.Create, http.StatusCreated))
	mechanics.GET("", handler.Handle(h.Mechanics.Handler, h.Mechanics.List, http.StatusOK))
	mechanics.GET("/:id", handler.Handle(h.Mechanics.Handler, h.Mechanics.Get, http.StatusOK))
	mechanics.PUT("/:id", handler.Handle(h.Mechanics.Handler, h.Mechanics.Update, http.StatusOK))
	mechanics.DELETE("/:id", handler.Handle(h.Mechanics.Handler, h.Mechanics.Delete, http.StatusOK))

	orders := r.Group("/orders")
	orders.POST("", handler.Handle(h.Orders.Handler, h.Orders.Create, http.StatusCreated))
	orders.GET("", handler.Handle(h.Orders.Handler, h.Orders.List, http.StatusOK))
	orders.GET("/:id", handler.Handle(h.Orders.Handler, h.Orders.Get, http.StatusOK))
	orders.PUT("/:id", handler.Handle(h.Orders.Handler, h.Orders.Update, http.StatusOK))
	orders.DELETE("/:id", handler.Handle(h.Orders.Handler, h.Orders.Delete, http.StatusOK))

	analytics := r.Group("/analytics")
	analytics.GET("/orders/filter", handler.Handle(h.Analytics.Handler, h.Analytics.FilterOrders, http.StatusOK))
	analytics.GET("/orders/with-details", handler.Handle(h.Analytics.Handler, h.Analytics.OrdersWithDetails, http.StatusOK))
	analytics.GET("/orders/search-meta", handler.Handle(h.Analytics.Handler, h.Analytics.SearchMeta, http.StatusOK))
	analytics.POST("/orders/close-overdue", handler.Handle(h.Analytics.Handler, h.Analytics.CloseOverdue, http.StatusOK))
	analytics.GET("/revenue/by-mechanic", handler.Handle(h.Analytics.Handler, h.Analytics.RevenueByMechanic, http.StatusOK))
	analytics.GET("/revenue/by-mechanic/export",
		handler.HandleFile(h.Analytics.Handler, h.Analytics.RevenueByMechanicCSV, http.StatusOK,
			"revenue_by_mechanic.csv", "text/csv"))
}
