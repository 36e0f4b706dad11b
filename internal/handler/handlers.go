package handler

import (
	"github.com/wrenchworks/autoservice/internal/server"
	"github.com/wrenchworks/autoservice/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health    *HealthHandler
	Cars      *CarHandler
	Mechanics *MechanicHandler
	Orders    *OrderHandler
	Analytics *AnalyticsHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		Cars:      NewCarHandler(s, services),
		Mechanics: NewMechanicHandler(s, services),
		Orders:    NewOrderHandler(s, services),
		Analytics: NewAnalyticsHandler(s, services),
	}
}
