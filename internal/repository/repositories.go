package repository

import (
	"github.com/wrenchworks/autoservice/internal/server"
)

// Repositories is the container for all repository instances.
type Repositories struct {
	Cars      *CarRepository
	Mechanics *MechanicRepository
	Orders    *OrderRepository
	Analytics *AnalyticsRepository
}

// NewRepositories constructs the repository container from the shared
// application pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Cars:      NewCarRepository(s),
		Mechanics: NewMechanicRepository(s),
		Orders:    NewOrderRepository(s),
		Analytics: NewAnalyticsRepository(s),
	}
}
