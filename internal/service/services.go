package service

import (
	"github.com/wrenchworks/autoservice/internal/repository"
	"github.com/wrenchworks/autoservice/internal/server"
)

type Services struct {
	Cars      *CarService
	Mechanics *MechanicService
	Orders    *OrderService
	Analytics *AnalyticsService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Cars:      NewCarService(s, repos),
		Mechanics: NewMechanicService(s, repos),
		Orders:    NewOrderService(s, repos),
		Analytics: NewAnalyticsService(s, repos),
	}, nil
}
