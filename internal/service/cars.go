package service

import (
	"context"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/repository"
	"github.com/wrenchworks/autoservice/internal/server"
)

type CarService struct {
	server *server.Server
	cars   *repository.CarRepository
}

func NewCarService(s *server.Server, repos *repository.Repositories) *CarService {
	return &CarService{
		server: s,
		cars:   repos.Cars,
	}
}

func (s *CarService) Create(ctx context.Context, car domain.Car) (domain.Car, error) {
	return s.cars.Create(ctx, car)
}

func (s *CarService) GetByID(ctx context.Context, id int64) (domain.Car, error) {
	return s.cars.GetByID(ctx, id)
}

// List resolves the sort directive against the car field registry and
// returns one page of cars.
func (s *CarService) List(ctx context.Context, sortBy, sortDir string, page domain.Page) ([]domain.Car, error) {
	sort, err := domain.ResolveSort(domain.CarFields, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	return s.cars.List(ctx, sort, page)
}

func (s *CarService) Update(ctx context.Context, id int64, patch domain.CarPatch) (domain.Car, error) {
	return s.cars.Update(ctx, id, patch)
}

func (s *CarService) Delete(ctx context.Context, id int64) error {
	return s.cars.Delete(ctx, id)
}
