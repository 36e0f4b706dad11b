package service

import (
	"context"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/errs"
	"github.com/wrenchworks/autoservice/internal/repository"
	"github.com/wrenchworks/autoservice/internal/server"
)

type OrderService struct {
	server    *server.Server
	orders    *repository.OrderRepository
	cars      *repository.CarRepository
	mechanics *repository.MechanicRepository
}

func NewOrderService(s *server.Server, repos *repository.Repositories) *OrderService {
	return &OrderService{
		server:    s,
		orders:    repos.Orders,
		cars:      repos.Cars,
		mechanics: repos.Mechanics,
	}
}

// Create inserts a new order after checking that the referenced car and
// mechanic exist. The existence checks produce field-level 400s instead
// of leaving the miss to surface as an FK violation.
func (s *OrderService) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := s.checkCarExists(ctx, order.CarID); err != nil {
		return domain.Order{}, err
	}
	if err := s.checkMechanicExists(ctx, order.MechanicID); err != nil {
		return domain.Order{}, err
	}

	if order.Status == "" {
		order.Status = domain.StatusNew
	}
	if order.Meta == nil {
		order.Meta = map[string]any{}
	}

	return s.orders.Create(ctx, order)
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// List resolves the sort directive against the order field registry and
// returns one page of orders.
func (s *OrderService) List(ctx context.Context, sortBy, sortDir string, page domain.Page) ([]domain.Order, error) {
	sort, err := domain.ResolveSort(domain.OrderFields, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	return s.orders.List(ctx, sort, page)
}

// Update applies a partial update. References are re-checked only when
// the patch actually changes them.
func (s *OrderService) Update(ctx context.Context, id int64, patch domain.OrderPatch) (domain.Order, error) {
	if patch.CarID != nil {
		if err := s.checkCarExists(ctx, *patch.CarID); err != nil {
			return domain.Order{}, err
		}
	}
	if patch.MechanicID != nil {
		if err := s.checkMechanicExists(ctx, *patch.MechanicID); err != nil {
			return domain.Order{}, err
		}
	}

	return s.orders.Update(ctx, id, patch)
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

func (s *OrderService) checkCarExists(ctx context.Context, id int64) error {
	exists, err := s.cars.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewBadRequestError("car_id references a car that does not exist", true, nil,
			[]errs.FieldError{{Field: "car_id", Error: "not found"}}, nil)
	}
	return nil
}

func (s *OrderService) checkMechanicExists(ctx context.Context, id int64) error {
	exists, err := s.mechanics.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewBadRequestError("mechanic_id references a mechanic that does not exist", true, nil,
			[]errs.FieldError{{Field: "mechanic_id", Error: "not found"}}, nil)
	}
	return nil
}
