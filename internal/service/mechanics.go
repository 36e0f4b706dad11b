package service

import (
	"context"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/repository"
	"github.com/wrenchworks/autoservice/internal/server"
)

type MechanicService struct {
	server    *server.Server
	mechanics *repository.MechanicRepository
}

func NewMechanicService(s *server.Server, repos *repository.Repositories) *MechanicService {
	return &MechanicService{
		server:    s,
		mechanics: repos.Mechanics,
	}
}

func (s *MechanicService) Create(ctx context.Context, mechanic domain.Mechanic) (domain.Mechanic, error) {
	return s.mechanics.Create(ctx, mechanic)
}

func (s *MechanicService) GetByID(ctx context.Context, id int64) (domain.Mechanic, error) {
	return s.mechanics.GetByID(ctx, id)
}

// List resolves the sort directive against the mechanic field registry
// and returns one page of mechanics.
func (s *MechanicService) List(ctx context.Context, sortBy, sortDir string, page domain.Page) ([]domain.Mechanic, error) {
	sort, err := domain.ResolveSort(domain.MechanicFields, sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	return s.mechanics.List(ctx, sort, page)
}

func (s *MechanicService) Update(ctx context.Context, id int64, patch domain.MechanicPatch) (domain.Mechanic, error) {
	return s.mechanics.Update(ctx, id, patch)
}

func (s *MechanicService) Delete(ctx context.Context, id int64) error {
	return s.mechanics.Delete(ctx, id)
}
