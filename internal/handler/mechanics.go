package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/server"
	"github.com/wrenchworks/autoservice/internal/service"
	"github.com/wrenchworks/autoservice/internal/validation"
)

// MechanicHandler serves the mechanic CRUD routes.
type MechanicHandler struct {
	Handler
	mechanics *service.MechanicService
}

func NewMechanicHandler(s *server.Server, services *service.Services) *MechanicHandler {
	return &MechanicHandler{
		Handler:   NewHandler(s),
		mechanics: services.Mechanics,
	}
}

// MechanicCreateRequest is the payload for registering a technician.
type MechanicCreateRequest struct {
	EmployeeNo      string `json:"employee_no" validate:"required,max=32"`
	FullName        string `json:"full_name" validate:"required,max=128"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0,lte=80"`
	Grade           int    `json:"grade" validate:"required,gte=1,lte=10"`
}

func (r *MechanicCreateRequest) Validate() error {
	return validation.Struct(r)
}

// MechanicUpdateRequest is the partial-update payload.
type MechanicUpdateRequest struct {
	IDParam
	EmployeeNo      *string `json:"employee_no" validate:"omitempty,max=32"`
	FullName        *string `json:"full_name" validate:"omitempty,max=128"`
	ExperienceYears *int    `json:"experience_years" validate:"omitempty,gte=0,lte=80"`
	Grade           *int    `json:"grade" validate:"omitempty,gte=1,lte=10"`
}

func (r *MechanicUpdateRequest) Validate() error {
	return validation.Struct(r)
}

func (r *MechanicUpdateRequest) patch() domain.MechanicPatch {
	return domain.MechanicPatch{
		EmployeeNo:      r.EmployeeNo,
		FullName:        r.FullName,
		ExperienceYears: r.ExperienceYears,
		Grade:           r.Grade,
	}
}

func (h *MechanicHandler) Create(c echo.Context, req *MechanicCreateRequest) (domain.Mechanic, error) {
	return h.mechanics.Create(c.Request().Context(), domain.Mechanic{
		EmployeeNo:      req.EmployeeNo,
		FullName:        req.FullName,
		ExperienceYears: req.ExperienceYears,
		Grade:           req.Grade,
	})
}

func (h *MechanicHandler) Get(c echo.Context, req *IDParam) (domain.Mechanic, error) {
	return h.mechanics.GetByID(c.Request().Context(), req.ID)
}

func (h *MechanicHandler) List(c echo.Context, req *ListQuery) ([]domain.Mechanic, error) {
	return h.mechanics.List(c.Request().Context(), req.SortBy, req.SortDir, req.Page())
}

func (h *MechanicHandler) Update(c echo.Context, req *MechanicUpdateRequest) (domain.Mechanic, error) {
	return h.mechanics.Update(c.Request().Context(), req.ID, req.patch())
}

func (h *MechanicHandler) Delete(c echo.Context, req *IDParam) (StatusResponse, error) {
	if err := h.mechanics.Delete(c.Request().Context(), req.ID); err != nil {
		return StatusResponse{}, err
	}
	return StatusResponse{Status: "ok"}, nil
}
