package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/server"
	"github.com/wrenchworks/autoservice/internal/service"
	"github.com/wrenchworks/autoservice/internal/validation"
)

// CarHandler serves the car CRUD routes.
type CarHandler struct {
	Handler
	cars *service.CarService
}

func NewCarHandler(s *server.Server, services *service.Services) *CarHandler {
	return &CarHandler{
		Handler: NewHandler(s),
		cars:    services.Cars,
	}
}

// CarCreateRequest is the payload for registering a vehicle.
type CarCreateRequest struct {
	Number    string `json:"number" validate:"required,max=32"`
	Brand     string `json:"brand" validate:"required,max=64"`
	Year      int    `json:"year" validate:"required,gte=1900,lte=2100"`
	OwnerName string `json:"owner_name" validate:"required,max=128"`
}

func (r *CarCreateRequest) Validate() error {
	return validation.Struct(r)
}

// CarUpdateRequest is the partial-update payload. Absent keys leave the
// field untouched; no car field accepts null.
type CarUpdateRequest struct {
	IDParam
	Number    *string `json:"number" validate:"omitempty,max=32"`
	Brand     *string `json:"brand" validate:"omitempty,max=64"`
	Year      *int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	OwnerName *string `json:"owner_name" validate:"omitempty,max=128"`
}

func (r *CarUpdateRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CarUpdateRequest) patch() domain.CarPatch {
	return domain.CarPatch{
		Number:    r.Number,
		Brand:     r.Brand,
		Year:      r.Year,
		OwnerName: r.OwnerName,
	}
}

func (h *CarHandler) Create(c echo.Context, req *CarCreateRequest) (domain.Car, error) {
	return h.cars.Create(c.Request().Context(), domain.Car{
		Number:    req.Number,
		Brand:     req.Brand,
		Year:      req.Year,
		OwnerName: req.OwnerName,
	})
}

func (h *CarHandler) Get(c echo.Context, req *IDParam) (domain.Car, error) {
	return h.cars.GetByID(c.Request().Context(), req.ID)
}

func (h *CarHandler) List(c echo.Context, req *ListQuery) ([]domain.Car, error) {
	return h.cars.List(c.Request().Context(), req.SortBy, req.SortDir, req.Page())
}

func (h *CarHandler) Update(c echo.Context, req *CarUpdateRequest) (domain.Car, error) {
	return h.cars.Update(c.Request().Context(), req.ID, req.patch())
}

func (h *CarHandler) Delete(c echo.Context, req *IDParam) (StatusResponse, error) {
	if err := h.cars.Delete(c.Request().Context(), req.ID); err != nil {
		return StatusResponse{}, err
	}
	return StatusResponse{Status: "ok"}, nil
}
