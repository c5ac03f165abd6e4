package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/application/simulation"
	"github.com/jhoicas/rs-bonus/internal/application/usecase"
)

// ProductHandler catálogo de la calculadora de costo, economía por producto y previsión.
type ProductHandler struct {
	uc  *usecase.ProductCostUseCase
	sim *simulation.UseCase
	v   *validator.Validate
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductCostUseCase, sim *simulation.UseCase, v *validator.Validate) *ProductHandler {
	return &ProductHandler{uc: uc, sim: sim, v: v}
}

// Create godoc
// @Summary      Crear fila de costo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductCostRequest  true  "Fila de costo"
// @Success      201   {object}  dto.ProductCostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductCostRequest
	if ok, err := bind(c, h.v, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener fila de costo por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la fila"
// @Success      200  {object}  dto.ProductCostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo de costos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ProductCostListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := bindQuery(c, h.v, &page); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar fila de costo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la fila"
// @Param        body  body  dto.ProductCostRequest  true  "Fila de costo"
// @Success      200   {object}  dto.ProductCostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}
	var in dto.ProductCostRequest
	if ok, err := bind(c, h.v, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetCompanyID(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar fila de costo
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID de la fila"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CatalogEconomics godoc
// @Summary      Economía del catálogo guardado
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  commission.ProductEconomics
// @Router       /api/products/economics [get]
func (h *ProductHandler) CatalogEconomics(c *fiber.Ctx) error {
	out, err := h.sim.ProductEconomics(c.UserContext(), GetCompanyID(c), dto.EconomicsRequest{})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Economics godoc
// @Summary      Economía por producto
// @Description  Filas en línea; sin products usa el catálogo guardado.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EconomicsRequest  true  "Filas en línea"
// @Success      200   {object}  commission.ProductEconomics
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/economics [post]
func (h *ProductHandler) Economics(c *fiber.Ctx) error {
	var in dto.EconomicsRequest
	if ok, err := bind(c, h.v, &in); !ok {
		return err
	}
	out, err := h.sim.ProductEconomics(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Forecast godoc
// @Summary      Previsión de ventas
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForecastRequest  true  "Unidades previstas y filas opcionales"
// @Success      200   {object}  commission.SalesForecast
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/forecast [post]
func (h *ProductHandler) Forecast(c *fiber.Ctx) error {
	var in dto.ForecastRequest
	if ok, err := bind(c, h.v, &in); !ok {
		return err
	}
	out, err := h.sim.SalesForecast(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
