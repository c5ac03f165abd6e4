package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/application/usecase"
)

// RateHandler versiones de la tabla de tasas.
type RateHandler struct {
	uc *usecase.RateTableUseCase
	v  *validator.Validate
}

// NewRateHandler construye el handler.
func NewRateHandler(uc *usecase.RateTableUseCase, v *validator.Validate) *RateHandler {
	return &RateHandler{uc: uc, v: v}
}

// Active godoc
// @Summary      Tasas vigentes
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RateTableResponse
// @Router       /api/rates [get]
func (h *RateHandler) Active(c *fiber.Ctx) error {
	out, err := h.uc.Active(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Versions godoc
// @Summary      Historial de versiones de tasas
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RateTableListResponse
// @Router       /api/rates/versions [get]
func (h *RateHandler) Versions(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Version godoc
// @Summary      Versión de tasas
// @Tags         rates
// @Security     Bearer
// @Produce      json
// @Param        version  path  int  true  "Versión (0 = tasas por defecto)"
// @Success      200  {object}  dto.RateTableResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/versions/{version} [get]
func (h *RateHandler) Version(c *fiber.Ctx) error {
	version, err := strconv.Atoi(c.Params("version"))
	if err != nil || version < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "versión inválida"})
	}
	out, err := h.uc.Get(c.UserContext(), GetCompanyID(c), version)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Publish godoc
// @Summary      Publicar nueva versión de tasas
// @Description  La versión publicada pasa a ser la activa. Campos fuera de rango devuelven RATE_OUT_OF_RANGE con fields.
// @Tags         rates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PublishRatesRequest  true  "Tabla completa de tasas"
// @Success      201   {object}  dto.RateTableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rates [post]
func (h *RateHandler) Publish(c *fiber.Ctx) error {
	var in dto.PublishRatesRequest
	if ok, err := bind(c, h.v, &in); !ok {
		return err
	}
	out, err := h.uc.Publish(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
