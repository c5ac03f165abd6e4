package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/application/usecase"
)

// CareerHandler plan de carrera y conteos por período.
type CareerHandler struct {
	uc *usecase.CareerUseCase
	v  *validator.Validate
}

// NewCareerHandler construye el handler.
func NewCareerHandler(uc *usecase.CareerUseCase, v *validator.Validate) *CareerHandler {
	return &CareerHandler{uc: uc, v: v}
}

// Tiers godoc
// @Summary      Plan de carrera
// @Tags         career
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CareerTiersResponse
// @Router       /api/career/tiers [get]
func (h *CareerHandler) Tiers(c *fiber.Ctx) error {
	return c.JSON(h.uc.Tiers())
}

// Progress godoc
// @Summary      Avance hacia el próximo PIN
// @Tags         career
// @Security     Bearer
// @Produce      json
// @Param        tier    query  string  true   "PIN actual"
// @Param        cycles  query  int     false  "Ciclos acumulados"
// @Success      200  {object}  commission.CareerProgress
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/career/progress [get]
func (h *CareerHandler) Progress(c *fiber.Ctx) error {
	var q dto.CareerProgressQuery
	if ok, err := bindQuery(c, h.v, &q); !ok {
		return err
	}
	out, err := h.uc.Progress(q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetCounts godoc
// @Summary      Conteos de PIN de un período
// @Tags         career
// @Security     Bearer
// @Produce      json
// @Param        period  path  string  true  "AAAA-MM o AAAA-Qn"
// @Success      200  {object}  dto.CareerCountsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/career/counts/{period} [get]
func (h *CareerHandler) GetCounts(c *fiber.Ctx) error {
	out, err := h.uc.GetCounts(c.UserContext(), GetCompanyID(c), c.Params("period"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PutCounts godoc
// @Summary      Guardar conteos de PIN de un período
// @Tags         career
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        period  path  string                   true  "AAAA-MM o AAAA-Qn"
// @Param        body    body  dto.CareerCountsRequest  true  "Consultores por PIN"
// @Success      200  {object}  dto.CareerCountsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/career/counts/{period} [put]
func (h *CareerHandler) PutCounts(c *fiber.Ctx) error {
	var in dto.CareerCountsRequest
	if ok, err := bind(c, h.v, &in); !ok {
		return err
	}
	out, err := h.uc.SetCounts(c.UserContext(), GetCompanyID(c), c.Params("period"), in.Counts)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
