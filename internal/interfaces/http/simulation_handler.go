package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/application/simulation"
)

// SimulationHandler simulador de bonos, corridas guardadas e informe PDF.
type SimulationHandler struct {
	uc *simulation.UseCase
	v  *validator.Validate
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(uc *simulation.UseCase, v *validator.Validate) *SimulationHandler {
	return &SimulationHandler{uc: uc, v: v}
}

// Simulate godoc
// @Summary      Simular bonos
// @Description  Calcula GMV, bonos y lucro neto. Con save=true guarda la corrida con la versión de tasas usada.
// @Tags         simulations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulateRequest  true  "Entradas de la simulación"
// @Success      200   {object}  dto.SimulationResponse
// @Success      201   {object}  dto.SimulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/simulations [post]
func (h *SimulationHandler) Simulate(c *fiber.Ctx) error {
	var in dto.SimulateRequest
	if ok, err := bind(c, h.v, &in); !ok {
		return err
	}
	out, err := h.uc.Simulate(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	if in.Save {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar simulaciones guardadas
// @Tags         simulations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.SimulationListResponse
// @Router       /api/simulations [get]
func (h *SimulationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := bindQuery(c, h.v, &page); !ok {
		return err
	}
	out, err := h.uc.ListRuns(c.UserContext(), GetCompanyID(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener simulación guardada
// @Tags         simulations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la corrida"
// @Success      200  {object}  dto.SimulationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/simulations/{id} [get]
func (h *SimulationHandler) Get(c *fiber.Ctx) error {
	id, ok, err := pathID(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetRun(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Informe PDF de una simulación
// @Description  Con run_id usa la corrida guardada; si no, simula con las entradas del cuerpo.
// @Tags         simulations
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ReportRequest  true  "Corrida o entradas"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/simulations/report [post]
func (h *SimulationHandler) Report(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if ok, err := bind(c, h.v, &in); !ok {
		return err
	}
	pdf, err := h.uc.Report(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="simulacao-bonus.pdf"`)
	return c.Send(pdf)
}
