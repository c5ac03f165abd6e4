package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/commission"
	"github.com/jhoicas/rs-bonus/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeValidation   = "VALIDATION"
	CodeInvalidBody  = "INVALID_BODY"
	CodeRateRange    = "RATE_OUT_OF_RANGE"
	CodeMissingToken = "MISSING_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeMissingRole  = "MISSING_ROLE"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeDuplicate    = "DUPLICATE"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL"
)

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "datos inválidos", Fields: fields})
	case errors.Is(err, domain.ErrConfigOutOfRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeRateRange, Message: err.Error(), Fields: commission.RateFields(err)})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeDuplicate, Message: "ya existe un registro con ese nombre"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: CodeConflict, Message: "operación concurrente, reintente"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: "acceso denegado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: "error interno"})
}

// ErrorHandler manejador global de Fiber: errores de Fiber con su código, el resto como INTERNAL.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = CodeNotFound
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
				code = CodeInvalidBody
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return writeError(c, err)
	}
}
