package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
)

// newValidator validador de DTOs: los decimal.Decimal se comparan como float64
// (gte/lte) y los errores nombran el campo JSON.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	if err := v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		return entity.ValidPeriod(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("registrar validación period: %v", err))
	}
	return v
}

// pathID lee el parámetro :id y exige un UUID; las columnas id son UUID en PostgreSQL.
// El error ya está escrito en la respuesta cuando ok es false.
func pathID(c *fiber.Ctx) (id string, ok bool, err error) {
	id = c.Params("id")
	if _, perr := uuid.Parse(id); perr != nil {
		return "", false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: CodeValidation, Message: "id inválido", Fields: []string{"id"},
		})
	}
	return id, true, nil
}

// bind decodifica el cuerpo JSON y lo valida. El error ya está escrito en la respuesta
// cuando ok es false.
func bind(c *fiber.Ctx, v *validator.Validate, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
	}
	if err := v.Struct(out); err != nil {
		return false, writeError(c, err)
	}
	return true, nil
}

// bindQuery mismo contrato que bind, para parámetros de query.
func bindQuery(c *fiber.Ctx, v *validator.Validate, out any) (ok bool, err error) {
	if err := c.QueryParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: "parámetros inválidos"})
	}
	if err := v.Struct(out); err != nil {
		return false, writeError(c, err)
	}
	return true, nil
}
