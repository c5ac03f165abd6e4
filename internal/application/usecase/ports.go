package usecase

import (
	"context"

	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

// RateTxRunner ejecuta fn en una transacción con el repositorio de tasas atado a ella.
// Publicar una versión desactiva la anterior e inserta la nueva de forma atómica.
type RateTxRunner interface {
	RunRates(ctx context.Context, fn func(rates repository.RateTableRepository) error) error
}
