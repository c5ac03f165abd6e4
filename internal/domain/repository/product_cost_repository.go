package repository

import (
	"context"

	"github.com/jhoicas/rs-bonus/internal/domain/entity"
)

// ProductCostRepository define el puerto de persistencia para ProductCost (DIP).
// GetByID devuelve (nil, nil) si no existe.
type ProductCostRepository interface {
	Create(ctx context.Context, p *entity.ProductCost) error
	GetByID(ctx context.Context, companyID, id string) (*entity.ProductCost, error)
	Update(ctx context.Context, p *entity.ProductCost) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.ProductCost, error)
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.ProductCost, error)
	Delete(ctx context.Context, companyID, id string) error
}
