package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rs-bonus/internal/application/dto"
	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

// ProductCostUseCase CRUD del catálogo de costos por producto.
type ProductCostUseCase struct {
	repo repository.ProductCostRepository
	now  func() time.Time
}

// NewProductCostUseCase construye el caso de uso.
func NewProductCostUseCase(repo repository.ProductCostRepository) *ProductCostUseCase {
	return &ProductCostUseCase{repo: repo, now: time.Now}
}

// Create agrega una fila al catálogo. Nombre repetido en la empresa: domain.ErrDuplicate.
func (uc *ProductCostUseCase) Create(ctx context.Context, companyID string, in dto.ProductCostRequest) (*dto.ProductCostResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	now := uc.now()
	p := &entity.ProductCost{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            name,
		SalesMixPercent: in.SalesMixPercent,
		Quantity:        in.Quantity,
		LabelsCost:      in.LabelsCost,
		UnitCost:        in.UnitCost,
		Multiplier:      in.Multiplier,
		FinalSalePrice:  in.FinalSalePrice,
		Position:        in.Position,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductCostResponse(p), nil
}

// GetByID obtiene una fila. domain.ErrNotFound si no es de la empresa.
func (uc *ProductCostUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductCostResponse, error) {
	p, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductCostResponse(p), nil
}

// Update reemplaza los valores de la fila (PUT).
func (uc *ProductCostUseCase) Update(ctx context.Context, companyID, id string, in dto.ProductCostRequest) (*dto.ProductCostResponse, error) {
	p, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	p.Name = name
	p.SalesMixPercent = in.SalesMixPercent
	p.Quantity = in.Quantity
	p.LabelsCost = in.LabelsCost
	p.UnitCost = in.UnitCost
	p.Multiplier = in.Multiplier
	p.FinalSalePrice = in.FinalSalePrice
	p.Position = in.Position
	p.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductCostResponse(p), nil
}

// List lista el catálogo con paginación.
func (uc *ProductCostUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ProductCostListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductCostResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductCostResponse(p))
	}
	return &dto.ProductCostListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una fila.
func (uc *ProductCostUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.repo.Delete(ctx, companyID, id)
}

func toProductCostResponse(p *entity.ProductCost) *dto.ProductCostResponse {
	return &dto.ProductCostResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		Name:            p.Name,
		SalesMixPercent: p.SalesMixPercent,
		Quantity:        p.Quantity,
		LabelsCost:      p.LabelsCost,
		UnitCost:        p.UnitCost,
		Multiplier:      p.Multiplier,
		FinalSalePrice:  p.FinalSalePrice,
		Position:        p.Position,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
