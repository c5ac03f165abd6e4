package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

var _ repository.ProductCostRepository = (*ProductCostRepo)(nil)

const productCostColumns = `id, company_id, name, sales_mix_percent, quantity, labels_cost, unit_cost, multiplier, final_sale_price, position, created_at, updated_at`

// ProductCostRepo implementación de ProductCostRepository sobre PostgreSQL (pool o tx).
type ProductCostRepo struct {
	q Querier
}

// NewProductCostRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductCostRepository(q Querier) *ProductCostRepo {
	return &ProductCostRepo{q: q}
}

// Create persiste una fila. Un nombre repetido en la empresa devuelve domain.ErrDuplicate.
func (r *ProductCostRepo) Create(ctx context.Context, p *entity.ProductCost) error {
	query := `
		INSERT INTO product_costs (` + productCostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.Name, p.SalesMixPercent, p.Quantity, p.LabelsCost,
		p.UnitCost, p.Multiplier, p.FinalSalePrice, p.Position, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product cost: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de la empresa. (nil, nil) si no existe.
func (r *ProductCostRepo) GetByID(ctx context.Context, companyID, id string) (*entity.ProductCost, error) {
	query := `SELECT ` + productCostColumns + ` FROM product_costs WHERE company_id = $1 AND id = $2`
	p, err := scanProductCost(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product cost: %w", err)
	}
	return p, nil
}

// Update reemplaza los valores editables. domain.ErrNotFound si la fila no es de la empresa.
func (r *ProductCostRepo) Update(ctx context.Context, p *entity.ProductCost) error {
	query := `
		UPDATE product_costs SET name = $3, sales_mix_percent = $4, quantity = $5, labels_cost = $6,
			unit_cost = $7, multiplier = $8, final_sale_price = $9, position = $10, updated_at = $11
		WHERE company_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		p.CompanyID, p.ID, p.Name, p.SalesMixPercent, p.Quantity, p.LabelsCost,
		p.UnitCost, p.Multiplier, p.FinalSalePrice, p.Position, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista con paginación en el orden del painel.
func (r *ProductCostRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.ProductCost, error) {
	limit, offset = normalizePage(limit, offset)
	query := `SELECT ` + productCostColumns + ` FROM product_costs
		WHERE company_id = $1 ORDER BY position, created_at LIMIT $2 OFFSET $3`
	return r.list(ctx, query, companyID, limit, offset)
}

// ListAllByCompany devuelve el catálogo completo (entrada de economía y previsión).
func (r *ProductCostRepo) ListAllByCompany(ctx context.Context, companyID string) ([]*entity.ProductCost, error) {
	query := `SELECT ` + productCostColumns + ` FROM product_costs
		WHERE company_id = $1 ORDER BY position, created_at`
	return r.list(ctx, query, companyID)
}

// Delete elimina una fila. domain.ErrNotFound si no existe.
func (r *ProductCostRepo) Delete(ctx context.Context, companyID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_costs WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete product cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductCostRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ProductCost, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product costs: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductCost, 0)
	for rows.Next() {
		p, err := scanProductCost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product cost: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProductCost(row pgx.Row) (*entity.ProductCost, error) {
	var p entity.ProductCost
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.SalesMixPercent, &p.Quantity, &p.LabelsCost,
		&p.UnitCost, &p.Multiplier, &p.FinalSalePrice, &p.Position, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
