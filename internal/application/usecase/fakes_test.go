package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

// ── ProductCostRepository en memoria ──────────────────────────────────────────

type memProducts struct {
	mu   sync.Mutex
	rows map[string]*entity.ProductCost
}

func newMemProducts() *memProducts { return &memProducts{rows: map[string]*entity.ProductCost{}} }

func (m *memProducts) Create(_ context.Context, p *entity.ProductCost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.CompanyID == p.CompanyID && r.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, companyID, id string) (*entity.ProductCost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || r.CompanyID != companyID {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.ProductCost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[p.ID]
	if !ok || r.CompanyID != p.CompanyID {
		return domain.ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *memProducts) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.ProductCost, error) {
	all, _ := m.ListAllByCompany(ctx, companyID)
	if offset >= len(all) {
		return []*entity.ProductCost{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memProducts) ListAllByCompany(_ context.Context, companyID string) ([]*entity.ProductCost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.ProductCost, 0)
	for _, r := range m.rows {
		if r.CompanyID == companyID {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *memProducts) Delete(_ context.Context, companyID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || r.CompanyID != companyID {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// ── RateTableRepository + RateTxRunner en memoria ────────────────────────────

type memRates struct {
	mu     sync.Mutex
	tables []*entity.RateTable
	failTx error // si no es nil, RunRates descarta los cambios y devuelve este error
}

func (m *memRates) GetActive(_ context.Context, companyID string) (*entity.RateTable, error) {
	for _, t := range m.tables {
		if t.CompanyID == companyID && t.Active {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRates) GetByVersion(_ context.Context, companyID string, version int) (*entity.RateTable, error) {
	for _, t := range m.tables {
		if t.CompanyID == companyID && t.Version == version {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRates) List(_ context.Context, companyID string) ([]*entity.RateTable, error) {
	out := make([]*entity.RateTable, 0)
	for i := len(m.tables) - 1; i >= 0; i-- {
		if m.tables[i].CompanyID == companyID {
			cp := *m.tables[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRates) MaxVersion(_ context.Context, companyID string) (int, error) {
	last := 0
	for _, t := range m.tables {
		if t.CompanyID == companyID && t.Version > last {
			last = t.Version
		}
	}
	return last, nil
}

func (m *memRates) DeactivateAll(_ context.Context, companyID string) error {
	for _, t := range m.tables {
		if t.CompanyID == companyID {
			t.Active = false
		}
	}
	return nil
}

func (m *memRates) Create(_ context.Context, t *entity.RateTable) error {
	cp := *t
	m.tables = append(m.tables, &cp)
	return nil
}

// RunRates simula la transacción: ante error restaura el estado previo.
func (m *memRates) RunRates(ctx context.Context, fn func(repository.RateTableRepository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	backup := make([]*entity.RateTable, 0, len(m.tables))
	for _, t := range m.tables {
		cp := *t
		backup = append(backup, &cp)
	}
	err := fn(m)
	if err == nil && m.failTx != nil {
		err = m.failTx
	}
	if err != nil {
		m.tables = backup
		return err
	}
	return nil
}

// ── CareerCountsRepository en memoria ────────────────────────────────────────

type memCounts struct {
	rows map[string]*entity.CareerPeriodCounts
	err  error
}

func newMemCounts() *memCounts { return &memCounts{rows: map[string]*entity.CareerPeriodCounts{}} }

func (m *memCounts) Get(_ context.Context, companyID, period string) (*entity.CareerPeriodCounts, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.rows[companyID+"/"+period]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (m *memCounts) Upsert(_ context.Context, c *entity.CareerPeriodCounts) error {
	if m.err != nil {
		return m.err
	}
	m.rows[c.CompanyID+"/"+c.Period] = c
	return nil
}

var errDB = errors.New("db caída")
