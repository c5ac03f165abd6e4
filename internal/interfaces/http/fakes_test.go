package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/rs-bonus/internal/application/simulation"
	"github.com/jhoicas/rs-bonus/internal/domain"
	"github.com/jhoicas/rs-bonus/internal/domain/entity"
	"github.com/jhoicas/rs-bonus/internal/domain/repository"
)

// Repositorios en memoria para ejercitar el router completo sin PostgreSQL.

type memProducts struct {
	mu   sync.Mutex
	rows []*entity.ProductCost
}

func (m *memProducts) Create(_ context.Context, p *entity.ProductCost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.CompanyID == p.CompanyID && r.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memProducts) GetByID(_ context.Context, companyID, id string) (*entity.ProductCost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.CompanyID == companyID && r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.ProductCost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.CompanyID == p.CompanyID && r.ID == p.ID {
			cp := *p
			m.rows[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memProducts) ListByCompany(ctx context.Context, companyID string, _, _ int) ([]*entity.ProductCost, error) {
	return m.ListAllByCompany(ctx, companyID)
}

func (m *memProducts) ListAllByCompany(_ context.Context, companyID string) ([]*entity.ProductCost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.ProductCost, 0, len(m.rows))
	for _, r := range m.rows {
		if r.CompanyID == companyID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProducts) Delete(_ context.Context, companyID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.CompanyID == companyID && r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// memRates también hace de RateTxRunner: la función corre contra el mismo almacén.
type memRates struct {
	mu     sync.Mutex
	tables []*entity.RateTable
}

func (m *memRates) RunRates(_ context.Context, fn func(repository.RateTableRepository) error) error {
	return fn(m)
}

func (m *memRates) GetActive(_ context.Context, companyID string) (*entity.RateTable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tables {
		if t.CompanyID == companyID && t.Active {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRates) GetByVersion(_ context.Context, companyID string, version int) (*entity.RateTable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tables {
		if t.CompanyID == companyID && t.Version == version {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRates) List(_ context.Context, companyID string) ([]*entity.RateTable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.RateTable, 0)
	for _, t := range m.tables {
		if t.CompanyID == companyID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version > out[j].Version })
	return out, nil
}

func (m *memRates) MaxVersion(_ context.Context, companyID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	last := 0
	for _, t := range m.tables {
		if t.CompanyID == companyID && t.Version > last {
			last = t.Version
		}
	}
	return last, nil
}

func (m *memRates) DeactivateAll(_ context.Context, companyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tables {
		if t.CompanyID == companyID {
			t.Active = false
		}
	}
	return nil
}

func (m *memRates) Create(_ context.Context, table *entity.RateTable) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *table
	m.tables = append(m.tables, &cp)
	return nil
}

type memCounts struct {
	mu   sync.Mutex
	rows map[string]*entity.CareerPeriodCounts
}

func (m *memCounts) Get(_ context.Context, companyID, period string) (*entity.CareerPeriodCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[companyID+"/"+period]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCounts) Upsert(_ context.Context, c *entity.CareerPeriodCounts) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.rows[c.CompanyID+"/"+c.Period] = &cp
	return nil
}

type memRuns struct {
	mu   sync.Mutex
	runs []*entity.SimulationRun
}

func (m *memRuns) Create(_ context.Context, run *entity.SimulationRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *run
	m.runs = append(m.runs, &cp)
	return nil
}

func (m *memRuns) GetByID(_ context.Context, companyID, id string) (*entity.SimulationRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.runs {
		if r.CompanyID == companyID && r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRuns) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.SimulationRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.SimulationRun, 0)
	for _, r := range m.runs {
		if r.CompanyID == companyID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeReports struct {
	last simulation.ReportData
}

func (f *fakeReports) SimulationReport(_ context.Context, data simulation.ReportData) ([]byte, error) {
	f.last = data
	return []byte("%PDF-1.3 fake"), nil
}
