package store

import (
	"context"
	"sync"
	"time"

	"proforma/pkg/models"
)

// Memory is an in-process Store used when DATABASE_URL is absent and by
// tests and the demo binary. IDs auto-increment per entity.
type Memory struct {
	mu sync.Mutex

	nextID map[string]int

	projects       map[int]models.Project
	products       map[int]models.RevenueProduct
	cogsItems      map[int]models.CogsItem
	salaries       map[int]models.Salary
	opexItems      map[int]models.OpexItem
	fixedExpenses  map[int]models.FixedExpense
	capexItems     map[int]models.CapexItem
	fundingSources map[int]models.FundingSource
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		nextID:         map[string]int{},
		projects:       map[int]models.Project{},
		products:       map[int]models.RevenueProduct{},
		cogsItems:      map[int]models.CogsItem{},
		salaries:       map[int]models.Salary{},
		opexItems:      map[int]models.OpexItem{},
		fixedExpenses:  map[int]models.FixedExpense{},
		capexItems:     map[int]models.CapexItem{},
		fundingSources: map[int]models.FundingSource{},
	}
}

func (m *Memory) next(entity string) int {
	m.nextID[entity]++
	return m.nextID[entity]
}

// --- Projects ---

func (m *Memory) CreateProject(_ context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.next("project")
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.projects[p.ID] = *p
	return nil
}

func (m *Memory) GetProject(_ context.Context, id int) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) ListProjects(_ context.Context, userID int) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Project
	for id := 1; id <= m.nextID["project"]; id++ {
		if p, ok := m.projects[id]; ok && p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Memory) UpdateProject(_ context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.projects[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = time.Now()
	m.projects[p.ID] = *p
	return nil
}

func (m *Memory) DeleteProject(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)
	// cascade, matching the foreign keys in the Postgres schema
	for k, v := range m.products {
		if v.ProjectID == id {
			delete(m.products, k)
		}
	}
	for k, v := range m.cogsItems {
		if v.ProjectID == id {
			delete(m.cogsItems, k)
		}
	}
	for k, v := range m.salaries {
		if v.ProjectID == id {
			delete(m.salaries, k)
		}
	}
	for k, v := range m.opexItems {
		if v.ProjectID == id {
			delete(m.opexItems, k)
		}
	}
	for k, v := range m.fixedExpenses {
		if v.ProjectID == id {
			delete(m.fixedExpenses, k)
		}
	}
	for k, v := range m.capexItems {
		if v.ProjectID == id {
			delete(m.capexItems, k)
		}
	}
	for k, v := range m.fundingSources {
		if v.ProjectID == id {
			delete(m.fundingSources, k)
		}
	}
	return nil
}

// --- Revenue products ---

func (m *Memory) CreateProduct(_ context.Context, p *models.RevenueProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.next("product")
	if p.SeasonalityFactor == 0 {
		p.SeasonalityFactor = 100
	}
	m.products[p.ID] = *p
	return nil
}

func (m *Memory) ListProducts(_ context.Context, projectID int) ([]models.RevenueProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.RevenueProduct
	for id := 1; id <= m.nextID["product"]; id++ {
		if v, ok := m.products[id]; ok && v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Memory) UpdateProduct(_ context.Context, p *models.RevenueProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return ErrNotFound
	}
	m.products[p.ID] = *p
	return nil
}

func (m *Memory) DeleteProduct(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// --- COGS items ---

func (m *Memory) CreateCogsItem(_ context.Context, c *models.CogsItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.next("cogs")
	m.cogsItems[c.ID] = *c
	return nil
}

func (m *Memory) ListCogsItems(_ context.Context, projectID int) ([]models.CogsItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CogsItem
	for id := 1; id <= m.nextID["cogs"]; id++ {
		if v, ok := m.cogsItems[id]; ok && v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Memory) UpdateCogsItem(_ context.Context, c *models.CogsItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cogsItems[c.ID]; !ok {
		return ErrNotFound
	}
	m.cogsItems[c.ID] = *c
	return nil
}

func (m *Memory) DeleteCogsItem(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cogsItems[id]; !ok {
		return ErrNotFound
	}
	delete(m.cogsItems, id)
	return nil
}

// --- Salaries ---

func (m *Memory) CreateSalary(_ context.Context, s *models.Salary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.next("salary")
	m.salaries[s.ID] = *s
	return nil
}

func (m *Memory) ListSalaries(_ context.Context, projectID int) ([]models.Salary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Salary
	for id := 1; id <= m.nextID["salary"]; id++ {
		if v, ok := m.salaries[id]; ok && v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Memory) UpdateSalary(_ context.Context, s *models.Salary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.salaries[s.ID]; !ok {
		return ErrNotFound
	}
	m.salaries[s.ID] = *s
	return nil
}

func (m *Memory) DeleteSalary(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.salaries[id]; !ok {
		return ErrNotFound
	}
	delete(m.salaries, id)
	return nil
}

// --- OPEX items ---

func (m *Memory) CreateOpexItem(_ context.Context, o *models.OpexItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = m.next("opex")
	m.opexItems[o.ID] = *o
	return nil
}

func (m *Memory) ListOpexItems(_ context.Context, projectID int) ([]models.OpexItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.OpexItem
	for id := 1; id <= m.nextID["opex"]; id++ {
		if v, ok := m.opexItems[id]; ok && v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Memory) UpdateOpexItem(_ context.Context, o *models.OpexItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.opexItems[o.ID]; !ok {
		return ErrNotFound
	}
	m.opexItems[o.ID] = *o
	return nil
}

func (m *Memory) DeleteOpexItem(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.opexItems[id]; !ok {
		return ErrNotFound
	}
	delete(m.opexItems, id)
	return nil
}

// --- Fixed expenses ---

func (m *Memory) CreateFixedExpense(_ context.Context, f *models.FixedExpense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f.ID = m.next("fixed")
	m.fixedExpenses[f.ID] = *f
	return nil
}

func (m *Memory) ListFixedExpenses(_ context.Context, projectID int) ([]models.FixedExpense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FixedExpense
	for id := 1; id <= m.nextID["fixed"]; id++ {
		if v, ok := m.fixedExpenses[id]; ok && v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Memory) UpdateFixedExpense(_ context.Context, f *models.FixedExpense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.fixedExpenses[f.ID]; !ok {
		return ErrNotFound
	}
	m.fixedExpenses[f.ID] = *f
	return nil
}

func (m *Memory) DeleteFixedExpense(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.fixedExpenses[id]; !ok {
		return ErrNotFound
	}
	delete(m.fixedExpenses, id)
	return nil
}

// --- CAPEX items ---

func (m *Memory) CreateCapexItem(_ context.Context, c *models.CapexItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.next("capex")
	m.capexItems[c.ID] = *c
	return nil
}

func (m *Memory) ListCapexItems(_ context.Context, projectID int) ([]models.CapexItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CapexItem
	for id := 1; id <= m.nextID["capex"]; id++ {
		if v, ok := m.capexItems[id]; ok && v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Memory) UpdateCapexItem(_ context.Context, c *models.CapexItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.capexItems[c.ID]; !ok {
		return ErrNotFound
	}
	m.capexItems[c.ID] = *c
	return nil
}

func (m *Memory) DeleteCapexItem(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.capexItems[id]; !ok {
		return ErrNotFound
	}
	delete(m.capexItems, id)
	return nil
}

// --- Funding sources ---

func (m *Memory) CreateFundingSource(_ context.Context, f *models.FundingSource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f.ID = m.next("funding")
	m.fundingSources[f.ID] = *f
	return nil
}

func (m *Memory) ListFundingSources(_ context.Context, projectID int) ([]models.FundingSource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FundingSource
	for id := 1; id <= m.nextID["funding"]; id++ {
		if v, ok := m.fundingSources[id]; ok && v.ProjectID == projectID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *Memory) UpdateFundingSource(_ context.Context, f *models.FundingSource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.fundingSources[f.ID]; !ok {
		return ErrNotFound
	}
	m.fundingSources[f.ID] = *f
	return nil
}

func (m *Memory) DeleteFundingSource(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.fundingSources[id]; !ok {
		return ErrNotFound
	}
	delete(m.fundingSources, id)
	return nil
}

var _ Store = (*Memory)(nil)
