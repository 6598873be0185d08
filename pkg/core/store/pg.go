package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"proforma/pkg/models"
)

// PG is the Postgres-backed Store. It rides on the shared pool from InitDB.
type PG struct {
	pool *pgxpool.Pool
}

// NewPG creates a Postgres store on the shared connection pool.
// InitDB must have run first.
func NewPG() (*PG, error) {
	p := GetPool()
	if p == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	return &PG{pool: p}, nil
}

// --- Projects ---

func (s *PG) CreateProject(ctx context.Context, p *models.Project) error {
	query := `
		INSERT INTO projects (user_id, name, description, industry, start_date, end_date, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	err := s.pool.QueryRow(ctx, query,
		p.UserID, p.Name, p.Description, p.Industry, p.StartDate, p.EndDate, p.Currency,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (s *PG) GetProject(ctx context.Context, id int) (*models.Project, error) {
	query := `
		SELECT id, user_id, name, description, industry, start_date, end_date, currency, created_at, updated_at
		FROM projects WHERE id = $1;
	`
	var p models.Project
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Industry,
		&p.StartDate, &p.EndDate, &p.Currency, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

func (s *PG) ListProjects(ctx context.Context, userID int) ([]models.Project, error) {
	query := `
		SELECT id, user_id, name, description, industry, start_date, end_date, currency, created_at, updated_at
		FROM projects WHERE user_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Description, &p.Industry,
			&p.StartDate, &p.EndDate, &p.Currency, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PG) UpdateProject(ctx context.Context, p *models.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, industry = $4, start_date = $5, end_date = $6,
		    currency = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at;
	`
	err := s.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.Industry, p.StartDate, p.EndDate, p.Currency,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

func (s *PG) DeleteProject(ctx context.Context, id int) error {
	return s.deleteRow(ctx, "projects", id)
}

// --- Revenue products ---

func (s *PG) CreateProduct(ctx context.Context, p *models.RevenueProduct) error {
	query := `
		INSERT INTO revenue_products (project_id, name, average_price, volume, unit, seasonality_factor)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := s.pool.QueryRow(ctx, query,
		p.ProjectID, p.Name, p.AveragePrice, p.Volume, p.Unit, p.SeasonalityFactor,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *PG) ListProducts(ctx context.Context, projectID int) ([]models.RevenueProduct, error) {
	query := `
		SELECT id, project_id, name, average_price, volume, unit, seasonality_factor
		FROM revenue_products WHERE project_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var out []models.RevenueProduct
	for rows.Next() {
		var p models.RevenueProduct
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.AveragePrice, &p.Volume, &p.Unit, &p.SeasonalityFactor); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PG) UpdateProduct(ctx context.Context, p *models.RevenueProduct) error {
	query := `
		UPDATE revenue_products
		SET name = $2, average_price = $3, volume = $4, unit = $5, seasonality_factor = $6
		WHERE id = $1;
	`
	return s.execRow(ctx, "product", query,
		p.ID, p.Name, p.AveragePrice, p.Volume, p.Unit, p.SeasonalityFactor)
}

func (s *PG) DeleteProduct(ctx context.Context, id int) error {
	return s.deleteRow(ctx, "revenue_products", id)
}

// --- COGS items ---

func (s *PG) CreateCogsItem(ctx context.Context, c *models.CogsItem) error {
	query := `
		INSERT INTO cogs_items (project_id, name, cost_type, amount, growth_rate)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := s.pool.QueryRow(ctx, query,
		c.ProjectID, c.Name, string(c.CostType), c.Amount, c.GrowthRate,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create cogs item: %w", err)
	}
	return nil
}

func (s *PG) ListCogsItems(ctx context.Context, projectID int) ([]models.CogsItem, error) {
	query := `
		SELECT id, project_id, name, cost_type, amount, growth_rate
		FROM cogs_items WHERE project_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cogs items: %w", err)
	}
	defer rows.Close()

	var out []models.CogsItem
	for rows.Next() {
		var c models.CogsItem
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.CostType, &c.Amount, &c.GrowthRate); err != nil {
			return nil, fmt.Errorf("failed to scan cogs item: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PG) UpdateCogsItem(ctx context.Context, c *models.CogsItem) error {
	query := `
		UPDATE cogs_items
		SET name = $2, cost_type = $3, amount = $4, growth_rate = $5
		WHERE id = $1;
	`
	return s.execRow(ctx, "cogs item", query,
		c.ID, c.Name, string(c.CostType), c.Amount, c.GrowthRate)
}

func (s *PG) DeleteCogsItem(ctx context.Context, id int) error {
	return s.deleteRow(ctx, "cogs_items", id)
}

// --- Salaries ---

func (s *PG) CreateSalary(ctx context.Context, sal *models.Salary) error {
	query := `
		INSERT INTO salaries (project_id, position, monthly_cost, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := s.pool.QueryRow(ctx, query,
		sal.ProjectID, sal.Position, sal.MonthlyCost, sal.StartDate, sal.EndDate,
	).Scan(&sal.ID)
	if err != nil {
		return fmt.Errorf("failed to create salary: %w", err)
	}
	return nil
}

func (s *PG) ListSalaries(ctx context.Context, projectID int) ([]models.Salary, error) {
	query := `
		SELECT id, project_id, position, monthly_cost, start_date, end_date
		FROM salaries WHERE project_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var out []models.Salary
	for rows.Next() {
		var sal models.Salary
		var end sql.NullTime
		if err := rows.Scan(&sal.ID, &sal.ProjectID, &sal.Position, &sal.MonthlyCost, &sal.StartDate, &end); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		if end.Valid {
			t := end.Time
			sal.EndDate = &t
		}
		out = append(out, sal)
	}
	return out, rows.Err()
}

func (s *PG) UpdateSalary(ctx context.Context, sal *models.Salary) error {
	query := `
		UPDATE salaries
		SET position = $2, monthly_cost = $3, start_date = $4, end_date = $5
		WHERE id = $1;
	`
	return s.execRow(ctx, "salary", query,
		sal.ID, sal.Position, sal.MonthlyCost, sal.StartDate, sal.EndDate)
}

func (s *PG) DeleteSalary(ctx context.Context, id int) error {
	return s.deleteRow(ctx, "salaries", id)
}

// --- OPEX items ---

func (s *PG) CreateOpexItem(ctx context.Context, o *models.OpexItem) error {
	query := `
		INSERT INTO opex_items (project_id, name, expense_type, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err := s.pool.QueryRow(ctx, query,
		o.ProjectID, o.Name, string(o.ExpenseType), o.Amount,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("failed to create opex item: %w", err)
	}
	return nil
}

func (s *PG) ListOpexItems(ctx context.Context, projectID int) ([]models.OpexItem, error) {
	query := `
		SELECT id, project_id, name, expense_type, amount
		FROM opex_items WHERE project_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opex items: %w", err)
	}
	defer rows.Close()

	var out []models.OpexItem
	for rows.Next() {
		var o models.OpexItem
		if err := rows.Scan(&o.ID, &o.ProjectID, &o.Name, &o.ExpenseType, &o.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan opex item: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *PG) UpdateOpexItem(ctx context.Context, o *models.OpexItem) error {
	query := `
		UPDATE opex_items
		SET name = $2, expense_type = $3, amount = $4
		WHERE id = $1;
	`
	return s.execRow(ctx, "opex item", query,
		o.ID, o.Name, string(o.ExpenseType), o.Amount)
}

func (s *PG) DeleteOpexItem(ctx context.Context, id int) error {
	return s.deleteRow(ctx, "opex_items", id)
}

// --- Fixed expenses ---

func (s *PG) CreateFixedExpense(ctx context.Context, f *models.FixedExpense) error {
	query := `
		INSERT INTO fixed_expenses (project_id, name, amount, date, frequency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := s.pool.QueryRow(ctx, query,
		f.ProjectID, f.Name, f.Amount, f.Date, string(f.Frequency),
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("failed to create fixed expense: %w", err)
	}
	return nil
}

func (s *PG) ListFixedExpenses(ctx context.Context, projectID int) ([]models.FixedExpense, error) {
	query := `
		SELECT id, project_id, name, amount, date, frequency
		FROM fixed_expenses WHERE project_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}
	defer rows.Close()

	var out []models.FixedExpense
	for rows.Next() {
		var f models.FixedExpense
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.Name, &f.Amount, &f.Date, &f.Frequency); err != nil {
			return nil, fmt.Errorf("failed to scan fixed expense: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *PG) UpdateFixedExpense(ctx context.Context, f *models.FixedExpense) error {
	query := `
		UPDATE fixed_expenses
		SET name = $2, amount = $3, date = $4, frequency = $5
		WHERE id = $1;
	`
	return s.execRow(ctx, "fixed expense", query,
		f.ID, f.Name, f.Amount, f.Date, string(f.Frequency))
}

func (s *PG) DeleteFixedExpense(ctx context.Context, id int) error {
	return s.deleteRow(ctx, "fixed_expenses", id)
}

// --- CAPEX items ---

func (s *PG) CreateCapexItem(ctx context.Context, c *models.CapexItem) error {
	query := `
		INSERT INTO capex_items (project_id, name, amount, purchase_date, payment_delay)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := s.pool.QueryRow(ctx, query,
		c.ProjectID, c.Name, c.Amount, c.PurchaseDate, c.PaymentDelay,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create capex item: %w", err)
	}
	return nil
}

func (s *PG) ListCapexItems(ctx context.Context, projectID int) ([]models.CapexItem, error) {
	query := `
		SELECT id, project_id, name, amount, purchase_date, payment_delay
		FROM capex_items WHERE project_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list capex items: %w", err)
	}
	defer rows.Close()

	var out []models.CapexItem
	for rows.Next() {
		var c models.CapexItem
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Amount, &c.PurchaseDate, &c.PaymentDelay); err != nil {
			return nil, fmt.Errorf("failed to scan capex item: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PG) UpdateCapexItem(ctx context.Context, c *models.CapexItem) error {
	query := `
		UPDATE capex_items
		SET name = $2, amount = $3, purchase_date = $4, payment_delay = $5
		WHERE id = $1;
	`
	return s.execRow(ctx, "capex item", query,
		c.ID, c.Name, c.Amount, c.PurchaseDate, c.PaymentDelay)
}

func (s *PG) DeleteCapexItem(ctx context.Context, id int) error {
	return s.deleteRow(ctx, "capex_items", id)
}

// --- Funding sources ---

func (s *PG) CreateFundingSource(ctx context.Context, f *models.FundingSource) error {
	query := `
		INSERT INTO funding_sources (project_id, source_type, amount, interest_rate, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := s.pool.QueryRow(ctx, query,
		f.ProjectID, string(f.SourceType), f.Amount, f.InterestRate, f.Date,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("failed to create funding source: %w", err)
	}
	return nil
}

func (s *PG) ListFundingSources(ctx context.Context, projectID int) ([]models.FundingSource, error) {
	query := `
		SELECT id, project_id, source_type, amount, interest_rate, date
		FROM funding_sources WHERE project_id = $1 ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list funding sources: %w", err)
	}
	defer rows.Close()

	var out []models.FundingSource
	for rows.Next() {
		var f models.FundingSource
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.SourceType, &f.Amount, &f.InterestRate, &f.Date); err != nil {
			return nil, fmt.Errorf("failed to scan funding source: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *PG) UpdateFundingSource(ctx context.Context, f *models.FundingSource) error {
	query := `
		UPDATE funding_sources
		SET source_type = $2, amount = $3, interest_rate = $4, date = $5
		WHERE id = $1;
	`
	return s.execRow(ctx, "funding source", query,
		f.ID, string(f.SourceType), f.Amount, f.InterestRate, f.Date)
}

func (s *PG) DeleteFundingSource(ctx context.Context, id int) error {
	return s.deleteRow(ctx, "funding_sources", id)
}

// execRow runs an UPDATE that must touch exactly one row.
func (s *PG) execRow(ctx context.Context, entity, query string, args ...any) error {
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", entity, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteRow deletes one row by id from the named table. Table names are
// compile-time constants, never user input.
func (s *PG) deleteRow(ctx context.Context, table string, id int) error {
	tag, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1;", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// compile-time interface check
var _ Store = (*PG)(nil)

// ReportRepo persists generated insight reports as JSONB blobs keyed by a
// caller-supplied report ID.
type ReportRepo struct{}

// NewReportRepo creates a new repository instance.
func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

// Save upserts a report payload for a project.
func (r *ReportRepo) Save(ctx context.Context, id string, projectID int, kind string, payload []byte) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	query := `
		INSERT INTO insight_reports (id, project_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET payload = EXCLUDED.payload, created_at = EXCLUDED.created_at;
	`
	if _, err := pool.Exec(ctx, query, id, projectID, kind, payload, time.Now()); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Load retrieves a report payload by ID.
func (r *ReportRepo) Load(ctx context.Context, id string) ([]byte, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var payload []byte
	err := pool.QueryRow(ctx, `SELECT payload FROM insight_reports WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return payload, nil
}
