// Package store is the persistence layer behind the projection engine. The
// engine itself never touches it: handlers load the assumption collections
// here and pass them in as plain values.
//
// Two implementations exist: PG (Postgres via pgx) and Memory (the demo
// fallback used when DATABASE_URL is not configured, and by tests).
package store

import (
	"context"
	"errors"

	"proforma/pkg/models"
)

// ErrNotFound is returned for lookups and updates against missing rows.
var ErrNotFound = errors.New("store: not found")

// Store is the full persistence contract: list/create/update/delete per
// entity, scoped by project. No ordering guarantee is made on List results.
type Store interface {
	CreateProject(ctx context.Context, p *models.Project) error
	GetProject(ctx context.Context, id int) (*models.Project, error)
	ListProjects(ctx context.Context, userID int) ([]models.Project, error)
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id int) error

	CreateProduct(ctx context.Context, p *models.RevenueProduct) error
	ListProducts(ctx context.Context, projectID int) ([]models.RevenueProduct, error)
	UpdateProduct(ctx context.Context, p *models.RevenueProduct) error
	DeleteProduct(ctx context.Context, id int) error

	CreateCogsItem(ctx context.Context, c *models.CogsItem) error
	ListCogsItems(ctx context.Context, projectID int) ([]models.CogsItem, error)
	UpdateCogsItem(ctx context.Context, c *models.CogsItem) error
	DeleteCogsItem(ctx context.Context, id int) error

	CreateSalary(ctx context.Context, s *models.Salary) error
	ListSalaries(ctx context.Context, projectID int) ([]models.Salary, error)
	UpdateSalary(ctx context.Context, s *models.Salary) error
	DeleteSalary(ctx context.Context, id int) error

	CreateOpexItem(ctx context.Context, o *models.OpexItem) error
	ListOpexItems(ctx context.Context, projectID int) ([]models.OpexItem, error)
	UpdateOpexItem(ctx context.Context, o *models.OpexItem) error
	DeleteOpexItem(ctx context.Context, id int) error

	CreateFixedExpense(ctx context.Context, f *models.FixedExpense) error
	ListFixedExpenses(ctx context.Context, projectID int) ([]models.FixedExpense, error)
	UpdateFixedExpense(ctx context.Context, f *models.FixedExpense) error
	DeleteFixedExpense(ctx context.Context, id int) error

	CreateCapexItem(ctx context.Context, c *models.CapexItem) error
	ListCapexItems(ctx context.Context, projectID int) ([]models.CapexItem, error)
	UpdateCapexItem(ctx context.Context, c *models.CapexItem) error
	DeleteCapexItem(ctx context.Context, id int) error

	CreateFundingSource(ctx context.Context, f *models.FundingSource) error
	ListFundingSources(ctx context.Context, projectID int) ([]models.FundingSource, error)
	UpdateFundingSource(ctx context.Context, f *models.FundingSource) error
	DeleteFundingSource(ctx context.Context, id int) error
}

// LoadAssumptions gathers every collection the engine consumes for one
// project. Missing collections come back empty, which the engine treats as
// zero contribution.
func LoadAssumptions(ctx context.Context, s Store, projectID int) (models.AssumptionSet, error) {
	var set models.AssumptionSet
	var err error

	if set.Products, err = s.ListProducts(ctx, projectID); err != nil {
		return set, err
	}
	if set.CogsItems, err = s.ListCogsItems(ctx, projectID); err != nil {
		return set, err
	}
	if set.Salaries, err = s.ListSalaries(ctx, projectID); err != nil {
		return set, err
	}
	if set.OpexItems, err = s.ListOpexItems(ctx, projectID); err != nil {
		return set, err
	}
	if set.FixedExpenses, err = s.ListFixedExpenses(ctx, projectID); err != nil {
		return set, err
	}
	if set.CapexItems, err = s.ListCapexItems(ctx, projectID); err != nil {
		return set, err
	}
	if set.FundingSources, err = s.ListFundingSources(ctx, projectID); err != nil {
		return set, err
	}
	return set, nil
}
