package template

import (
	"context"
	"fmt"
	"time"

	"proforma/pkg/core/store"
	"proforma/pkg/models"
)

// Apply creates a project for the user from a template and seeds its
// assumption collections. The horizon is [start, start + duration - 1]
// months, matching the engine's inclusive month span.
func Apply(ctx context.Context, s store.Store, userID int, tpl *Template, name string, start time.Time) (*models.Project, error) {
	if tpl == nil {
		return nil, fmt.Errorf("template is nil")
	}
	if name == "" {
		name = tpl.Name
	}

	project := &models.Project{
		UserID:      userID,
		Name:        name,
		Description: tpl.Description,
		Industry:    tpl.Industry,
		StartDate:   start,
		EndDate:     start.AddDate(0, tpl.DurationMonths-1, 0),
		Currency:    "USD",
	}
	if err := s.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project from template %s: %w", tpl.ID, err)
	}

	for _, p := range tpl.Products {
		product := &models.RevenueProduct{
			ProjectID:         project.ID,
			Name:              p.Name,
			AveragePrice:      p.AveragePrice,
			Volume:            p.Volume,
			Unit:              p.Unit,
			SeasonalityFactor: 100,
		}
		if err := s.CreateProduct(ctx, product); err != nil {
			return nil, fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
	}

	for _, c := range tpl.CogsItems {
		item := &models.CogsItem{
			ProjectID:  project.ID,
			Name:       c.Name,
			CostType:   models.CostVariable,
			Amount:     c.Amount,
			GrowthRate: c.GrowthRate,
		}
		if err := s.CreateCogsItem(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to seed cogs item %s: %w", c.Name, err)
		}
	}

	for _, sal := range tpl.Salaries {
		startMonth := sal.StartMonth
		if startMonth < 1 {
			startMonth = 1
		}
		salary := &models.Salary{
			ProjectID:   project.ID,
			Position:    sal.Position,
			MonthlyCost: sal.MonthlyCost,
			StartDate:   start.AddDate(0, startMonth-1, 0),
		}
		if err := s.CreateSalary(ctx, salary); err != nil {
			return nil, fmt.Errorf("failed to seed salary %s: %w", sal.Position, err)
		}
	}

	return project, nil
}
