package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"proforma/pkg/core/store"
	"proforma/pkg/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	p := &models.Project{
		UserID:    7,
		Name:      "Gulf Coast Refinery",
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2026, time.December, 1),
		Currency:  "USD",
	}
	if err := s.CreateProject(ctx, p); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("expected first project ID 1, got %d", p.ID)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on create")
	}

	got, err := s.GetProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if got.Name != "Gulf Coast Refinery" {
		t.Errorf("unexpected name %q", got.Name)
	}

	got.Name = "Gulf Coast Refinery II"
	if err := s.UpdateProject(ctx, got); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	again, _ := s.GetProject(ctx, p.ID)
	if again.Name != "Gulf Coast Refinery II" {
		t.Errorf("update not persisted, got %q", again.Name)
	}

	list, err := s.ListProjects(ctx, 7)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 project for user 7, got %d", len(list))
	}
	other, _ := s.ListProjects(ctx, 99)
	if len(other) != 0 {
		t.Errorf("expected no projects for user 99, got %d", len(other))
	}

	if err := s.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, err := s.GetProject(ctx, p.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNotFoundErrors(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	if _, err := s.GetProject(ctx, 42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetProject missing: got %v", err)
	}
	if err := s.UpdateProduct(ctx, &models.RevenueProduct{ID: 42}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("UpdateProduct missing: got %v", err)
	}
	if err := s.DeleteSalary(ctx, 42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("DeleteSalary missing: got %v", err)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	p := &models.Project{UserID: 1, Name: "Doomed", StartDate: date(2024, time.January, 1), EndDate: date(2024, time.December, 1)}
	if err := s.CreateProject(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateProduct(ctx, &models.RevenueProduct{ProjectID: p.ID, Name: "Widget", AveragePrice: 100, Volume: 10}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateSalary(ctx, &models.Salary{ProjectID: p.ID, Position: "Engineer", MonthlyCost: 500000, StartDate: date(2024, time.January, 1)}); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	products, _ := s.ListProducts(ctx, p.ID)
	if len(products) != 0 {
		t.Errorf("expected products cascade-deleted, got %d", len(products))
	}
	salaries, _ := s.ListSalaries(ctx, p.ID)
	if len(salaries) != 0 {
		t.Errorf("expected salaries cascade-deleted, got %d", len(salaries))
	}
}

func TestProductDefaultsSeasonality(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	p := &models.RevenueProduct{ProjectID: 1, Name: "Gasoline", AveragePrice: 350, Volume: 1000}
	if err := s.CreateProduct(ctx, p); err != nil {
		t.Fatal(err)
	}
	if p.SeasonalityFactor != 100 {
		t.Errorf("expected default seasonality 100, got %d", p.SeasonalityFactor)
	}
}

func TestListScopedByProject(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	for _, projectID := range []int{1, 1, 2} {
		if err := s.CreateCogsItem(ctx, &models.CogsItem{ProjectID: projectID, Name: "Crude", CostType: models.CostVariable, Amount: 50}); err != nil {
			t.Fatal(err)
		}
	}
	one, _ := s.ListCogsItems(ctx, 1)
	two, _ := s.ListCogsItems(ctx, 2)
	if len(one) != 2 || len(two) != 1 {
		t.Errorf("expected 2 and 1 items, got %d and %d", len(one), len(two))
	}
}

func TestLoadAssumptionsGathersAllCollections(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	const projectID = 1
	if err := s.CreateProduct(ctx, &models.RevenueProduct{ProjectID: projectID, Name: "Diesel", AveragePrice: 400, Volume: 500}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateCogsItem(ctx, &models.CogsItem{ProjectID: projectID, Name: "Feedstock", CostType: models.CostPercentage, Amount: 4000}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateOpexItem(ctx, &models.OpexItem{ProjectID: projectID, Name: "Utilities", ExpenseType: models.ExpenseFixed, Amount: 200000}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateFixedExpense(ctx, &models.FixedExpense{ProjectID: projectID, Name: "Turnaround", Amount: 1000000, Date: date(2024, time.June, 1), Frequency: models.FreqAnnually}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateCapexItem(ctx, &models.CapexItem{ProjectID: projectID, Name: "Reactor", Amount: 5000000, PurchaseDate: date(2024, time.January, 15)}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateFundingSource(ctx, &models.FundingSource{ProjectID: projectID, SourceType: models.SourceDebt, Amount: 10000000, InterestRate: 600, Date: date(2024, time.January, 1)}); err != nil {
		t.Fatal(err)
	}

	set, err := store.LoadAssumptions(ctx, s, projectID)
	if err != nil {
		t.Fatalf("LoadAssumptions: %v", err)
	}
	if len(set.Products) != 1 || len(set.CogsItems) != 1 || len(set.OpexItems) != 1 ||
		len(set.FixedExpenses) != 1 || len(set.CapexItems) != 1 || len(set.FundingSources) != 1 {
		t.Errorf("unexpected collection sizes: %+v", set)
	}
	if len(set.Salaries) != 0 {
		t.Errorf("expected empty salaries, got %d", len(set.Salaries))
	}
}
