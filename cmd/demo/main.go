// Demo seeds an in-memory store from the refinery template, layers on
// funding and capital spend, and prints the first year of projections.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"proforma/pkg/core/projection"
	"proforma/pkg/core/store"
	"proforma/pkg/core/template"
	"proforma/pkg/models"
)

func dollars(cents int64) float64 {
	return float64(cents) / 100
}

func main() {
	ctx := context.Background()
	db := store.NewMemory()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	project, err := template.Apply(ctx, db, 1, template.ByID("refinery"), "Demo Refinery", start)
	if err != nil {
		fmt.Printf("[FATAL] Template apply failed: %v\n", err)
		os.Exit(1)
	}

	// Layer on the parts the template leaves open
	db.CreateOpexItem(ctx, &models.OpexItem{
		ProjectID: project.ID, Name: "Insurance", ExpenseType: models.ExpenseFixed, Amount: 2500000,
	})
	db.CreateOpexItem(ctx, &models.OpexItem{
		ProjectID: project.ID, Name: "Sales Commission", ExpenseType: models.ExpensePercentage, Amount: 150,
	})
	db.CreateFixedExpense(ctx, &models.FixedExpense{
		ProjectID: project.ID, Name: "Turnaround", Amount: 50000000,
		Date: start.AddDate(0, 5, 0), Frequency: models.FreqAnnually,
	})
	db.CreateCapexItem(ctx, &models.CapexItem{
		ProjectID: project.ID, Name: "Catalytic Cracker Upgrade", Amount: 250000000,
		PurchaseDate: start.AddDate(0, 1, 14), PaymentDelay: 30,
	})
	db.CreateFundingSource(ctx, &models.FundingSource{
		ProjectID: project.ID, SourceType: models.SourceEquity, Amount: 500000000, Date: start,
	})
	db.CreateFundingSource(ctx, &models.FundingSource{
		ProjectID: project.ID, SourceType: models.SourceDebt, Amount: 300000000, InterestRate: 650, Date: start,
	})

	set, err := store.LoadAssumptions(ctx, db, project.ID)
	if err != nil {
		fmt.Printf("[FATAL] Load failed: %v\n", err)
		os.Exit(1)
	}

	incomes, cashFlows := projection.GenerateStatementSeries(
		project.StartDate, project.EndDate, set, projection.DefaultTaxRate)

	fmt.Printf("Project: %s (%s)\n", project.Name, project.Industry)
	fmt.Printf("Horizon: %s to %s (%d months)\n\n",
		project.StartDate.Format("Jan 2006"), project.EndDate.Format("Jan 2006"), len(incomes))

	fmt.Println("First 12 months:")
	fmt.Printf("%-10s %14s %14s %14s %14s %16s\n",
		"Month", "Revenue", "EBITDA", "Net Income", "Net CF", "Cumulative CF")
	for i := 0; i < 12 && i < len(incomes); i++ {
		is, cf := incomes[i], cashFlows[i]
		fmt.Printf("%-10s %14.2f %14.2f %14.2f %14.2f %16.2f\n",
			is.Month.Format("Jan 2006"),
			dollars(is.Revenue), dollars(is.EBITDA), dollars(is.NetIncome),
			dollars(cf.NetCashFlow), dollars(cf.CumulativeCashFlow))
	}

	kpis := projection.CalculateProjectKPIs(incomes, cashFlows, set.FundingSources)
	fmt.Println("\nKPIs:")
	fmt.Printf("  Total Revenue:      %.2f\n", dollars(kpis.TotalRevenue))
	fmt.Printf("  Total EBITDA:       %.2f\n", dollars(kpis.TotalEBITDA))
	fmt.Printf("  Avg EBITDA Margin:  %.1f%%\n", kpis.AverageEBITDAMargin)
	fmt.Printf("  ROI:                %.1f%%\n", kpis.ROI)
	if kpis.BreakEvenMonth != nil {
		fmt.Printf("  Break-even:         %s\n", kpis.BreakEvenMonth.Format("Jan 2006"))
	} else {
		fmt.Println("  Break-even:         not reached")
	}
}
