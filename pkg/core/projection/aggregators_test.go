package projection_test

import (
	"testing"
	"time"

	"proforma/pkg/core/projection"
	"proforma/pkg/models"
)

func TestMonthlyRevenue_Seasonality(t *testing.T) {
	products := []models.RevenueProduct{
		// 1000 * 100 * 100/100 = 100000
		{AveragePrice: 1000, Volume: 100, SeasonalityFactor: 100},
		// 500 * 40 * 120/100 = 24000
		{AveragePrice: 500, Volume: 40, SeasonalityFactor: 120},
	}
	got := projection.MonthlyRevenue(products, date(2024, time.January, 1))
	if got != 124000 {
		t.Errorf("Expected 124000, got %d", got)
	}

	// The factor is flat: a different month yields the same figure.
	if again := projection.MonthlyRevenue(products, date(2024, time.July, 1)); again != got {
		t.Errorf("Revenue varied across months: %d vs %d", got, again)
	}
}

func TestMonthlyRevenue_Empty(t *testing.T) {
	if got := projection.MonthlyRevenue(nil, date(2024, time.January, 1)); got != 0 {
		t.Errorf("Expected 0 on empty input, got %d", got)
	}
}

func TestMonthlyCOGS_FixedGrowth(t *testing.T) {
	start := date(2024, time.January, 1)
	items := []models.CogsItem{
		{CostType: models.CostFixed, Amount: 10000, GrowthRate: 1000}, // 10%/year
	}

	// Start month: zero elapsed years, multiplier 1.0.
	if got := projection.MonthlyCOGS(items, 0, nil, start, start); got != 10000 {
		t.Errorf("Expected 10000 at start, got %d", got)
	}

	// Exactly 12 months later: 10000 * 1.10 = 11000.
	if got := projection.MonthlyCOGS(items, 0, nil, date(2025, time.January, 1), start); got != 11000 {
		t.Errorf("Expected 11000 after one year, got %d", got)
	}

	// 24 months: 10000 * 1.21 = 12100.
	if got := projection.MonthlyCOGS(items, 0, nil, date(2026, time.January, 1), start); got != 12100 {
		t.Errorf("Expected 12100 after two years, got %d", got)
	}
}

func TestMonthlyCOGS_VariableTracksVolume(t *testing.T) {
	start := date(2024, time.January, 1)
	products := []models.RevenueProduct{
		{Volume: 100}, {Volume: 50},
	}
	items := []models.CogsItem{
		// 20 cents per unit * 150 units = 3000
		{CostType: models.CostVariable, Amount: 20, GrowthRate: 0},
	}
	if got := projection.MonthlyCOGS(items, 0, products, start, start); got != 3000 {
		t.Errorf("Expected 3000, got %d", got)
	}
}

func TestMonthlyCOGS_PercentageOfRevenue(t *testing.T) {
	start := date(2024, time.January, 1)
	items := []models.CogsItem{
		// 2500 = 25.00% of revenue
		{CostType: models.CostPercentage, Amount: 2500, GrowthRate: 9999},
	}
	// Growth rate must be ignored for percentage items: 200000 * 0.25 = 50000.
	if got := projection.MonthlyCOGS(items, 200000, nil, date(2030, time.June, 1), start); got != 50000 {
		t.Errorf("Expected 50000, got %d", got)
	}
}

func TestMonthlySalaries_ActivityWindow(t *testing.T) {
	end := date(2024, time.August, 31)
	salaries := []models.Salary{
		{MonthlyCost: 30000, StartDate: date(2024, time.March, 1), EndDate: &end},
	}

	cases := []struct {
		month time.Time
		want  int64
	}{
		{date(2024, time.February, 1), 0},
		{date(2024, time.March, 1), 30000},
		{date(2024, time.May, 1), 30000},
		{date(2024, time.August, 1), 30000},
		{date(2024, time.September, 1), 0},
	}
	for _, c := range cases {
		if got := projection.MonthlySalaries(salaries, c.month); got != c.want {
			t.Errorf("%v: expected %d, got %d", c.month, c.want, got)
		}
	}
}

func TestMonthlySalaries_OpenEnded(t *testing.T) {
	salaries := []models.Salary{
		{MonthlyCost: 50000, StartDate: date(2024, time.January, 1)},
	}
	// No end date: still active decades later.
	if got := projection.MonthlySalaries(salaries, date(2043, time.December, 1)); got != 50000 {
		t.Errorf("Expected 50000 for open-ended salary, got %d", got)
	}
	// The open-ended sentinel stops at the end of 2099.
	if got := projection.MonthlySalaries(salaries, date(2099, time.December, 1)); got != 50000 {
		t.Errorf("Expected 50000 at sentinel horizon, got %d", got)
	}
	if got := projection.MonthlySalaries(salaries, date(2100, time.January, 1)); got != 0 {
		t.Errorf("Expected 0 past sentinel horizon, got %d", got)
	}
}

func TestMonthlyOPEX_PercentageCoupling(t *testing.T) {
	items := []models.OpexItem{
		{ExpenseType: models.ExpensePercentage, Amount: 1000}, // 10.00%
	}
	// 100000 * 1000 / 10000 = 10000 exactly.
	if got := projection.MonthlyOPEX(items, 100000); got != 10000 {
		t.Errorf("Expected 10000, got %d", got)
	}
}

func TestMonthlyOPEX_FixedPlusPercentage(t *testing.T) {
	items := []models.OpexItem{
		{ExpenseType: models.ExpenseFixed, Amount: 5000},
		{ExpenseType: models.ExpensePercentage, Amount: 500}, // 5.00%
	}
	// 5000 + 200000*0.05 = 15000
	if got := projection.MonthlyOPEX(items, 200000); got != 15000 {
		t.Errorf("Expected 15000, got %d", got)
	}
}

func TestMonthlyFixedExpenses_Recurrence(t *testing.T) {
	anchor := date(2024, time.January, 15)
	once := models.FixedExpense{Amount: 100, Date: anchor, Frequency: models.FreqOnce}
	monthly := models.FixedExpense{Amount: 10, Date: anchor, Frequency: models.FreqMonthly}
	quarterly := models.FixedExpense{Amount: 1000, Date: anchor, Frequency: models.FreqQuarterly}
	annually := models.FixedExpense{Amount: 10000, Date: anchor, Frequency: models.FreqAnnually}
	all := []models.FixedExpense{once, monthly, quarterly, annually}

	cases := []struct {
		month time.Time
		want  int64
	}{
		// Anchor month: once + monthly + annually. The quarterly rule keys
		// off the inclusive month count (1 here), so it skips its own anchor
		// month and fires when the count is a multiple of 3.
		{date(2024, time.January, 1), 100 + 10 + 10000},
		{date(2024, time.February, 1), 10},
		{date(2024, time.March, 1), 10 + 1000}, // count Jan..Mar = 3
		{date(2024, time.April, 1), 10},
		{date(2024, time.June, 1), 10 + 1000}, // count = 6
		{date(2025, time.January, 1), 10 + 10000},
		// The month right before the anchor has an inclusive count of 0,
		// which is a multiple of 3, so the quarterly item fires there too.
		{date(2023, time.December, 1), 1000},
		{date(2023, time.November, 1), 0}, // count is negative, nothing fires
	}
	for _, c := range cases {
		if got := projection.MonthlyFixedExpenses(all, c.month); got != c.want {
			t.Errorf("%v: expected %d, got %d", c.month, c.want, got)
		}
	}
}

func TestMonthlyCAPEX_PaymentDelay(t *testing.T) {
	items := []models.CapexItem{
		// Purchased Jan 20, paid 15 days later: Feb 4.
		{Amount: 500000, PurchaseDate: date(2024, time.January, 20), PaymentDelay: 15},
	}
	if got := projection.MonthlyCAPEX(items, date(2024, time.January, 1)); got != 0 {
		t.Errorf("Expected 0 in purchase month, got %d", got)
	}
	if got := projection.MonthlyCAPEX(items, date(2024, time.February, 1)); got != 500000 {
		t.Errorf("Expected 500000 in payment month, got %d", got)
	}
	if got := projection.MonthlyCAPEX(items, date(2024, time.March, 1)); got != 0 {
		t.Errorf("Expected 0 after payment month, got %d", got)
	}
}

func TestMonthlyDebtService_InterestOnly(t *testing.T) {
	sources := []models.FundingSource{
		// 1,200,000 cents at 12%/year: 1200000 * 0.12 / 12 = 12000/month.
		{SourceType: models.SourceDebt, Amount: 1200000, InterestRate: 1200, Date: date(2024, time.March, 10)},
		// Equity never accrues interest.
		{SourceType: models.SourceEquity, Amount: 9999999, InterestRate: 1200, Date: date(2024, time.January, 1)},
	}

	// Before drawdown: nothing.
	ds := projection.MonthlyDebtService(sources, date(2024, time.February, 1))
	if ds.Interest != 0 {
		t.Errorf("Expected 0 before drawdown, got %d", ds.Interest)
	}

	// Drawdown month accrues a full month of interest.
	ds = projection.MonthlyDebtService(sources, date(2024, time.March, 1))
	if ds.Interest != 12000 {
		t.Errorf("Expected 12000 in drawdown month, got %d", ds.Interest)
	}

	// Interest never steps down: principal stays untouched.
	ds = projection.MonthlyDebtService(sources, date(2030, time.March, 1))
	if ds.Interest != 12000 {
		t.Errorf("Expected perpetual 12000, got %d", ds.Interest)
	}
	if ds.Principal != 0 {
		t.Errorf("Principal must be 0, got %d", ds.Principal)
	}
}
