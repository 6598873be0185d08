package projection_test

import (
	"reflect"
	"testing"
	"time"

	"proforma/pkg/core/projection"
	"proforma/pkg/models"
)

// threeMonthSet is the baseline scenario: Jan-Mar 2024, flat 100000 revenue,
// 20000 COGS, 30000 payroll. EBITDA = 50000 every month.
func threeMonthSet() models.AssumptionSet {
	return models.AssumptionSet{
		Products: []models.RevenueProduct{
			{AveragePrice: 1000, Volume: 100, SeasonalityFactor: 100},
		},
		CogsItems: []models.CogsItem{
			{CostType: models.CostFixed, Amount: 20000, GrowthRate: 0},
		},
		Salaries: []models.Salary{
			{MonthlyCost: 30000, StartDate: date(2024, time.January, 1)},
		},
	}
}

func TestGenerateIncomeStatement_Waterfall(t *testing.T) {
	set := threeMonthSet()
	start := date(2024, time.January, 1)

	is := projection.GenerateIncomeStatement(
		start, set.Products, set.CogsItems, set.Salaries,
		set.OpexItems, set.FixedExpenses, set.FundingSources,
		start, projection.DefaultTaxRate,
	)

	if is.Revenue != 100000 {
		t.Errorf("Revenue: expected 100000, got %d", is.Revenue)
	}
	if is.GrossProfit != 80000 {
		t.Errorf("GrossProfit: expected 80000, got %d", is.GrossProfit)
	}
	if is.EBITDA != 50000 {
		t.Errorf("EBITDA: expected 50000, got %d", is.EBITDA)
	}
	// No debt: EBT = EBITDA; taxes = 50000 * 0.25 = 12500.
	if is.EBT != 50000 {
		t.Errorf("EBT: expected 50000, got %d", is.EBT)
	}
	if is.Taxes != 12500 {
		t.Errorf("Taxes: expected 12500, got %d", is.Taxes)
	}
	if is.NetIncome != 37500 {
		t.Errorf("NetIncome: expected 37500, got %d", is.NetIncome)
	}
}

func TestGenerateIncomeStatement_AdditivityOnEmptyInput(t *testing.T) {
	start := date(2024, time.January, 1)
	is := projection.GenerateIncomeStatement(
		start, nil, nil, nil, nil, nil, nil, start, projection.DefaultTaxRate,
	)
	if is.Revenue != 0 || is.COGS != 0 || is.EBITDA != 0 || is.NetIncome != 0 {
		t.Errorf("Empty collections must produce an all-zero statement: %+v", is)
	}
	if is.EBITDA != is.Revenue-is.COGS-is.Salaries-is.Opex-is.FixedExpenses {
		t.Errorf("EBITDA identity broken on empty input")
	}
}

func TestGenerateIncomeStatement_NoTaxOnLoss(t *testing.T) {
	start := date(2024, time.January, 1)
	set := models.AssumptionSet{
		Salaries: []models.Salary{
			{MonthlyCost: 40000, StartDate: start},
		},
	}
	is := projection.GenerateIncomeStatement(
		start, nil, nil, set.Salaries, nil, nil, nil, start, projection.DefaultTaxRate,
	)
	// EBT = -40000: a loss is a valid output and carries no tax.
	if is.EBT != -40000 {
		t.Errorf("EBT: expected -40000, got %d", is.EBT)
	}
	if is.Taxes != 0 {
		t.Errorf("Taxes on a loss must be 0, got %d", is.Taxes)
	}
	if is.NetIncome != -40000 {
		t.Errorf("NetIncome: expected -40000, got %d", is.NetIncome)
	}
}

func TestGenerateCashFlowStatement_Waterfall(t *testing.T) {
	month := date(2024, time.January, 1)
	is := projection.IncomeStatement{Month: month, NetIncome: 37500}
	capex := []models.CapexItem{
		{Amount: 10000, PurchaseDate: month, PaymentDelay: 0},
	}
	funding := []models.FundingSource{
		{SourceType: models.SourceEquity, Amount: 100000, Date: month},
		// Drawn in a later month: not financing cash in January.
		{SourceType: models.SourceDebt, Amount: 50000, Date: date(2024, time.June, 1)},
	}

	cf := projection.GenerateCashFlowStatement(month, is, capex, funding, -5000)

	if cf.OperatingCashFlow != 37500 {
		t.Errorf("Operating: expected 37500, got %d", cf.OperatingCashFlow)
	}
	if cf.InvestingCashFlow != -10000 {
		t.Errorf("Investing: expected -10000, got %d", cf.InvestingCashFlow)
	}
	if cf.FinancingCashFlow != 100000 {
		t.Errorf("Financing: expected 100000, got %d", cf.FinancingCashFlow)
	}
	// Net = 37500 - 10000 + 100000 = 127500; cumulative = -5000 + 127500.
	if cf.NetCashFlow != 127500 {
		t.Errorf("Net: expected 127500, got %d", cf.NetCashFlow)
	}
	if cf.CumulativeCashFlow != 122500 {
		t.Errorf("Cumulative: expected 122500, got %d", cf.CumulativeCashFlow)
	}
}

func TestGenerateStatementSeries_ThreeMonthScenario(t *testing.T) {
	set := threeMonthSet()
	start := date(2024, time.January, 1)
	end := date(2024, time.March, 1)

	incomes, cashFlows := projection.GenerateStatementSeries(start, end, set, projection.DefaultTaxRate)
	if len(incomes) != 3 || len(cashFlows) != 3 {
		t.Fatalf("Expected 3 aligned statements, got %d/%d", len(incomes), len(cashFlows))
	}

	for i, is := range incomes {
		if is.EBITDA != 50000 {
			t.Errorf("Month %d: expected EBITDA 50000, got %d", i, is.EBITDA)
		}
	}

	kpis := projection.CalculateProjectKPIs(incomes, cashFlows, set.FundingSources)
	if kpis.TotalRevenue != 300000 {
		t.Errorf("TotalRevenue: expected 300000, got %d", kpis.TotalRevenue)
	}
	if kpis.TotalEBITDA != 150000 {
		t.Errorf("TotalEBITDA: expected 150000, got %d", kpis.TotalEBITDA)
	}
	if kpis.AverageEBITDAMargin != 50 {
		t.Errorf("Margin: expected 50%%, got %f", kpis.AverageEBITDAMargin)
	}
}

func TestGenerateStatementSeries_CumulativeIsPrefixSum(t *testing.T) {
	set := threeMonthSet()
	set.CapexItems = []models.CapexItem{
		{Amount: 80000, PurchaseDate: date(2024, time.February, 1), PaymentDelay: 0},
	}
	set.FundingSources = []models.FundingSource{
		{SourceType: models.SourceDebt, Amount: 600000, InterestRate: 1000, Date: date(2024, time.January, 5)},
	}

	_, cashFlows := projection.GenerateStatementSeries(
		date(2024, time.January, 1), date(2024, time.December, 1), set, projection.DefaultTaxRate,
	)

	var running int64
	for i, cf := range cashFlows {
		running += cf.NetCashFlow
		if cf.CumulativeCashFlow != running {
			t.Errorf("Month %d: cumulative %d != prefix sum %d", i, cf.CumulativeCashFlow, running)
		}
	}
}

func TestGenerateStatementSeries_Deterministic(t *testing.T) {
	set := threeMonthSet()
	set.FixedExpenses = []models.FixedExpense{
		{Amount: 7500, Date: date(2024, time.January, 1), Frequency: models.FreqQuarterly},
	}
	start := date(2024, time.January, 1)
	end := date(2025, time.December, 1)

	is1, cf1 := projection.GenerateStatementSeries(start, end, set, projection.DefaultTaxRate)
	is2, cf2 := projection.GenerateStatementSeries(start, end, set, projection.DefaultTaxRate)

	if !reflect.DeepEqual(is1, is2) {
		t.Errorf("Income series not reproducible")
	}
	if !reflect.DeepEqual(cf1, cf2) {
		t.Errorf("Cash flow series not reproducible")
	}
}
