package projection_test

import (
	"testing"
	"time"

	"proforma/pkg/core/projection"
	"proforma/pkg/models"
)

func cfAt(m time.Time, net, cumulative int64) projection.CashFlowStatement {
	return projection.CashFlowStatement{Month: m, NetCashFlow: net, CumulativeCashFlow: cumulative}
}

func TestCalculateProjectKPIs_BreakEven(t *testing.T) {
	// Cumulative path: -500, -800, -600, +200. First positive is month 4.
	cashFlows := []projection.CashFlowStatement{
		cfAt(date(2024, time.January, 1), -500, -500),
		cfAt(date(2024, time.February, 1), -300, -800),
		cfAt(date(2024, time.March, 1), 200, -600),
		cfAt(date(2024, time.April, 1), 800, 200),
	}

	kpis := projection.CalculateProjectKPIs(nil, cashFlows, nil)
	if kpis.BreakEvenMonth == nil {
		t.Fatal("Expected a break-even month")
	}
	if !kpis.BreakEvenMonth.Equal(date(2024, time.April, 1)) {
		t.Errorf("Expected April, got %v", kpis.BreakEvenMonth)
	}
}

func TestCalculateProjectKPIs_NeverBreaksEven(t *testing.T) {
	cashFlows := []projection.CashFlowStatement{
		cfAt(date(2024, time.January, 1), -500, -500),
		cfAt(date(2024, time.February, 1), -300, -800),
	}
	kpis := projection.CalculateProjectKPIs(nil, cashFlows, nil)
	if kpis.BreakEvenMonth != nil {
		t.Errorf("Expected nil break-even, got %v", kpis.BreakEvenMonth)
	}
}

func TestCalculateProjectKPIs_ROI(t *testing.T) {
	funding := []models.FundingSource{
		{SourceType: models.SourceEquity, Amount: 100000},
		{SourceType: models.SourceDebt, Amount: 100000},
	}
	cashFlows := []projection.CashFlowStatement{
		cfAt(date(2024, time.January, 1), 300000, 300000),
	}

	kpis := projection.CalculateProjectKPIs(nil, cashFlows, funding)
	if kpis.TotalInvestment != 200000 {
		t.Errorf("TotalInvestment: expected 200000, got %d", kpis.TotalInvestment)
	}
	// ROI = (300000 - 200000) / 200000 * 100 = 50%.
	if kpis.ROI != 50 {
		t.Errorf("ROI: expected 50, got %f", kpis.ROI)
	}
}

func TestCalculateProjectKPIs_DivideByZeroGuards(t *testing.T) {
	// No revenue, no funding: both ratios must short-circuit to 0.
	incomes := []projection.IncomeStatement{
		{Month: date(2024, time.January, 1), EBITDA: -5000},
	}
	cashFlows := []projection.CashFlowStatement{
		cfAt(date(2024, time.January, 1), -5000, -5000),
	}

	kpis := projection.CalculateProjectKPIs(incomes, cashFlows, nil)
	if kpis.AverageEBITDAMargin != 0 {
		t.Errorf("Margin must be 0 with zero revenue, got %f", kpis.AverageEBITDAMargin)
	}
	if kpis.ROI != 0 {
		t.Errorf("ROI must be 0 with zero investment, got %f", kpis.ROI)
	}
	if kpis.TotalCashGenerated != -5000 {
		t.Errorf("TotalCashGenerated: expected -5000, got %d", kpis.TotalCashGenerated)
	}
}

func TestCalculateProjectKPIs_EmptySeries(t *testing.T) {
	kpis := projection.CalculateProjectKPIs(nil, nil, nil)
	if kpis.TotalRevenue != 0 || kpis.TotalCashGenerated != 0 || kpis.BreakEvenMonth != nil {
		t.Errorf("Empty series must fold to zeros: %+v", kpis)
	}
}
