package projection

import (
	"time"

	"proforma/pkg/models"
)

// ProjectKPIs are the summary metrics folded out of a full statement series.
// Margin and ROI are the only float outputs in the engine; both short-circuit
// to 0 instead of dividing by zero.
type ProjectKPIs struct {
	TotalRevenue        int64      `json:"total_revenue"`
	TotalCOGS           int64      `json:"total_cogs"`
	TotalEBITDA         int64      `json:"total_ebitda"`
	AverageEBITDAMargin float64    `json:"average_ebitda_margin"` // percent
	BreakEvenMonth      *time.Time `json:"break_even_month"`      // nil if never reached
	ROI                 float64    `json:"roi"`                   // percent
	TotalInvestment     int64      `json:"total_investment"`
	TotalCashGenerated  int64      `json:"total_cash_generated"`
}

// CalculateProjectKPIs reduces the two aligned series plus funding data into
// summary metrics. The break-even month is the first month whose cumulative
// cash flow is strictly positive.
func CalculateProjectKPIs(incomes []IncomeStatement, cashFlows []CashFlowStatement, funding []models.FundingSource) ProjectKPIs {
	var kpis ProjectKPIs

	for _, is := range incomes {
		kpis.TotalRevenue += is.Revenue
		kpis.TotalCOGS += is.COGS
		kpis.TotalEBITDA += is.EBITDA
	}
	if kpis.TotalRevenue > 0 {
		kpis.AverageEBITDAMargin = float64(kpis.TotalEBITDA) / float64(kpis.TotalRevenue) * 100
	}

	for _, cf := range cashFlows {
		if cf.CumulativeCashFlow > 0 {
			month := cf.Month
			kpis.BreakEvenMonth = &month
			break
		}
	}

	for _, f := range funding {
		kpis.TotalInvestment += f.Amount
	}
	if len(cashFlows) > 0 {
		kpis.TotalCashGenerated = cashFlows[len(cashFlows)-1].CumulativeCashFlow
	}
	if kpis.TotalInvestment > 0 {
		kpis.ROI = float64(kpis.TotalCashGenerated-kpis.TotalInvestment) / float64(kpis.TotalInvestment) * 100
	}

	return kpis
}
