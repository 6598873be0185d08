package projection

import (
	"math"
	"time"

	"proforma/pkg/models"
)

// DefaultTaxRate applies to positive EBT when the caller passes no explicit
// rate.
const DefaultTaxRate = 0.25

// IncomeStatement is one month's P&L waterfall. All amounts are cents.
// Invariants: GrossProfit = Revenue - COGS;
// EBITDA = GrossProfit - Salaries - Opex - FixedExpenses;
// EBT = EBITDA - Interest; NetIncome = EBT - Taxes.
type IncomeStatement struct {
	Month         time.Time `json:"month"`
	Revenue       int64     `json:"revenue"`
	COGS          int64     `json:"cogs"`
	GrossProfit   int64     `json:"gross_profit"`
	Salaries      int64     `json:"salaries"`
	Opex          int64     `json:"opex"`
	FixedExpenses int64     `json:"fixed_expenses"`
	EBITDA        int64     `json:"ebitda"`
	Interest      int64     `json:"interest"`
	EBT           int64     `json:"ebt"`
	Taxes         int64     `json:"taxes"`
	NetIncome     int64     `json:"net_income"`
}

// CashFlowStatement is one month's cash waterfall. CumulativeCashFlow is the
// running balance carried forward by the series generator.
type CashFlowStatement struct {
	Month              time.Time `json:"month"`
	OperatingCashFlow  int64     `json:"operating_cash_flow"`
	InvestingCashFlow  int64     `json:"investing_cash_flow"`
	FinancingCashFlow  int64     `json:"financing_cash_flow"`
	NetCashFlow        int64     `json:"net_cash_flow"`
	CumulativeCashFlow int64     `json:"cumulative_cash_flow"`
}

// GenerateIncomeStatement composes the cost aggregators into one month's
// P&L. Taxes apply only to positive EBT; negative lines are valid outputs,
// not error states. Inputs are assumed validated upstream.
func GenerateIncomeStatement(
	month time.Time,
	products []models.RevenueProduct,
	cogsItems []models.CogsItem,
	salaries []models.Salary,
	opexItems []models.OpexItem,
	fixedExpenses []models.FixedExpense,
	fundingSources []models.FundingSource,
	projectStart time.Time,
	taxRate float64,
) IncomeStatement {
	revenue := MonthlyRevenue(products, month)
	cogs := MonthlyCOGS(cogsItems, revenue, products, month, projectStart)
	grossProfit := revenue - cogs

	salariesTotal := MonthlySalaries(salaries, month)
	opexTotal := MonthlyOPEX(opexItems, revenue)
	fixedTotal := MonthlyFixedExpenses(fixedExpenses, month)

	ebitda := grossProfit - salariesTotal - opexTotal - fixedTotal

	interest := MonthlyDebtService(fundingSources, month).Interest
	ebt := ebitda - interest

	var taxes int64
	if ebt > 0 {
		taxes = int64(math.Round(float64(ebt) * taxRate))
	}

	return IncomeStatement{
		Month:         month,
		Revenue:       revenue,
		COGS:          cogs,
		GrossProfit:   grossProfit,
		Salaries:      salariesTotal,
		Opex:          opexTotal,
		FixedExpenses: fixedTotal,
		EBITDA:        ebitda,
		Interest:      interest,
		EBT:           ebt,
		Taxes:         taxes,
		NetIncome:     ebt - taxes,
	}
}

// GenerateCashFlowStatement derives one month's cash flow from its income
// statement. Operating cash flow uses net income directly as a proxy: no
// depreciation add-back or working-capital adjustment is modeled. Financing
// recognizes funding inflows in their calendar month and subtracts debt
// principal, which is always 0 under interest-only debt service.
func GenerateCashFlowStatement(
	month time.Time,
	is IncomeStatement,
	capexItems []models.CapexItem,
	fundingSources []models.FundingSource,
	previousCumulative int64,
) CashFlowStatement {
	operating := is.NetIncome
	investing := -MonthlyCAPEX(capexItems, month)

	var financing int64
	for _, f := range fundingSources {
		if sameMonth(f.Date, month) {
			financing += f.Amount
		}
	}
	financing -= MonthlyDebtService(fundingSources, month).Principal

	net := operating + investing + financing
	return CashFlowStatement{
		Month:              month,
		OperatingCashFlow:  operating,
		InvestingCashFlow:  investing,
		FinancingCashFlow:  financing,
		NetCashFlow:        net,
		CumulativeCashFlow: previousCumulative + net,
	}
}

// GenerateStatementSeries drives both builders across every month of the
// horizon [start, end] inclusive, threading the cumulative cash balance
// forward. The two returned slices are index-aligned and the call is
// deterministic: same inputs, same output, no hidden state.
func GenerateStatementSeries(start, end time.Time, set models.AssumptionSet, taxRate float64) ([]IncomeStatement, []CashFlowStatement) {
	months := MonthSequence(start, end)
	incomes := make([]IncomeStatement, 0, len(months))
	cashFlows := make([]CashFlowStatement, 0, len(months))

	var cumulative int64
	for _, month := range months {
		is := GenerateIncomeStatement(
			month,
			set.Products, set.CogsItems, set.Salaries,
			set.OpexItems, set.FixedExpenses, set.FundingSources,
			start, taxRate,
		)
		cf := GenerateCashFlowStatement(month, is, set.CapexItems, set.FundingSources, cumulative)
		cumulative = cf.CumulativeCashFlow

		incomes = append(incomes, is)
		cashFlows = append(cashFlows, cf)
	}
	return incomes, cashFlows
}
