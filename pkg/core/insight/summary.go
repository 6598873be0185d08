package insight

import (
	"fmt"
	"strings"

	"proforma/pkg/models"
)

// formatCents renders a cent amount as a dollar string with thousands
// separators, e.g. 123456789 -> "$1,234,567.89".
func formatCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}
	dollars := cents / 100
	remainder := cents % 100

	digits := fmt.Sprintf("%d", dollars)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), remainder)
}

// ProjectSummary condenses a project and its assumptions into the plain-text
// block fed to every insight prompt. Totals here are naive monthly sums, not
// the engine's projections: the model only needs the shape of the business.
func ProjectSummary(p *models.Project, set models.AssumptionSet) string {
	var totalRevenue, totalCOGS, totalSalaries, totalOPEX, totalMonthlyFixed, totalCAPEX int64
	var totalFunding, totalEquity, totalDebt int64

	for _, prod := range set.Products {
		totalRevenue += prod.AveragePrice * prod.Volume
	}
	for _, c := range set.CogsItems {
		totalCOGS += c.Amount
	}
	for _, s := range set.Salaries {
		totalSalaries += s.MonthlyCost
	}
	for _, o := range set.OpexItems {
		if o.ExpenseType == models.ExpenseFixed {
			totalOPEX += o.Amount
		}
	}
	for _, f := range set.FixedExpenses {
		if f.Frequency == models.FreqMonthly {
			totalMonthlyFixed += f.Amount
		}
	}
	for _, c := range set.CapexItems {
		totalCAPEX += c.Amount
	}
	for _, f := range set.FundingSources {
		totalFunding += f.Amount
		switch f.SourceType {
		case models.SourceEquity:
			totalEquity += f.Amount
		case models.SourceDebt:
			totalDebt += f.Amount
		}
	}

	industry := p.Industry
	if industry == "" {
		industry = "Not specified"
	}

	debtToEquity := "N/A"
	if totalEquity > 0 {
		debtToEquity = fmt.Sprintf("%.2f", float64(totalDebt)/float64(totalEquity))
	}

	return fmt.Sprintf(`
Project: %s
Industry: %s
Duration: %s to %s

REVENUE:
- Products: %d
- Estimated Monthly Revenue: %s

COSTS:
- COGS Items: %d, Total: %s
- Personnel: %d positions, Monthly Payroll: %s
- OPEX Items: %d, Fixed Monthly: %s
- Fixed Expenses: %d, Monthly: %s
- CAPEX: %d investments, Total: %s

FUNDING:
- Total Funding: %s
- Equity: %s
- Debt: %s
- Debt-to-Equity Ratio: %s
`,
		p.Name,
		industry,
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"),
		len(set.Products), formatCents(totalRevenue),
		len(set.CogsItems), formatCents(totalCOGS),
		len(set.Salaries), formatCents(totalSalaries),
		len(set.OpexItems), formatCents(totalOPEX),
		len(set.FixedExpenses), formatCents(totalMonthlyFixed),
		len(set.CapexItems), formatCents(totalCAPEX),
		formatCents(totalFunding),
		formatCents(totalEquity),
		formatCents(totalDebt),
		debtToEquity,
	)
}
