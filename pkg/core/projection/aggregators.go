package projection

import (
	"math"
	"time"

	"proforma/pkg/models"
)

// openEnded stands in for a missing salary end date. Windows ending past
// 2099 deactivate silently; extend the sentinel if horizons ever reach it.
var openEnded = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

// The aggregators below are pure reductions over one project's assumption
// collections for a single month cursor. Empty collections contribute zero.
// All of them return cents; intermediate math stays in int64 except where a
// compound-growth multiplier forces a float, which is rounded back to cents
// immediately.

// MonthlyRevenue sums seasonally adjusted product revenue for the month:
// price * volume * seasonalityFactor / 100 per product. The seasonality
// factor is a flat multiplier, identical every month.
func MonthlyRevenue(products []models.RevenueProduct, month time.Time) int64 {
	var total int64
	for _, p := range products {
		total += p.AveragePrice * p.Volume * p.SeasonalityFactor / 100
	}
	return total
}

// growthMultiplier compounds an annual basis-point growth rate over the
// fractional years elapsed since project start. 250 bp = 2.5%/year.
func growthMultiplier(growthRateBP int64, month, projectStart time.Time) float64 {
	years := float64(monthsElapsed(projectStart, month)) / 12.0
	return math.Pow(1+float64(growthRateBP)/10000.0, years)
}

// MonthlyCOGS derives the month's cost of goods sold. Fixed and variable
// items compound with their growth rate; percentage items track revenue
// and take no growth (their base already moves with revenue).
func MonthlyCOGS(items []models.CogsItem, revenue int64, products []models.RevenueProduct, month, projectStart time.Time) int64 {
	var total int64
	for _, item := range items {
		switch item.CostType {
		case models.CostFixed:
			mult := growthMultiplier(item.GrowthRate, month, projectStart)
			total += int64(math.Round(float64(item.Amount) * mult))
		case models.CostVariable:
			var volume int64
			for _, p := range products {
				volume += p.Volume
			}
			mult := growthMultiplier(item.GrowthRate, month, projectStart)
			total += int64(math.Round(float64(item.Amount*volume) * mult))
		case models.CostPercentage:
			// Amount is percent-of-revenue * 100.
			total += revenue * item.Amount / 10000
		}
	}
	return total
}

// MonthlySalaries sums the monthly cost of every position whose inclusive
// [StartDate, EndDate] window contains the month cursor. A nil EndDate
// means the position never terminates.
func MonthlySalaries(salaries []models.Salary, month time.Time) int64 {
	var total int64
	for _, s := range salaries {
		end := openEnded
		if s.EndDate != nil {
			end = *s.EndDate
		}
		if inRange(month, s.StartDate, end) {
			total += s.MonthlyCost
		}
	}
	return total
}

// MonthlyOPEX sums operating expenses for the month. Fixed items are flat;
// percentage items track revenue. OPEX carries no growth rate, unlike COGS.
func MonthlyOPEX(items []models.OpexItem, revenue int64) int64 {
	var total int64
	for _, item := range items {
		switch item.ExpenseType {
		case models.ExpenseFixed:
			total += item.Amount
		case models.ExpensePercentage:
			total += revenue * item.Amount / 10000
		}
	}
	return total
}

// MonthlyFixedExpenses evaluates each expense's recurrence rule against the
// month cursor. Comparisons are at calendar-month granularity, keyed off the
// anchor date.
func MonthlyFixedExpenses(items []models.FixedExpense, month time.Time) int64 {
	var total int64
	for _, e := range items {
		switch e.Frequency {
		case models.FreqOnce:
			if sameMonth(e.Date, month) {
				total += e.Amount
			}
		case models.FreqMonthly:
			if monthOnOrAfter(month, e.Date) {
				total += e.Amount
			}
		case models.FreqQuarterly:
			if n := MonthsBetween(e.Date, month); n >= 0 && n%3 == 0 {
				total += e.Amount
			}
		case models.FreqAnnually:
			if e.Date.Month() == month.Month() && monthOnOrAfter(month, e.Date) {
				total += e.Amount
			}
		}
	}
	return total
}

// MonthlyCAPEX sums capital purchases whose cash recognition month —
// purchase date shifted by the payment delay in days — matches the cursor.
func MonthlyCAPEX(items []models.CapexItem, month time.Time) int64 {
	var total int64
	for _, item := range items {
		paid := item.PurchaseDate.AddDate(0, 0, item.PaymentDelay)
		if sameMonth(paid, month) {
			total += item.Amount
		}
	}
	return total
}

// DebtService is the month's debt cost split into interest and principal.
// Principal is always 0: the product models interest-only perpetual debt and
// never amortizes principal.
type DebtService struct {
	Interest  int64 `json:"interest"`
	Principal int64 `json:"principal"`
}

// MonthlyDebtService accrues one month of interest on every debt funding
// source already drawn down by the cursor month:
// amount * (rate/10000) / 12, rounded to cents.
func MonthlyDebtService(sources []models.FundingSource, month time.Time) DebtService {
	var ds DebtService
	for _, f := range sources {
		if f.SourceType != models.SourceDebt {
			continue
		}
		if !monthOnOrAfter(month, f.Date) {
			continue
		}
		monthly := float64(f.Amount) * float64(f.InterestRate) / 10000.0 / 12.0
		ds.Interest += int64(math.Round(monthly))
	}
	return ds
}
