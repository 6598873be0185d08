// Package models defines the persisted entities of a financial model project.
// All monetary amounts are int64 minor currency units (cents); annual rates
// are integer basis points. The projection engine never mutates these values.
package models

import (
	"time"
)

// Project is one financial model: a horizon plus the assumption collections
// hanging off it. Horizon is the inclusive month span [StartDate, EndDate].
type Project struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RevenueProduct drives the revenue line: price * volume each month,
// scaled by SeasonalityFactor (percent, 100 = no adjustment).
type RevenueProduct struct {
	ID                int    `json:"id"`
	ProjectID         int    `json:"project_id"`
	Name              string `json:"name"`
	AveragePrice      int64  `json:"average_price"` // cents per unit
	Volume            int64  `json:"volume"`        // units per month
	Unit              string `json:"unit"`
	SeasonalityFactor int64  `json:"seasonality_factor"` // percent, default 100
}

// CostType discriminates how a CogsItem's Amount is interpreted.
type CostType string

const (
	CostFixed      CostType = "fixed"      // Amount = cents per month
	CostVariable   CostType = "variable"   // Amount = cents per unit of total volume
	CostPercentage CostType = "percentage" // Amount = percent of revenue * 100
)

// CogsItem is a cost-of-goods-sold line. GrowthRate compounds annually and
// applies to fixed and variable items only.
type CogsItem struct {
	ID         int      `json:"id"`
	ProjectID  int      `json:"project_id"`
	Name       string   `json:"name"`
	CostType   CostType `json:"cost_type"`
	Amount     int64    `json:"amount"`
	GrowthRate int64    `json:"growth_rate"` // basis points per year
}

// Salary is a personnel position active over an inclusive date window.
// A nil EndDate means open-ended.
type Salary struct {
	ID          int        `json:"id"`
	ProjectID   int        `json:"project_id"`
	Position    string     `json:"position"`
	MonthlyCost int64      `json:"monthly_cost"` // cents
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// ExpenseType discriminates how an OpexItem's Amount is interpreted.
type ExpenseType string

const (
	ExpenseFixed      ExpenseType = "fixed"      // Amount = cents per month
	ExpensePercentage ExpenseType = "percentage" // Amount = percent of revenue * 100
)

// OpexItem is an operating expense line. Unlike COGS, OPEX carries no
// growth rate.
type OpexItem struct {
	ID          int         `json:"id"`
	ProjectID   int         `json:"project_id"`
	Name        string      `json:"name"`
	ExpenseType ExpenseType `json:"expense_type"`
	Amount      int64       `json:"amount"`
}

// Frequency is the recurrence rule of a FixedExpense, anchored at its Date.
type Frequency string

const (
	FreqOnce      Frequency = "once"
	FreqMonthly   Frequency = "monthly"
	FreqQuarterly Frequency = "quarterly"
	FreqAnnually  Frequency = "annually"
)

// FixedExpense is a scheduled expense (maintenance, turnarounds) recurring
// per its Frequency from the anchor Date.
type FixedExpense struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"project_id"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"` // cents
	Date      time.Time `json:"date"`
	Frequency Frequency `json:"frequency"`
}

// CapexItem is a capital purchase whose cash impact lands in the month of
// PurchaseDate + PaymentDelay days.
type CapexItem struct {
	ID           int       `json:"id"`
	ProjectID    int       `json:"project_id"`
	Name         string    `json:"name"`
	Amount       int64     `json:"amount"` // cents
	PurchaseDate time.Time `json:"purchase_date"`
	PaymentDelay int       `json:"payment_delay"` // days
}

// SourceType discriminates funding sources.
type SourceType string

const (
	SourceEquity SourceType = "equity"
	SourceDebt   SourceType = "debt"
)

// FundingSource is a capital inflow recognized in the month of Date. Debt
// sources accrue monthly interest from that month onward; principal is never
// amortized (interest-only debt service).
type FundingSource struct {
	ID           int        `json:"id"`
	ProjectID    int        `json:"project_id"`
	SourceType   SourceType `json:"source_type"`
	Amount       int64      `json:"amount"`        // cents
	InterestRate int64      `json:"interest_rate"` // basis points per year, debt only
	Date         time.Time  `json:"date"`
}

// AssumptionSet bundles every collection the engine consumes for one
// project. Handlers load it from the store in one shot.
type AssumptionSet struct {
	Products       []RevenueProduct `json:"products"`
	CogsItems      []CogsItem       `json:"cogs_items"`
	Salaries       []Salary         `json:"salaries"`
	OpexItems      []OpexItem       `json:"opex_items"`
	FixedExpenses  []FixedExpense   `json:"fixed_expenses"`
	CapexItems     []CapexItem      `json:"capex_items"`
	FundingSources []FundingSource  `json:"funding_sources"`
}
