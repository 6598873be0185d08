// Package insight generates qualitative analysis of a financial model by
// sending a compact project summary to an LLM and parsing the structured
// response. Responses pass through repair-tolerant JSON parsing since model
// output is never trusted to be well-formed.
package insight

// Insight is one finding about the project.
type Insight struct {
	Type            string `json:"type"` // risk, opportunity, recommendation, highlight
	Title           string `json:"title"`
	Description     string `json:"description"`
	Impact          string `json:"impact"` // high, medium, low
	Actionable      bool   `json:"actionable"`
	SuggestedAction string `json:"suggested_action,omitempty"`
}

// AnalysisMetrics are headline ratios the model derives from the summary.
type AnalysisMetrics struct {
	MonthlyBurnRate   float64 `json:"monthly_burn_rate,omitempty"`
	BreakEvenMonth    int     `json:"break_even_month,omitempty"`
	ProfitMargin      float64 `json:"profit_margin,omitempty"`
	DebtToEquityRatio float64 `json:"debt_to_equity_ratio,omitempty"`
}

// AnalysisResult is the full health assessment of a project.
type AnalysisResult struct {
	Summary     string          `json:"summary"`
	HealthScore int             `json:"health_score"` // 0-100
	Insights    []Insight       `json:"insights"`
	Metrics     AnalysisMetrics `json:"metrics"`
}

// ForecastPoint is one month of the revenue forecast.
type ForecastPoint struct {
	Month      int     `json:"month"`
	Revenue    float64 `json:"revenue"`
	Confidence string  `json:"confidence"` // high, medium, low
}

// ForecastResult is the 12-month revenue outlook.
type ForecastResult struct {
	Forecast []ForecastPoint `json:"forecast"`
	Insights []Insight       `json:"insights"`
}

// Report is a generated executive report.
type Report struct {
	ID       string `json:"id"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html,omitempty"`
}
