package insight_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"proforma/pkg/core/agent"
	"proforma/pkg/core/insight"
	"proforma/pkg/core/llm"
	"proforma/pkg/models"
)

func testEngine(response string) (*insight.Engine, *llm.StaticProvider) {
	m := agent.NewManager(agent.Config{ActiveProvider: "static"})
	p := &llm.StaticProvider{Response: response}
	m.RegisterProvider("static", p)
	return insight.NewEngine(m), p
}

func testProject() (*models.Project, models.AssumptionSet) {
	p := &models.Project{
		ID:        1,
		Name:      "Bayou Solar Farm",
		Industry:  "solar",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
	set := models.AssumptionSet{
		Products: []models.RevenueProduct{
			{Name: "Power", AveragePrice: 1200, Volume: 50000, SeasonalityFactor: 100},
		},
		Salaries: []models.Salary{
			{Position: "Site Manager", MonthlyCost: 900000, StartDate: p.StartDate},
		},
		FundingSources: []models.FundingSource{
			{SourceType: models.SourceEquity, Amount: 500000000},
			{SourceType: models.SourceDebt, Amount: 250000000, InterestRate: 600},
		},
	}
	return p, set
}

func TestProjectSummaryContents(t *testing.T) {
	p, set := testProject()
	summary := insight.ProjectSummary(p, set)

	for _, want := range []string{
		"Project: Bayou Solar Farm",
		"Industry: solar",
		// 1200 * 50000 cents = $600,000.00
		"Estimated Monthly Revenue: $600,000.00",
		"Monthly Payroll: $9,000.00",
		"Equity: $5,000,000.00",
		"Debt: $2,500,000.00",
		"Debt-to-Equity Ratio: 0.50",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestProjectSummaryNoEquity(t *testing.T) {
	p, set := testProject()
	set.FundingSources = nil
	summary := insight.ProjectSummary(p, set)
	if !strings.Contains(summary, "Debt-to-Equity Ratio: N/A") {
		t.Errorf("expected N/A ratio without equity:\n%s", summary)
	}
}

func TestAnalyzeProjectFinancials(t *testing.T) {
	e, p := testEngine(`{
		"summary": "Strong margins, heavy debt load.",
		"health_score": 72,
		"insights": [
			{"type": "risk", "title": "Debt service", "description": "Interest eats cash.", "impact": "high", "actionable": true, "suggested_action": "Refinance"}
		],
		"metrics": {"profit_margin": 0.31, "debt_to_equity_ratio": 0.5}
	}`)
	proj, set := testProject()

	result, err := e.AnalyzeProjectFinancials(context.Background(), proj, set)
	if err != nil {
		t.Fatalf("AnalyzeProjectFinancials: %v", err)
	}
	if result.HealthScore != 72 {
		t.Errorf("expected health score 72, got %d", result.HealthScore)
	}
	if len(result.Insights) != 1 || result.Insights[0].Type != "risk" {
		t.Errorf("unexpected insights %+v", result.Insights)
	}
	if result.Metrics.ProfitMargin != 0.31 {
		t.Errorf("expected profit margin 0.31, got %v", result.Metrics.ProfitMargin)
	}
	if !strings.Contains(p.LastPrompt, "Bayou Solar Farm") {
		t.Error("expected project summary embedded in prompt")
	}
}

func TestAnalyzeClampsHealthScore(t *testing.T) {
	e, _ := testEngine(`{"summary": "s", "health_score": 140, "insights": [], "metrics": {}}`)
	proj, set := testProject()

	result, err := e.AnalyzeProjectFinancials(context.Background(), proj, set)
	if err != nil {
		t.Fatal(err)
	}
	if result.HealthScore != 100 {
		t.Errorf("expected clamp to 100, got %d", result.HealthScore)
	}
}

func TestAnalyzeRepairsMalformedJSON(t *testing.T) {
	// trailing comma and code fence, the usual model damage
	e, _ := testEngine("```json\n{\"summary\": \"ok\", \"health_score\": 60, \"insights\": [],}\n```")
	proj, set := testProject()

	result, err := e.AnalyzeProjectFinancials(context.Background(), proj, set)
	if err != nil {
		t.Fatalf("expected repair to recover, got %v", err)
	}
	if result.HealthScore != 60 {
		t.Errorf("expected health score 60, got %d", result.HealthScore)
	}
}

func TestCostOptimizationUnwrapsRecommendations(t *testing.T) {
	e, _ := testEngine(`{"recommendations": [
		{"type": "recommendation", "title": "Trim overtime", "description": "d", "impact": "medium", "actionable": true}
	]}`)
	proj, set := testProject()

	recs, err := e.CostOptimization(context.Background(), proj, set)
	if err != nil {
		t.Fatalf("CostOptimization: %v", err)
	}
	if len(recs) != 1 || recs[0].Title != "Trim overtime" {
		t.Errorf("unexpected recommendations %+v", recs)
	}
}

func TestRevenueForecast(t *testing.T) {
	e, _ := testEngine(`{
		"forecast": [
			{"month": 1, "revenue": 600000, "confidence": "high"},
			{"month": 2, "revenue": 620000, "confidence": "medium"}
		],
		"insights": []
	}`)
	proj, set := testProject()

	f, err := e.RevenueForecast(context.Background(), proj, set)
	if err != nil {
		t.Fatalf("RevenueForecast: %v", err)
	}
	if len(f.Forecast) != 2 || f.Forecast[1].Confidence != "medium" {
		t.Errorf("unexpected forecast %+v", f.Forecast)
	}
}

func TestExecutiveReportCleansFences(t *testing.T) {
	e, p := testEngine("```markdown\n# Executive Summary\n\nHealthy project.\n```")
	proj, set := testProject()
	analysis := &insight.AnalysisResult{
		Summary:     "Healthy",
		HealthScore: 80,
		Insights: []insight.Insight{
			{Type: "highlight", Title: "Margins", Description: "Strong"},
		},
	}

	report, err := e.ExecutiveReport(context.Background(), proj, set, analysis)
	if err != nil {
		t.Fatalf("ExecutiveReport: %v", err)
	}
	if strings.Contains(report.Markdown, "```") {
		t.Errorf("expected code fences stripped:\n%s", report.Markdown)
	}
	if report.ID == "" {
		t.Error("expected a report ID")
	}
	if !strings.Contains(report.HTML, "<h1") {
		t.Errorf("expected rendered HTML heading, got %q", report.HTML)
	}
	if !strings.Contains(p.LastPrompt, "[HIGHLIGHT] Margins: Strong") {
		t.Errorf("expected insight list in prompt:\n%s", p.LastPrompt)
	}
}
