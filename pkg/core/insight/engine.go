package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"proforma/pkg/core/agent"
	"proforma/pkg/core/prompt"
	"proforma/pkg/core/utils"
	"proforma/pkg/models"
)

// Task roles resolved through the agent manager. Each can pin its own
// provider in config/models.yaml.
const (
	RoleAnalysis = "analysis"
	RoleForecast = "forecast"
	RoleReport   = "report"
)

// Engine runs the insight tasks against whichever providers the agent
// manager resolves.
type Engine struct {
	manager *agent.Manager
}

func NewEngine(m *agent.Manager) *Engine {
	return &Engine{manager: m}
}

// jsonMode asks the provider for a JSON object response.
var jsonMode = map[string]interface{}{
	"response_format": map[string]interface{}{"type": "json_object"},
}

func (e *Engine) runPrompt(ctx context.Context, role, promptID string, vars *prompt.PromptExecutionContext, options map[string]interface{}) (string, error) {
	pt, err := prompt.Get().GetPrompt(promptID)
	if err != nil {
		return "", err
	}
	userPrompt, err := prompt.RenderUserPrompt(pt, vars)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", promptID, err)
	}
	return e.manager.ExecutePrompt(ctx, role, userPrompt, pt.SystemPrompt, options)
}

// AnalyzeProjectFinancials produces the full health assessment for a project.
func (e *Engine) AnalyzeProjectFinancials(ctx context.Context, p *models.Project, set models.AssumptionSet) (*AnalysisResult, error) {
	vars := prompt.NewContext().Set("ProjectSummary", ProjectSummary(p, set))

	raw, err := e.runPrompt(ctx, RoleAnalysis, prompt.PromptIDs.InsightFinancialAnalysis, vars, jsonMode)
	if err != nil {
		return nil, fmt.Errorf("ANALYSIS_FAILED: %w", err)
	}

	var result AnalysisResult
	if _, err := utils.SmartParse(raw, &result); err != nil {
		return nil, fmt.Errorf("ANALYSIS_PARSE_FAILED: %w", err)
	}
	if result.HealthScore < 0 {
		result.HealthScore = 0
	}
	if result.HealthScore > 100 {
		result.HealthScore = 100
	}
	return &result, nil
}

// CostOptimization returns targeted cost-saving recommendations.
func (e *Engine) CostOptimization(ctx context.Context, p *models.Project, set models.AssumptionSet) ([]Insight, error) {
	vars := prompt.NewContext().Set("ProjectSummary", ProjectSummary(p, set))

	raw, err := e.runPrompt(ctx, RoleAnalysis, prompt.PromptIDs.InsightCostOptimization, vars, jsonMode)
	if err != nil {
		return nil, fmt.Errorf("COST_OPTIMIZATION_FAILED: %w", err)
	}

	var result struct {
		Recommendations []Insight `json:"recommendations"`
	}
	if _, err := utils.SmartParse(raw, &result); err != nil {
		return nil, fmt.Errorf("COST_OPTIMIZATION_PARSE_FAILED: %w", err)
	}
	return result.Recommendations, nil
}

// RevenueForecast predicts the next 12 months of revenue.
func (e *Engine) RevenueForecast(ctx context.Context, p *models.Project, set models.AssumptionSet) (*ForecastResult, error) {
	industry := p.Industry
	if industry == "" {
		industry = "this industry"
	}
	vars := prompt.NewContext().
		Set("ProjectSummary", ProjectSummary(p, set)).
		Set("Industry", industry)

	raw, err := e.runPrompt(ctx, RoleForecast, prompt.PromptIDs.InsightRevenueForecast, vars, jsonMode)
	if err != nil {
		return nil, fmt.Errorf("FORECAST_FAILED: %w", err)
	}

	var result ForecastResult
	if _, err := utils.SmartParse(raw, &result); err != nil {
		return nil, fmt.Errorf("FORECAST_PARSE_FAILED: %w", err)
	}
	return &result, nil
}

// ExecutiveReport writes an investor-facing Markdown report from a prior
// analysis. The model's output is cleaned of code-block wrappers before it
// is accepted.
func (e *Engine) ExecutiveReport(ctx context.Context, p *models.Project, set models.AssumptionSet, analysis *AnalysisResult) (*Report, error) {
	var insightLines []string
	for _, i := range analysis.Insights {
		insightLines = append(insightLines, fmt.Sprintf("- [%s] %s: %s", strings.ToUpper(i.Type), i.Title, i.Description))
	}

	vars := prompt.NewContext().
		Set("ProjectSummary", ProjectSummary(p, set)).
		Set("HealthScore", analysis.HealthScore).
		Set("Summary", analysis.Summary).
		Set("InsightList", strings.Join(insightLines, "\n"))

	raw, err := e.runPrompt(ctx, RoleReport, prompt.PromptIDs.ReportExecutive, vars, nil)
	if err != nil {
		return nil, fmt.Errorf("REPORT_FAILED: %w", err)
	}

	markdown := utils.CleanMarkdown(raw)
	if !utils.ValidateMarkdown(markdown) {
		return nil, fmt.Errorf("REPORT_INVALID_MARKDOWN: model returned unparseable report")
	}

	html, err := utils.RenderMarkdown(markdown)
	if err != nil {
		return nil, fmt.Errorf("REPORT_RENDER_FAILED: %w", err)
	}

	return &Report{
		ID:       uuid.New().String(),
		Markdown: markdown,
		HTML:     html,
	}, nil
}
