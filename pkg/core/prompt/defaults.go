package prompt

// PromptIDs contains all known prompt identifiers
var PromptIDs = struct {
	InsightFinancialAnalysis string
	InsightCostOptimization  string
	InsightRevenueForecast   string
	ReportExecutive          string
}{
	InsightFinancialAnalysis: "insight.financial_analysis",
	InsightCostOptimization:  "insight.cost_optimization",
	InsightRevenueForecast:   "insight.revenue_forecast",
	ReportExecutive:          "report.executive",
}

// registerDefaults installs the built-in prompt set. JSON overrides loaded
// later replace these by ID.
func registerDefaults(r *Registry) {
	for _, pt := range defaultPrompts {
		p := pt
		r.Register(&p)
	}
}

var defaultPrompts = []PromptTemplate{
	{
		ID:           PromptIDs.InsightFinancialAnalysis,
		Name:         "Financial Health Analysis",
		Category:     "insight",
		Description:  "Full project analysis: health score, insights, key metrics",
		SystemPrompt: "You are an expert financial analyst specializing in startup and business financial modeling. Provide clear, actionable insights.",
		UserPromptTmpl: `You are a senior financial analyst. Analyze the following business project and provide insights.

{{.ProjectSummary}}

Provide a comprehensive financial analysis including:
1. Overall financial health assessment (0-100 score)
2. Key risks and opportunities
3. Actionable recommendations for improvement
4. Important metrics and ratios

Format your response as JSON with this structure:
{
  "summary": "Brief 2-3 sentence executive summary",
  "health_score": 75,
  "insights": [
    {
      "type": "risk|opportunity|recommendation|highlight",
      "title": "Short title",
      "description": "Detailed explanation",
      "impact": "high|medium|low",
      "actionable": true,
      "suggested_action": "Specific action to take (optional)"
    }
  ],
  "metrics": {
    "monthly_burn_rate": 50000,
    "break_even_month": 12,
    "profit_margin": 0.25,
    "debt_to_equity_ratio": 0.5
  }
}

Provide 5-8 insights covering risks, opportunities, and recommendations. Be specific and actionable.`,
		Version: "1.0",
	},
	{
		ID:           PromptIDs.InsightCostOptimization,
		Name:         "Cost Optimization",
		Category:     "insight",
		Description:  "Expense review producing cost-saving recommendations",
		SystemPrompt: "You are a business efficiency expert focused on cost optimization.",
		UserPromptTmpl: `You are a cost optimization expert. Analyze this business's expenses and identify cost-saving opportunities.

{{.ProjectSummary}}

Focus on:
- Overstaffing or inefficient personnel allocation
- High fixed costs that could be variable
- Unnecessary CAPEX investments
- OPEX items that seem excessive

Provide 3-5 specific, actionable cost optimization recommendations as JSON:
{
  "recommendations": [
    {
      "type": "recommendation",
      "title": "Short title",
      "description": "Detailed explanation of the cost issue",
      "impact": "high|medium|low",
      "actionable": true,
      "suggested_action": "Specific steps to reduce this cost"
    }
  ]
}`,
		Version: "1.0",
	},
	{
		ID:           PromptIDs.InsightRevenueForecast,
		Name:         "Revenue Forecast",
		Category:     "insight",
		Description:  "12-month revenue forecast with confidence levels",
		SystemPrompt: "You are a financial forecasting expert specializing in revenue predictions.",
		UserPromptTmpl: `You are a revenue forecasting expert. Predict future revenue for the next 12 months based on current products.

{{.ProjectSummary}}

Consider:
- Product pricing and volume
- Seasonality factors
- Market trends for {{.Industry}}

Provide a 12-month forecast with confidence levels and insights as JSON:
{
  "forecast": [
    { "month": 1, "revenue": 100000, "confidence": "high" }
  ],
  "insights": [
    {
      "type": "highlight|opportunity",
      "title": "Revenue trend insight",
      "description": "Explanation",
      "impact": "high|medium|low",
      "actionable": true,
      "suggested_action": "How to improve revenue"
    }
  ]
}`,
		Version: "1.0",
	},
	{
		ID:           PromptIDs.ReportExecutive,
		Name:         "Executive Report",
		Category:     "report",
		Description:  "Investor-facing Markdown report built on a prior analysis",
		SystemPrompt: "You are a professional business report writer.",
		UserPromptTmpl: `You are writing an executive report for investors/stakeholders. Create a professional, well-structured report.

PROJECT DATA:
{{.ProjectSummary}}

AI ANALYSIS RESULTS:
Health Score: {{.HealthScore}}/100
Summary: {{.Summary}}

Key Insights:
{{.InsightList}}

Write a comprehensive executive report (500-700 words) with:
1. Executive Summary
2. Financial Overview
3. Key Findings and Insights
4. Recommendations
5. Conclusion

Use professional business language. Format in Markdown with headers, bullet points, and emphasis where appropriate.`,
		Version: "1.0",
	},
}
