package ai

import "strings"

// strategyPrompt builds the full instruction text for strategy generation.
// The model must answer with a strict JSON object so the response can be
// validated against StrategyOutput.
func strategyPrompt(in StrategyInput) string {
	var b strings.Builder
	b.WriteString("You are an expert financial advisor. Based on the user's financial goals, " +
		"risk tolerance, and current market conditions, provide a personalized investment strategy.\n\n")
	b.WriteString("Financial Goals: " + in.FinancialGoals + "\n")
	b.WriteString("Risk Tolerance: " + in.RiskTolerance + "\n")
	b.WriteString("Current Market Conditions: " + in.MarketConditions + "\n\n")
	b.WriteString("Provide a detailed strategy description, recommended asset allocation, " +
		"and specific investment recommendations.\n\n")
	b.WriteString(strictJSONRules(
		`"strategyDescription": string`,
		`"assetAllocation": string`,
		`"specificInvestments": string`,
	))
	return b.String()
}

// summaryPrompt builds the instruction text for report summarization.
func summaryPrompt(in SummaryInput) string {
	var b strings.Builder
	b.WriteString("You are an expert financial analyst who summarizes market reports for investors.\n\n")
	b.WriteString("Here is the market report:\n" + in.Report + "\n\n")
	if strings.TrimSpace(in.UserInvestmentProfile) != "" {
		b.WriteString("Consider the following investment profile when writing the summary: " +
			in.UserInvestmentProfile + "\n\n")
	}
	b.WriteString("Provide a concise summary of the market report, focusing on key trends " +
		"and potential impacts on investments.\n\n")
	b.WriteString(strictJSONRules(`"summary": string`))
	return b.String()
}

func strictJSONRules(fields ...string) string {
	var b strings.Builder
	b.WriteString("Rules:\n")
	b.WriteString("- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n")
	b.WriteString("- Output a single JSON object with exactly these fields:\n")
	for _, f := range fields {
		b.WriteString("  - " + f + "\n")
	}
	b.WriteString("- Do NOT wrap the response in code fences.\n")
	b.WriteString("- Do NOT use ```json or any Markdown.\n")
	b.WriteString("- Output must begin with \"{\" and end with \"}\".\n")
	return b.String()
}
