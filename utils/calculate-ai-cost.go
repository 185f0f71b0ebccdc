package utils

import "fmt"

func CalculateAICost(tokensUsed int) map[string]any {
	// Pricing: Input $0.40, Output $1.60 (per million tokens) 4.1 mini
	// Usage reporting does not split input/output, both sides use the total

	inputCost := float64(tokensUsed) * 0.40 / 1000000.0
	outputCost := float64(tokensUsed) * 1.60 / 1000000.0
	totalCost := inputCost + outputCost

	return map[string]any{
		"inputTokens":  tokensUsed,
		"outputTokens": tokensUsed,
		"inputCost":    fmt.Sprintf("$%.4f", inputCost),
		"outputCost":   fmt.Sprintf("$%.4f", outputCost),
		"totalCost":    fmt.Sprintf("$%.4f", totalCost),
	}
}
