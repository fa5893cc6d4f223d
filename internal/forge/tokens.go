package forge

import (
	"strings"
	"unicode/utf8"
)

// EstimateTokens returns approximate token count (~4 chars per token)
func EstimateTokens(text string) int {
	return (utf8.RuneCountInString(text) + 3) / 4
}

// ContextLimit returns the context window size for a model id
func ContextLimit(model string) int {
	model = strings.ToLower(model)

	switch {
	// Claude models
	case strings.Contains(model, "claude"):
		return 200000

	// OpenAI
	case strings.Contains(model, "gpt-4.1"):
		return 1000000
	case strings.Contains(model, "gpt-5"):
		return 400000
	case strings.Contains(model, "gpt-4"), strings.Contains(model, "o3"):
		return 128000

	// Gemini
	case strings.Contains(model, "gemma"):
		return 128000
	case strings.Contains(model, "gemini-1.5"):
		return 2000000
	case strings.Contains(model, "gemini"):
		return 1000000

	// Llama variants
	case strings.Contains(model, "llama-4-scout"):
		return 10000000
	case strings.Contains(model, "llama"):
		return 128000

	case strings.Contains(model, "grok-4"):
		return 256000
	case strings.Contains(model, "grok"):
		return 128000

	case strings.Contains(model, "mistral"),
		strings.Contains(model, "qwen"),
		strings.Contains(model, "deepseek"),
		strings.Contains(model, "kimi"):
		return 128000

	case strings.Contains(model, "nova"):
		return 300000
	}

	// Default fallback
	return 8000
}
