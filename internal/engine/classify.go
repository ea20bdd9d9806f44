package engine

import "strings"

// Category is the coarse intent of a question.
type Category string

const (
	CategoryLookup        Category = "lookup"
	CategorySummarization Category = "summarization"
	CategoryExtraction    Category = "extraction"
	CategoryAnalysis      Category = "analysis"
)

type classifyRule struct {
	category Category
	keywords []string
}

// Evaluated in order; the first rule with a matching keyword wins.
var classifyRules = []classifyRule{
	{CategorySummarization, []string{"summarize", "summary", "overview"}},
	{CategoryExtraction, []string{"extract", "table", "figure", "data", "results", "accuracy", "f1", "precision", "recall"}},
	{CategoryAnalysis, []string{"analyze", "compare", "evaluate", "assess"}},
}

// Classify maps a question to a Category by case-insensitive substring match.
func Classify(question string) Category {
	q := strings.ToLower(question)
	for _, rule := range classifyRules {
		if containsAny(q, rule.keywords...) {
			return rule.category
		}
	}
	return CategoryLookup
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
