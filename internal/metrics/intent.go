package metrics

import "strings"

// Intent is the analyzer-side classification of an AI prompt.
type Intent string

const (
	IntentConceptual  Intent = "conceptual"
	IntentHint        Intent = "hint"
	IntentDebug       Intent = "debug"
	IntentCodeGen     Intent = "code_gen"
	IntentValidation  Intent = "validation"
	IntentExplanation Intent = "explanation"
)

// allIntents lists every label, used to zero-initialize breakdowns.
var allIntents = []Intent{
	IntentConceptual, IntentHint, IntentDebug,
	IntentCodeGen, IntentValidation, IntentExplanation,
}

// intentRules are evaluated in order; the first category with any matching
// keyword wins. The keyword lists and priority order are part of the
// classification contract; reordering changes outcomes.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentHint, []string{"hint", "clue", "guide", "approach"}},
	{IntentDebug, []string{"error", "bug", "wrong", "fix", "debug"}},
	{IntentExplanation, []string{"explain", "what is", "how does", "why"}},
	{IntentCodeGen, []string{"write", "code", "query", "generate", "create"}},
	{IntentValidation, []string{"correct", "right", "check", "validate", "verify"}},
}

// ClassifyIntent maps a free-text prompt to exactly one intent label.
// Prompts matching no rule are conceptual help.
func ClassifyIntent(prompt string) Intent {
	lower := strings.ToLower(prompt)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return IntentConceptual
}

// IntentBreakdown classifies every interaction's prompt and returns a
// frequency count over all six labels, zero-initialized.
func (c *Calculator) IntentBreakdown() map[string]int {
	breakdown := make(map[string]int, len(allIntents))
	for _, intent := range allIntents {
		breakdown[string(intent)] = 0
	}
	for _, ia := range c.interactions {
		breakdown[string(ClassifyIntent(ia.UserPrompt))]++
	}
	return breakdown
}
