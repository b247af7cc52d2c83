// Package assist provides helpers for the candidate-facing AI assistant:
// prompt construction, intent labeling, conversation history, and interview
// question generation.
package assist

import "strings"

// Assistant-side intent labels, recorded on interactions at chat time.
// This vocabulary is distinct from the analyzer's intent labels and must not
// be unified with it.
const (
	LabelConceptHelp    = "CONCEPT_HELP"
	LabelDebugHelp      = "DEBUG_HELP"
	LabelApproachHelp   = "APPROACH_HELP"
	LabelValidation     = "VALIDATION"
	LabelDirectSolution = "DIRECT_SOLUTION"
	LabelExplanation    = "EXPLANATION"
)

// labelRules are evaluated in order; the first label with any matching
// keyword wins. Order is part of the contract.
var labelRules = []struct {
	label    string
	keywords []string
}{
	{LabelConceptHelp, []string{"what is", "explain", "define", "how does", "concept"}},
	{LabelDebugHelp, []string{"error", "bug", "debug", "fix", "wrong", "not working"}},
	{LabelApproachHelp, []string{"approach", "strategy", "how to", "method", "technique"}},
	{LabelValidation, []string{"check", "validate", "correct", "verify", "review"}},
	{LabelDirectSolution, []string{"solve", "solution", "answer", "complete", "finish"}},
}

// ClassifyIntent labels a candidate prompt for storage alongside the
// interaction. Prompts matching no rule default to EXPLANATION.
func ClassifyIntent(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, rule := range labelRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return LabelExplanation
}
