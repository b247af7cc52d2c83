package metrics

import (
	"fmt"
	"math"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// Feature is an evidence-backed recruiter insight dimension. Unlike the
// confidence-weighted calculators, features use fixed confidences and carry
// human-readable evidence strings for the report.
type Feature struct {
	Name       string   `json:"name"`
	Value      float64  `json:"value"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

// Feature dimension names.
const (
	FeatureProblemUnderstanding = "Problem Understanding"
	FeatureAnalyticalThinking   = "Analytical Thinking"
	FeatureDebuggingAbility     = "Debugging Ability"
	FeatureIndependence         = "Independence vs AI Reliance"
	FeatureAICollaboration      = "Quality of AI Collaboration"
	FeatureIterativeThinking    = "Iterative Thinking"
)

// Features computes all evidence-backed dimensions for the session.
func (c *Calculator) Features() []Feature {
	return []Feature{
		c.problemUnderstanding(),
		c.analyticalThinking(),
		c.debuggingAbility(),
		c.independenceFeature(),
		c.collaborationFeature(),
		c.iterativeThinking(),
	}
}

// countIntentLabel tallies interactions carrying the given assistant-side
// intent label (recorded at chat time, e.g. CONCEPT_HELP).
func (c *Calculator) countIntentLabel(label string) int {
	n := 0
	for _, ia := range c.interactions {
		if ia.IntentLabel == label {
			n++
		}
	}
	return n
}

func (c *Calculator) problemUnderstanding() Feature {
	var evidence []string
	score := 0.0

	// Exploration within the first ten events signals reading the problem
	// before writing queries.
	earlyExplorations := 0
	for i, e := range c.events {
		if i >= 10 {
			break
		}
		if exploreTypes[e.Type] {
			earlyExplorations++
		}
	}
	if earlyExplorations > 0 {
		score += 0.3
		evidence = append(evidence, fmt.Sprintf("Explored data early (%d views)", earlyExplorations))
	}

	if c.countIntentLabel("CONCEPT_HELP") <= 2 {
		score += 0.3
		evidence = append(evidence, "Minimal concept clarification needed")
	}

	if c.counts[session.EventQueryModified] > 5 {
		score += 0.4
		evidence = append(evidence, "Showed structured, incremental query development")
	}

	return Feature{FeatureProblemUnderstanding, math.Min(score, 1.0), 0.8, evidence}
}

func (c *Calculator) analyticalThinking() Feature {
	var evidence []string
	score := 0.0

	explorations := 0
	for _, e := range c.events {
		if exploreTypes[e.Type] {
			explorations++
		}
	}
	if explorations >= 3 {
		score += 0.4
		evidence = append(evidence, fmt.Sprintf("Systematic data exploration (%d views)", explorations))
	}

	if runs := c.counts[session.EventSQLRun]; runs >= 2 {
		score += 0.3
		evidence = append(evidence, fmt.Sprintf("Iterative testing approach (%d runs)", runs))
	}

	if validations := c.countIntentLabel("VALIDATION"); validations > 0 {
		score += 0.3
		evidence = append(evidence, fmt.Sprintf("Sought validation (%d times)", validations))
	}

	return Feature{FeatureAnalyticalThinking, math.Min(score, 1.0), 0.7, evidence}
}

func (c *Calculator) debuggingAbility() Feature {
	var evidence []string
	score := 0.0

	errors := c.counts[session.EventErrorOccurred]
	resolutions := c.counts[session.EventErrorResolved]
	resolutionRate := float64(resolutions) / math.Max(float64(errors), 1)

	if resolutionRate >= 0.7 {
		score += 0.4
		evidence = append(evidence, fmt.Sprintf("High error resolution rate (%.0f%%)", resolutionRate*100))
	}

	if float64(c.countIntentLabel("DEBUG_HELP")) <= float64(errors)*0.5 {
		score += 0.3
		evidence = append(evidence, "Showed independent debugging effort")
	}

	// Query edits within five positions after an error indicate systematic
	// reaction rather than flailing.
	editsAfterErrors := 0
	for i, e := range c.events {
		if e.Type != session.EventErrorOccurred {
			continue
		}
		limit := i + 1 + 5
		if limit > len(c.events) {
			limit = len(c.events)
		}
		for j := i + 1; j < limit; j++ {
			if c.events[j].Type == session.EventQueryModified {
				editsAfterErrors++
			}
		}
	}
	if editsAfterErrors > 0 {
		score += 0.3
		evidence = append(evidence, "Made systematic query changes after errors")
	}

	return Feature{FeatureDebuggingAbility, math.Min(score, 1.0), 0.9, evidence}
}

func (c *Calculator) independenceFeature() Feature {
	var evidence []string
	score := 1.0

	totalRequests := len(c.interactions)
	requestRatio := float64(totalRequests) / math.Max(float64(len(c.events)), 1)

	if requestRatio > 0.3 {
		score -= 0.4
		evidence = append(evidence, fmt.Sprintf("High AI request frequency (%.0f%%)", requestRatio*100))
	}

	if solutions := c.countIntentLabel("DIRECT_SOLUTION"); solutions > 2 {
		score -= 0.3
		evidence = append(evidence, fmt.Sprintf("Frequent direct solution requests (%d)", solutions))
	}

	usedResponses := 0
	for _, ia := range c.interactions {
		if ia.ResponseUsed {
			usedResponses++
		}
	}
	usageRate := float64(usedResponses) / math.Max(float64(totalRequests), 1)
	if usageRate < 0.5 && totalRequests > 0 {
		score -= 0.2
		evidence = append(evidence, fmt.Sprintf("Low AI response utilization (%.0f%%)", usageRate*100))
	}

	if requestRatio >= 0.1 && requestRatio <= 0.2 && usageRate > 0.7 {
		score += 0.2
		evidence = append(evidence, "Strategic and effective AI collaboration")
	}

	return Feature{FeatureIndependence, math.Max(score, 0.0), 0.8, evidence}
}

func (c *Calculator) collaborationFeature() Feature {
	if len(c.interactions) == 0 {
		return Feature{FeatureAICollaboration, 0.0, 1.0, []string{"No AI interactions"}}
	}

	var evidence []string
	score := 0.0
	total := len(c.interactions)

	approachHelp := c.countIntentLabel("APPROACH_HELP")
	constructive := approachHelp + c.countIntentLabel("VALIDATION")
	constructiveRatio := float64(constructive) / float64(total)
	if constructiveRatio >= 0.5 {
		score += 0.4
		evidence = append(evidence, fmt.Sprintf("High ratio of constructive requests (%.0f%%)", constructiveRatio*100))
	}

	detailed := 0
	for _, ia := range c.interactions {
		if len(ia.UserPrompt) > 50 {
			detailed++
		}
	}
	detailRatio := float64(detailed) / float64(total)
	if detailRatio >= 0.6 {
		score += 0.3
		evidence = append(evidence, fmt.Sprintf("Provided detailed context in prompts (%.0f%%)", detailRatio*100))
	}

	if approachHelp > 0 {
		score += 0.3
		evidence = append(evidence, fmt.Sprintf("Sought strategic guidance (%d times)", approachHelp))
	}

	return Feature{FeatureAICollaboration, math.Min(score, 1.0), 0.7, evidence}
}

func (c *Calculator) iterativeThinking() Feature {
	var evidence []string
	score := 0.0

	runs := c.counts[session.EventSQLRun]
	evaluations := c.counts[session.EventValidationAttempt]
	cycles := runs
	if evaluations < cycles {
		cycles = evaluations
	}
	if cycles >= 2 {
		score += 0.5
		evidence = append(evidence, fmt.Sprintf("Multiple iteration cycles (%d)", cycles))
	}

	if edits := c.counts[session.EventQueryModified]; edits > 3 {
		score += 0.3
		evidence = append(evidence, fmt.Sprintf("Incremental query development (%d edits)", edits))
	}

	if runs >= 3 {
		score += 0.2
		evidence = append(evidence, fmt.Sprintf("Frequent testing approach (%d runs)", runs))
	}

	return Feature{FeatureIterativeThinking, math.Min(score, 1.0), 0.8, evidence}
}
