package metrics

import (
	"math"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// relianceWeights score each intent by how much it substitutes for the
// candidate's own work. Code generation is full dependency; validation and
// hints are healthy usage.
var relianceWeights = map[Intent]float64{
	IntentCodeGen:     1.0,
	IntentDebug:       0.7,
	IntentConceptual:  0.5,
	IntentExplanation: 0.4,
	IntentHint:        0.3,
	IntentValidation:  0.2,
}

// AIReliance scores dependency on the assistant, weighted by the classified
// intent of each prompt rather than raw counts.
func (c *Calculator) AIReliance() ConfidenceMetric {
	total := len(c.interactions)
	if total == 0 {
		return ConfidenceMetric{0.0, 0.0, 0, "no_ai_usage"}
	}

	var weight float64
	for _, ia := range c.interactions {
		weight += relianceWeights[ClassifyIntent(ia.UserPrompt)]
	}
	score := weight / float64(total)

	var interp string
	switch {
	case score < aiIndependent:
		interp = "strategic_ai_usage"
	case score < aiDependent:
		interp = "moderate_ai_reliance"
	default:
		interp = "high_ai_dependency"
	}

	return ConfidenceMetric{
		Value:          score,
		Confidence:     Confidence(total, 10),
		SampleSize:     total,
		Interpretation: interp,
	}
}

// AICollaboration scores how thoughtfully AI output was used: the rate of
// modifying AI code, penalized by half the rate of copying it verbatim.
// Capped at 1.0.
func (c *Calculator) AICollaboration() ConfidenceMetric {
	used := c.counts[session.EventAIResponseUsed]
	if used == 0 {
		return ConfidenceMetric{0.0, 0.0, 0, "no_ai_code_usage"}
	}

	modificationRate := float64(c.counts[session.EventAICodeModified]) / float64(used)
	copyPenalty := float64(c.counts[session.EventAICodeCopied]) / float64(used) * 0.5

	score := math.Max(0, modificationRate-copyPenalty)

	var interp string
	switch {
	case score > 0.6:
		interp = "thoughtful_ai_collaboration"
	case score > 0.3:
		interp = "some_modification"
	default:
		interp = "passive_ai_copying"
	}

	return ConfidenceMetric{
		Value:          math.Min(score, 1.0),
		Confidence:     Confidence(used, 8),
		SampleSize:     used,
		Interpretation: interp,
	}
}

// Independence is always derived as the inverse of AI reliance; it inherits
// reliance's confidence and sample size and is never computed on its own.
func Independence(reliance ConfidenceMetric) ConfidenceMetric {
	var interp string
	switch {
	case reliance.Value < 0.4:
		interp = "independent"
	case reliance.Value < 0.7:
		interp = "collaborative"
	default:
		interp = "dependent"
	}

	return ConfidenceMetric{
		Value:          1 - reliance.Value,
		Confidence:     reliance.Confidence,
		SampleSize:     reliance.SampleSize,
		Interpretation: interp,
	}
}
