package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/candidwatch/internal/metrics"
)

// Fallback generates metrics-based insights without an AI model. Every
// finding cites its confidence, strengths and concerns require confidence
// above 0.5, and low overall confidence downgrades the recommendation to
// "maybe".
func Fallback(report metrics.Report) Insights {
	dims := dimensionScores(report)

	// Overall score is the confidence-weighted mean of dimension scores.
	var totalScore, totalWeight float64
	for _, d := range dims {
		totalScore += float64(d.Score) * d.Confidence
		totalWeight += d.Confidence
	}
	overallScore := 50
	if totalWeight > 0 {
		overallScore = int(totalScore / totalWeight)
	}
	overallConfidence := report.OverallConfidence

	profile := behavioralProfile(report)
	strengths := collectStrengths(report)
	concerns := collectConcerns(report)
	notes := dataQualityNotes(report)

	recommendation, recConfidence := recommend(overallScore, overallConfidence)

	return Insights{
		OverallScore:             overallScore,
		ConfidenceInScore:        overallConfidence,
		HireRecommendation:       recommendation,
		RecommendationConfidence: recConfidence,
		BehavioralProfile:        profile,
		KeyStrengths:             strengths,
		Concerns:                 concerns,
		DimensionScores:          dims,
		DetailedNarrative:        narrative(report, profile),
		DataQualityNotes:         notes,
		GeneratedAt:              time.Now().UTC().Format(time.RFC3339),
		Model:                    "Fallback (Metrics Only)",
	}
}

// dimensionScores maps the calculator outputs onto 0-100 hiring dimensions.
// SQL complexity is normalized by its cap; the rest are already 0-1.
func dimensionScores(report metrics.Report) map[string]DimensionScore {
	toScore := func(m metrics.ConfidenceMetric, scale float64) DimensionScore {
		score := int(m.Value * 100 / scale)
		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}
		return DimensionScore{Score: score, Confidence: m.Confidence}
	}

	return map[string]DimensionScore{
		"problem_understanding":    toScore(report.Exploration, 1.0),
		"analytical_thinking":      toScore(report.Iteration, 1.0),
		"debugging_ability":        toScore(report.Debugging, 1.0),
		"ai_collaboration_quality": toScore(report.AICollaboration, 1.0),
		"sql_complexity":           toScore(report.SQLComplexity, 4.0),
		"independence":             toScore(report.Independence, 1.0),
	}
}

func behavioralProfile(report metrics.Report) string {
	reliance := report.AIReliance.Value
	collab := report.AICollaboration.Value
	switch {
	case reliance < 0.3:
		return ProfileIndependent
	case reliance < 0.6 && collab > 0.4:
		return ProfileCollaborator
	default:
		return ProfileDependent
	}
}

func collectStrengths(report metrics.Report) []Finding {
	var strengths []Finding

	if report.Exploration.Confidence > 0.5 && report.Exploration.Value > 0.4 {
		strengths = append(strengths, Finding{
			Text:       fmt.Sprintf("Strong data exploration approach (%s)", report.Exploration.Interpretation),
			Confidence: report.Exploration.Confidence,
			Evidence:   fmt.Sprintf("Exploration: %.2f, %d observations", report.Exploration.Value, report.Exploration.SampleSize),
		})
	}
	if report.Iteration.Confidence > 0.5 && report.Iteration.Value > 0.35 {
		strengths = append(strengths, Finding{
			Text:       fmt.Sprintf("Iterative problem solver (%s)", report.Iteration.Interpretation),
			Confidence: report.Iteration.Confidence,
			Evidence:   fmt.Sprintf("Iteration: %.2f, %d meaningful iterations", report.Iteration.Value, report.Iteration.SampleSize),
		})
	}
	if report.Debugging.Confidence > 0.5 && report.Debugging.Value > 0.65 {
		strengths = append(strengths, Finding{
			Text:       fmt.Sprintf("Effective debugging (%s)", report.Debugging.Interpretation),
			Confidence: report.Debugging.Confidence,
			Evidence:   fmt.Sprintf("Debugging: %.2f, %d error encounters", report.Debugging.Value, report.Debugging.SampleSize),
		})
	}
	if report.SQLComplexity.Value > 2.5 {
		strengths = append(strengths, Finding{
			Text:       fmt.Sprintf("Advanced SQL capability (%s)", report.SQLComplexity.Interpretation),
			Confidence: report.SQLComplexity.Confidence,
			Evidence:   fmt.Sprintf("SQL complexity: %.2f, %d queries analyzed", report.SQLComplexity.Value, report.SQLComplexity.SampleSize),
		})
	}

	return strengths
}

func collectConcerns(report metrics.Report) []Finding {
	var concerns []Finding

	if report.AIReliance.Confidence > 0.5 && report.AIReliance.Value > 0.6 {
		concerns = append(concerns, Finding{
			Text:       fmt.Sprintf("High AI dependency (%s)", report.AIReliance.Interpretation),
			Confidence: report.AIReliance.Confidence,
			Evidence:   fmt.Sprintf("AI reliance: %.2f, %d AI interactions", report.AIReliance.Value, report.AIReliance.SampleSize),
		})
	}
	if report.Exploration.Confidence > 0.5 && report.Exploration.Value < 0.15 {
		concerns = append(concerns, Finding{
			Text:       fmt.Sprintf("Limited data exploration (%s)", report.Exploration.Interpretation),
			Confidence: report.Exploration.Confidence,
			Evidence:   fmt.Sprintf("Exploration: %.2f", report.Exploration.Value),
		})
	}
	if report.Debugging.Confidence > 0.5 && report.Debugging.Value < 0.35 {
		concerns = append(concerns, Finding{
			Text:       fmt.Sprintf("Struggles with debugging (%s)", report.Debugging.Interpretation),
			Confidence: report.Debugging.Confidence,
			Evidence:   fmt.Sprintf("Debugging: %.2f", report.Debugging.Value),
		})
	}

	return concerns
}

func dataQualityNotes(report metrics.Report) []string {
	var notes []string
	if report.OverallConfidence < 0.4 {
		notes = append(notes, fmt.Sprintf(
			"Overall analysis confidence is low (%.2f) due to limited sample size", report.OverallConfidence))
	}
	for name, m := range map[string]metrics.ConfidenceMetric{
		"exploration":      report.Exploration,
		"iteration":        report.Iteration,
		"debugging":        report.Debugging,
		"ai_reliance":      report.AIReliance,
		"ai_collaboration": report.AICollaboration,
		"sql_complexity":   report.SQLComplexity,
	} {
		if m.Confidence < 0.3 {
			notes = append(notes, fmt.Sprintf(
				"%s: low confidence (%.2f) from small sample (%d observations)",
				name, m.Confidence, m.SampleSize))
		}
	}
	return notes
}

// recommend maps the overall score to a hire recommendation, gated on
// confidence. Any definitive call with overall confidence below 0.4 is
// downgraded to "maybe".
func recommend(score int, confidence float64) (string, float64) {
	var rec string
	recConfidence := confidence
	switch {
	case score >= 80 && confidence > 0.6:
		rec = RecStrongYes
	case score >= 70 && confidence > 0.5:
		rec = RecYes
	case score >= 50:
		rec = RecMaybe
		recConfidence = confidence * 0.8
	case score >= 30:
		rec = RecNo
	default:
		rec = RecStrongNo
	}

	if confidence < 0.4 && rec != RecMaybe {
		rec = RecMaybe
		recConfidence = confidence
	}
	return rec, recConfidence
}

func narrative(report metrics.Report, profile string) string {
	var sb strings.Builder

	sb.WriteString("**Metrics-Based Analysis (AI unavailable)**\n\n")
	sb.WriteString("**Candidate Summary:**\n")
	fmt.Fprintf(&sb, "Behavioral Profile: %s\n", profile)
	fmt.Fprintf(&sb, "Overall Confidence: %.2f / 1.0\n\n", report.OverallConfidence)

	sb.WriteString("**Problem-Solving Approach:**\n")
	fmt.Fprintf(&sb, "- Exploration: %s (score: %.2f, confidence: %.2f)\n",
		report.Exploration.Interpretation, report.Exploration.Value, report.Exploration.Confidence)
	fmt.Fprintf(&sb, "- Iteration: %s (score: %.2f, confidence: %.2f)\n\n",
		report.Iteration.Interpretation, report.Iteration.Value, report.Iteration.Confidence)

	sb.WriteString("**Technical Capability:**\n")
	fmt.Fprintf(&sb, "- SQL Complexity: %s (score: %.2f, confidence: %.2f)\n",
		report.SQLComplexity.Interpretation, report.SQLComplexity.Value, report.SQLComplexity.Confidence)
	fmt.Fprintf(&sb, "- Debugging: %s (score: %.2f, confidence: %.2f)\n\n",
		report.Debugging.Interpretation, report.Debugging.Value, report.Debugging.Confidence)

	sb.WriteString("**AI Usage:**\n")
	fmt.Fprintf(&sb, "- Reliance: %.2f (%s)\n", report.AIReliance.Value, report.AIReliance.Interpretation)
	fmt.Fprintf(&sb, "- Collaboration Quality: %.2f (%s)\n", report.AICollaboration.Value, report.AICollaboration.Interpretation)

	return sb.String()
}
