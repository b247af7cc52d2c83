package insights

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/candidwatch/internal/metrics"
)

func strongReport() metrics.Report {
	return metrics.Report{
		Exploration:       metrics.ConfidenceMetric{Value: 0.6, Confidence: 0.8, SampleSize: 20, Interpretation: "high_exploration"},
		Iteration:         metrics.ConfidenceMetric{Value: 0.5, Confidence: 0.7, SampleSize: 12, Interpretation: "iterative_refinement"},
		Debugging:         metrics.ConfidenceMetric{Value: 0.9, Confidence: 0.8, SampleSize: 6, Interpretation: "strong_recovery"},
		AIReliance:        metrics.ConfidenceMetric{Value: 0.2, Confidence: 0.7, SampleSize: 5, Interpretation: "independent_worker"},
		AICollaboration:   metrics.ConfidenceMetric{Value: 0.7, Confidence: 0.6, SampleSize: 4, Interpretation: "thoughtful_ai_usage"},
		SQLComplexity:     metrics.ConfidenceMetric{Value: 3.0, Confidence: 0.8, SampleSize: 8, Interpretation: "advanced"},
		Independence:      metrics.ConfidenceMetric{Value: 0.8, Confidence: 0.7, SampleSize: 5, Interpretation: "independent"},
		OverallConfidence: 0.76,
		ProblemDifficulty: 1.0,
	}
}

func TestFallback_StrongCandidate(t *testing.T) {
	got := Fallback(strongReport())

	if got.BehavioralProfile != ProfileIndependent {
		t.Errorf("expected %s, got %s", ProfileIndependent, got.BehavioralProfile)
	}
	if got.HireRecommendation != RecStrongYes && got.HireRecommendation != RecYes {
		t.Errorf("expected positive recommendation, got %s", got.HireRecommendation)
	}
	if got.ConfidenceInScore != 0.76 {
		t.Errorf("expected confidence 0.76, got %f", got.ConfidenceInScore)
	}
	if len(got.KeyStrengths) == 0 {
		t.Errorf("expected strengths for a strong report")
	}
	if len(got.Concerns) != 0 {
		t.Errorf("expected no concerns, got %v", got.Concerns)
	}
}

func TestFallback_LowConfidenceDowngradesToMaybe(t *testing.T) {
	report := strongReport()
	report.OverallConfidence = 0.2

	got := Fallback(report)
	if got.HireRecommendation != RecMaybe {
		t.Errorf("expected maybe at low confidence, got %s", got.HireRecommendation)
	}
	if len(got.DataQualityNotes) == 0 {
		t.Errorf("expected a low-confidence data quality note")
	}
}

func TestFallback_DependentProfileAndConcerns(t *testing.T) {
	report := metrics.Report{
		AIReliance:        metrics.ConfidenceMetric{Value: 0.75, Confidence: 0.7, SampleSize: 12, Interpretation: "high_dependency"},
		AICollaboration:   metrics.ConfidenceMetric{Value: 0.3, Confidence: 0.6, SampleSize: 8, Interpretation: "passive_consumption"},
		Exploration:       metrics.ConfidenceMetric{Value: 0.05, Confidence: 0.6, SampleSize: 10, Interpretation: "low_exploration"},
		Debugging:         metrics.ConfidenceMetric{Value: 0.2, Confidence: 0.6, SampleSize: 5, Interpretation: "weak_recovery"},
		OverallConfidence: 0.6,
	}

	got := Fallback(report)
	if got.BehavioralProfile != ProfileDependent {
		t.Errorf("expected %s, got %s", ProfileDependent, got.BehavioralProfile)
	}
	if len(got.Concerns) != 3 {
		t.Errorf("expected 3 concerns, got %d: %v", len(got.Concerns), got.Concerns)
	}
}

func TestFallback_CollaboratorProfile(t *testing.T) {
	report := metrics.Report{
		AIReliance:      metrics.ConfidenceMetric{Value: 0.45, Confidence: 0.6},
		AICollaboration: metrics.ConfidenceMetric{Value: 0.6, Confidence: 0.6},
	}
	if got := Fallback(report).BehavioralProfile; got != ProfileCollaborator {
		t.Errorf("expected %s, got %s", ProfileCollaborator, got)
	}
}

func TestDimensionScores_SQLNormalizedByCap(t *testing.T) {
	report := strongReport()
	dims := dimensionScores(report)

	// 3.0 of the 4.0 cap is 75.
	if dims["sql_complexity"].Score != 75 {
		t.Errorf("expected 75, got %d", dims["sql_complexity"].Score)
	}
	if dims["problem_understanding"].Score != 60 {
		t.Errorf("expected 60, got %d", dims["problem_understanding"].Score)
	}
	if dims["independence"].Confidence != 0.7 {
		t.Errorf("expected confidence carried through, got %f", dims["independence"].Confidence)
	}
}

func TestFallback_LowConfidenceFindingsSuppressed(t *testing.T) {
	report := strongReport()
	// High values but confidence at or below the 0.5 gate.
	report.Exploration.Confidence = 0.4
	report.Iteration.Confidence = 0.3
	report.Debugging.Confidence = 0.5
	report.SQLComplexity.Value = 1.0

	got := Fallback(report)
	if len(got.KeyStrengths) != 0 {
		t.Errorf("expected no strengths below the confidence gate, got %v", got.KeyStrengths)
	}
}

func TestFallback_NarrativeMentionsInterpretations(t *testing.T) {
	got := Fallback(strongReport())
	for _, want := range []string{"high_exploration", "advanced", "strong_recovery"} {
		if !strings.Contains(got.DetailedNarrative, want) {
			t.Errorf("narrative missing %q", want)
		}
	}
}
