// Package metrics computes confidence-weighted behavioral metrics from an
// interview session's event and AI-interaction streams.
package metrics

import (
	"time"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// Calibrated interpretation thresholds (from baseline candidate data).
const (
	explorationHigh = 0.4
	explorationLow  = 0.15
	iterationHigh   = 0.35
	iterationLow    = 0.1
	debugStrong     = 0.65
	debugWeak       = 0.35
	aiIndependent   = 0.25
	aiDependent     = 0.6
)

// ConfidenceMetric is a score paired with a reliability estimate derived from
// how many observations informed it. Immutable once returned.
type ConfidenceMetric struct {
	Value          float64 `json:"value"`
	Confidence     float64 `json:"confidence"` // 0.0 to 1.0
	SampleSize     int     `json:"sample_size"`
	Interpretation string  `json:"interpretation"`
}

// SequencePattern is a detected multi-event behavioral motif.
type SequencePattern struct {
	PatternType  string    `json:"pattern_type"`
	Events       []string  `json:"events"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	QualityScore float64   `json:"quality_score"`
}

// SequenceSummary is the report-facing shape of a detected pattern.
type SequenceSummary struct {
	Type    string   `json:"type"`
	Quality float64  `json:"quality"`
	Events  []string `json:"events"`
}

// Report is the composite metrics report for one session. Field names and
// nesting are a compatibility surface consumed by the recruiter-insight
// prompt template; do not change the shape.
type Report struct {
	Exploration       ConfidenceMetric  `json:"exploration"`
	Iteration         ConfidenceMetric  `json:"iteration"`
	Debugging         ConfidenceMetric  `json:"debugging"`
	AIReliance        ConfidenceMetric  `json:"ai_reliance"`
	AICollaboration   ConfidenceMetric  `json:"ai_collaboration"`
	SQLComplexity     ConfidenceMetric  `json:"sql_complexity"`
	Independence      ConfidenceMetric  `json:"independence"`
	ThinkingSequences []SequenceSummary `json:"thinking_sequences"`
	AIIntentBreakdown map[string]int    `json:"ai_intent_breakdown"`
	ProblemDifficulty float64           `json:"problem_difficulty"`
	OverallConfidence float64           `json:"overall_confidence"`
}

// Calculator computes all metrics for a single session. It holds the
// timestamp-sorted event stream and allocates only local state, so concurrent
// Calculators over different sessions are safe.
type Calculator struct {
	events       []session.Event
	interactions []session.AIInteraction
	difficulty   float64
	counts       map[string]int
}

// New builds a Calculator. Events may arrive unsorted; they are ordered by
// timestamp (missing timestamps sort first, ties broken by sequence number).
// difficulty is the problem difficulty divisor (0.5 easy, 1.0 medium,
// 1.5 hard); non-positive values fall back to 1.0.
func New(events []session.Event, interactions []session.AIInteraction, difficulty float64) *Calculator {
	if difficulty <= 0 {
		difficulty = 1.0
	}
	sorted := session.SortEvents(events)
	return &Calculator{
		events:       sorted,
		interactions: interactions,
		difficulty:   difficulty,
		counts:       session.CountByType(sorted),
	}
}
