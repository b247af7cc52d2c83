// Package insights turns computed behavioral metrics into recruiter-facing
// analysis, either via the Claude API or a deterministic metrics-based
// fallback.
package insights

// Finding is a single confidence-cited strength or concern.
type Finding struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// DimensionScore is a 0-100 score with its confidence.
type DimensionScore struct {
	Score      int     `json:"score"`
	Confidence float64 `json:"confidence"`
}

// Insights is the full analysis summary for a session.
type Insights struct {
	OverallScore             int                       `json:"overall_score"`
	ConfidenceInScore        float64                   `json:"confidence_in_score"`
	HireRecommendation       string                    `json:"hire_recommendation"`
	RecommendationConfidence float64                   `json:"recommendation_confidence"`
	BehavioralProfile        string                    `json:"behavioral_profile"`
	KeyStrengths             []Finding                 `json:"key_strengths"`
	Concerns                 []Finding                 `json:"concerns"`
	DimensionScores          map[string]DimensionScore `json:"dimension_scores"`
	DetailedNarrative        string                    `json:"detailed_narrative"`
	DataQualityNotes         []string                  `json:"data_quality_notes"`
	GeneratedAt              string                    `json:"generated_at"`
	Model                    string                    `json:"ai_model"`
}

// Behavioral profiles.
const (
	ProfileIndependent  = "Independent Thinker"
	ProfileCollaborator = "Healthy AI Collaborator"
	ProfileDependent    = "AI Dependent"
)

// Hire recommendations.
const (
	RecStrongYes = "strong_yes"
	RecYes       = "yes"
	RecMaybe     = "maybe"
	RecNo        = "no"
	RecStrongNo  = "strong_no"
)
