package insights

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blackwell-systems/candidwatch/internal/metrics"
	"github.com/blackwell-systems/candidwatch/internal/session"
)

// analystSystemPrompt instructs the model to treat confidence as a first
// class citizen: every claim carries its confidence, and low-confidence
// metrics get hedged or omitted.
const analystSystemPrompt = `You are an expert technical recruiter analyzing an AI-assisted SQL interview.
You analyze confidence-weighted behavioral metrics from the candidate's session.

Core rules:
1. Every insight must cite its CONFIDENCE LEVEL - low confidence means uncertain
2. Base all claims on the provided metrics and data, never on speculation
3. Never hallucinate - if confidence is low, state uncertainty
4. Use plain language (no event names, no formulas)

Confidence phrasing:
- confidence > 0.7: "We observed..."
- confidence 0.4-0.7: "Evidence suggests..."
- confidence < 0.4: "Limited data indicates..." or omit

Never make strong claims on low-confidence metrics.

Structure your analysis as:
- Overall profile with confidence caveats
- Problem-solving approach (exploration, iteration - cite value, confidence, interpretation)
- Technical capability (SQL complexity, debugging)
- AI usage (reliance score WITH confidence, collaboration quality, intent breakdown)
- STRENGTHS (only include if confidence > 0.5, cite metric + confidence)
- CONCERNS (only include if confidence > 0.5, cite metric + confidence)
- Data quality notes (what additional data would improve confidence)

Also evaluate interview responses for coherence, depth of technical
understanding, ability to explain their SQL decisions, and communication
clarity. Flag incoherent answers, copy-pasted code without explanation, or
inability to explain their own queries.

Return the narrative analysis followed by a JSON summary:
{
  "overall_score": <0-100>,
  "confidence_in_score": <0.0-1.0>,
  "hire_recommendation": "<strong_yes|yes|maybe|no|strong_no>",
  "recommendation_confidence": <0.0-1.0>,
  "behavioral_profile": "<Independent Thinker|Healthy AI Collaborator|AI Dependent>",
  "key_strengths": [{"text": "...", "confidence": 0.0, "evidence": "..."}],
  "concerns": [{"text": "...", "confidence": 0.0, "evidence": "..."}],
  "dimension_scores": {
    "problem_understanding": {"score": 0, "confidence": 0.0},
    "analytical_thinking": {"score": 0, "confidence": 0.0},
    "debugging_ability": {"score": 0, "confidence": 0.0},
    "ai_collaboration_quality": {"score": 0, "confidence": 0.0},
    "sql_complexity": {"score": 0, "confidence": 0.0},
    "independence": {"score": 0, "confidence": 0.0}
  },
  "detailed_narrative": "...",
  "data_quality_notes": ["..."]
}`

// ConfidencePhrase returns the hedging phrase for a confidence level.
func ConfidencePhrase(confidence float64) string {
	switch {
	case confidence > 0.7:
		return "We observed"
	case confidence >= 0.4:
		return "Evidence suggests"
	default:
		return "Limited data indicates"
	}
}

// BuildAnalysisPrompt assembles the user message for insight generation
// from the session log and its computed metrics.
func BuildAnalysisPrompt(log *session.Log, report metrics.Report) string {
	var sb strings.Builder

	sb.WriteString("Analyze this interview session using confidence-weighted metrics:\n\n")

	sb.WriteString("=== SESSION CONTEXT ===\n")
	fmt.Fprintf(&sb, "Candidate: %s\n", log.Session.CandidateName)
	if !log.Session.StartTime.IsZero() && !log.Session.EndTime.IsZero() {
		fmt.Fprintf(&sb, "Duration: %.0f minutes\n", log.Session.EndTime.Sub(log.Session.StartTime).Minutes())
	}
	fmt.Fprintf(&sb, "Problem Difficulty: %.1fx (1.0 = medium)\n\n", report.ProblemDifficulty)

	sb.WriteString("=== BEHAVIORAL METRICS ===\n")
	writeJSON(&sb, report)

	queries := session.Queries(log.Events)
	sb.WriteString("\n=== SQL ACTIVITY ===\n")
	fmt.Fprintf(&sb, "Total Queries: %d\n", len(queries))
	if len(queries) > 3 {
		queries = queries[:3]
	}
	sb.WriteString("Query Examples (first 3):\n")
	writeJSON(&sb, queries)

	sb.WriteString("\n=== AI INTERACTION ANALYSIS ===\n")
	fmt.Fprintf(&sb, "Total Interactions: %d\n", len(log.Interactions))
	sb.WriteString("Intent Classification:\n")
	writeJSON(&sb, report.AIIntentBreakdown)

	sb.WriteString("\n=== THINKING SEQUENCES DETECTED ===\n")
	writeJSON(&sb, report.ThinkingSequences)

	sb.WriteString("\n=== OVERALL CONFIDENCE ===\n")
	fmt.Fprintf(&sb, "Analysis Confidence: %.2f / 1.0\n", report.OverallConfidence)
	sb.WriteString("(Based on sample sizes across all metrics)\n")

	qa := interviewExchanges(log.Events)
	sb.WriteString("\n=== INTERVIEW ENGAGEMENT ===\n")
	fmt.Fprintf(&sb, "Q&A Exchanges: %d\n", len(qa))
	if len(qa) > 0 {
		if len(qa) > 10 {
			qa = qa[:10]
		}
		sb.WriteString("Interview Responses (evaluate quality):\n")
		writeJSON(&sb, qa)
	}

	sb.WriteString("\nGenerate comprehensive recruiter-friendly analysis with confidence-weighted insights.")

	return sb.String()
}

// qaExchange pairs an interview question with the candidate's answer.
type qaExchange struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// interviewExchanges pulls question/answer pairs from interview-phase events.
func interviewExchanges(events []session.Event) []qaExchange {
	var out []qaExchange
	for _, e := range events {
		switch e.Type {
		case session.EventInterviewQuestion:
			out = append(out, qaExchange{Question: e.Meta.Question})
		case session.EventInterviewAnswer:
			if n := len(out); n > 0 && out[n-1].Answer == "" {
				out[n-1].Answer = e.Meta.Answer
			} else {
				out = append(out, qaExchange{Answer: e.Meta.Answer})
			}
		}
	}
	return out
}

func writeJSON(sb *strings.Builder, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		sb.WriteString("(unavailable)\n")
		return
	}
	sb.Write(data)
	sb.WriteString("\n")
}
