package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/candidwatch/internal/metrics"
	"github.com/blackwell-systems/candidwatch/internal/session"
)

func TestConfidencePhrase(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.9, "We observed"},
		{0.71, "We observed"},
		{0.7, "Evidence suggests"},
		{0.4, "Evidence suggests"},
		{0.39, "Limited data indicates"},
		{0.0, "Limited data indicates"},
	}
	for _, tc := range tests {
		if got := ConfidencePhrase(tc.confidence); got != tc.want {
			t.Errorf("ConfidencePhrase(%f) = %q, want %q", tc.confidence, got, tc.want)
		}
	}
}

func TestBuildAnalysisPrompt_SessionContext(t *testing.T) {
	start := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
	log := &session.Log{
		Session: session.Session{
			SessionID:     "sess-1",
			CandidateName: "Dana",
			StartTime:     start,
			EndTime:       start.Add(45 * time.Minute),
		},
		Events: []session.Event{
			{Type: session.EventSQLRun, Timestamp: start, Meta: session.Meta{Query: "SELECT * FROM users"}},
			{Type: session.EventInterviewQuestion, Timestamp: start.Add(40 * time.Minute),
				Meta: session.Meta{Question: "What was your approach?"}},
			{Type: session.EventInterviewAnswer, Timestamp: start.Add(41 * time.Minute),
				Meta: session.Meta{Answer: "I explored the schema first."}},
		},
		Interactions: []session.AIInteraction{
			{UserPrompt: "what is a join", AIResponse: "..."},
		},
	}
	report := strongReport()

	prompt := BuildAnalysisPrompt(log, report)

	for _, want := range []string{
		"Candidate: Dana",
		"Duration: 45 minutes",
		"Total Queries: 1",
		"SELECT * FROM users",
		"Total Interactions: 1",
		"Q&A Exchanges: 1",
		"What was your approach?",
		"I explored the schema first.",
		"Analysis Confidence: 0.76",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildAnalysisPrompt_LimitsQueryExamples(t *testing.T) {
	log := &session.Log{Session: session.Session{CandidateName: "Dana"}}
	for i := 0; i < 5; i++ {
		log.Events = append(log.Events, session.Event{
			Type: session.EventSQLRun,
			Meta: session.Meta{Query: "SELECT " + strings.Repeat("x", i+1)},
		})
	}

	prompt := BuildAnalysisPrompt(log, metrics.Report{})
	if !strings.Contains(prompt, "Total Queries: 5") {
		t.Errorf("query count missing")
	}
	if strings.Contains(prompt, "SELECT xxxx\"") {
		t.Errorf("expected only first 3 query examples")
	}
}

func TestInterviewExchanges_Pairing(t *testing.T) {
	events := []session.Event{
		{Type: session.EventInterviewQuestion, Meta: session.Meta{Question: "q1"}},
		{Type: session.EventInterviewAnswer, Meta: session.Meta{Answer: "a1"}},
		{Type: session.EventInterviewQuestion, Meta: session.Meta{Question: "q2"}},
	}

	got := interviewExchanges(events)
	if len(got) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(got))
	}
	if got[0].Question != "q1" || got[0].Answer != "a1" {
		t.Errorf("unexpected first exchange: %+v", got[0])
	}
	if got[1].Question != "q2" || got[1].Answer != "" {
		t.Errorf("unexpected second exchange: %+v", got[1])
	}
}

func TestParseInsights_FencedJSON(t *testing.T) {
	response := "Narrative text here.\n```json\n" +
		`{"overall_score": 72, "hire_recommendation": "yes", "confidence_in_score": 0.7}` +
		"\n```\nTrailing notes."

	got, err := parseInsights(response)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OverallScore != 72 || got.HireRecommendation != "yes" {
		t.Errorf("unexpected insights: %+v", got)
	}
}

func TestParseInsights_BareJSON(t *testing.T) {
	got, err := parseInsights(`Some narrative. {"overall_score": 40, "hire_recommendation": "no"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HireRecommendation != "no" {
		t.Errorf("unexpected recommendation: %q", got.HireRecommendation)
	}
}

func TestParseInsights_MissingRecommendation(t *testing.T) {
	if _, err := parseInsights(`{"overall_score": 40}`); err == nil {
		t.Errorf("expected error on missing recommendation")
	}
}

func TestParseInsights_Invalid(t *testing.T) {
	if _, err := parseInsights("no json at all"); err == nil {
		t.Errorf("expected error on non-JSON response")
	}
}
