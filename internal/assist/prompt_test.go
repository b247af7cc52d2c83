package assist

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

func testProblem() *session.Problem {
	return &session.Problem{
		ID:          "p1",
		Title:       "Customer Churn Analysis",
		Description: "Identify customers at risk of churning.",
		Tables: []session.Table{
			{Name: "customers", Columns: []string{"id", "signup_date"}, RowCount: 1000},
			{Name: "orders", Columns: []string{"id", "customer_id", "total"}, RowCount: 5000},
		},
	}
}

func TestCodingSystemPrompt_IncludesProblemContext(t *testing.T) {
	p := CodingSystemPrompt(testProblem())

	for _, want := range []string{
		"Customer Churn Analysis",
		"customers (1000 rows)",
		"id, customer_id, total",
		"CANNOT write complete solutions",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestCodingSystemPrompt_NilProblem(t *testing.T) {
	p := CodingSystemPrompt(nil)
	if strings.Contains(p, "Problem Context") {
		t.Errorf("expected no problem section without a problem")
	}
	if !strings.Contains(p, "IMPORTANT RULES") {
		t.Errorf("rules section missing")
	}
}

func TestInterviewSystemPrompt_TableNames(t *testing.T) {
	p := InterviewSystemPrompt(testProblem())
	if !strings.Contains(p, "Tables Used: customers, orders") {
		t.Errorf("table summary missing: %s", p)
	}
	if !strings.Contains(p, "ONLY ONE question") {
		t.Errorf("single-question rule missing")
	}
}

func TestBuildUserMessage_WithContext(t *testing.T) {
	msg := BuildUserMessage("why does this fail", Context{
		Code:  "SELECT * FROM orders",
		Error: "no such table: orders",
	})

	if !strings.Contains(msg, "```sql\nSELECT * FROM orders\n```") {
		t.Errorf("code block missing: %s", msg)
	}
	if !strings.Contains(msg, "Error Message:\nno such table: orders") {
		t.Errorf("error section missing: %s", msg)
	}
	if !strings.HasSuffix(msg, "Question: why does this fail") {
		t.Errorf("question must come last: %s", msg)
	}
}

func TestBuildUserMessage_PromptOnly(t *testing.T) {
	msg := BuildUserMessage("what is a CTE", Context{})
	if msg != "Question: what is a CTE" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestBuildQuestionMessage_RecentQueriesOnly(t *testing.T) {
	history := []string{"q1", "q2", "q3", "q4", "q5"}
	msg := BuildQuestionMessage(testProblem(), history, 2)

	if strings.Contains(msg, "q1") || strings.Contains(msg, "q2") {
		t.Errorf("expected only last 3 queries: %s", msg)
	}
	if !strings.Contains(msg, "1. q3...") || !strings.Contains(msg, "3. q5...") {
		t.Errorf("recent queries missing: %s", msg)
	}
	if !strings.Contains(msg, "question #2 of 5") {
		t.Errorf("question number missing: %s", msg)
	}
	if !strings.Contains(msg, QuestionFocus(2)) {
		t.Errorf("focus area missing: %s", msg)
	}
}

func TestQuestionRotation_ClampsOutOfRange(t *testing.T) {
	if FallbackQuestion(0) != FallbackQuestion(1) {
		t.Errorf("expected low question numbers clamped to first")
	}
	if FallbackQuestion(99) != FallbackQuestion(5) {
		t.Errorf("expected high question numbers clamped to last")
	}
	if QuestionFocus(99) != QuestionFocus(5) {
		t.Errorf("expected focus clamped to last")
	}
}

func TestTruncateQuestion(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := TruncateQuestion(long)
	if len(got) != 200 {
		t.Errorf("expected 200 chars, got %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix")
	}
	if TruncateQuestion("short") != "short" {
		t.Errorf("short questions must pass through")
	}
}
