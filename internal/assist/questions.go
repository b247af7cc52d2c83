package assist

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

const maxQuestionLen = 200

// focusAreas rotate with the question number so a five-question interview
// covers distinct aspects of the candidate's work.
var focusAreas = []string{
	"their overall approach and strategy",
	"a specific SQL technique or JOIN they used",
	"how they would handle edge cases or scale this",
	"what insights or patterns they discovered",
	"what they learned or would do differently",
}

// fallbackQuestions are served when no AI engine is available, indexed by
// the same rotation as focusAreas.
var fallbackQuestions = []string{
	"What was your overall approach to this problem?",
	"Why did you choose that SQL technique?",
	"How would this work with a larger dataset?",
	"What patterns did you notice in the data?",
	"What would you improve if you had more time?",
}

// FallbackQuestion returns a canned interview question for the given
// 1-based question number.
func FallbackQuestion(questionNumber int) string {
	idx := questionNumber - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(fallbackQuestions) {
		idx = len(fallbackQuestions) - 1
	}
	return fallbackQuestions[idx]
}

// QuestionFocus returns the focus area for the given 1-based question number.
func QuestionFocus(questionNumber int) string {
	idx := questionNumber - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(focusAreas) {
		idx = len(focusAreas) - 1
	}
	return focusAreas[idx]
}

// BuildQuestionMessage assembles the user message asking the model to
// generate one interview question from the candidate's recent queries.
// Only the last three queries are included, each truncated to 150 chars.
func BuildQuestionMessage(problem *session.Problem, queryHistory []string, questionNumber int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "This is question #%d of 5 in the interview.", questionNumber)
	if problem != nil {
		title := problem.Title
		if title == "" {
			title = "SQL Analysis Task"
		}
		sb.WriteString("\nProblem: " + title)
	}

	sb.WriteString("\n\nCandidate's Recent SQL Queries:\n")
	recent := queryHistory
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	for i, q := range recent {
		if len(q) > 150 {
			q = q[:150]
		}
		fmt.Fprintf(&sb, "%d. %s...\n", i+1, q)
	}

	fmt.Fprintf(&sb, "\nGenerate ONE SHORT question (1-2 sentences max) focusing on: %s\n", QuestionFocus(questionNumber))
	sb.WriteString("\nDo not ask multiple questions. Do not ask for detailed explanations. Keep it conversational.")

	return sb.String()
}

// TruncateQuestion enforces the length safety cap on generated questions.
func TruncateQuestion(q string) string {
	if len(q) > maxQuestionLen {
		return q[:maxQuestionLen-3] + "..."
	}
	return q
}
