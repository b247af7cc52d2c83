package assist

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// Context carries the candidate's current working state into a prompt.
type Context struct {
	Code   string
	Error  string
	Result string
}

// CodingSystemPrompt builds the system prompt for coding-assistance mode.
// The assistant may explain, guide, and debug but must not hand over
// complete solutions.
func CodingSystemPrompt(problem *session.Problem) string {
	var sb strings.Builder

	sb.WriteString("You are an AI assistant helping a candidate in a SQL coding interview.")

	if problem != nil {
		sb.WriteString("\n\nProblem Context:")
		if problem.Title != "" {
			sb.WriteString("\nTitle: " + problem.Title)
		}
		if problem.Description != "" {
			sb.WriteString("\nDescription: " + problem.Description)
		}
		if len(problem.Tables) > 0 {
			sb.WriteString("\n\nTables Available:")
			for _, tbl := range problem.Tables {
				sb.WriteString(fmt.Sprintf("\n- %s (%d rows)", tbl.Name, tbl.RowCount))
				if len(tbl.Columns) > 0 {
					sb.WriteString("\n  Columns: " + strings.Join(tbl.Columns, ", "))
				}
			}
		}
	}

	sb.WriteString(`

IMPORTANT RULES:
1. You can EXPLAIN SQL concepts and syntax
2. You can GUIDE their thinking process
3. You can SUGGEST approaches and query structures
4. You can HELP DEBUG errors
5. You CANNOT write complete solutions
6. You CANNOT provide full working queries
7. Always encourage independent problem-solving

Your responses should:
- Be concise (2-4 sentences max)
- Ask clarifying questions
- Provide hints, not answers
- Explain errors clearly
- Suggest SQL syntax when needed
- Help them learn, not copy

Remember: This evaluates how they collaborate with AI, not their ability to copy code.`)

	return sb.String()
}

// InterviewSystemPrompt builds the system prompt for the post-coding
// interview mode, where the assistant asks one short follow-up question.
func InterviewSystemPrompt(problem *session.Problem) string {
	var sb strings.Builder

	sb.WriteString("You are an AI interviewer conducting a post-coding interview for a data analyst role.")

	if problem != nil {
		sb.WriteString("\n\nProblem Context:")
		if problem.Title != "" {
			sb.WriteString("\nProblem: " + problem.Title)
		}
		if problem.Description != "" {
			sb.WriteString("\nDescription: " + problem.Description)
		}
		if len(problem.Tables) > 0 {
			names := make([]string, len(problem.Tables))
			for i, tbl := range problem.Tables {
				names[i] = tbl.Name
			}
			sb.WriteString("\nTables Used: " + strings.Join(names, ", "))
		}
	}

	sb.WriteString(`

Your task: Ask ONE SHORT follow-up question about their SQL approach and problem-solving.

CRITICAL RULES:
1. Ask ONLY ONE question - never ask multiple questions
2. Keep questions SHORT (1-2 sentences maximum)
3. Focus on ONE specific aspect of their work
4. Don't dig too deep - stay high-level and practical
5. Questions should assess thinking, not demand perfect answers

Your tone: Conversational, encouraging, curious (not interrogating)

Remember: ONE short, specific question. No follow-ups. No multi-part questions.`)

	return sb.String()
}

// BuildUserMessage wraps the candidate's question with their current code,
// error, and result context.
func BuildUserMessage(prompt string, ctx Context) string {
	var parts []string

	if ctx.Code != "" {
		parts = append(parts, fmt.Sprintf("Current SQL Query:\n```sql\n%s\n```\n", ctx.Code))
	}
	if ctx.Error != "" {
		parts = append(parts, fmt.Sprintf("Error Message:\n%s\n", ctx.Error))
	}
	if ctx.Result != "" {
		parts = append(parts, fmt.Sprintf("Query Result: %s\n", ctx.Result))
	}

	parts = append(parts, "Question: "+prompt)

	return strings.Join(parts, "\n")
}
