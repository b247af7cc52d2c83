// Package session defines the interview session data model and log parsing.
package session

import "time"

// Event type vocabulary. The set is open (unknown types pass through the
// pipeline untouched), but these are the types the analyzers look for.
const (
	EventSessionStart = "SESSION_START"
	EventCodeEdit     = "CODE_EDIT"

	// SQL activity.
	EventSQLRun        = "SQL_RUN"
	EventQueryModified = "QUERY_MODIFIED"

	// Data exploration.
	EventSchemaExplored     = "SCHEMA_EXPLORED"
	EventTablePreviewed     = "TABLE_PREVIEWED"
	EventDataQualityChecked = "DATA_QUALITY_CHECKED"

	// Iteration signals.
	EventApproachChanged   = "APPROACH_CHANGED"
	EventBacktracked       = "BACKTRACKED"
	EventValidationAttempt = "VALIDATION_ATTEMPT"

	// Errors.
	EventErrorOccurred = "ERROR_OCCURRED"
	EventErrorResolved = "ERROR_RESOLVED"

	// AI usage.
	EventAIPrompt       = "AI_PROMPT"
	EventAIResponseUsed = "AI_RESPONSE_USED"
	EventAICodeModified = "AI_CODE_MODIFIED"
	EventAICodeCopied   = "AI_CODE_COPIED"

	// Interview phase.
	EventInterviewQuestion = "INTERVIEW_QUESTION"
	EventInterviewAnswer   = "INTERVIEW_ANSWER"
)

// Meta holds the optional per-event payload. Every field has an explicit
// zero-value default; a missing metadata object decodes to the zero Meta.
type Meta struct {
	// Query is the SQL text for SQL_RUN and QUERY_MODIFIED events.
	Query string `json:"query,omitempty"`

	// Result is a short textual summary of a query result.
	Result string `json:"result,omitempty"`

	// Error is the error message for ERROR_OCCURRED events.
	Error string `json:"error,omitempty"`

	// Table is the table name for TABLE_PREVIEWED and SCHEMA_EXPLORED events.
	Table string `json:"table,omitempty"`

	// Question and Answer carry interview-phase exchanges.
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// Event is a single timestamped behavioral event within a session.
type Event struct {
	EventID   string    `json:"event_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	// Sequence is the insertion order within the session. It breaks
	// timestamp ties and orders events with missing timestamps.
	Sequence int `json:"sequence,omitempty"`

	Meta Meta `json:"metadata,omitempty"`
}

// AIInteraction is one prompt/response exchange with the candidate-facing
// assistant.
type AIInteraction struct {
	InteractionID string    `json:"interaction_id,omitempty"`
	SessionID     string    `json:"session_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	UserPrompt    string    `json:"user_prompt"`
	AIResponse    string    `json:"ai_response"`

	// IntentLabel is the assistant-side classification recorded at chat time
	// (CONCEPT_HELP, DEBUG_HELP, ...). May be empty for older logs.
	IntentLabel string `json:"intent_label,omitempty"`

	// ResponseUsed records whether the candidate applied the response.
	ResponseUsed bool `json:"response_used"`
}

// Session is the interview session envelope.
type Session struct {
	SessionID        string    `json:"session_id"`
	CandidateName    string    `json:"candidate_name"`
	InterviewerName  string    `json:"interviewer_name,omitempty"`
	ProblemID        string    `json:"problem_id,omitempty"`
	ProblemStatement string    `json:"problem_statement,omitempty"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time,omitempty"`

	// Status is one of: active, completed, terminated.
	Status string `json:"status,omitempty"`
}

// Log is the on-disk shape of a recorded interview session.
type Log struct {
	Session      Session         `json:"session"`
	Events       []Event         `json:"events"`
	Interactions []AIInteraction `json:"ai_interactions"`
}
