package store

import "time"

// SessionInfo is a summary row for session listings.
type SessionInfo struct {
	SessionID        string
	CandidateName    string
	ProblemID        string
	StartTime        time.Time
	EndTime          time.Time
	Status           string
	EventCount       int
	InteractionCount int
}

// ReportRow is a stored analysis report snapshot.
type ReportRow struct {
	ID          int64
	SessionID   string
	GeneratedAt time.Time
	Report      string // JSON
}
