package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// SaveLog inserts a full session log: the session envelope, its events, and
// its AI interactions, in one transaction. An existing session with the same
// ID is replaced.
func (db *DB) SaveLog(log *session.Log) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	s := log.Session
	if _, err := tx.Exec(
		"DELETE FROM events WHERE session_id = ?", s.SessionID,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"DELETE FROM ai_interactions WHERE session_id = ?", s.SessionID,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO sessions
		(session_id, candidate_name, interviewer_name, problem_id, problem_statement,
		 start_time, end_time, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.SessionID, s.CandidateName, s.InterviewerName, s.ProblemID,
		s.ProblemStatement, formatTime(s.StartTime), formatTime(s.EndTime), s.Status,
	); err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	for _, e := range log.Events {
		meta, err := json.Marshal(e.Meta)
		if err != nil {
			return fmt.Errorf("marshaling event metadata: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO events (event_id, session_id, type, timestamp, sequence, metadata)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.EventID, s.SessionID, e.Type, formatTime(e.Timestamp), e.Sequence, string(meta),
		); err != nil {
			return fmt.Errorf("inserting event: %w", err)
		}
	}

	for _, ai := range log.Interactions {
		if _, err := tx.Exec(
			`INSERT INTO ai_interactions
			(interaction_id, session_id, timestamp, user_prompt, ai_response, intent_label, response_used)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			ai.InteractionID, s.SessionID, formatTime(ai.Timestamp),
			ai.UserPrompt, ai.AIResponse, ai.IntentLabel, ai.ResponseUsed,
		); err != nil {
			return fmt.Errorf("inserting interaction: %w", err)
		}
	}

	return tx.Commit()
}

// GetLog loads a full session log by session ID. Returns nil if the session
// does not exist.
func (db *DB) GetLog(sessionID string) (*session.Log, error) {
	row := db.conn.QueryRow(
		`SELECT session_id, candidate_name, interviewer_name, problem_id,
		 problem_statement, start_time, end_time, status
		 FROM sessions WHERE session_id = ?`, sessionID,
	)

	var s session.Session
	var interviewer, problemID, statement, startTime, endTime, status sql.NullString
	err := row.Scan(&s.SessionID, &s.CandidateName, &interviewer, &problemID,
		&statement, &startTime, &endTime, &status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.InterviewerName = interviewer.String
	s.ProblemID = problemID.String
	s.ProblemStatement = statement.String
	s.StartTime = parseTime(startTime.String)
	s.EndTime = parseTime(endTime.String)
	s.Status = status.String

	events, err := db.getEvents(sessionID)
	if err != nil {
		return nil, err
	}
	interactions, err := db.getInteractions(sessionID)
	if err != nil {
		return nil, err
	}

	return &session.Log{Session: s, Events: events, Interactions: interactions}, nil
}

func (db *DB) getEvents(sessionID string) ([]session.Event, error) {
	rows, err := db.conn.Query(
		"SELECT event_id, type, timestamp, sequence, metadata FROM events WHERE session_id = ? ORDER BY sequence",
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []session.Event
	for rows.Next() {
		var e session.Event
		var ts, meta sql.NullString
		if err := rows.Scan(&e.EventID, &e.Type, &ts, &e.Sequence, &meta); err != nil {
			return nil, err
		}
		e.SessionID = sessionID
		e.Timestamp = parseTime(ts.String)
		if meta.String != "" {
			if err := json.Unmarshal([]byte(meta.String), &e.Meta); err != nil {
				return nil, fmt.Errorf("unmarshaling event metadata: %w", err)
			}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (db *DB) getInteractions(sessionID string) ([]session.AIInteraction, error) {
	rows, err := db.conn.Query(
		`SELECT interaction_id, timestamp, user_prompt, ai_response, intent_label, response_used
		 FROM ai_interactions WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var interactions []session.AIInteraction
	for rows.Next() {
		var ai session.AIInteraction
		var ts, label sql.NullString
		if err := rows.Scan(&ai.InteractionID, &ts, &ai.UserPrompt,
			&ai.AIResponse, &label, &ai.ResponseUsed); err != nil {
			return nil, err
		}
		ai.SessionID = sessionID
		ai.Timestamp = parseTime(ts.String)
		ai.IntentLabel = label.String
		interactions = append(interactions, ai)
	}
	return interactions, rows.Err()
}

// ListSessions returns summaries of all stored sessions, newest first.
func (db *DB) ListSessions() ([]SessionInfo, error) {
	rows, err := db.conn.Query(
		`SELECT s.session_id, s.candidate_name, s.problem_id, s.start_time, s.end_time, s.status,
		 (SELECT COUNT(*) FROM events e WHERE e.session_id = s.session_id),
		 (SELECT COUNT(*) FROM ai_interactions a WHERE a.session_id = s.session_id)
		 FROM sessions s ORDER BY s.start_time DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var infos []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var problemID, startTime, endTime, status sql.NullString
		if err := rows.Scan(&info.SessionID, &info.CandidateName, &problemID,
			&startTime, &endTime, &status, &info.EventCount, &info.InteractionCount); err != nil {
			return nil, err
		}
		info.ProblemID = problemID.String
		info.StartTime = parseTime(startTime.String)
		info.EndTime = parseTime(endTime.String)
		info.Status = status.String
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// SaveReport stores a computed report as a JSON snapshot for a session.
func (db *DB) SaveReport(sessionID string, reportJSON []byte) error {
	_, err := db.conn.Exec(
		"INSERT INTO reports (session_id, generated_at, report) VALUES (?, ?, ?)",
		sessionID, time.Now().UTC().Format(time.RFC3339), string(reportJSON),
	)
	return err
}

// GetLatestReport returns the most recent stored report for a session, or
// nil if none exists.
func (db *DB) GetLatestReport(sessionID string) (*ReportRow, error) {
	row := db.conn.QueryRow(
		"SELECT id, session_id, generated_at, report FROM reports WHERE session_id = ? ORDER BY id DESC LIMIT 1",
		sessionID,
	)

	var r ReportRow
	var generatedAt string
	err := row.Scan(&r.ID, &r.SessionID, &generatedAt, &r.Report)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.GeneratedAt = parseTime(generatedAt)
	return &r, nil
}

// formatTime renders a timestamp as RFC3339, or empty for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime is the inverse of formatTime; malformed or empty input yields
// the zero time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
