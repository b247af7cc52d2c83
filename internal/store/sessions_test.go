package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

func testLog(t *testing.T) *session.Log {
	t.Helper()
	start := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)
	return &session.Log{
		Session: session.Session{
			SessionID:     "sess-1",
			CandidateName: "Dana",
			ProblemID:     "churn-analysis",
			StartTime:     start,
			EndTime:       start.Add(45 * time.Minute),
			Status:        "completed",
		},
		Events: []session.Event{
			{EventID: "ev-1", Type: session.EventSchemaExplored, Timestamp: start, Sequence: 0},
			{EventID: "ev-2", Type: session.EventSQLRun, Timestamp: start.Add(time.Minute), Sequence: 1,
				Meta: session.Meta{Query: "SELECT * FROM users"}},
			{EventID: "ev-3", Type: session.EventErrorOccurred, Timestamp: start.Add(2 * time.Minute), Sequence: 2,
				Meta: session.Meta{Error: "no such column: usr_id"}},
		},
		Interactions: []session.AIInteraction{
			{InteractionID: "ai-1", Timestamp: start.Add(3 * time.Minute),
				UserPrompt: "what is a join", AIResponse: "a join combines rows",
				IntentLabel: "CONCEPT_HELP", ResponseUsed: true},
		},
	}
}

func TestSaveLogAndGetLog(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	log := testLog(t)
	require.NoError(t, db.SaveLog(log))

	got, err := db.GetLog("sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Equal(t, "Dana", got.Session.CandidateName)
	require.Equal(t, "completed", got.Session.Status)
	require.True(t, got.Session.StartTime.Equal(log.Session.StartTime))

	require.Len(t, got.Events, 3)
	require.Equal(t, "SELECT * FROM users", got.Events[1].Meta.Query)
	require.Equal(t, "no such column: usr_id", got.Events[2].Meta.Error)
	require.Equal(t, "sess-1", got.Events[0].SessionID)

	require.Len(t, got.Interactions, 1)
	require.Equal(t, "CONCEPT_HELP", got.Interactions[0].IntentLabel)
	require.True(t, got.Interactions[0].ResponseUsed)
}

func TestGetLog_Missing(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	got, err := db.GetLog("nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSaveLog_ReplacesExisting(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	log := testLog(t)
	require.NoError(t, db.SaveLog(log))

	// Re-ingesting the same session must not duplicate events.
	log.Events = log.Events[:1]
	require.NoError(t, db.SaveLog(log))

	got, err := db.GetLog("sess-1")
	require.NoError(t, err)
	require.Len(t, got.Events, 1)
}

func TestListSessions(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	first := testLog(t)
	require.NoError(t, db.SaveLog(first))

	second := testLog(t)
	second.Session.SessionID = "sess-2"
	second.Session.CandidateName = "Riley"
	second.Session.StartTime = first.Session.StartTime.Add(time.Hour)
	second.Interactions = nil
	require.NoError(t, db.SaveLog(second))

	infos, err := db.ListSessions()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	// Newest first.
	require.Equal(t, "sess-2", infos[0].SessionID)
	require.Equal(t, 0, infos[0].InteractionCount)
	require.Equal(t, 3, infos[1].EventCount)
	require.Equal(t, 1, infos[1].InteractionCount)
}

func TestSaveAndGetLatestReport(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.SaveLog(testLog(t)))
	require.NoError(t, db.SaveReport("sess-1", []byte(`{"overall_confidence":0.2}`)))
	require.NoError(t, db.SaveReport("sess-1", []byte(`{"overall_confidence":0.5}`)))

	r, err := db.GetLatestReport("sess-1")
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Contains(t, r.Report, "0.5")
	require.False(t, r.GeneratedAt.IsZero())

	missing, err := db.GetLatestReport("sess-2")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestZeroTimesRoundTrip(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	log := testLog(t)
	log.Session.EndTime = time.Time{}
	log.Events[0].Timestamp = time.Time{}
	require.NoError(t, db.SaveLog(log))

	got, err := db.GetLog("sess-1")
	require.NoError(t, err)
	require.True(t, got.Session.EndTime.IsZero())
	require.True(t, got.Events[0].Timestamp.IsZero())
}
