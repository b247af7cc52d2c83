package metrics

import (
	"math"
	"time"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// exploreTypes are the event types that count as data exploration.
var exploreTypes = map[string]bool{
	session.EventSchemaExplored:     true,
	session.EventTablePreviewed:     true,
	session.EventDataQualityChecked: true,
}

// Exploration scores how much the candidate explored the data relative to
// how many queries they ran. Exploration that happens before the first SQL
// run is weighted 1.5x, and the raw score is divided by problem difficulty
// so harder problems are not under-credited. Capped at 2.0.
func (c *Calculator) Exploration() ConfidenceMetric {
	var explorations []session.Event
	for _, e := range c.events {
		if exploreTypes[e.Type] {
			explorations = append(explorations, e)
		}
	}

	sqlRuns := c.counts[session.EventSQLRun]
	if sqlRuns == 0 {
		return ConfidenceMetric{0.0, 0.0, 0, "no_sql_activity"}
	}

	weighted := float64(len(explorations))
	if len(explorations) > 0 {
		firstSQL, found := c.firstEventTime(session.EventSQLRun)
		if found {
			early := 0
			for _, e := range explorations {
				if e.Timestamp.Before(firstSQL) {
					early++
				}
			}
			weighted = float64(early)*1.5 + float64(len(explorations)-early)
		}
	}

	score := (weighted / float64(sqlRuns)) / c.difficulty

	totalActivity := sqlRuns + len(explorations)

	var interp string
	switch {
	case score > explorationHigh:
		interp = "data_first_approach"
	case score > explorationLow:
		interp = "some_exploration"
	default:
		interp = "query_first_approach"
	}

	return ConfidenceMetric{
		Value:          math.Min(score, 2.0),
		Confidence:     Confidence(totalActivity, 15),
		SampleSize:     totalActivity,
		Interpretation: interp,
	}
}

// firstEventTime returns the timestamp of the first event of the given type
// in the sorted stream.
func (c *Calculator) firstEventTime(eventType string) (time.Time, bool) {
	for _, e := range c.events {
		if e.Type == eventType {
			return e.Timestamp, true
		}
	}
	return time.Time{}, false
}
