package metrics

import (
	"math"
	"time"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// iterationTypes are the event types that signal the candidate reworking
// their approach.
var iterationTypes = map[string]bool{
	session.EventQueryModified:     true,
	session.EventApproachChanged:   true,
	session.EventBacktracked:       true,
	session.EventValidationAttempt: true,
}

// meaningfulGap is the minimum spacing between iteration events for the
// later one to count. Rapid-fire edits below this are superficial.
const meaningfulGap = 10 * time.Second

// Iteration scores meaningful iteration per SQL run. Iteration events less
// than meaningfulGap after the previously kept event are filtered out; the
// first event is always kept. Capped at 2.0.
func (c *Calculator) Iteration() ConfidenceMetric {
	var lastKept time.Time
	keptAny := false
	meaningful := 0
	for _, e := range c.events {
		if !iterationTypes[e.Type] {
			continue
		}
		if !keptAny || e.Timestamp.IsZero() || lastKept.IsZero() || e.Timestamp.Sub(lastKept) > meaningfulGap {
			meaningful++
			keptAny = true
			lastKept = e.Timestamp
		}
	}

	sqlRuns := c.counts[session.EventSQLRun]
	if sqlRuns == 0 && meaningful == 0 {
		return ConfidenceMetric{0.0, 0.0, 0, "no_iteration_activity"}
	}
	if sqlRuns < 1 {
		sqlRuns = 1
	}

	score := float64(meaningful) / float64(sqlRuns)

	var interp string
	switch {
	case score > iterationHigh:
		interp = "iterative_refiner"
	case score > iterationLow:
		interp = "some_iteration"
	default:
		interp = "one_shot_attempts"
	}

	return ConfidenceMetric{
		Value:          math.Min(score, 2.0),
		Confidence:     Confidence(sqlRuns, 10),
		SampleSize:     meaningful,
		Interpretation: interp,
	}
}
