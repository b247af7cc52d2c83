package metrics

import (
	"time"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// resolutionWindow is how long after an error a resolution event still
// counts as resolving it.
const resolutionWindow = 5 * time.Minute

// Debugging scores how many errors the candidate resolved within the
// resolution window. Errors are matched to resolutions by proximity; the
// first resolution inside the window wins, and a resolution may satisfy
// more than one error.
func (c *Calculator) Debugging() ConfidenceMetric {
	var errors, resolutions []session.Event
	for _, e := range c.events {
		switch e.Type {
		case session.EventErrorOccurred:
			errors = append(errors, e)
		case session.EventErrorResolved:
			resolutions = append(resolutions, e)
		}
	}

	if len(errors) == 0 {
		return ConfidenceMetric{1.0, 0.0, 0, "no_errors_encountered"}
	}

	resolved := 0
	for _, err := range errors {
		deadline := err.Timestamp.Add(resolutionWindow)
		for _, res := range resolutions {
			if res.Timestamp.After(err.Timestamp) && res.Timestamp.Before(deadline) {
				resolved++
				break
			}
		}
	}

	score := float64(resolved) / float64(len(errors))

	var interp string
	switch {
	case score > debugStrong:
		interp = "strong_debugger"
	case score > debugWeak:
		interp = "moderate_debugging"
	default:
		interp = "struggles_with_errors"
	}

	return ConfidenceMetric{
		Value:          score,
		Confidence:     Confidence(len(errors), 8),
		SampleSize:     len(errors),
		Interpretation: interp,
	}
}
