package metrics

import "github.com/blackwell-systems/candidwatch/internal/session"

// Detected pattern types.
const (
	PatternDataDriven     = "data_driven_approach"
	PatternDependencyLoop = "ai_dependency_loop"
)

// sequenceLookahead is how many subsequent events an exploration event may
// look ahead to find a SQL run.
const sequenceLookahead = 5

// sequenceExploreTypes are the exploration types the detector pairs with SQL
// runs. Narrower than the exploration calculator's set.
var sequenceExploreTypes = map[string]bool{
	session.EventSchemaExplored: true,
	session.EventTablePreviewed: true,
}

// Sequences scans the chronologically sorted event stream for behavioral
// motifs where order matters:
//
//   - data_driven_approach: exploration followed by a SQL run within the
//     lookahead window. All matched pairs collapse into one summary record
//     spanning the first pair's exploration to the last pair's SQL run.
//   - ai_dependency_loop: an error immediately followed by an AI prompt and
//     then another error. One record per occurrence.
//
// Patterns are pure observations; they do not feed the ratio calculators.
func (c *Calculator) Sequences() []SequencePattern {
	var patterns []SequencePattern

	type pair struct {
		explore, sql session.Event
	}
	var pairs []pair
	for i, e := range c.events {
		if !sequenceExploreTypes[e.Type] {
			continue
		}
		limit := i + 1 + sequenceLookahead
		if limit > len(c.events) {
			limit = len(c.events)
		}
		for j := i + 1; j < limit; j++ {
			if c.events[j].Type == session.EventSQLRun {
				pairs = append(pairs, pair{e, c.events[j]})
				break
			}
		}
	}

	if len(pairs) > 0 {
		patterns = append(patterns, SequencePattern{
			PatternType:  PatternDataDriven,
			Events:       []string{"EXPLORE", "SQL"},
			Start:        pairs[0].explore.Timestamp,
			End:          pairs[len(pairs)-1].sql.Timestamp,
			QualityScore: 1.0,
		})
	}

	for i := 0; i+2 < len(c.events); i++ {
		if c.events[i].Type == session.EventErrorOccurred &&
			c.events[i+1].Type == session.EventAIPrompt &&
			c.events[i+2].Type == session.EventErrorOccurred {
			patterns = append(patterns, SequencePattern{
				PatternType:  PatternDependencyLoop,
				Events:       []string{"ERROR", "AI", "ERROR"},
				Start:        c.events[i].Timestamp,
				End:          c.events[i+2].Timestamp,
				QualityScore: 0.2,
			})
		}
	}

	return patterns
}
