package metrics

import "github.com/blackwell-systems/candidwatch/internal/session"

// Compute runs every calculator and the sequence detector and assembles the
// composite report for one session.
//
// OverallConfidence is the unweighted mean of exactly five calculator
// confidences: exploration, iteration, debugging, ai_reliance, and
// sql_complexity. AICollaboration's confidence is deliberately excluded;
// downstream consumers calibrate against this five-way mean.
func (c *Calculator) Compute() Report {
	exploration := c.Exploration()
	iteration := c.Iteration()
	debugging := c.Debugging()
	reliance := c.AIReliance()
	collaboration := c.AICollaboration()
	complexity := c.SQLComplexity(session.Queries(c.events))

	sequences := c.Sequences()
	summaries := make([]SequenceSummary, 0, len(sequences))
	for _, seq := range sequences {
		summaries = append(summaries, SequenceSummary{
			Type:    seq.PatternType,
			Quality: seq.QualityScore,
			Events:  seq.Events,
		})
	}

	overall := (exploration.Confidence +
		iteration.Confidence +
		debugging.Confidence +
		reliance.Confidence +
		complexity.Confidence) / 5

	return Report{
		Exploration:       exploration,
		Iteration:         iteration,
		Debugging:         debugging,
		AIReliance:        reliance,
		AICollaboration:   collaboration,
		SQLComplexity:     complexity,
		Independence:      Independence(reliance),
		ThinkingSequences: summaries,
		AIIntentBreakdown: c.IntentBreakdown(),
		ProblemDifficulty: c.difficulty,
		OverallConfidence: overall,
	}
}

// Compute is a convenience wrapper building a Calculator and computing the
// full report in one call.
func Compute(events []session.Event, interactions []session.AIInteraction, difficulty float64) Report {
	return New(events, interactions, difficulty).Compute()
}
