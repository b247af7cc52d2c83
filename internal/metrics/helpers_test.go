package metrics

import (
	"time"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

// testBase is the reference timestamp for relative event times in tests.
var testBase = time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)

// eventAt builds an event of the given type offset from testBase.
func eventAt(eventType string, offset time.Duration) session.Event {
	return session.Event{Type: eventType, Timestamp: testBase.Add(offset)}
}

// eventsAt builds a sequence of events one second apart, in order.
func eventsAt(types ...string) []session.Event {
	events := make([]session.Event, len(types))
	for i, et := range types {
		events[i] = session.Event{
			Type:      et,
			Timestamp: testBase.Add(time.Duration(i) * time.Second),
			Sequence:  i,
		}
	}
	return events
}

// interactionsFromPrompts builds interactions with the given user prompts.
func interactionsFromPrompts(prompts ...string) []session.AIInteraction {
	interactions := make([]session.AIInteraction, len(prompts))
	for i, p := range prompts {
		interactions[i] = session.AIInteraction{
			UserPrompt: p,
			Timestamp:  testBase.Add(time.Duration(i) * time.Minute),
		}
	}
	return interactions
}
