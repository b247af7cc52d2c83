package metrics

import (
	"testing"

	"github.com/blackwell-systems/candidwatch/internal/session"
)

func TestSequences_DataDrivenWithinLookahead(t *testing.T) {
	events := eventsAt(
		session.EventSchemaExplored,
		session.EventCodeEdit, session.EventCodeEdit,
		session.EventCodeEdit, session.EventCodeEdit,
		session.EventSQLRun,
	)
	patterns := New(events, nil, 1.0).Sequences()

	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	p := patterns[0]
	if p.PatternType != PatternDataDriven {
		t.Errorf("expected %s, got %s", PatternDataDriven, p.PatternType)
	}
	if p.QualityScore != 1.0 {
		t.Errorf("expected quality 1.0, got %f", p.QualityScore)
	}
	if p.Start != events[0].Timestamp || p.End != events[5].Timestamp {
		t.Errorf("expected span from explore to SQL run")
	}
}

func TestSequences_SQLBeyondLookahead(t *testing.T) {
	events := eventsAt(
		session.EventSchemaExplored,
		session.EventCodeEdit, session.EventCodeEdit, session.EventCodeEdit,
		session.EventCodeEdit, session.EventCodeEdit,
		session.EventSQLRun, // 6 events after the exploration, out of range
	)
	patterns := New(events, nil, 1.0).Sequences()

	if len(patterns) != 0 {
		t.Errorf("expected no patterns, got %d", len(patterns))
	}
}

func TestSequences_DataDrivenCollapsesToOneRecord(t *testing.T) {
	// Two explore→SQL pairs produce a single summary record spanning the
	// first exploration to the last SQL run.
	events := eventsAt(
		session.EventSchemaExplored, session.EventSQLRun,
		session.EventTablePreviewed, session.EventSQLRun,
	)
	patterns := New(events, nil, 1.0).Sequences()

	if len(patterns) != 1 {
		t.Fatalf("expected 1 summary record, got %d", len(patterns))
	}
	if patterns[0].Start != events[0].Timestamp || patterns[0].End != events[3].Timestamp {
		t.Errorf("expected span across all pairs")
	}
}

func TestSequences_DependencyLoop(t *testing.T) {
	events := eventsAt(
		session.EventErrorOccurred,
		session.EventAIPrompt,
		session.EventErrorOccurred,
	)
	patterns := New(events, nil, 1.0).Sequences()

	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
	p := patterns[0]
	if p.PatternType != PatternDependencyLoop {
		t.Errorf("expected %s, got %s", PatternDependencyLoop, p.PatternType)
	}
	if p.QualityScore != 0.2 {
		t.Errorf("expected quality 0.2, got %f", p.QualityScore)
	}
}

func TestSequences_OverlappingLoopsNotDeduplicated(t *testing.T) {
	events := eventsAt(
		session.EventErrorOccurred, session.EventAIPrompt,
		session.EventErrorOccurred, session.EventAIPrompt,
		session.EventErrorOccurred,
	)
	patterns := New(events, nil, 1.0).Sequences()

	loops := 0
	for _, p := range patterns {
		if p.PatternType == PatternDependencyLoop {
			loops++
		}
	}
	if loops != 2 {
		t.Errorf("expected 2 overlapping loops, got %d", loops)
	}
}

func TestSequences_LoopRequiresAdjacency(t *testing.T) {
	// An intervening event breaks the positional error→prompt→error triple.
	events := eventsAt(
		session.EventErrorOccurred,
		session.EventCodeEdit,
		session.EventAIPrompt,
		session.EventErrorOccurred,
	)
	patterns := New(events, nil, 1.0).Sequences()

	for _, p := range patterns {
		if p.PatternType == PatternDependencyLoop {
			t.Errorf("expected no loop with intervening event")
		}
	}
}

func TestSequences_Empty(t *testing.T) {
	if patterns := New(nil, nil, 1.0).Sequences(); len(patterns) != 0 {
		t.Errorf("expected no patterns, got %d", len(patterns))
	}
}
