package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// ParseLog reads a single session log JSON file.
func ParseLog(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

// ParseLogDir reads all .json session logs from a directory.
// Files that fail to parse are skipped.
func ParseLogDir(dir string) ([]Log, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []Log
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		log, err := ParseLog(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		logs = append(logs, *log)
	}
	return logs, nil
}

// SortEvents orders events by timestamp, breaking ties (and ordering events
// with a missing timestamp, which is the zero time and sorts first) by
// sequence number. The input slice is not modified.
func SortEvents(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Sequence < sorted[j].Sequence
		}
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// CountByType tallies events by type.
func CountByType(events []Event) map[string]int {
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.Type]++
	}
	return counts
}

// Queries extracts non-empty SQL texts from SQL_RUN events, in order.
func Queries(events []Event) []string {
	var queries []string
	for _, e := range events {
		if e.Type == EventSQLRun && e.Meta.Query != "" {
			queries = append(queries, e.Meta.Query)
		}
	}
	return queries
}
