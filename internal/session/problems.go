package session

import (
	"encoding/json"
	"os"
)

// Problem describes one entry in the problem bank.
type Problem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Difficulty  string  `json:"difficulty"` // easy, medium, hard
	Tables      []Table `json:"tables,omitempty"`
}

// Table describes a dataset table available to the candidate.
type Table struct {
	Name     string   `json:"name"`
	RowCount int      `json:"row_count,omitempty"`
	Columns  []string `json:"columns,omitempty"`
}

// DifficultyWeight maps the difficulty label to the normalization divisor
// used by the exploration calculator. Unknown labels count as medium.
func (p Problem) DifficultyWeight() float64 {
	switch p.Difficulty {
	case "easy":
		return 0.5
	case "hard":
		return 1.5
	default:
		return 1.0
	}
}

// Bank is a loaded problem bank keyed by problem ID.
type Bank struct {
	problems map[string]Problem
}

// LoadBank reads a problem bank JSON file (an array of problems).
// A missing file yields an empty bank, not an error.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Bank{problems: map[string]Problem{}}, nil
		}
		return nil, err
	}

	var problems []Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		return nil, err
	}

	byID := make(map[string]Problem, len(problems))
	for _, p := range problems {
		byID[p.ID] = p
	}
	return &Bank{problems: byID}, nil
}

// Lookup returns the problem for the given ID.
func (b *Bank) Lookup(id string) (Problem, bool) {
	p, ok := b.problems[id]
	return p, ok
}

// Difficulty returns the difficulty weight for a problem ID, or the given
// fallback when the problem is not in the bank.
func (b *Bank) Difficulty(id string, fallback float64) float64 {
	if p, ok := b.problems[id]; ok {
		return p.DifficultyWeight()
	}
	return fallback
}

// Len returns the number of problems in the bank.
func (b *Bank) Len() int {
	return len(b.problems)
}
