package metrics

import (
	"math"
	"regexp"
	"strings"
)

// SQL complexity categories.
const (
	CategoryBasic        = "basic"
	CategoryIntermediate = "intermediate"
	CategoryAdvanced     = "advanced"
	CategoryExpert       = "expert"
)

var (
	joinPattern   = regexp.MustCompile(`\bJOIN\b`)
	ctePattern    = regexp.MustCompile(`\bWITH\s+\w+\s+AS`)
	aggPattern    = regexp.MustCompile(`\b(COUNT|SUM|AVG|MIN|MAX|STDDEV|VARIANCE)\s*\(`)
	windowPattern = regexp.MustCompile(`\bOVER\s*\(`)
)

// SQLStructure is the structural profile of a single query.
type SQLStructure struct {
	ComplexityScore float64 `json:"complexity_score"`
	Category        string  `json:"category"`
	JoinDepth       int     `json:"join_depth"`
	NestingLevel    int     `json:"nesting_level"`
	CTECount        int     `json:"cte_count"`
	Aggregations    int     `json:"aggregations"`
	WindowFunctions int     `json:"window_functions"`
}

// AnalyzeSQL derives a complexity profile from syntactic markers rather than
// whole-query parsing. It counts joins, maximum parenthesis nesting, CTEs,
// aggregate calls, and window functions on the uppercased text. Being
// pattern-based, it can be fooled by SQL inside string literals or comments.
func AnalyzeSQL(query string) SQLStructure {
	upper := strings.ToUpper(query)

	joins := len(joinPattern.FindAllString(upper, -1))

	// Maximum parenthesis depth reached while scanning left to right.
	// No validation that parens balance.
	depth, maxDepth := 0, 0
	for _, ch := range upper {
		switch ch {
		case '(':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case ')':
			depth--
		}
	}

	ctes := len(ctePattern.FindAllString(upper, -1))
	aggs := len(aggPattern.FindAllString(upper, -1))
	windows := len(windowPattern.FindAllString(upper, -1))

	score := float64(joins)*2 +
		float64(maxDepth)*3 +
		float64(ctes)*4 +
		float64(aggs)*1.5 +
		float64(windows)*5

	return SQLStructure{
		ComplexityScore: score,
		Category:        categorize(score),
		JoinDepth:       joins,
		NestingLevel:    maxDepth,
		CTECount:        ctes,
		Aggregations:    aggs,
		WindowFunctions: windows,
	}
}

func categorize(score float64) string {
	switch {
	case score >= 20:
		return CategoryExpert
	case score >= 10:
		return CategoryAdvanced
	case score >= 5:
		return CategoryIntermediate
	default:
		return CategoryBasic
	}
}

// SQLComplexity aggregates structural analysis over all queries a candidate
// ran: the mean complexity score normalized to a 0-4 scale, with the modal
// category as interpretation. Category ties break to the category
// encountered first in query order.
func (c *Calculator) SQLComplexity(queries []string) ConfidenceMetric {
	if len(queries) == 0 {
		return ConfidenceMetric{0.0, 0.0, 0, "no_queries"}
	}

	analyses := make([]SQLStructure, len(queries))
	var sum float64
	categoryCounts := make(map[string]int)
	for i, q := range queries {
		analyses[i] = AnalyzeSQL(q)
		sum += analyses[i].ComplexityScore
		categoryCounts[analyses[i].Category]++
	}

	normalized := math.Min(4.0, sum/float64(len(analyses))/5)

	mode, modeCount := "", 0
	for _, a := range analyses {
		if categoryCounts[a.Category] > modeCount {
			mode = a.Category
			modeCount = categoryCounts[a.Category]
		}
	}

	return ConfidenceMetric{
		Value:          normalized,
		Confidence:     Confidence(len(queries), 10),
		SampleSize:     len(queries),
		Interpretation: mode,
	}
}
