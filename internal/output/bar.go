package output

import (
	"fmt"
	"strings"
)

// ConfidenceBar renders a visual bar for a 0.0-1.0 confidence level.
// Example: "███████░░░ 0.70"
func ConfidenceBar(confidence float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int(confidence * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case confidence > 0.7:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case confidence >= 0.4:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.2f", confidence)))
}

// MetricBar renders a bar for a metric value against its cap.
// Values at or above the cap fill the whole bar.
func MetricBar(value, limit float64, width int) string {
	if width <= 0 {
		width = 10
	}
	if limit <= 0 {
		limit = 1.0
	}
	filled := int((value / limit) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", StyleBold.Render(bar), StyleMuted.Render(fmt.Sprintf("%.2f", value)))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
