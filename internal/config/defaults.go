// Package config provides configuration loading and defaults for candidwatch.
package config

// DefaultConfigDir is the default location for candidwatch configuration.
const DefaultConfigDir = "~/.config/candidwatch"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "candidwatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultProblemBank is the default path to the problem bank JSON file.
const DefaultProblemBank = "~/.config/candidwatch/problems.json"

// DefaultDifficulty is the problem difficulty used when a session's problem
// is not found in the bank (1.0 = medium).
const DefaultDifficulty = 1.0

// DefaultAssistant holds the default assistant helper settings.
var DefaultAssistant = Assistant{
	HistoryExchanges: 10,
	Model:            "claude-sonnet-4-20250514",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
