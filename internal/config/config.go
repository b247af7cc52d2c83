package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level candidwatch configuration.
type Config struct {
	ProblemBank       string    `mapstructure:"problem_bank"`
	DefaultDifficulty float64   `mapstructure:"default_difficulty"`
	Assistant         Assistant `mapstructure:"assistant"`
	Output            Output    `mapstructure:"output"`
}

// Assistant defines settings for the candidate-facing assistant helpers.
type Assistant struct {
	// HistoryExchanges caps how many prompt/response exchanges are retained
	// per session in the conversation history store.
	HistoryExchanges int `mapstructure:"history_exchanges"`

	// Model is the model identifier sent to the messages API.
	Model string `mapstructure:"model"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("problem_bank", DefaultProblemBank)
	v.SetDefault("default_difficulty", DefaultDifficulty)
	v.SetDefault("assistant.history_exchanges", DefaultAssistant.HistoryExchanges)
	v.SetDefault("assistant.model", DefaultAssistant.Model)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ProblemBank = expandPath(cfg.ProblemBank)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
