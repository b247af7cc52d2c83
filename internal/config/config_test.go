package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Point at a nonexistent file location by using a temp dir config path
	// that does not exist; defaults should apply without error.
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultDifficulty != DefaultDifficulty {
		t.Errorf("expected default difficulty %f, got %f", DefaultDifficulty, cfg.DefaultDifficulty)
	}
	if cfg.Assistant.HistoryExchanges != DefaultAssistant.HistoryExchanges {
		t.Errorf("expected default history exchanges %d, got %d",
			DefaultAssistant.HistoryExchanges, cfg.Assistant.HistoryExchanges)
	}
	if cfg.Assistant.Model != DefaultAssistant.Model {
		t.Errorf("expected default model %q, got %q", DefaultAssistant.Model, cfg.Assistant.Model)
	}
	if cfg.Output.Width != DefaultOutput.Width {
		t.Errorf("expected default width %d, got %d", DefaultOutput.Width, cfg.Output.Width)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
default_difficulty: 1.5
problem_bank: /tmp/bank.json
assistant:
  history_exchanges: 5
  model: test-model
output:
  color: false
  width: 120
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultDifficulty != 1.5 {
		t.Errorf("expected 1.5, got %f", cfg.DefaultDifficulty)
	}
	if cfg.ProblemBank != "/tmp/bank.json" {
		t.Errorf("expected overridden bank path, got %q", cfg.ProblemBank)
	}
	if cfg.Assistant.HistoryExchanges != 5 {
		t.Errorf("expected 5, got %d", cfg.Assistant.HistoryExchanges)
	}
	if cfg.Output.Color {
		t.Errorf("expected color disabled")
	}
	if cfg.Output.Width != 120 {
		t.Errorf("expected width 120, got %d", cfg.Output.Width)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandPath("~/sessions"); got != filepath.Join(home, "sessions") {
		t.Errorf("expected home expansion, got %q", got)
	}
	if got := expandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute path modified: %q", got)
	}
}
