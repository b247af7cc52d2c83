package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/candidwatch/internal/config"
	"github.com/blackwell-systems/candidwatch/internal/insights"
	"github.com/blackwell-systems/candidwatch/internal/metrics"
	"github.com/blackwell-systems/candidwatch/internal/output"
	"github.com/blackwell-systems/candidwatch/internal/session"
	"github.com/blackwell-systems/candidwatch/internal/store"
)

var (
	reportFlagModel string
	reportFlagNoAI  bool
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Generate a recruiter-facing insight report",
	Long: `Report generates a hiring-oriented analysis of a stored session.
With an ANTHROPIC_API_KEY in the environment it asks Claude to write the
narrative; otherwise it falls back to a deterministic metrics-based summary.
Either way, every claim is gated on metric confidence.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFlagModel, "model", "", "Model to use for AI-generated insights")
	reportCmd.Flags().BoolVar(&reportFlagNoAI, "no-ai", false, "Skip the AI call and use the metrics-based fallback")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	log, err := db.GetLog(args[0])
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if log == nil {
		return fmt.Errorf("session %q not found", args[0])
	}

	bank, err := session.LoadBank(cfg.ProblemBank)
	if err != nil {
		return fmt.Errorf("loading problem bank: %w", err)
	}
	difficulty := bank.Difficulty(log.Session.ProblemID, cfg.DefaultDifficulty)
	report := metrics.Compute(log.Events, log.Interactions, difficulty)

	opts := insights.Options{Model: reportFlagModel}
	if opts.Model == "" {
		opts.Model = cfg.Assistant.Model
	}
	if !reportFlagNoAI {
		opts.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	result := insights.Generate(log, report, opts)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderInsights(log, report, result)
	return nil
}

func renderInsights(log *session.Log, report metrics.Report, result insights.Insights) {
	fmt.Println(output.Section(fmt.Sprintf("Interview Report: %s", log.Session.CandidateName)))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Overall score:"),
		output.StyleValue.Render(fmt.Sprintf("%d/100", result.OverallScore)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Score confidence:"),
		output.ConfidenceBar(result.ConfidenceInScore, 10))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Profile:"),
		output.StyleBold.Render(result.BehavioralProfile))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Recommendation:"),
		renderRecommendation(result.HireRecommendation))

	if len(result.DimensionScores) > 0 {
		fmt.Println(output.Section("Dimension Scores"))
		fmt.Println()

		names := make([]string, 0, len(result.DimensionScores))
		for name := range result.DimensionScores {
			names = append(names, name)
		}
		sort.Strings(names)

		tbl := output.NewTable("Dimension", "Score", "Confidence")
		for _, name := range names {
			d := result.DimensionScores[name]
			tbl.AddRow(name, fmt.Sprintf("%d", d.Score), output.ConfidenceBar(d.Confidence, 10))
		}
		tbl.Print()
	}

	if len(result.KeyStrengths) > 0 {
		fmt.Println(output.Section("Strengths"))
		fmt.Println()
		for _, s := range result.KeyStrengths {
			fmt.Printf(" %s %s\n", output.StyleSuccess.Render("+"), s.Text)
			fmt.Printf("   %s\n", output.StyleMuted.Render(fmt.Sprintf("%s (confidence %.2f): %s",
				insights.ConfidencePhrase(s.Confidence), s.Confidence, s.Evidence)))
		}
	}

	if len(result.Concerns) > 0 {
		fmt.Println(output.Section("Concerns"))
		fmt.Println()
		for _, c := range result.Concerns {
			fmt.Printf(" %s %s\n", output.StyleError.Render("-"), c.Text)
			fmt.Printf("   %s\n", output.StyleMuted.Render(fmt.Sprintf("%s (confidence %.2f): %s",
				insights.ConfidencePhrase(c.Confidence), c.Confidence, c.Evidence)))
		}
	}

	if len(result.DataQualityNotes) > 0 {
		fmt.Println(output.Section("Data Quality"))
		fmt.Println()
		for _, note := range result.DataQualityNotes {
			fmt.Printf(" %s\n", output.StyleWarning.Render(note))
		}
	}

	if result.DetailedNarrative != "" {
		fmt.Println(output.Section("Narrative"))
		fmt.Println()
		fmt.Println(result.DetailedNarrative)
	}

	fmt.Println()
	fmt.Println(output.StyleMuted.Render(fmt.Sprintf(" Generated %s by %s", result.GeneratedAt, result.Model)))
}

func renderRecommendation(rec string) string {
	switch rec {
	case insights.RecStrongYes, insights.RecYes:
		return output.StyleSuccess.Render(rec)
	case insights.RecMaybe:
		return output.StyleWarning.Render(rec)
	default:
		return output.StyleError.Render(rec)
	}
}
