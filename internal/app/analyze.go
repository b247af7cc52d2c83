package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/candidwatch/internal/config"
	"github.com/blackwell-systems/candidwatch/internal/metrics"
	"github.com/blackwell-systems/candidwatch/internal/output"
	"github.com/blackwell-systems/candidwatch/internal/session"
	"github.com/blackwell-systems/candidwatch/internal/store"
)

var (
	analyzeFlagFile string
	analyzeFlagAll  bool
	analyzeFlagSave bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [session-id]",
	Short: "Compute behavioral metrics for a session",
	Long: `Analyze computes confidence-weighted behavioral metrics for a stored
session (by ID) or for a session log file (--file). Every metric carries a
confidence level derived from its sample size; small samples yield low
confidence, never inflated claims.

With --all, every stored session is analyzed concurrently and a report
snapshot is saved for each.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlagFile, "file", "", "Analyze a session log file instead of a stored session")
	analyzeCmd.Flags().BoolVar(&analyzeFlagAll, "all", false, "Analyze every stored session and save report snapshots")
	analyzeCmd.Flags().BoolVar(&analyzeFlagSave, "save", false, "Save the report snapshot to the database")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	bank, err := session.LoadBank(cfg.ProblemBank)
	if err != nil {
		return fmt.Errorf("loading problem bank: %w", err)
	}

	if analyzeFlagAll {
		return analyzeAll(cfg, bank)
	}

	var log *session.Log
	var db *store.DB

	switch {
	case analyzeFlagFile != "":
		log, err = session.ParseLog(analyzeFlagFile)
		if err != nil {
			return fmt.Errorf("parsing log: %w", err)
		}
	case len(args) == 1:
		db, err = store.Open(config.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		log, err = db.GetLog(args[0])
		if err != nil {
			return fmt.Errorf("loading session: %w", err)
		}
		if log == nil {
			return fmt.Errorf("session %q not found", args[0])
		}
	default:
		return fmt.Errorf("provide a session ID or --file")
	}

	difficulty := bank.Difficulty(log.Session.ProblemID, cfg.DefaultDifficulty)
	calc := metrics.New(log.Events, log.Interactions, difficulty)
	report := calc.Compute()

	if analyzeFlagSave && db != nil {
		data, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		if err := db.SaveReport(log.Session.SessionID, data); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	renderReport(log, report, calc.Features())
	return nil
}

// analyzeAll computes and saves a report for every stored session,
// bounded-concurrently.
func analyzeAll(cfg *config.Config, bank *session.Bank) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	infos, err := db.ListSessions()
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}
	if len(infos) == 0 {
		fmt.Println(output.StyleMuted.Render("No sessions stored."))
		return nil
	}

	reports := make([]metrics.Report, len(infos))

	var g errgroup.Group
	g.SetLimit(4)
	for i, info := range infos {
		i, info := i, info
		g.Go(func() error {
			log, err := db.GetLog(info.SessionID)
			if err != nil {
				return fmt.Errorf("loading %s: %w", info.SessionID, err)
			}
			difficulty := bank.Difficulty(log.Session.ProblemID, cfg.DefaultDifficulty)
			report := metrics.Compute(log.Events, log.Interactions, difficulty)

			data, err := json.Marshal(report)
			if err != nil {
				return err
			}
			if err := db.SaveReport(info.SessionID, data); err != nil {
				return fmt.Errorf("saving report for %s: %w", info.SessionID, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println(output.Section(fmt.Sprintf("Analyzed %d session(s)", len(infos))))
	fmt.Println()

	tbl := output.NewTable("Session", "Candidate", "Confidence", "Reliance", "SQL", "Sequences")
	for i, info := range infos {
		r := reports[i]
		tbl.AddRow(
			info.SessionID,
			info.CandidateName,
			fmt.Sprintf("%.2f", r.OverallConfidence),
			fmt.Sprintf("%.2f", r.AIReliance.Value),
			r.SQLComplexity.Interpretation,
			fmt.Sprintf("%d", len(r.ThinkingSequences)),
		)
	}
	tbl.Print()
	return nil
}

// renderReport prints the full metric breakdown for one session.
func renderReport(log *session.Log, report metrics.Report, features []metrics.Feature) {
	fmt.Println(output.Section(fmt.Sprintf("Behavioral Metrics: %s", log.Session.CandidateName)))
	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Session:"),
		output.StyleValue.Render(log.Session.SessionID))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Problem difficulty:"),
		output.StyleValue.Render(fmt.Sprintf("%.1fx", report.ProblemDifficulty)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Overall confidence:"),
		output.ConfidenceBar(report.OverallConfidence, 10))

	fmt.Println(output.Section("Metrics"))
	fmt.Println()

	tbl := output.NewTable("Metric", "Value", "Confidence", "Samples", "Interpretation")
	for _, row := range []struct {
		name string
		m    metrics.ConfidenceMetric
	}{
		{"Exploration", report.Exploration},
		{"Iteration", report.Iteration},
		{"Debugging", report.Debugging},
		{"AI reliance", report.AIReliance},
		{"AI collaboration", report.AICollaboration},
		{"SQL complexity", report.SQLComplexity},
		{"Independence", report.Independence},
	} {
		tbl.AddRow(
			row.name,
			fmt.Sprintf("%.2f", row.m.Value),
			output.ConfidenceBar(row.m.Confidence, 10),
			fmt.Sprintf("%d", row.m.SampleSize),
			row.m.Interpretation,
		)
	}
	tbl.Print()

	if len(report.AIIntentBreakdown) > 0 && len(log.Interactions) > 0 {
		fmt.Println(output.Section("AI Intent Breakdown"))
		fmt.Println()
		for _, intent := range []string{"conceptual", "hint", "debug", "code_gen", "validation", "explanation"} {
			count := report.AIIntentBreakdown[intent]
			if count == 0 {
				continue
			}
			fmt.Printf(" %s %s\n",
				output.StyleLabel.Render(intent+":"),
				output.StyleValue.Render(fmt.Sprintf("%d", count)))
		}
	}

	if len(report.ThinkingSequences) > 0 {
		fmt.Println(output.Section("Thinking Sequences"))
		fmt.Println()
		for _, seq := range report.ThinkingSequences {
			style := output.StyleSuccess
			if seq.Quality < 0.5 {
				style = output.StyleError
			}
			fmt.Printf(" %s quality %.1f (%s)\n",
				style.Render(seq.Type),
				seq.Quality,
				strings.Join(seq.Events, " → "))
		}
	}

	if len(features) > 0 {
		fmt.Println(output.Section("Hiring Dimensions"))
		fmt.Println()
		for _, f := range features {
			fmt.Printf(" %s %s\n",
				output.StyleLabel.Render(f.Name+":"),
				output.MetricBar(f.Value, 1.0, 10))
			if flagVerbose {
				for _, ev := range f.Evidence {
					fmt.Printf("   %s\n", output.StyleMuted.Render(ev))
				}
			}
		}
	}
	fmt.Println()
}
