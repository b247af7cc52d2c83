package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/candidwatch/internal/config"
	"github.com/blackwell-systems/candidwatch/internal/output"
	"github.com/blackwell-systems/candidwatch/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored interview sessions",
	RunE:  runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	infos, err := db.ListSessions()
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		fmt.Println(output.StyleMuted.Render("No sessions stored. Use 'candidwatch ingest' first."))
		return nil
	}

	fmt.Println(output.Section("Interview Sessions"))
	fmt.Println()

	tbl := output.NewTable("Session", "Candidate", "Problem", "Started", "Duration", "Events", "AI", "Status")
	for _, info := range infos {
		tbl.AddRow(
			info.SessionID,
			info.CandidateName,
			info.ProblemID,
			formatStart(info.StartTime),
			formatDuration(info.StartTime, info.EndTime),
			fmt.Sprintf("%d", info.EventCount),
			fmt.Sprintf("%d", info.InteractionCount),
			info.Status,
		)
	}
	tbl.Print()
	return nil
}

func formatStart(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatDuration(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%dm", int(end.Sub(start).Minutes()))
}
