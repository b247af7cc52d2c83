package app

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/candidwatch/internal/config"
	"github.com/blackwell-systems/candidwatch/internal/output"
	"github.com/blackwell-systems/candidwatch/internal/session"
	"github.com/blackwell-systems/candidwatch/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file-or-directory>",
	Short: "Import recorded session logs into the local database",
	Long: `Ingest reads session log JSON files (a single file or every .json
file in a directory) and stores them in the local SQLite database.
Re-ingesting a session replaces its stored events and interactions.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var logs []session.Log
	if info.IsDir() {
		logs, err = session.ParseLogDir(path)
		if err != nil {
			return fmt.Errorf("parsing log directory: %w", err)
		}
	} else {
		log, err := session.ParseLog(path)
		if err != nil {
			return fmt.Errorf("parsing log: %w", err)
		}
		logs = []session.Log{*log}
	}

	if len(logs) == 0 {
		fmt.Println(output.StyleMuted.Render("No session logs found."))
		return nil
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tbl := output.NewTable("Session", "Candidate", "Events", "AI Exchanges")
	for i := range logs {
		log := &logs[i]
		fillIDs(log)
		if err := db.SaveLog(log); err != nil {
			return fmt.Errorf("storing session %s: %w", log.Session.SessionID, err)
		}
		tbl.AddRow(
			log.Session.SessionID,
			log.Session.CandidateName,
			fmt.Sprintf("%d", len(log.Events)),
			fmt.Sprintf("%d", len(log.Interactions)),
		)
	}

	fmt.Println(output.Section(fmt.Sprintf("Ingested %d session(s)", len(logs))))
	fmt.Println()
	tbl.Print()
	return nil
}

// fillIDs mints identifiers for sessions, events, and interactions that were
// recorded without them, and assigns sequence numbers where all are zero.
func fillIDs(log *session.Log) {
	if log.Session.SessionID == "" {
		log.Session.SessionID = uuid.NewString()
	}

	allZero := true
	for i := range log.Events {
		if log.Events[i].Sequence != 0 {
			allZero = false
			break
		}
	}
	for i := range log.Events {
		e := &log.Events[i]
		if e.EventID == "" {
			e.EventID = uuid.NewString()
		}
		e.SessionID = log.Session.SessionID
		if allZero {
			e.Sequence = i
		}
	}

	for i := range log.Interactions {
		ai := &log.Interactions[i]
		if ai.InteractionID == "" {
			ai.InteractionID = uuid.NewString()
		}
		ai.SessionID = log.Session.SessionID
	}
}
