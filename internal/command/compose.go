package command

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/coppermind/quill/internal/compose"
	"github.com/coppermind/quill/internal/roster"
	"github.com/coppermind/quill/redact"
)

// NewComposeCmd creates the compose command.
func NewComposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Interactive message composer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				return writeCommandError(cmd, fmt.Errorf("--json not supported for the interactive composer"))
			}

			dbPath, _ := cmd.Flags().GetString("db")
			rosterPath, _ := cmd.Flags().GetString("roster")
			username, _ := cmd.Flags().GetString("as")
			logPath, _ := cmd.Flags().GetString("log")

			if dbPath == "" {
				resolved, err := defaultStorePath()
				if err != nil {
					return writeCommandError(cmd, err)
				}
				dbPath = resolved
			}

			store, err := roster.Open(dbPath)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer store.Close()

			if rosterPath != "" {
				if _, err := store.ImportFile(rosterPath); err != nil {
					return writeCommandError(cmd, err)
				}
			}

			var logger *redact.Logger
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				defer f.Close()
				logger = redact.Wrap(log.NewWithOptions(f, log.Options{
					ReportTimestamp: true,
					Level:           log.DebugLevel,
				}))
			}

			if username == "" {
				username = os.Getenv("USER")
			}

			return compose.Run(compose.Options{
				Store:      store,
				RosterPath: rosterPath,
				Username:   username,
				Logger:     logger,
			})
		},
	}

	cmd.Flags().String("db", "", "roster database path (defaults to the data dir)")
	cmd.Flags().String("roster", "", "roster JSON file to import and watch for edits")
	cmd.Flags().String("as", "", "author name for posted messages")
	cmd.Flags().String("log", "", "append debug logs to this file")
	return cmd
}
