package command

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/coppermind/quill/internal/roster"
)

// NewRosterCmd creates the roster command group.
func NewRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the mention roster",
	}

	cmd.PersistentFlags().String("db", "", "roster database path (defaults to the data dir)")

	cmd.AddCommand(
		newRosterAddCmd(),
		newRosterLsCmd(),
		newRosterImportCmd(),
		newRosterExportCmd(),
	)
	return cmd
}

func openRosterStore(cmd *cobra.Command) (*roster.Store, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		resolved, err := defaultStorePath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return roster.Open(path)
}

func newRosterAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <address> <label>",
		Short: "Add or update a roster member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openRosterStore(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer store.Close()

			avatar, _ := cmd.Flags().GetString("avatar")
			member := roster.Member{
				Address: args[0],
				Label:   args[1],
				Avatar:  avatar,
			}
			if err := store.Upsert(member); err != nil {
				return writeCommandError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", member.Label, member.Address)
			return nil
		},
	}
	cmd.Flags().String("avatar", "", "avatar glyph shown in suggestions")
	return cmd
}

func newRosterLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List roster members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openRosterStore(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer store.Close()

			members, err := store.Members()
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(members)
			}

			out := cmd.OutOrStdout()
			if len(members) == 0 {
				fmt.Fprintln(out, "Roster is empty")
				return nil
			}
			for _, m := range members {
				line := fmt.Sprintf("%s · %s", m.Label, m.Address)
				if m.Avatar != "" {
					line = m.Avatar + " " + line
				}
				if m.LastSeen > 0 {
					line += " · seen " + time.UnixMilli(m.LastSeen).Format("2006-01-02 15:04")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newRosterImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import members from a roster JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openRosterStore(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer store.Close()

			count, err := store.ImportFile(args[0])
			if err != nil {
				return writeCommandError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d members\n", count)
			return nil
		},
	}
}

func newRosterExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the roster to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openRosterStore(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer store.Close()

			members, err := store.Members()
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if err := roster.WriteFile(args[0], members); err != nil {
				return writeCommandError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d members to %s\n", len(members), args[0])
			return nil
		},
	}
}
