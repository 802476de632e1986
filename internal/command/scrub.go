package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coppermind/quill/redact"
)

// NewScrubCmd creates the scrub command.
func NewScrubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrub [text]",
		Short: "Redact secrets from text or JSON",
		Long:  "Scrub replaces bearer tokens, API keys, and values under sensitive keys with a placeholder. With --json the input is parsed and scrubbed structurally. Reads stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextArg(cmd, args)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				var payload any
				if err := json.Unmarshal([]byte(text), &payload); err != nil {
					return writeCommandError(cmd, fmt.Errorf("parse JSON input: %w", err))
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(redact.Value(payload))
			}

			fmt.Fprintln(cmd.OutOrStdout(), redact.String(text))
			return nil
		},
	}
	return cmd
}
