package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coppermind/quill/codeblock"
)

// NewFenceCmd creates the fence command.
func NewFenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fence [text]",
		Short: "Wrap pasted text in a code fence when it looks like code",
		Long:  "Fence applies the paste heuristic: multi-line input that scores as code comes back inside a ```lang block, anything else passes through unchanged. Reads stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextArg(cmd, args)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			wrapped, fenced := codeblock.Wrap(text)
			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				payload := map[string]any{
					"text":   wrapped,
					"fenced": fenced,
					"tag":    codeblock.Detect(text),
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
			}

			fmt.Fprintln(cmd.OutOrStdout(), wrapped)
			return nil
		},
	}
	return cmd
}
