package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coppermind/quill/mention"
)

type renderedEntity struct {
	Label string `json:"label"`
	ID    string `json:"id"`
}

type renderedMessage struct {
	Display  string           `json:"display"`
	Entities []renderedEntity `json:"entities"`
}

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [raw text]",
		Short: "Derive the display form of tagged raw text",
		Long:  "Render collapses every @[label](id) reference to its @label token. Reads stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readTextArg(cmd, args)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			display := mention.ToDisplay(raw)
			if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
				payload := renderedMessage{Display: display, Entities: []renderedEntity{}}
				for _, e := range mention.Entities(raw) {
					payload.Entities = append(payload.Entities, renderedEntity{Label: e.Label, ID: e.ID})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
			}

			fmt.Fprintln(cmd.OutOrStdout(), display)
			return nil
		},
	}
	return cmd
}

// readTextArg returns the single positional argument, or stdin when absent.
func readTextArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
