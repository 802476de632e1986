package command

import (
	"os"

	"github.com/spf13/cobra"
)

const AppName = "quill"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Quill - mention-aware message composing",
		Long:          "Quill composes messages with tagged @-mentions, emoji shortcodes, and fenced code detection for pasted snippets.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().Bool("json", false, "output in JSON format")

	cmd.AddCommand(
		NewComposeCmd(),
		NewRenderCmd(),
		NewFenceCmd(),
		NewScrubCmd(),
		NewRosterCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}
