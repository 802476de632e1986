package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// writeCommandError prints a friendly error and returns it so cobra exits
// nonzero without reprinting.
func writeCommandError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
	return err
}
