// Package doctor implements `devrun doctor`, a one-line JSON report of the
// development environment: whether each external workflow tool resolves on
// PATH, and where the working tree currently points in git.
package doctor

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var flagPretty bool

// Cmd implements `devrun doctor`.
var Cmd = &cobra.Command{
	Use:           "doctor",
	Short:         "Check that the external workflow tools are available",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep := collect(exec.LookPath, ".")
		return printReport(os.Stdout, rep, flagPretty)
	},
}

func init() {
	Cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Pretty JSON output")
}
