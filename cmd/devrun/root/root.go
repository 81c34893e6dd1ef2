package root

import (
	"github.com/hubfold/devrun/cmd/devrun/doctor"
	"github.com/hubfold/devrun/cmd/devrun/flow"
	"github.com/hubfold/devrun/cmd/devrun/version"
	"github.com/hubfold/devrun/internal/workflow"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for devrun.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devrun [serve|lint|test|all]",
		Short: "CLI: dispatch one of the fixed developer workflows for the web app",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No argument means serve. A token that did not match any
			// subcommand lands here and becomes a usage error.
			token := workflow.DefaultToken
			if len(args) > 0 {
				token = args[0]
			}
			return flow.Dispatch(cmd.Context(), token)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(flow.ServeCmd)
	cmd.AddCommand(flow.LintCmd)
	cmd.AddCommand(flow.TestCmd)
	cmd.AddCommand(flow.AllCmd)
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(doctor.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
