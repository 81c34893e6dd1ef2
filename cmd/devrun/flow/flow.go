// Package flow exposes the four workflow subcommands. Each one resolves its
// fixed step sequence from the workflow table and runs it fail-fast.
package flow

import (
	"context"

	"github.com/hubfold/devrun/internal/execx"
	"github.com/hubfold/devrun/internal/workflow"
	"github.com/spf13/cobra"
)

// runner is swapped for a recorder in tests.
var runner execx.Runner = execx.System{}

var (
	// ServeCmd starts the web application in the foreground.
	ServeCmd = command("serve", "Start the web application on port 5000")
	// LintCmd runs static analysis over the project tree.
	LintCmd = command("lint", "Run ruff against the project tree")
	// TestCmd runs the test suite.
	TestCmd = command("test", "Run the pytest suite in quiet mode")
	// AllCmd chains lint and test, stopping if lint fails.
	AllCmd = command("all", "Run lint, then test if lint passes")
)

func command(token, short string) *cobra.Command {
	return &cobra.Command{
		Use:   token,
		Short: short,
		// Trailing arguments are accepted and ignored; only the token
		// selects behavior.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Dispatch(cmd.Context(), token)
		},
	}
}

// Dispatch runs the sequence bound to token, or reports a usage error for a
// token outside the fixed set. No child process is spawned on the usage path.
func Dispatch(ctx context.Context, token string) error {
	seq, ok := workflow.Lookup(token)
	if !ok {
		return usageError{token: token}
	}
	return workflow.Run(ctx, seq, runner)
}
