package flow

import (
	"fmt"
	"strings"

	"github.com/hubfold/devrun/internal/workflow"
)

// exitCodeUsage is reserved for unrecognized commands, distinct from
// whatever the external tools exit with.
const exitCodeUsage = 2

type usageError struct {
	token string
}

func (e usageError) Error() string {
	return fmt.Sprintf("unknown command %q: usage: devrun [%s]", e.token, strings.Join(workflow.Names(), "|"))
}

func (e usageError) ExitCode() int { return exitCodeUsage }
