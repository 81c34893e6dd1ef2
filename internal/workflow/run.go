package workflow

import (
	"context"
	"fmt"

	"github.com/hubfold/devrun/internal/execx"
)

// StepFailure reports the first step of a sequence that exited non-zero.
// Its exit code becomes the dispatcher's own exit status.
type StepFailure struct {
	Step   Step
	Result execx.Result
}

func (e StepFailure) Error() string {
	if e.Result.Err != nil {
		return e.Result.Err.Error()
	}
	return fmt.Sprintf("%s exited with code %d", e.Step.Program, e.Result.Code)
}

func (e StepFailure) ExitCode() int { return e.Result.Code }

// Run executes the steps of seq in order through runner, one child process
// at a time. The first non-zero exit aborts the remaining steps and is
// returned as a StepFailure; nil means every step exited 0.
func Run(ctx context.Context, seq Sequence, runner execx.Runner) error {
	for _, step := range seq {
		res := runner.Run(ctx, step.Program, step.Args...)
		if res.Code != 0 {
			return StepFailure{Step: step, Result: res}
		}
	}
	return nil
}
