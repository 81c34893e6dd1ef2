package execx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result is the outcome of one child-process invocation.
type Result struct {
	// Code is the child's exit code. Start failures (program not found,
	// not executable) report 1 with Err set.
	Code int
	Err  error
}

// Runner invokes an external program and reports its exit status. It is the
// single seam between the dispatcher and the operating system, so tests can
// substitute a recorder.
type Runner interface {
	Run(ctx context.Context, program string, args ...string) Result
}

// System runs programs for real with inherited stdio and environment. The
// child's output is streamed untouched; nothing is captured or filtered.
type System struct{}

func (System) Run(ctx context.Context, program string, args ...string) Result {
	trace(program, args)
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return Result{}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Code: exitErr.ExitCode(), Err: err}
	}
	var startErr *exec.Error
	if errors.As(err, &startErr) {
		return Result{Code: 1, Err: fmt.Errorf("program %s not found", program)}
	}
	return Result{Code: 1, Err: err}
}

// trace echoes the command line to stderr when DEVRUN_TRACE=1.
func trace(program string, args []string) {
	if os.Getenv("DEVRUN_TRACE") != "1" {
		return
	}
	fmt.Fprintln(os.Stderr, "+ "+strings.Join(append([]string{program}, args...), " "))
}
