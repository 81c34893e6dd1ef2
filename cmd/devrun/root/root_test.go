package root

import (
	"strings"
	"testing"
)

func TestExecuteUnknownCommand(t *testing.T) {
	err := Execute([]string{"bogus"})
	if err == nil {
		t.Fatalf("expected error")
	}
	ec, ok := err.(interface{ ExitCode() int })
	if !ok || ec.ExitCode() != 2 {
		t.Fatalf("unexpected exit code: %v", err)
	}
	for _, token := range []string{"serve", "lint", "test", "all"} {
		if !strings.Contains(err.Error(), token) {
			t.Fatalf("usage message missing %q: %v", token, err)
		}
	}
}

func TestExecuteUnknownCommandIgnoresTrailingArgs(t *testing.T) {
	err := Execute([]string{"bogus", "extra", "args"})
	if err == nil {
		t.Fatalf("expected error")
	}
	ec, ok := err.(interface{ ExitCode() int })
	if !ok || ec.ExitCode() != 2 {
		t.Fatalf("unexpected exit code: %v", err)
	}
}

func TestWorkflowSubcommandsRegistered(t *testing.T) {
	cmd := NewRootCmd()
	want := map[string]bool{"serve": false, "lint": false, "test": false, "all": false, "version": false, "doctor": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("subcommand %s not registered", name)
		}
	}
}
