// Package workflow holds the fixed mapping from command tokens to the
// external tool invocations they stand for, and the sequential executor
// that runs a sequence fail-fast.
package workflow

import "fmt"

// Step is one external program invocation with fixed arguments.
type Step struct {
	Program string
	Args    []string
}

// Sequence is the ordered list of steps bound to one token.
type Sequence []Step

// DefaultToken is dispatched when the CLI is invoked with no argument.
const DefaultToken = "serve"

var (
	table = map[string]Sequence{}
	order []string
)

// Register binds a token to its sequence. The table is assembled once at
// startup; a duplicate token or a malformed step is a defect in the table
// itself, not a runtime condition, so Register panics.
func Register(token string, seq Sequence) {
	if token == "" {
		panic("workflow: empty token")
	}
	if _, exists := table[token]; exists {
		panic(fmt.Sprintf("workflow: token %s already registered", token))
	}
	if len(seq) == 0 {
		panic(fmt.Sprintf("workflow: token %s has no steps", token))
	}
	for _, s := range seq {
		if s.Program == "" {
			panic(fmt.Sprintf("workflow: token %s has a step without a program", token))
		}
	}
	table[token] = seq
	order = append(order, token)
}

// Lookup returns the sequence for token and whether it exists.
func Lookup(token string) (Sequence, bool) {
	seq, ok := table[token]
	return seq, ok
}

// Names returns the recognized tokens in registration order.
func Names() []string {
	return append([]string(nil), order...)
}

var (
	lintStep = Step{Program: "ruff", Args: []string{"check", "."}}
	testStep = Step{Program: "pytest", Args: []string{"-q"}}
)

func init() {
	Register("serve", Sequence{{Program: "flask", Args: []string{"--app", "app", "run", "--port", "5000"}}})
	Register("lint", Sequence{lintStep})
	Register("test", Sequence{testStep})
	Register("all", Sequence{lintStep, testStep})
}
