package doctor

import (
	"encoding/json"
	"fmt"
	"io"

	git "github.com/go-git/go-git/v5"
	"github.com/hubfold/devrun/internal/workflow"
)

// Report is the JSON document doctor prints.
type Report struct {
	Tools []ToolStatus `json:"tools"`
	Git   *GitInfo     `json:"git,omitempty"`
}

// ToolStatus records whether one external program resolves on PATH.
type ToolStatus struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// GitInfo describes where HEAD points. Absent from the report when the
// working directory is not inside a repository.
type GitInfo struct {
	Branch   string `json:"branch,omitempty"`
	Commit   string `json:"commit,omitempty"`
	Detached bool   `json:"detached,omitempty"`
}

// requiredTools lists the distinct programs referenced by the workflow
// table, in token registration order.
func requiredTools() []string {
	seen := map[string]bool{}
	tools := []string{}
	for _, token := range workflow.Names() {
		seq, _ := workflow.Lookup(token)
		for _, step := range seq {
			if seen[step.Program] {
				continue
			}
			seen[step.Program] = true
			tools = append(tools, step.Program)
		}
	}
	return tools
}

// collect builds the report using lookPath to resolve programs. Git failures
// are lenient: the report simply omits the git section.
func collect(lookPath func(string) (string, error), root string) Report {
	rep := Report{Tools: []ToolStatus{}}
	for _, name := range requiredTools() {
		st := ToolStatus{Name: name}
		if p, err := lookPath(name); err == nil {
			st.Found = true
			st.Path = p
		}
		rep.Tools = append(rep.Tools, st)
	}
	rep.Git = gitInfo(root)
	return rep
}

func gitInfo(root string) *GitInfo {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}
	head, err := repo.Head()
	if err != nil {
		return nil
	}
	info := &GitInfo{Commit: shortHash(head.Hash().String())}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	} else {
		info.Detached = true
	}
	return info
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}

func printReport(w io.Writer, rep Report, pretty bool) error {
	if pretty {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	b, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
