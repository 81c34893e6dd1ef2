package doctor

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRequiredToolsDistinctInOrder(t *testing.T) {
	want := []string{"flask", "ruff", "pytest"}
	if got := requiredTools(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tools: %v", got)
	}
}

func TestCollectToolStatuses(t *testing.T) {
	lookPath := func(name string) (string, error) {
		if name == "ruff" {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + name, nil
	}
	rep := collect(lookPath, t.TempDir())
	if len(rep.Tools) != 3 {
		t.Fatalf("unexpected tool count: %+v", rep.Tools)
	}
	if !rep.Tools[0].Found || rep.Tools[0].Path != "/usr/bin/flask" {
		t.Fatalf("unexpected flask status: %+v", rep.Tools[0])
	}
	if rep.Tools[1].Found || rep.Tools[1].Path != "" {
		t.Fatalf("unexpected ruff status: %+v", rep.Tools[1])
	}
}

func TestGitInfoAbsentOutsideRepository(t *testing.T) {
	if info := gitInfo(t.TempDir()); info != nil {
		t.Fatalf("expected no git info, got %+v", info)
	}
}

func TestPrintReportOneLine(t *testing.T) {
	rep := collect(func(string) (string, error) { return "", errors.New("missing") }, t.TempDir())
	var buf bytes.Buffer
	if err := printReport(&buf, rep, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") || strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", out)
	}
	var decoded Report
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Tools) != len(rep.Tools) {
		t.Fatalf("roundtrip mismatch: %+v", decoded)
	}
}

func TestShortHash(t *testing.T) {
	if got := shortHash("0123456789abcdef"); got != "0123456" {
		t.Fatalf("unexpected short hash %q", got)
	}
	if got := shortHash("abc"); got != "abc" {
		t.Fatalf("unexpected short hash %q", got)
	}
}
