package vcs

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type call struct {
	dir  string
	args []string
}

func fakeRunner(out string, err error, calls *[]call) Runner {
	return func(ctx context.Context, dir string, args ...string) ([]byte, error) {
		*calls = append(*calls, call{dir: dir, args: args})
		return []byte(out), err
	}
}

func TestStagedFiles(t *testing.T) {
	var calls []call
	g := NewWithRunner("/repo", fakeRunner("todo.md\nsrc/main.go\n\nnotes/plan.md\n", nil, &calls))

	files, err := g.StagedFiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"todo.md", "src/main.go", "notes/plan.md"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("expected %v, got %v", want, files)
	}
	if len(calls) != 1 || calls[0].dir != "/repo" {
		t.Fatalf("expected one call in /repo, got %+v", calls)
	}
	if got := strings.Join(calls[0].args, " "); got != "diff --cached --name-only --diff-filter=ACMR" {
		t.Errorf("unexpected git args %q", got)
	}
}

func TestAdd_WrapsError(t *testing.T) {
	boom := errors.New("exit status 128")
	var calls []call
	g := NewWithRunner(".", fakeRunner("", boom, &calls))

	err := g.Add(context.Background(), "todo.md")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if !strings.Contains(err.Error(), "git add todo.md") {
		t.Errorf("expected path in error, got %q", err.Error())
	}
	if got := strings.Join(calls[0].args, " "); got != "add -- todo.md" {
		t.Errorf("unexpected git args %q", got)
	}
}

func TestTopLevel(t *testing.T) {
	var calls []call
	g := NewWithRunner(".", fakeRunner("/home/me/repo\n", nil, &calls))
	root, err := g.TopLevel(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/home/me/repo" {
		t.Errorf("expected %q, got %q", "/home/me/repo", root)
	}
}
