package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestNameLess(t *testing.T) {
	names := []string{"25", "9b", "21b", "9a", "10", "21a", "3"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"3", "9a", "9b", "10", "21a", "21b", "25"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v; want %v", names, want)
	}
}

func TestRegisteredSolutions(t *testing.T) {
	got := solutions.names()
	want := []string{"21a", "21b", "22a", "22b", "23a", "23b", "24a", "24b", "25"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
	if got, want := solutions.latest(), []string{"25"}; !reflect.DeepEqual(got, want) {
		t.Errorf("latest: got %v; want %v", got, want)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate name did not panic")
		}
	}()
	register("25", day25)
}

func echoSolution(prefix string) solution {
	return func(input string) (string, error) {
		return prefix + strings.TrimSpace(input), nil
	}
}

func testRegistry() registry {
	return registry{
		"1a": echoSolution("1a:"),
		"1b": echoSolution("1b:"),
		"2a": echoSolution("2a:"),
		"2b": echoSolution("2b:"),
		"3x": func(string) (string, error) { return "", errors.New("boom") },
	}
}

func TestResolve(t *testing.T) {
	reg := testRegistry()
	for _, tt := range []struct {
		args []string
		want []string
	}{
		{nil, []string{"3x"}},
		{[]string{"all"}, []string{"1a", "1b", "2a", "2b", "3x"}},
		{[]string{"2b", "1a"}, []string{"2b", "1a"}},
	} {
		got, err := reg.resolve(tt.args)
		if err != nil {
			t.Errorf("resolve(%q): %s", tt.args, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("resolve(%q): got %v; want %v", tt.args, got, tt.want)
		}
	}
	if _, err := reg.resolve([]string{"1a", "7"}); !errors.Is(err, errUnknownSolution) {
		t.Errorf("got err %v; want %v", err, errUnknownSolution)
	}
}

func TestRunnerStdin(t *testing.T) {
	var out bytes.Buffer
	r := &runner{
		solutions: testRegistry(),
		stdin:     strings.NewReader("hello\n"),
		w:         &out,
	}
	if err := r.runArgs([]string{"1a"}); err != nil {
		t.Fatal(err)
	}
	// stdin is read once and reused.
	if err := r.runArgs([]string{"2b", "1b"}); err != nil {
		t.Fatal(err)
	}
	want := "1a:hello\n2b: 2b:hello\n1b: 1b:hello\n"
	if got := out.String(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestRunnerInputDir(t *testing.T) {
	dir := t.TempDir()
	for name, contents := range map[string]string{
		"1.txt": "one",
		"2.txt": "two",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
	var out bytes.Buffer
	r := &runner{
		solutions: testRegistry(),
		inputDir:  dir,
		w:         &out,
	}
	if err := r.runArgs([]string{"1a", "2a", "1b"}); err != nil {
		t.Fatal(err)
	}
	want := "1a: 1a:one\n2a: 2a:two\n1b: 1b:one\n"
	if got := out.String(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if err := r.runArgs([]string{"3x"}); err == nil {
		t.Error("missing input file: got nil error")
	}
}

func TestRunnerInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("5764801\n17807724\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r := &runner{
		solutions: solutions,
		inputFile: path,
		inputDir:  "/nonexistent",
		w:         &out,
	}
	if err := r.runArgs(nil); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "14897079\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestRunnerSolutionError(t *testing.T) {
	var out bytes.Buffer
	r := &runner{
		solutions: testRegistry(),
		stdin:     strings.NewReader("x"),
		w:         &out,
	}
	err := r.runArgs([]string{"all"})
	if err == nil || !strings.Contains(err.Error(), "3x: boom") {
		t.Errorf("got err %v; want 3x: boom", err)
	}
	if out.Len() > 0 {
		t.Errorf("got output %q after failure", out.String())
	}
}

func TestRunnerVerbose(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	var out bytes.Buffer
	r := &runner{
		solutions: testRegistry(),
		stdin:     strings.NewReader("v"),
		w:         &out,
		verbose:   true,
	}
	if err := r.runArgs([]string{"1a", "2a"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "1a: 1a:v\n2a: 2a:v\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestProfiled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile")
	var called bool
	err := profiled(path, func() error {
		called = true
		newCracker(handshakeSubject).transform(1<<64 - 1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("profiled did not call fn")
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("profile is empty")
	}
}

func TestProfiledError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile")
	errFn := errors.New("fn failed")
	if err := profiled(path, func() error { return errFn }); err != errFn {
		t.Errorf("got err %v; want %v", err, errFn)
	}
	if err := profiled("", func() error { return errFn }); err != errFn {
		t.Errorf("no profile: got err %v; want %v", err, errFn)
	}
	bad := filepath.Join(t.TempDir(), "missing", "profile")
	if err := profiled(bad, func() error { return nil }); err == nil {
		t.Error("uncreatable profile file: got nil error")
	}
}

func TestReplNeedsInputSource(t *testing.T) {
	r := &runner{solutions: testRegistry(), stdin: strings.NewReader("1a\n")}
	if err := repl(r, filepath.Join(t.TempDir(), "history")); err == nil {
		t.Error("repl without an input source: got nil error")
	}
}
