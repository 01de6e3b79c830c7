package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.dw1.io/reverbose/internal/logger"
	"go.dw1.io/reverbose/json"
)

const digitsDoc = `{"words":[{"word":"OneOrMore","of":[{"word":"AnyDigit"}]}]}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	doc := `{"words":[{"word":"LineStart"},{"word":"Repeat","min":"2","max":4,"of":[{"word":"AnyDigit"}]}]}`

	out, err := run(t, "", "render", doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "^\\d{2,4}\n" {
		t.Fatalf("render output %q", out)
	}

	out, err = run(t, "", "render", "--debug", doc)
	if err != nil {
		t.Fatalf("render --debug: %v", err)
	}
	if !strings.Contains(out, "Pattern(LineStart, Repeat(2, 4, AnyDigit))") || !strings.Contains(out, "hash: ") {
		t.Fatalf("render --debug output %q", out)
	}
}

func TestRenderJSONNormalises(t *testing.T) {
	out, err := run(t, "", "render", "--json", `{"words":[{"word":"Repeat","min":"3","of":[{"word":"Any"}]}]}`)
	if err != nil {
		t.Fatalf("render --json: %v", err)
	}

	var doc struct {
		Words []struct {
			Word string  `json:"word"`
			Min  float64 `json:"min"`
			Max  float64 `json:"max"`
		} `json:"words"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(doc.Words) != 1 || doc.Words[0].Min != 3 || doc.Words[0].Max != 3 {
		t.Fatalf("normalised document %q", out)
	}
}

func TestRenderFromFileAndStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digits.json")
	if err := os.WriteFile(path, []byte(digitsDoc), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	for _, args := range [][]string{{"render", path}, {"render", "-"}} {
		out, err := run(t, digitsDoc, args...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if out != "\\d+\n" {
			t.Fatalf("%v output %q", args, out)
		}
	}
}

func TestMatch(t *testing.T) {
	out, err := run(t, "", "match", digitsDoc, "a1b22c333")
	if err != nil || out != "1\n" {
		t.Fatalf("match = %q, %v", out, err)
	}

	out, err = run(t, "", "match", "--all", digitsDoc, "a1b22c333")
	if err != nil || out != "1\n22\n333\n" {
		t.Fatalf("match --all = %q, %v", out, err)
	}

	out, err = run(t, "a1b22", "match", "--all", digitsDoc)
	if err != nil || out != "1\n22\n" {
		t.Fatalf("match from stdin = %q, %v", out, err)
	}

	if _, err := run(t, "", "match", "--full", digitsDoc, "123a"); !errors.Is(err, errNoMatch) {
		t.Fatalf("match --full err = %v", err)
	}
	if _, err := run(t, "", "match", digitsDoc, "none"); !errors.Is(err, errNoMatch) {
		t.Fatalf("match without matches err = %v", err)
	}
}

func TestMatchFlagsAndFile(t *testing.T) {
	doc := `{"words":[{"word":"Literal","text":"abc"}]}`
	path := filepath.Join(t.TempDir(), "subject.txt")
	if err := os.WriteFile(path, []byte("xx ABC yy"), 0o644); err != nil {
		t.Fatalf("write subject: %v", err)
	}

	if _, err := run(t, "", "match", "--file", path, doc); !errors.Is(err, errNoMatch) {
		t.Fatalf("case-sensitive match err = %v", err)
	}
	out, err := run(t, "", "match", "-i", "--file", path, doc)
	if err != nil || out != "ABC\n" {
		t.Fatalf("match -i = %q, %v", out, err)
	}
}

func TestSubjectFileIsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject.txt")
	if err := os.WriteFile(path, []byte("id 42"), 0o644); err != nil {
		t.Fatalf("write subject: %v", err)
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs([]string{"match", "--log-level", "debug", "--file", path, digitsDoc})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	t.Cleanup(func() { _ = logger.Init("info", os.Stderr) })

	if err := cmd.Execute(); err != nil || out.String() != "42\n" {
		t.Fatalf("match = %q, %v", out.String(), err)
	}
	if log := errOut.String(); !strings.Contains(log, "bytes=5") || !strings.Contains(log, "subject.txt") {
		t.Fatalf("debug log missing subject details: %q", log)
	}
}

func TestMatchJSON(t *testing.T) {
	doc := `{"words":[{"word":"NamedGroup","name":"year","of":[{"word":"Repeat","min":4,"of":[{"word":"AnyDigit"}]}]}]}`
	out, err := run(t, "", "match", "--json", doc, "in 2024")
	if err != nil {
		t.Fatalf("match --json: %v", err)
	}

	var got matchResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := matchResult{
		Match:  "2024",
		Span:   [2]int{3, 7},
		Groups: []string{"2024"},
		Named:  map[string]string{"year": "2024"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("match result mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceAndSplit(t *testing.T) {
	out, err := run(t, "", "replace", digitsDoc, "#", "a1b22")
	if err != nil || out != "a#b#" {
		t.Fatalf("replace = %q, %v", out, err)
	}

	sep := `{"words":[{"word":"Literal","text":","},{"word":"ZeroOrMore","of":[{"word":"Whitespace"}]}]}`
	out, err = run(t, "", "split", sep, "a, b,c")
	if err != nil || out != "a\nb\nc\n" {
		t.Fatalf("split = %q, %v", out, err)
	}

	out, err = run(t, "", "split", "-n", "2", sep, "a, b,c")
	if err != nil || out != "a\nb,c\n" {
		t.Fatalf("split -n 2 = %q, %v", out, err)
	}
}

func TestEngineSelection(t *testing.T) {
	doc := `{"words":[{"word":"LookAhead","of":[{"word":"Literal","text":"x"}]}]}`

	if _, err := run(t, "", "match", "--engine", "re2", doc, "x"); err == nil || errors.Is(err, errNoMatch) {
		t.Fatalf("re2 accepted lookahead: %v", err)
	}
	// The lookahead matches the empty string in front of "x".
	if out, err := run(t, "", "match", "--engine", "pcre", doc, "x"); err != nil || out != "\n" {
		t.Fatalf("pcre lookahead = %q, %v", out, err)
	}
	if _, err := run(t, "", "render", "--engine", "nope", doc); err != nil {
		t.Fatalf("render does not compile and should ignore the engine: %v", err)
	}
	if _, err := run(t, "", "match", "--engine", "nope", doc, "x"); err == nil {
		t.Fatalf("unknown engine accepted")
	}
}

func TestBadInput(t *testing.T) {
	if _, err := run(t, "", "render", `{"words":[{"word":"Sometimes"}]}`); err == nil {
		t.Fatalf("unknown word accepted")
	}
	if _, err := run(t, "", "render", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing document accepted")
	}
	if _, err := run(t, "", "--log-level", "chatty", "render", digitsDoc); err == nil {
		t.Fatalf("unknown log level accepted")
	}
}

func TestReadablePaths(t *testing.T) {
	root := newRootCmd()
	match, _, err := root.Find([]string{"match"})
	if err != nil {
		t.Fatalf("find match: %v", err)
	}
	if err := match.Flags().Set("file", "/tmp/subject.txt"); err != nil {
		t.Fatalf("set --file: %v", err)
	}

	got := readablePaths(match, []string{"doc.json", "ignored"})
	if diff := cmp.Diff([]string{"doc.json", "/tmp/subject.txt"}, got); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	if got := readablePaths(match, []string{digitsDoc}); len(got) != 1 {
		t.Fatalf("inline document treated as a path: %v", got)
	}
}
