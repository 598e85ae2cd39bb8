package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the CLI with args and returns what it wrote.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestParseCommandTree(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a+", "Seq([Plus(Char('a'))])\n"},
		{"a|b", "Or(Seq([Char('a')]), Seq([Char('b')]))\n"},
		{`\*`, "Seq([Char('*')])\n"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			stdout, _, err := execute(t, "", "parse", tt.pattern)
			if err != nil {
				t.Fatalf("parse error = %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestParseCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "", "parse", "--format", "json", "ab")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}

	var got struct {
		Op  string `json:"op"`
		Sub []struct {
			Op   string `json:"op"`
			Char string `json:"char"`
		} `json:"sub"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if got.Op != "Seq" || len(got.Sub) != 2 {
		t.Fatalf("got %+v", got)
	}
	if got.Sub[0].Char != "a" || got.Sub[1].Char != "b" {
		t.Errorf("chars = %q %q, want a b", got.Sub[0].Char, got.Sub[1].Char)
	}
}

func TestParseCommandPP(t *testing.T) {
	stdout, _, err := execute(t, "", "parse", "--format", "pp", "a")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if !strings.Contains(stdout, "syntax.Node") {
		t.Errorf("stdout = %q, want pretty-printed syntax.Node", stdout)
	}
}

func TestParseCommandUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "", "parse", "--format", "xml", "a")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("err = %v, want unknown format", err)
	}
}

func TestParseCommandError(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "invalid escape",
			pattern: `a\d`,
			want:    "ParseError: invalid escape: pos = 2, char = 'd'\n  a\\d\n    ^\n",
		},
		{
			name:    "no previous",
			pattern: "a|*",
			want:    "ParseError: no previous expression: pos = 2\n  a|*\n    ^\n",
		},
		{
			name:    "unclosed group",
			pattern: "(ab",
			want:    "ParseError: no right parenthesis\n  (ab\n     ^\n",
		},
		{
			name:    "multibyte prefix",
			pattern: "日本)",
			want:    "ParseError: invalid right parenthesis: pos = 2\n  日本)\n    ^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, "", "parse", tt.pattern)
			if !errors.Is(err, errReported) {
				t.Fatalf("err = %v, want errReported", err)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			if stderr != tt.want {
				t.Errorf("stderr =\n%s\nwant\n%s", stderr, tt.want)
			}
		})
	}
}

func TestLiteralsCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "literals", "colou?r")
	if err != nil {
		t.Fatalf("literals error = %v", err)
	}

	want := `prefixes:
  "color"
  "colour"
suffixes:
  "color"
  "colour"
exact:
  "color"
  "colour"
prefilter: aho-corasick(2 literals)
`
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}
}

func TestLiteralsCommandIncomplete(t *testing.T) {
	stdout, _, err := execute(t, "", "literals", "ab+")
	if err != nil {
		t.Fatalf("literals error = %v", err)
	}

	want := `prefixes:
  "ab" (incomplete)
suffixes:
  "b" (incomplete)
exact: none
prefilter: memmem("ab")
`
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}
}

func TestLiteralsCommandParseError(t *testing.T) {
	_, _, err := execute(t, "", "literals", "+")
	if err == nil || errors.Is(err, errReported) {
		t.Fatalf("err = %v, want parse error returned to caller", err)
	}
	if !strings.Contains(err.Error(), "no previous expression") {
		t.Errorf("err = %v", err)
	}
}

func TestScanCommandStdin(t *testing.T) {
	input := "first line\nan error here\nok\nerrors again\n"
	stdout, _, err := execute(t, input, "scan", "error")
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}

	want := "2:an error here\n4:errors again\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestScanCommandFiles(t *testing.T) {
	a := writeFile(t, "a.txt", "cat\ndog\nbird\n")
	b := writeFile(t, "b.txt", "hotdog\n")

	stdout, _, err := execute(t, "", "scan", "cat|dog", a, b)
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}

	want := a + ":1:cat\n" + a + ":2:dog\n" + b + ":1:hotdog\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestScanCommandCount(t *testing.T) {
	stdout, _, err := execute(t, "x\ny\nxx\n", "scan", "--count", "x+")
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}
	if stdout != "2\n" {
		t.Errorf("stdout = %q, want %q", stdout, "2\n")
	}
}

func TestScanCommandVerifies(t *testing.T) {
	input := "abc\nabx\nabbbc\n"

	stdout, _, err := execute(t, input, "scan", "ab+c")
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}
	if stdout != "1:abc\n3:abbbc\n" {
		t.Errorf("stdout = %q", stdout)
	}

	// Every line holds the prefix literal "ab".
	stdout, _, err = execute(t, input, "scan", "--candidates", "ab+c")
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}
	if stdout != "1:abc\n2:abx\n3:abbbc\n" {
		t.Errorf("candidates stdout = %q", stdout)
	}
}

func TestScanCommandNoPrefilter(t *testing.T) {
	stdout, stderr, err := execute(t, "a\nb\n", "scan", "--candidates", "z*")
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}
	if stdout != "1:a\n2:b\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "every line is a candidate") {
		t.Errorf("stderr = %q, want warning", stderr)
	}
}

func TestScanCommandMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "scan", "a", filepath.Join(t.TempDir(), "missing"))
	if err == nil || !strings.Contains(err.Error(), "open") {
		t.Errorf("err = %v, want open error", err)
	}
}

func TestConfigFlag(t *testing.T) {
	path := writeFile(t, "resyntax.yaml", "enable_prefilter: false\n")

	stdout, _, err := execute(t, "", "literals", "--config", path, "hello")
	if err != nil {
		t.Fatalf("literals error = %v", err)
	}
	if !strings.Contains(stdout, "prefilter: none\n") {
		t.Errorf("stdout = %q, want prefilter: none", stdout)
	}
	if !strings.Contains(stdout, `"hello"`) {
		t.Errorf("stdout = %q, want literals still extracted", stdout)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "parse", "--verbose", "hello")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if !strings.Contains(stderr, "pattern parsed") || !strings.Contains(stderr, "prefilter=") {
		t.Errorf("stderr = %q, want debug log", stderr)
	}
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "", "parse", "hello")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(stdout, "resyntax "+Version+"\n") {
		t.Errorf("stdout = %q", stdout)
	}
	for _, field := range []string{"Git Commit:", "Build Date:", "Go Version:", "OS/Arch:", "SIMD:"} {
		if !strings.Contains(stdout, field) {
			t.Errorf("stdout missing %q", field)
		}
	}
}
