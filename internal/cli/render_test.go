package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/errors"
)

// run executes the root command with args inside a fresh working directory.
func run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	if err := os.WriteFile(name, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func TestRenderSample(t *testing.T) {
	chdir(t, t.TempDir())

	if err := run(t, ""); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	page := readFile(t, "hierarchical_notes.html")
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Errorf("output is not HTML: %.40q", page)
	}
	if !strings.Contains(page, ">Hierarchical Notes</text>") {
		t.Error("sample outline not rendered")
	}
}

func TestRenderFile(t *testing.T) {
	chdir(t, t.TempDir())
	writeFile(t, "notes.txt", "Plan\n  <b>bold</b>\n")

	if err := run(t, "", "notes.txt", "-o", "out.html"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	page := readFile(t, "out.html")
	if !strings.Contains(page, "<b>bold</b>") {
		t.Error("box text should be written verbatim")
	}
	if _, err := os.Stat("hierarchical_notes.html"); !os.IsNotExist(err) {
		t.Error("default output should not be written when -o is given")
	}
}

func TestRenderStdin(t *testing.T) {
	chdir(t, t.TempDir())

	if err := run(t, "from stdin", "-", "-f", "svg"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	svg := readFile(t, "hierarchical_notes.svg")
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, ">from stdin</text>") {
		t.Errorf("unexpected svg: %.80q", svg)
	}
}

func TestRenderFormats(t *testing.T) {
	chdir(t, t.TempDir())
	writeFile(t, "notes.txt", "A\n  B")

	tests := []struct {
		format string
		prefix string
	}{
		{"html", "<!DOCTYPE html>"},
		{"svg", "<svg"},
		{"json", "{"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := "out." + tt.format
			if err := run(t, "", "notes.txt", "-f", tt.format, "-o", out); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if got := readFile(t, out); !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("%s output starts %.20q, want %q", tt.format, got, tt.prefix)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	chdir(t, t.TempDir())
	writeFile(t, "big.txt", strings.Repeat("x", 10001))
	writeFile(t, "bad.toml", "[output]\nformat = \"gif\"\n")
	if err := os.Mkdir("dir", 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"missing.txt"}, errors.ErrCodeInputNotFound},
		{"directory", []string{"dir"}, errors.ErrCodeInputUnreadable},
		{"too large", []string{"big.txt"}, errors.ErrCodeInputTooLarge},
		{"bad config", []string{"--config", "bad.toml"}, errors.ErrCodeInvalidConfig},
		{"output is directory", []string{"-o", "dir/"}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(t, "", tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("run(%v) error = %v, want %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestRenderInvalidFormatFlag(t *testing.T) {
	chdir(t, t.TempDir())
	if err := run(t, "", "-f", "gif"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if _, err := os.Stat("hierarchical_notes.html"); !os.IsNotExist(err) {
		t.Error("nothing should be written on a flag error")
	}
}

func TestRenderTooManyArgs(t *testing.T) {
	chdir(t, t.TempDir())
	if err := run(t, "", "a.txt", "b.txt"); err == nil {
		t.Fatal("expected an error for two inputs")
	}
}

func TestRenderConfig(t *testing.T) {
	chdir(t, t.TempDir())
	writeFile(t, "notes.txt", "A")
	writeFile(t, "hnotes.toml", "[output]\npath = \"from-config.svg\"\nformat = \"svg\"\n")

	if err := run(t, "", "notes.txt", "--config", "hnotes.toml"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(readFile(t, "from-config.svg"), "<svg") {
		t.Error("config output path/format not applied")
	}

	// Flags set on the command line win over the file.
	if err := run(t, "", "notes.txt", "--config", "hnotes.toml", "-o", "flag.html", "-f", "html"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(readFile(t, "flag.html"), "<!DOCTYPE html>") {
		t.Error("flags should override the config file")
	}

	// A config format without a path names the output after the format.
	writeFile(t, "svg-only.toml", "[output]\nformat = \"svg\"\n")
	if err := run(t, "", "notes.txt", "--config", "svg-only.toml"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(readFile(t, "hierarchical_notes.svg"), "<svg") {
		t.Error("svg output should go to hierarchical_notes.svg")
	}
	if _, err := os.Stat("hierarchical_notes.html"); !os.IsNotExist(err) {
		t.Error("svg bytes should not be written to an .html file")
	}

	// --format overrides the config format and still picks the matching name.
	if err := run(t, "", "notes.txt", "--config", "svg-only.toml", "-f", "json"); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(readFile(t, "hierarchical_notes.json"), "{") {
		t.Error("json output should go to hierarchical_notes.json")
	}
}

func TestRenderCache(t *testing.T) {
	chdir(t, t.TempDir())
	writeFile(t, "notes.txt", "A\n  B")
	cacheDir := filepath.Join(t.TempDir(), "cache")

	for i := 0; i < 2; i++ {
		if err := run(t, "", "notes.txt", "--cache-dir", cacheDir); err != nil {
			t.Fatalf("run %d error = %v", i, err)
		}
	}
	first := readFile(t, "hierarchical_notes.html")

	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("cache directory is empty")
	}

	if err := run(t, "", "cache", "clear", "--cache-dir", cacheDir); err != nil {
		t.Fatalf("cache clear error = %v", err)
	}
	entries, _ = os.ReadDir(cacheDir)
	if len(entries) != 0 {
		t.Errorf("cache clear left %d entries", len(entries))
	}

	if err := run(t, "", "notes.txt", "--cache-dir", cacheDir); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, "hierarchical_notes.html"); got != first {
		t.Error("output changed after clearing the cache")
	}
}

func TestCachePath(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path", "--cache-dir", "/tmp/hnotes-cache"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "/tmp/hnotes-cache" {
		t.Errorf("cache path = %q", got)
	}
}

func TestRenderReportsToCommandOutput(t *testing.T) {
	chdir(t, t.TempDir())
	writeFile(t, "notes.txt", "A\n  B")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"notes.txt"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Wrote hierarchical_notes.html", "3 boxes", "3 levels", "fresh"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCacheClearReportsToCommandOutput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "clear", "--cache-dir", t.TempDir()})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Cleared 0 cached entries") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			root := c.RootCommand()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out.String(), "hnotes") {
				t.Error("completion script should mention the program name")
			}
		})
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"completion", "tcsh"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestFormatFlag(t *testing.T) {
	var f formatFlag
	if err := f.Set("png"); err != nil || f.String() != "png" {
		t.Errorf("Set(png) = %v, value %q", err, f)
	}
	if err := f.Set("bmp"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Set(bmp) error = %v", err)
	}
	if f.Type() != "format" {
		t.Errorf("Type() = %q", f.Type())
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
