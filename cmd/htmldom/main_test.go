package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes RootCmd in-process with the given args and stdin, returning
// captured stdout/stderr. It resets cfg to the flags' registered defaults
// before each invocation so tests don't leak state into one another.
func runCLI(t *testing.T, args []string, stdin io.Reader) (stdout, stderr string, err error) {
	t.Helper()

	cfg = cliConfig{
		format:    outputFormatHTML,
		separator: " ",
		strip:     true,
		pretty:    true,
		indent:    2,
	}

	var outBuf, errBuf bytes.Buffer
	RootCmd.SetArgs(args)
	if stdin != nil {
		RootCmd.SetIn(stdin)
	} else {
		RootCmd.SetIn(strings.NewReader(""))
	}
	RootCmd.SetOut(&outBuf)
	RootCmd.SetErr(&errBuf)

	err = RootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeTestHTML(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestRunFunction(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>Test</p></body></html>`)

	stdout, _, err := runCLI(t, []string{htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "<p>") {
		t.Errorf("expected HTML output, got: %q", stdout)
	}
}

func TestRunFunctionWithSelector(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p class="target">Found</p><p>Not found</p></body></html>`)

	stdout, _, err := runCLI(t, []string{"-s", ".target", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "Found") {
		t.Errorf("expected to find 'Found', got: %q", stdout)
	}
	if strings.Contains(stdout, "Not found") {
		t.Errorf("expected NOT to find 'Not found', got: %q", stdout)
	}
}

func TestRunFunctionStdin(t *testing.T) {
	stdin := strings.NewReader(`<html><body><p>Stdin content</p></body></html>`)

	stdout, _, err := runCLI(t, []string{"-"}, stdin)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "Stdin content") {
		t.Errorf("expected stdin content in output, got: %q", stdout)
	}
}

func TestSelectorShorthand(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p class="target">Found</p><p>Other</p></body></html>`)

	tests := []struct {
		name string
		args []string
	}{
		{"long flag", []string{"--selector", ".target", htmlFile}},
		{"short flag", []string{"-s", ".target", htmlFile}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.args, nil)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if !strings.Contains(stdout, "Found") {
				t.Errorf("expected output to contain 'Found', got: %q", stdout)
			}
			if strings.Contains(stdout, "Other") {
				t.Errorf("expected output NOT to contain 'Other', got: %q", stdout)
			}
		})
	}
}

func TestFormatShorthand(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>Test</p></body></html>`)

	tests := []struct {
		name   string
		args   []string
		noTags bool
	}{
		{"long flag text", []string{"--format", "text", htmlFile}, true},
		{"short flag text", []string{"-f", "text", htmlFile}, true},
		{"long flag html", []string{"--format", "html", htmlFile}, false},
		{"short flag html", []string{"-f", "html", htmlFile}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.args, nil)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			hasTags := strings.Contains(stdout, "<p>")
			if tt.noTags && hasTags {
				t.Errorf("text format should not contain tags, got: %q", stdout)
			}
			if !tt.noTags && !hasTags {
				t.Errorf("html format should contain tags, got: %q", stdout)
			}
		})
	}
}

func TestInvalidSelector(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>Test</p></body></html>`)

	_, _, err := runCLI(t, []string{"-s", "[[invalid", htmlFile}, nil)
	if err == nil {
		t.Fatal("expected error for invalid selector, got success")
	}
	if !strings.Contains(err.Error(), "invalid selector") {
		t.Errorf("expected 'invalid selector' in error, got: %v", err)
	}
}

func TestEmptySelector(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>Test</p></body></html>`)

	stdout, _, err := runCLI(t, []string{htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "<html>") {
		t.Errorf("expected full document, got: %q", stdout)
	}
}

func TestIndentOption(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><div><p>Test</p></div></body></html>`)

	for _, indent := range []string{"2", "4"} {
		t.Run("indent "+indent, func(t *testing.T) {
			stdout, _, err := runCLI(t, []string{"--indent", indent, htmlFile}, nil)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if stdout == "" {
				t.Error("expected output, got empty")
			}
		})
	}
}

func TestStripOption(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>   Text   with   spaces   </p></body></html>`)

	tests := []struct {
		name            string
		stripFlag       string
		expectCollapsed bool
	}{
		{"strip enabled", "true", true},
		{"strip disabled", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, []string{"-f", "text", "--strip=" + tt.stripFlag, htmlFile}, nil)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			hasMultipleSpaces := strings.Contains(stdout, "  ")
			if tt.expectCollapsed && hasMultipleSpaces {
				t.Errorf("expected collapsed whitespace, got: %q", stdout)
			}
		})
	}
}

func TestSeparatorOption(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>First</p><p>Second</p></body></html>`)

	stdout, _, err := runCLI(t, []string{"-f", "text", "-s", "p", "--separator", " | ", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout == "" {
		t.Error("expected output, got empty")
	}
}

func TestMultipleMatches(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body>
		<div class="item">First</div>
		<div class="item">Second</div>
		<div class="item">Third</div>
	</body></html>`)

	stdout, _, err := runCLI(t, []string{"-s", ".item", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"First", "Second", "Third"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got: %q", want, stdout)
		}
	}
}

func TestNoMatches(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>Test</p></body></html>`)

	stdout, _, err := runCLI(t, []string{"-s", ".nonexistent", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.Contains(stdout, "<p>") {
		t.Errorf("expected no <p> in output when selector matches nothing, got: %q", stdout)
	}
}

func TestComplexMarkdown(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body>
		<h1>Main Title</h1>
		<p>Paragraph with <strong>bold</strong> and <em>italic</em> text.</p>
		<ul>
			<li>Item 1</li>
			<li>Item 2</li>
		</ul>
		<blockquote>A quote</blockquote>
		<pre>Code block</pre>
	</body></html>`)

	stdout, _, err := runCLI(t, []string{"-f", "markdown", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expectations := []string{
		"# Main Title", "**bold**", "*italic*", "- Item 1", "- Item 2", "> A quote", "```",
	}
	for _, want := range expectations {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected markdown output to contain %q, got: %q", want, stdout)
		}
	}
}

func TestMarkdownTable(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><table><thead><tr><th>Name</th><th>Age</th></tr></thead><tbody><tr><td>Alice</td><td>30</td></tr></tbody></table></body></html>`)

	stdout, _, err := runCLI(t, []string{"-f", "markdown", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "| Name | Age |") {
		t.Errorf("expected markdown table header, got: %q", stdout)
	}
	if !strings.Contains(stdout, "| --- | --- |") {
		t.Errorf("expected markdown table separator, got: %q", stdout)
	}
	if !strings.Contains(stdout, "| Alice | 30 |") {
		t.Errorf("expected markdown table row, got: %q", stdout)
	}
}

func TestMarkdownLink(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><a href="https://example.com">Example</a></body></html>`)

	stdout, _, err := runCLI(t, []string{"-f", "markdown", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "[Example](https://example.com)") {
		t.Errorf("expected markdown link, got: %q", stdout)
	}
}

func TestMarkdownImage(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><img src="test.jpg" alt="Test Image"></body></html>`)

	stdout, _, err := runCLI(t, []string{"-f", "markdown", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "![Test Image](test.jpg)") {
		t.Errorf("expected markdown image syntax, got: %q", stdout)
	}
}

func TestMarkdownBlockquote(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><blockquote>Quote text</blockquote></body></html>`)

	stdout, _, err := runCLI(t, []string{"-f", "markdown", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "> Quote text") {
		t.Errorf("expected markdown blockquote syntax, got: %q", stdout)
	}
}

func TestMarkdownCodeBlock(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><pre>code here</pre></body></html>`)

	stdout, _, err := runCLI(t, []string{"-f", "markdown", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "```") {
		t.Errorf("expected markdown code block syntax, got: %q", stdout)
	}
	if !strings.Contains(stdout, "code here") {
		t.Errorf("expected code content, got: %q", stdout)
	}
}

func TestStdinWithSelector(t *testing.T) {
	stdin := strings.NewReader(`<html><body><h1>Title</h1><p>Content</p></body></html>`)

	stdout, _, err := runCLI(t, []string{"-s", "h1", "-"}, stdin)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "Title") {
		t.Errorf("expected 'Title' in output, got: %q", stdout)
	}
	if strings.Contains(stdout, "Content") {
		t.Errorf("expected NOT to find 'Content' (filtered by selector), got: %q", stdout)
	}
}

func TestStdinWithTextFormat(t *testing.T) {
	stdin := strings.NewReader(`<html><body><p>Hello <strong>World</strong></p></body></html>`)

	stdout, _, err := runCLI(t, []string{"-f", "text", "-"}, stdin)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.Contains(stdout, "<") {
		t.Errorf("text format should not contain HTML tags, got: %q", stdout)
	}
	if !strings.Contains(stdout, "Hello") || !strings.Contains(stdout, "World") {
		t.Errorf("expected text content, got: %q", stdout)
	}
}

func TestEmptyFile(t *testing.T) {
	htmlFile := writeTestHTML(t, "empty.html", "")

	stdout, _, err := runCLI(t, []string{htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "<html>") {
		t.Errorf("expected HTML structure even for empty file, got: %q", stdout)
	}
}

func TestLargeFile(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html><html><body>")
	for range 1000 {
		sb.WriteString("<p>Paragraph ")
		sb.WriteString(strings.Repeat("x", 100))
		sb.WriteString("</p>")
	}
	sb.WriteString("</body></html>")
	htmlFile := writeTestHTML(t, "large.html", sb.String())

	stdout, _, err := runCLI(t, []string{htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout == "" {
		t.Error("expected output for large file, got empty")
	}
}

func TestSpecialCharactersInPath(t *testing.T) {
	htmlFile := writeTestHTML(t, "test file with spaces.html", `<!DOCTYPE html><html><body><p>Test</p></body></html>`)

	stdout, _, err := runCLI(t, []string{htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "<p>") {
		t.Errorf("expected HTML output, got: %q", stdout)
	}
}

func TestStreamFlag(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>Hi</p></body></html>`)

	stdout, _, err := runCLI(t, []string{"--stream", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"StartTag html", "StartTag p", "Text \"Hi\"", "EndTag p"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected stream output to contain %q, got: %q", want, stdout)
		}
	}
}

func TestXMLCoercionFlag(t *testing.T) {
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>Test</p></body></html>`)

	stdout, _, err := runCLI(t, []string{"--xml-coercion", htmlFile}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(stdout, "<p>") {
		t.Errorf("expected HTML output, got: %q", stdout)
	}
}

// --- black-box tests that exercise the compiled binary directly ---

func buildTestBinary(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	binary := filepath.Join(tmpDir, "htmldom")

	cmd := exec.Command("go", "build", "-o", binary, ".")
	cmd.Dir = filepath.Join(filepath.Dir(mustFindGoMod(t)), "cmd", "htmldom")

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v\noutput: %s", err, output)
	}
	return binary
}

func mustFindGoMod(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}

	for {
		goMod := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goMod); err == nil {
			return goMod
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find go.mod")
		}
		dir = parent
	}
}

func TestVersion(t *testing.T) {
	binary := buildTestBinary(t)

	tests := []struct {
		name string
		args []string
	}{
		{"long flag", []string{"--version"}},
		{"short flag", []string{"-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binary, tt.args...)
			output, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatalf("command failed: %v, output: %s", err, output)
			}
			if !strings.Contains(string(output), "htmldom version") {
				t.Errorf("expected version output, got: %q", output)
			}
		})
	}
}

func TestMissingInput(t *testing.T) {
	binary := buildTestBinary(t)

	cmd := exec.Command(binary)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for missing input, got success")
	}
	if !strings.Contains(stderr.String(), "missing input file") {
		t.Errorf("expected 'missing input file' in stderr, got: %q", stderr.String())
	}
}

func TestParseFile(t *testing.T) {
	binary := buildTestBinary(t)
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><head><title>Test</title></head><body><p>Hello</p></body></html>`)

	cmd := exec.Command(binary, htmlFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, output)
	}
	got := string(output)
	if !strings.Contains(got, "<html>") {
		t.Errorf("expected HTML output containing <html>, got: %q", got)
	}
	if !strings.Contains(got, "<title>") {
		t.Errorf("expected HTML output containing <title>, got: %q", got)
	}
}

func TestParseStdin(t *testing.T) {
	binary := buildTestBinary(t)

	cmd := exec.Command(binary, "-")
	cmd.Stdin = strings.NewReader(`<!DOCTYPE html><html><body><p>From stdin</p></body></html>`)

	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, output)
	}
	if !strings.Contains(string(output), "From stdin") {
		t.Errorf("expected output containing 'From stdin', got: %q", output)
	}
}

func TestInvalidFile(t *testing.T) {
	binary := buildTestBinary(t)

	cmd := exec.Command(binary, "/nonexistent/path/to/file.html")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for non-existent file, got success")
	}
	if !strings.Contains(stderr.String(), "reading input") {
		t.Errorf("expected 'reading input' error in stderr, got: %q", stderr.String())
	}
}

func TestHelp(t *testing.T) {
	binary := buildTestBinary(t)

	cmd := exec.Command(binary, "-h")
	output, _ := cmd.CombinedOutput()

	got := string(output)
	if !strings.Contains(got, "Usage:") {
		t.Errorf("expected usage information, got: %q", got)
	}
	if !strings.Contains(got, "-selector") {
		t.Errorf("expected -selector flag in help, got: %q", got)
	}
	if !strings.Contains(got, "Examples:") {
		t.Errorf("expected Examples section in help, got: %q", got)
	}
}

func TestSelectorFilter(t *testing.T) {
	binary := buildTestBinary(t)
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><h1>Title</h1><p>Para 1</p><p>Para 2</p></body></html>`)

	tests := []struct {
		name     string
		selector string
		contains []string
		excludes []string
	}{
		{"select paragraphs", "p", []string{"<p>", "Para 1", "Para 2"}, []string{"<h1>"}},
		{"select h1", "h1", []string{"<h1>", "Title"}, []string{"<p>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binary, "-s", tt.selector, htmlFile)
			output, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatalf("command failed: %v\noutput: %s", err, output)
			}
			got := string(output)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got: %q", want, got)
				}
			}
			for _, exclude := range tt.excludes {
				if strings.Contains(got, exclude) {
					t.Errorf("expected output NOT to contain %q, got: %q", exclude, got)
				}
			}
		})
	}
}

func TestFirstMatch(t *testing.T) {
	binary := buildTestBinary(t)
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><p>First</p><p>Second</p><p>Third</p></body></html>`)

	cmd := exec.Command(binary, "-s", "p", "--first", htmlFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, output)
	}
	got := string(output)
	if !strings.Contains(got, "First") {
		t.Errorf("expected output to contain 'First', got: %q", got)
	}
	if strings.Contains(got, "Second") {
		t.Errorf("expected output NOT to contain 'Second', got: %q", got)
	}
}

func TestTextFormat(t *testing.T) {
	binary := buildTestBinary(t)
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><h1>Title</h1><p>Hello World</p></body></html>`)

	cmd := exec.Command(binary, "-f", "text", htmlFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, output)
	}
	got := string(output)
	if strings.Contains(got, "<") {
		t.Errorf("text format should not contain HTML tags, got: %q", got)
	}
	if !strings.Contains(got, "Title") || !strings.Contains(got, "Hello World") {
		t.Errorf("expected text content, got: %q", got)
	}
}

func TestInvalidFormat(t *testing.T) {
	binary := buildTestBinary(t)
	htmlFile := writeTestHTML(t, "test.html", "<html></html>")

	cmd := exec.Command(binary, "-f", "invalid", htmlFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for invalid format, got success")
	}
	if !strings.Contains(stderr.String(), "invalid format") {
		t.Errorf("expected 'invalid format' in stderr, got: %q", stderr.String())
	}
}

func TestPrettyPrint(t *testing.T) {
	binary := buildTestBinary(t)
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><head><title>Test</title></head><body><div><p>Hello</p></div></body></html>`)

	cmd := exec.Command(binary, htmlFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, output)
	}
	if !strings.Contains(string(output), "\n") {
		t.Errorf("pretty-printed output should contain newlines, got: %q", output)
	}

	cmd = exec.Command(binary, "--pretty=false", htmlFile)
	if output, err = cmd.CombinedOutput(); err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, output)
	}
}

func TestMarkdownList(t *testing.T) {
	binary := buildTestBinary(t)
	htmlFile := writeTestHTML(t, "test.html", `<!DOCTYPE html><html><body><ul><li>Item 1</li><li>Item 2</li></ul></body></html>`)

	cmd := exec.Command(binary, "-f", "markdown", htmlFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command failed: %v\noutput: %s", err, output)
	}
	got := string(output)
	if !strings.Contains(got, "- Item 1") || !strings.Contains(got, "- Item 2") {
		t.Errorf("expected markdown list items, got: %q", got)
	}
}
