// Command htmldom is a CLI tool for parsing and querying HTML documents.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corewell/htmldom"
	"github.com/corewell/htmldom/dom"
	// Import selector package to register selector functions via init().
	_ "github.com/corewell/htmldom/selector"
	"github.com/corewell/htmldom/serialize"
	"github.com/corewell/htmldom/stream"
)

// Output format constants.
const (
	outputFormatHTML     = "html"
	outputFormatText     = "text"
	outputFormatMarkdown = "markdown"
)

var version = "dev"

// cliConfig holds the CLI configuration, populated from RootCmd's flags.
type cliConfig struct {
	selector  string
	format    string
	first     bool
	separator string
	strip     bool
	pretty    bool
	indent    int
	xml       bool
	stream    bool
}

var cfg cliConfig

// RootCmd is the main command for the 'htmldom' binary.
var RootCmd = &cobra.Command{
	Use:     "htmldom <file>",
	Short:   "Parse and query HTML documents",
	Long:    "htmldom parses and queries HTML documents with CSS selectors, emitting HTML, text, or Markdown.",
	Args:    requireInputFile,
	Version: version,
	Example: "  htmldom index.html                    Parse and pretty-print HTML\n" +
		"  htmldom -s 'p' index.html             Extract all <p> elements\n" +
		"  htmldom -s 'h1' -f text index.html    Extract h1 text content\n" +
		"  curl -s URL | htmldom -s 'title' -    Extract title from piped HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func requireInputFile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing input file")
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts exactly one file argument, received %d", len(args))
	}
	return nil
}

func init() {
	flags := RootCmd.Flags()
	flags.StringVarP(&cfg.selector, "selector", "s", "", "CSS selector to filter output")
	flags.StringVarP(&cfg.format, "format", "f", outputFormatHTML, "Output format: html, text, markdown")
	flags.BoolVar(&cfg.first, "first", false, "Output only first match")
	flags.StringVar(&cfg.separator, "separator", " ", "Accepted but not used: text output joins matches with newlines")
	flags.BoolVar(&cfg.strip, "strip", true, "Strip whitespace from text")
	flags.BoolVar(&cfg.pretty, "pretty", true, "Pretty-print HTML output")
	flags.IntVar(&cfg.indent, "indent", 2, "Indentation size for pretty-print")
	flags.BoolVar(&cfg.xml, "xml-coercion", false, "Parse using the XML-coercion tokenizer mode")
	flags.BoolVar(&cfg.stream, "stream", false, "Print tokenizer events instead of building a DOM (ignores -s/-f)")
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath string, stdin io.Reader, stdout io.Writer) error {
	if err := validateFormat(cfg.format); err != nil {
		return err
	}

	input, err := readInput(inputPath, stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if cfg.stream {
		return streamEvents(input, stdout)
	}

	var opts []htmldom.Option
	if cfg.xml {
		opts = append(opts, htmldom.WithXMLCoercion())
	}

	doc, err := htmldom.ParseBytes(input, opts...)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	var nodes []dom.Node
	if cfg.selector != "" {
		elements, err := doc.Query(cfg.selector)
		if err != nil {
			return fmt.Errorf("invalid selector: %w", err)
		}
		if cfg.first && len(elements) > 0 {
			elements = elements[:1]
		}
		for _, elem := range elements {
			nodes = append(nodes, elem)
		}
	} else {
		nodes = []dom.Node{doc}
	}

	output := formatNodes(nodes, &cfg)
	_, err = fmt.Fprint(stdout, output)
	return err
}

// streamEvents prints one line per tokenizer event instead of building a DOM,
// for inspecting the token stream of large documents without the tree-builder
// memory overhead.
func streamEvents(input []byte, stdout io.Writer) error {
	for event := range stream.StreamBytes(input) {
		switch event.Type {
		case stream.StartTagEvent:
			fmt.Fprintf(stdout, "StartTag %s %v\n", event.Name, event.Attrs)
		case stream.EndTagEvent:
			fmt.Fprintf(stdout, "EndTag %s\n", event.Name)
		case stream.TextEvent:
			fmt.Fprintf(stdout, "Text %q\n", event.Data)
		case stream.CommentEvent:
			fmt.Fprintf(stdout, "Comment %q\n", event.Data)
		case stream.DoctypeEvent:
			fmt.Fprintf(stdout, "Doctype %s\n", event.Name)
		}
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case outputFormatHTML, outputFormatText, outputFormatMarkdown:
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be html, text, or markdown", format)
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func formatNodes(nodes []dom.Node, cfg *cliConfig) string {
	if len(nodes) == 0 {
		return ""
	}

	var results []string

	for _, node := range nodes {
		var result string
		switch cfg.format {
		case outputFormatHTML:
			result = formatHTML(node, cfg)
		case outputFormatText:
			result = formatText(node, cfg)
		case outputFormatMarkdown:
			result = formatMarkdown(node, cfg)
		}
		if result != "" {
			results = append(results, result)
		}
	}

	output := strings.Join(results, "\n")
	if output != "" && !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	return output
}

func formatHTML(node dom.Node, cfg *cliConfig) string {
	opts := serialize.Options{
		Pretty:     cfg.pretty,
		IndentSize: cfg.indent,
	}
	return serialize.ToHTML(node, opts)
}

func formatText(node dom.Node, cfg *cliConfig) string {
	text := extractText(node)
	if cfg.strip {
		text = collapseWhitespace(text)
	}
	return text
}

func formatMarkdown(node dom.Node, _ *cliConfig) string {
	return toMarkdown(node)
}
