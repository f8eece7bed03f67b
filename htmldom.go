// Package htmldom provides a pure Go HTML5 parser implementing the WHATWG HTML5 specification.
//
// htmldom is a complete HTML5 parser that handles malformed HTML exactly as browsers do.
// Its tree output is compared with the html5lib-tests tree-construction
// suite in parser_compliance_test.go.
//
// # Basic Usage
//
//	doc, err := htmldom.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Query with CSS selectors
//	paragraphs, _ := doc.Query("p")
//	for _, p := range paragraphs {
//		fmt.Println(p.Text())
//	}
//
// # Features
//
//   - WHATWG tokenization and tree-construction algorithms (the named
//     character reference table is a curated subset, not the full list)
//   - CSS selector support (querySelector/querySelectorAll-style API)
//   - Streaming API for memory-efficient processing
//   - Encoding detection per HTML5 spec, decoding via golang.org/x/text
//   - Fragment parsing for innerHTML-style use cases
//
// For more information, see https://github.com/corewell/htmldom
package htmldom

import (
	"github.com/corewell/htmldom/dom"
	"github.com/corewell/htmldom/encoding"
	htmlerrors "github.com/corewell/htmldom/errors"
	_ "github.com/corewell/htmldom/selector" // registers CSS selector matching with dom.Element.Query
	"github.com/corewell/htmldom/tokenizer"
	"github.com/corewell/htmldom/treebuilder"
)

// Version is the current version of htmldom.
const Version = "0.1.0-dev"

// Parse parses an HTML string and returns a Document.
//
// The parser handles malformed HTML according to the WHATWG HTML5 specification,
// ensuring the same behavior as web browsers.
//
// Example:
//
//	doc, err := htmldom.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		// err contains parse errors if WithCollectErrors() was used
//	}
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	return parse(html, cfg)
}

// ParseBytes parses HTML from a byte slice with automatic encoding detection.
//
// The encoding is detected in this order:
//  1. HTTP Content-Type header (if provided via WithEncoding), which
//     takes precedence over a BOM
//  2. BOM (Byte Order Mark)
//  3. <meta charset> or <meta http-equiv="Content-Type">
//  4. Fallback to windows-1252
//
// Example:
//
//	data, _ := os.ReadFile("page.html")
//	doc, err := htmldom.ParseBytes(data)
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)

	// Detect and decode encoding
	decoded, enc, err := encoding.Decode(html, cfg.encoding)
	if err != nil {
		return nil, err
	}

	doc, err := parse(decoded, cfg)
	if doc != nil {
		doc.CharacterSet = enc.Name
	}
	return doc, err
}

// ParseFragment parses an HTML fragment in a specific context element.
//
// This is equivalent to setting element.innerHTML in browsers. The context
// determines how the fragment is parsed (e.g., parsing "<td>" in a "tr" context
// vs. in a "div" context produces different results).
//
// Example:
//
//	nodes, err := htmldom.ParseFragment("<td>Cell</td>", "tr")
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	cfg := newConfig(opts...)
	cfg.fragmentContext = &treebuilder.FragmentContext{
		TagName:   context,
		Namespace: "html",
	}
	return parseFragment(html, cfg)
}

// parse is the internal parsing implementation.
func parse(html string, cfg *config) (*dom.Document, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	tb := treebuilder.New(tok)
	tb.SetLogger(cfg.logger)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	parseErrs := convertTokenizerErrors(tok.Errors())
	for _, e := range parseErrs {
		htmlerrors.LogParseError(cfg.logger, e)
	}

	if cfg.strict && len(parseErrs) > 0 {
		return nil, parseErrs[0]
	}
	if cfg.collectErrors && len(parseErrs) > 0 {
		return tb.Document(), htmlerrors.ParseErrors(parseErrs)
	}

	return tb.Document(), nil
}

// parseFragment is the internal fragment parsing implementation.
func parseFragment(html string, cfg *config) ([]*dom.Element, error) {
	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	tb.SetLogger(cfg.logger)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	parseErrs := convertTokenizerErrors(tok.Errors())
	for _, e := range parseErrs {
		htmlerrors.LogParseError(cfg.logger, e)
	}

	if cfg.strict && len(parseErrs) > 0 {
		return nil, parseErrs[0]
	}
	if cfg.collectErrors && len(parseErrs) > 0 {
		return tb.FragmentNodes(), htmlerrors.ParseErrors(parseErrs)
	}

	return tb.FragmentNodes(), nil
}

func convertTokenizerErrors(errs []tokenizer.ParseError) []*htmlerrors.ParseError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.Message(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}
