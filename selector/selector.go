// Package selector implements CSS selector parsing and matching over the
// dom package's Element tree.
package selector

import (
	"github.com/corewell/htmldom/dom"
)

// Selector represents a parsed CSS selector.
type Selector interface {
	// Match returns true if the element matches this selector.
	Match(element *dom.Element) bool

	// String returns the original selector string.
	String() string
}

func init() {
	dom.SetSelectorMatch(Match)
	dom.SetSelectorMatchFirst(MatchFirst)
	dom.SetSelectorMatchesSelf(func(el *dom.Element, selector string) (bool, error) {
		sel, err := Parse(selector)
		if err != nil {
			return false, err
		}
		return sel.Match(el), nil
	})
}

// parsedSelector adapts the parser's internal AST to the public Selector
// interface.
type parsedSelector struct {
	raw  string
	list SelectorList
}

// Match implements Selector.
func (p *parsedSelector) Match(element *dom.Element) bool {
	return matchSelectorList(element, p.list)
}

// String implements Selector.
func (p *parsedSelector) String() string {
	return p.raw
}

// Parse parses a CSS selector string into a matchable Selector.
func Parse(selector string) (Selector, error) {
	toks, err := newTokenizer(selector).tokenize()
	if err != nil {
		return nil, err
	}

	p := newParser(toks, selector)
	ast, err := p.parse()
	if err != nil {
		return nil, err
	}

	list, ok := ast.(SelectorList)
	if !ok {
		// A single ComplexSelector parse result is wrapped so callers always
		// see a uniform SelectorList, matching a comma-separated list of one.
		if complex, ok := ast.(ComplexSelector); ok {
			list = SelectorList{Selectors: []ComplexSelector{complex}}
		}
	}

	return &parsedSelector{raw: selector, list: list}, nil
}

// Match returns all descendant elements of root that match the selector.
// root itself is never included, matching querySelectorAll's "descendants"
// scope.
func Match(root *dom.Element, selector string) ([]*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	var results []*dom.Element
	for _, child := range root.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			matchDescendants(childElem, sel, &results)
		}
	}
	return results, nil
}

// MatchFirst returns the first descendant element (in tree order) that
// matches the selector, or nil.
func MatchFirst(root *dom.Element, selector string) (*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	for _, child := range root.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			if found := findFirst(childElem, sel); found != nil {
				return found, nil
			}
		}
	}
	return nil, nil
}

func matchDescendants(elem *dom.Element, sel Selector, results *[]*dom.Element) {
	if sel.Match(elem) {
		*results = append(*results, elem)
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			matchDescendants(childElem, sel, results)
		}
	}
}

func findFirst(elem *dom.Element, sel Selector) *dom.Element {
	if sel.Match(elem) {
		return elem
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			if found := findFirst(childElem, sel); found != nil {
				return found
			}
		}
	}
	return nil
}
