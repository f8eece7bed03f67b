// Package errors defines the two error families used throughout htmldom:
// soft tokenizer/tree-construction parse errors and hard DOM mutation
// errors (see spec section "ERROR HANDLING DESIGN").
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotImplemented is returned when a feature is not yet implemented.
var ErrNotImplemented = errors.New("not implemented")

// ParseError represents a single soft parse error with location information.
// Soft errors never abort parsing; they are only surfaced to callers that
// opt in via WithCollectErrors or WithStrictMode.
type ParseError struct {
	// Code is the error code (e.g., "unexpected-null-character").
	// These codes follow the WHATWG HTML5 specification.
	Code string

	// Message is a human-readable error message.
	Message string

	// Line is the 1-based line number where the error occurred.
	Line int

	// Column is the 1-based column number where the error occurred.
	Column int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParseErrors is a collection of parse errors.
// It implements the error interface so it can be returned from Parse.
type ParseErrors []*ParseError

// Error implements the error interface.
func (e ParseErrors) Error() string {
	if len(e) == 0 {
		return "no parse errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d parse errors:\n", len(e)))
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying errors for errors.Is/As support.
func (e ParseErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// SelectorError represents an error in CSS selector parsing.
type SelectorError struct {
	// Selector is the original selector string.
	Selector string

	// Position is the character position where the error occurred.
	Position int

	// Message describes the error.
	Message string
}

// Error implements the error interface.
func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q at position %d: %s", e.Selector, e.Position, e.Message)
}

// DOMErrorKind names one of the hard DOM mutation error kinds a caller can
// receive synchronously from a dom package mutation method. Unlike
// ParseError, a DOMError always means the requested mutation was refused
// before any part of the tree was touched.
type DOMErrorKind int

// DOM error kinds, matching the DOM Standard's exception names.
const (
	// HierarchyRequestError: a structural invariant would be broken (e.g.
	// inserting a node into its own descendant, or a second doctype).
	HierarchyRequestError DOMErrorKind = iota
	// NotFoundError: a reference child is not a child of the stated parent.
	NotFoundError
	// InvalidCharacterError: a name does not match the XML Name production.
	InvalidCharacterError
	// NamespaceError: a qualified-name/namespace pair is inconsistent.
	NamespaceError
	// IndexSizeError: an index is out of bounds for a collection operation.
	IndexSizeError
	// NotSupportedError: the operation is refused outright (adopting a
	// Document, for instance).
	NotSupportedError
	// SyntaxError: malformed string input to a non-parser API.
	SyntaxError
	// InvalidNodeTypeError: the node kind is wrong for the operation.
	InvalidNodeTypeError
)

// String returns the DOM-Standard exception name for the kind.
func (k DOMErrorKind) String() string {
	switch k {
	case HierarchyRequestError:
		return "HierarchyRequestError"
	case NotFoundError:
		return "NotFoundError"
	case InvalidCharacterError:
		return "InvalidCharacterError"
	case NamespaceError:
		return "NamespaceError"
	case IndexSizeError:
		return "IndexSizeError"
	case NotSupportedError:
		return "NotSupportedError"
	case SyntaxError:
		return "SyntaxError"
	case InvalidNodeTypeError:
		return "InvalidNodeTypeError"
	default:
		return "DOMError"
	}
}

// DOMError is returned synchronously by dom package mutation methods when a
// validation rule rejects the requested mutation. Validation always runs
// to completion before any mutation is performed, so a DOMError never
// leaves the tree partially modified.
type DOMError struct {
	Kind    DOMErrorKind
	Op      string // the operation that was refused, e.g. "appendChild"
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DOMError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

// Unwrap supports errors.Is/errors.As against a wrapped cause.
func (e *DOMError) Unwrap() error {
	return e.Cause
}

// NewDOMError constructs a DOMError for the given operation and kind.
func NewDOMError(op string, kind DOMErrorKind, message string) *DOMError {
	return &DOMError{Op: op, Kind: kind, Message: message}
}
