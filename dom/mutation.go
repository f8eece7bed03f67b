package dom

import "github.com/corewell/htmldom/errors"

// nodeDocument returns the node's owner document, or the node itself if it
// is a Document (mirrors the DOM Standard's "node document" concept used
// throughout the mutation algorithms below).
func nodeDocument(n Node) *Document {
	if d, ok := n.(*Document); ok {
		return d
	}
	return n.OwnerDocument()
}

// isHostIncludingInclusiveAncestor reports whether ancestor is node or one
// of node's ancestors, for the DOM Standard's insertion validity check.
// htmldom's simplified model has no shadow-root-style host chain and a
// template's content fragment keeps no link to its template element, so
// this reduces to IsAncestorOrSelf: a template element is not treated as
// an ancestor of the nodes inside its content.
func isHostIncludingInclusiveAncestor(ancestor, node Node) bool {
	if IsAncestorOrSelf(ancestor, node) {
		return true
	}
	if frag, ok := ancestor.(*DocumentFragment); ok {
		_ = frag
	}
	return false
}

// ensurePreInsertionValidity implements the DOM Standard's "ensure
// pre-insertion validity" check: parent must be able to accept node as a
// child before refChild, given parent/node/refChild's kinds and current
// positions. Every failure returns a *errors.DOMError and leaves the tree
// untouched.
func ensurePreInsertionValidity(parent, node, refChild Node) error {
	switch parent.(type) {
	case *Document, *DocumentFragment, *Element:
	default:
		return errors.NewDOMError("insert", errors.HierarchyRequestError, "parent node kind cannot have children")
	}

	if isHostIncludingInclusiveAncestor(node, parent) {
		return errors.NewDOMError("insert", errors.HierarchyRequestError, "new node is an ancestor of the parent")
	}

	if refChild != nil && refChild.Parent() != parent {
		return errors.NewDOMError("insert", errors.NotFoundError, "reference child is not a child of parent")
	}

	switch node.(type) {
	case *Element, *Text, *Comment, *CDATASection, *ProcessingInstruction, *DocumentFragment:
	case *DocumentType:
		if _, ok := parent.(*Document); !ok {
			return errors.NewDOMError("insert", errors.HierarchyRequestError, "a doctype can only be a child of a document")
		}
	default:
		return errors.NewDOMError("insert", errors.HierarchyRequestError, "node kind cannot be inserted")
	}

	doc, isDoc := parent.(*Document)
	if !isDoc {
		return nil
	}

	switch n := node.(type) {
	case *DocumentFragment:
		var elementChildren int
		hasText := false
		for _, c := range n.Children() {
			switch c.(type) {
			case *Element:
				elementChildren++
			case *Text:
				hasText = true
			}
		}
		if elementChildren > 1 || hasText {
			return errors.NewDOMError("insert", errors.HierarchyRequestError, "fragment with multiple elements or text cannot be inserted into a document")
		}
		if elementChildren == 1 {
			if doc.DocumentElement() != nil {
				return errors.NewDOMError("insert", errors.HierarchyRequestError, "document already has a document element")
			}
			if refChild != nil {
				if _, ok := refChild.(*DocumentType); ok {
					return errors.NewDOMError("insert", errors.HierarchyRequestError, "document element cannot be inserted before the doctype")
				}
			}
		}
	case *Element:
		if doc.DocumentElement() != nil {
			return errors.NewDOMError("insert", errors.HierarchyRequestError, "document already has a document element")
		}
		if refChild != nil {
			if _, ok := refChild.(*DocumentType); ok {
				return errors.NewDOMError("insert", errors.HierarchyRequestError, "document element cannot be inserted before the doctype")
			}
		}
	case *Text:
		return errors.NewDOMError("insert", errors.HierarchyRequestError, "a document cannot have a text node child")
	case *DocumentType:
		_ = n
		if doc.Doctype != nil {
			return errors.NewDOMError("insert", errors.HierarchyRequestError, "document already has a doctype")
		}
		for _, c := range doc.Children() {
			if _, ok := c.(*Element); ok {
				return errors.NewDOMError("insert", errors.HierarchyRequestError, "doctype cannot follow the document element")
			}
		}
	}

	return nil
}

// PreInsert implements the DOM Standard's "pre-insert" algorithm: validate,
// then insert node into parent before refChild (nil means append). A
// DocumentFragment's children are spliced in and the (now empty) fragment
// is left in place, matching "insert" steps for fragment children.
func PreInsert(parent, node, refChild Node) error {
	if err := ensurePreInsertionValidity(parent, node, refChild); err != nil {
		return err
	}
	insert(parent, node, refChild)
	return nil
}

func insert(parent, node, refChild Node) {
	doc := nodeDocument(parent)

	if frag, ok := node.(*DocumentFragment); ok {
		children := append([]Node(nil), frag.Children()...)
		for _, c := range children {
			frag.RemoveChild(c)
			insertOne(parent, c, refChild, doc)
		}
		return
	}

	if p := node.Parent(); p != nil {
		p.RemoveChild(node)
	}
	insertOne(parent, node, refChild, doc)
}

func insertOne(parent, node, refChild Node, doc *Document) {
	if doc != nil {
		markOwnerDeep(node, doc)
	}
	if dt, ok := parent.(*Document); ok {
		if dtNode, ok := node.(*DocumentType); ok {
			dt.Doctype = dtNode
		}
	}
	parent.InsertBefore(node, refChild)
}

// Insert is a convenience wrapper for appendChild-shaped callers: insert
// node as the last child of parent, running the same validation as
// PreInsert.
func Insert(parent, node Node) error {
	return PreInsert(parent, node, nil)
}

// Remove implements the DOM Standard's "remove" algorithm: detach node
// from its parent and run the pre-removal adjustment of any NodeIterator
// whose reference node is node or a descendant of node, per the DOM
// Standard's "NodeIterator pre-removing steps".
func Remove(node Node) error {
	parent := node.Parent()
	if parent == nil {
		return errors.NewDOMError("remove", errors.NotFoundError, "node has no parent")
	}

	if doc := nodeDocument(node); doc != nil {
		for _, it := range doc.iterators {
			it.nodeWillBeRemoved(node)
		}
	}

	parent.RemoveChild(node)
	return nil
}

// Adopt implements the DOM Standard's "adopt" algorithm: move node (and its
// whole subtree) into doc, detaching it from its current parent first.
// Adopting a Document is refused outright.
func Adopt(node Node, doc *Document) error {
	if _, ok := node.(*Document); ok {
		return errors.NewDOMError("adopt", errors.NotSupportedError, "a document cannot be adopted")
	}

	if oldParent := node.Parent(); oldParent != nil {
		if err := Remove(node); err != nil {
			return err
		}
	}

	markOwnerDeep(node, doc)
	return nil
}

// SetOwnerDocumentDeep assigns doc as the owner document of node and every
// node in its subtree. It is exported for the tree constructor, which
// performs its own insertion-point bookkeeping (foster parenting, text
// coalescing) and only needs owner-document propagation layered on top
// rather than the full PreInsert validation path.
func SetOwnerDocumentDeep(node Node, doc *Document) {
	markOwnerDeep(node, doc)
}

// CloneNode implements the DOM Standard's "clone" algorithm entry point:
// a shallow or deep copy of node, owned by node's own document (use
// Document.ImportNode to clone into a different document). A cloned
// Document owns itself.
func CloneNode(node Node, deep bool) Node {
	clone := node.Clone(deep)
	if _, isDoc := node.(*Document); !isDoc {
		if doc := node.OwnerDocument(); doc != nil {
			markOwnerDeep(clone, doc)
		}
	}
	return clone
}

// ReplaceChild implements the DOM Standard's "replace" algorithm: validate,
// then replace oldChild with node under parent, refusing and leaving the
// tree untouched on any validation failure.
func ReplaceChild(parent, node, oldChild Node) error {
	if oldChild.Parent() != parent {
		return errors.NewDOMError("replaceChild", errors.NotFoundError, "old child is not a child of parent")
	}
	if isHostIncludingInclusiveAncestor(node, parent) {
		return errors.NewDOMError("replaceChild", errors.HierarchyRequestError, "new node is an ancestor of the parent")
	}

	referenceChild := NextSibling(oldChild)
	if referenceChild == node {
		referenceChild = NextSibling(node)
	}

	doc := nodeDocument(parent)
	if doc != nil {
		for _, it := range doc.iterators {
			it.nodeWillBeRemoved(oldChild)
		}
	}

	parent.RemoveChild(oldChild)
	insert(parent, node, referenceChild)
	return nil
}

// Normalize implements the DOM Standard's "normalize" algorithm: remove
// empty Text node descendants and merge adjacent Text node runs into a
// single node, throughout node's subtree.
func Normalize(node Node) {
	children := node.Children()
	merged := make([]Node, 0, len(children))

	var run *Text
	for _, c := range children {
		if t, ok := c.(*Text); ok {
			if t.Data == "" {
				continue
			}
			if run != nil {
				run.Data += t.Data
				continue
			}
			run = t
			merged = append(merged, t)
			continue
		}
		run = nil
		merged = append(merged, c)
	}

	for _, c := range append([]Node(nil), children...) {
		node.RemoveChild(c)
	}
	for _, c := range merged {
		node.AppendChild(c)
	}

	for _, c := range merged {
		Normalize(c)
	}
}
