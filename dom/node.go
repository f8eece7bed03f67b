// Package dom provides the DOM node model and mutation algorithms the
// tree constructor drives and user code can invoke directly: node
// identity, owner-document tracking, validated insertion/removal/adoption,
// cloning, normalization, live collections, and traversal helpers
// (NodeIterator/TreeWalker/Range).
package dom

// NodeType identifies the kind of a DOM node. Values match the DOM
// Standard's legacy numeric constants (Node.ELEMENT_NODE and friends).
type NodeType int

// Node types as defined by the DOM specification.
const (
	ElementNodeType               NodeType = 1
	AttributeNodeType             NodeType = 2
	TextNodeType                  NodeType = 3
	CDATASectionNodeType          NodeType = 4
	ProcessingInstructionNodeType NodeType = 7
	CommentNodeType               NodeType = 8
	DocumentNodeType              NodeType = 9
	DoctypeNodeType               NodeType = 10
	DocumentFragmentNodeType      NodeType = 11
)

// Node is the interface implemented by every DOM node kind. A node has at
// most one parent, and owner-document tracking is maintained by the
// mutation algorithms in mutation.go — never by callers poking Parent or
// Children directly.
type Node interface {
	// Type returns the node type.
	Type() NodeType

	// OwnerDocument returns the document this node belongs to. A Document
	// owns itself. A node made by a package-level constructor (NewElement,
	// NewText, ...) has a nil owner until it is inserted into or adopted
	// by a document.
	OwnerDocument() *Document

	// Parent returns the parent node, or nil if this is the root.
	Parent() Node

	// SetParent sets the parent node. Exported for use across package
	// boundaries (treebuilder), but callers should prefer PreInsert/
	// Insert/Remove, which keep parent links, sibling order, and owner
	// documents consistent together.
	SetParent(parent Node)

	// Children returns the child nodes in document order.
	Children() []Node

	// AppendChild adds a child node without validation. PreInsert should
	// be preferred by callers outside this package.
	AppendChild(child Node)

	// InsertBefore inserts a new child before a reference child, without
	// validation.
	InsertBefore(newChild, refChild Node)

	// RemoveChild removes a child node, without pre-removal iterator/range
	// adjustment. Remove() should be preferred by callers outside this
	// package.
	RemoveChild(child Node)

	// ReplaceChild replaces an old child with a new child.
	// Returns the replaced child (oldChild).
	ReplaceChild(newChild, oldChild Node) Node

	// HasChildNodes returns true if this node has any children.
	HasChildNodes() bool

	// Clone creates a shallow or deep copy of this node. Clone never
	// assigns an owner document to the copy; CloneNode in mutation.go
	// does that.
	Clone(deep bool) Node

	setOwnerDocument(doc *Document)
}

// baseNode provides common functionality for composite node types
// (Element, Document, DocumentFragment).
type baseNode struct {
	self     Node
	parent   Node
	children []Node
	owner    *Document
}

func (n *baseNode) init(self Node) {
	n.self = self
}

func (n *baseNode) Parent() Node {
	return n.parent
}

func (n *baseNode) SetParent(parent Node) {
	n.parent = parent
}

func (n *baseNode) OwnerDocument() *Document {
	return n.owner
}

func (n *baseNode) setOwnerDocument(doc *Document) {
	n.owner = doc
}

func (n *baseNode) Children() []Node {
	return n.children
}

func (n *baseNode) AppendChild(child Node) {
	if n.self != nil {
		child.SetParent(n.self)
	}
	n.children = append(n.children, child)
}

func (n *baseNode) InsertBefore(newChild, refChild Node) {
	if refChild == nil {
		n.AppendChild(newChild)
		return
	}

	for i, child := range n.children {
		if child == refChild {
			if n.self != nil {
				newChild.SetParent(n.self)
			}
			n.children = append(n.children[:i], append([]Node{newChild}, n.children[i:]...)...)
			return
		}
	}
	// refChild not found, append
	n.AppendChild(newChild)
}

func (n *baseNode) RemoveChild(child Node) {
	for i, c := range n.children {
		if c == child {
			child.SetParent(nil)
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *baseNode) ReplaceChild(newChild, oldChild Node) Node {
	for i, c := range n.children {
		if c == oldChild {
			if n.self != nil {
				newChild.SetParent(n.self)
			}
			oldChild.SetParent(nil)
			n.children[i] = newChild
			return oldChild
		}
	}
	return nil
}

func (n *baseNode) HasChildNodes() bool {
	return len(n.children) > 0
}

// indexIn returns the index of child within parent's child list, or -1.
func indexIn(parent Node, child Node) int {
	for i, c := range parent.Children() {
		if c == child {
			return i
		}
	}
	return -1
}

// NextSibling returns the node immediately after this one in its parent's
// child list, or nil if this is the last child or has no parent.
func NextSibling(n Node) Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	siblings := p.Children()
	i := indexIn(p, n)
	if i < 0 || i+1 >= len(siblings) {
		return nil
	}
	return siblings[i+1]
}

// PreviousSibling returns the node immediately before this one in its
// parent's child list, or nil if this is the first child or has no parent.
func PreviousSibling(n Node) Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	siblings := p.Children()
	i := indexIn(p, n)
	if i <= 0 {
		return nil
	}
	return siblings[i-1]
}

// Depth returns the number of ancestors a node has (0 for a root/document).
func Depth(n Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// IsAncestorOrSelf reports whether candidate is node itself or an ancestor
// of node.
func IsAncestorOrSelf(candidate, node Node) bool {
	for cur := node; cur != nil; cur = cur.Parent() {
		if cur == candidate {
			return true
		}
	}
	return false
}

// Contains reports whether other is node itself or a descendant of node.
func Contains(node, other Node) bool {
	return IsAncestorOrSelf(node, other)
}
