package dom

import "strings"

// QuirksMode represents the document's quirks mode.
type QuirksMode int

// Quirks mode values.
const (
	NoQuirks      QuirksMode = iota // Standards mode
	Quirks                          // Quirks mode
	LimitedQuirks                   // Almost standards mode
)

// Document represents an HTML document. A Document is its own owner
// document (spec: "owner document, nullable only for the document itself,
// which owns itself").
type Document struct {
	baseNode

	// Doctype is the document's DOCTYPE declaration.
	Doctype *DocumentType

	// QuirksMode indicates the document's quirks mode.
	QuirksMode QuirksMode

	// ContentType is the document's MIME type, e.g. "text/html".
	ContentType string

	// CharacterSet is the name of the encoding used to decode the
	// original byte stream, or "" if the document was built
	// programmatically.
	CharacterSet string

	// URL is the document's address. Used by <base href> processing.
	URL string

	// templateContentsDoc is the lazily created, per-document "inert
	// template contents document" that owns every <template>'s
	// TemplateContent fragment. It has no document element of its own
	// and is never traversed by normal queries.
	templateContentsDoc *Document

	// iterators tracks every live NodeIterator rooted in this document so
	// Remove() can run the pre-removal reference adjustment algorithm.
	iterators []*NodeIterator

	// idIndex is a cache from id attribute value to element. It is not
	// invalidated on mutation: GetElementByID uses a cached element only
	// while it is still in the document and still carries that id, and
	// falls back to a full scan otherwise.
	idIndex map[string]*Element
}

// NewDocument creates a new empty document that owns itself.
func NewDocument() *Document {
	d := &Document{ContentType: "text/html"}
	d.baseNode.init(d)
	d.owner = d
	return d
}

// Type implements Node.
func (d *Document) Type() NodeType {
	return DocumentNodeType
}

// OwnerDocument returns d itself: a document is its own owner.
func (d *Document) OwnerDocument() *Document {
	return d
}

func (d *Document) setOwnerDocument(*Document) {
	// A document's owner is always itself; adopting a Document is refused
	// by Adopt() before this would ever be called.
}

// Clone implements Node.
func (d *Document) Clone(deep bool) Node {
	clone := NewDocument()
	clone.QuirksMode = d.QuirksMode
	clone.ContentType = d.ContentType
	clone.CharacterSet = d.CharacterSet
	clone.URL = d.URL

	if d.Doctype != nil {
		clone.Doctype = d.Doctype.Clone(false).(*DocumentType)
		clone.Doctype.setOwnerDocument(clone)
	}

	if deep {
		for _, child := range d.children {
			clonedChild := child.Clone(true)
			clone.AppendChild(clonedChild)
			markOwnerDeep(clonedChild, clone)
		}
	}

	return clone
}

// AppendChild adds a child node, properly setting the parent.
func (d *Document) AppendChild(child Node) {
	child.SetParent(d)
	d.children = append(d.children, child)
}

// TemplateContentsDocument returns the inert document that owns every
// <template>'s content fragment, creating it on first use.
func (d *Document) TemplateContentsDocument() *Document {
	if d.templateContentsDoc == nil {
		inert := NewDocument()
		inert.URL = d.URL
		d.templateContentsDoc = inert
	}
	return d.templateContentsDoc
}

// DocumentElement returns the root element (html element).
func (d *Document) DocumentElement() *Element {
	for _, child := range d.children {
		if elem, ok := child.(*Element); ok {
			return elem
		}
	}
	return nil
}

// Head returns the head element, or nil if not found.
func (d *Document) Head() *Element {
	html := d.DocumentElement()
	if html == nil {
		return nil
	}
	for _, child := range html.Children() {
		if elem, ok := child.(*Element); ok && elem.TagName == "head" {
			return elem
		}
	}
	return nil
}

// Body returns the body element, or nil if not found.
func (d *Document) Body() *Element {
	html := d.DocumentElement()
	if html == nil {
		return nil
	}
	for _, child := range html.Children() {
		if elem, ok := child.(*Element); ok && elem.TagName == "body" {
			return elem
		}
	}
	return nil
}

// Title returns the document title from the <title> element.
func (d *Document) Title() string {
	head := d.Head()
	if head == nil {
		return ""
	}
	for _, child := range head.Children() {
		if elem, ok := child.(*Element); ok && elem.TagName == "title" {
			return elem.Text()
		}
	}
	return ""
}

// Query finds all elements matching the CSS selector.
func (d *Document) Query(selector string) ([]*Element, error) {
	root := d.DocumentElement()
	if root == nil {
		return nil, nil
	}
	return root.Query(selector)
}

// QueryFirst finds the first element matching the CSS selector.
func (d *Document) QueryFirst(selector string) (*Element, error) {
	root := d.DocumentElement()
	if root == nil {
		return nil, nil
	}
	return root.QueryFirst(selector)
}

// GetElementByID returns the first element (in tree order) whose id
// attribute equals id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	if d.idIndex != nil {
		if e, ok := d.idIndex[id]; ok && e.ID() == id && IsAncestorOrSelf(d, e) {
			return e
		}
	}
	root := d.DocumentElement()
	if root == nil {
		return nil
	}
	var found *Element
	walkElements(root, func(e *Element) bool {
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	if found != nil {
		if d.idIndex == nil {
			d.idIndex = make(map[string]*Element)
		}
		d.idIndex[id] = found
	}
	return found
}

// GetElementsByTagName returns a live HTMLCollection of the document's
// element descendants (the document element included) with the given tag
// name, or "*" for all elements.
func (d *Document) GetElementsByTagName(name string) *HTMLCollection {
	root := Node(d)
	return newHTMLCollection(root, func(e *Element) bool {
		return name == "*" || e.TagName == name
	})
}

// GetElementsByTagNameNS is the namespace-aware form of GetElementsByTagName.
func (d *Document) GetElementsByTagNameNS(namespace, name string) *HTMLCollection {
	return newHTMLCollection(Node(d), func(e *Element) bool {
		return (namespace == "*" || e.Namespace == namespace) && (name == "*" || e.TagName == name)
	})
}

// GetElementsByClassName returns a live HTMLCollection of descendants
// carrying every one of the given space-separated class names.
func (d *Document) GetElementsByClassName(names string) *HTMLCollection {
	want := strings.Fields(names)
	return newHTMLCollection(Node(d), func(e *Element) bool {
		for _, w := range want {
			if !e.HasClass(w) {
				return false
			}
		}
		return len(want) > 0
	})
}

// CreateElement creates a new HTML-namespace element owned by d.
func (d *Document) CreateElement(tagName string) *Element {
	e := NewElement(tagName)
	e.setOwnerDocument(d)
	return e
}

// CreateElementNS creates a new element in the given namespace, owned by d.
func (d *Document) CreateElementNS(namespace, tagName string) *Element {
	e := NewElementNS(tagName, namespace)
	e.setOwnerDocument(d)
	return e
}

// CreateTextNode creates a new Text node owned by d.
func (d *Document) CreateTextNode(data string) *Text {
	t := NewText(data)
	t.setOwnerDocument(d)
	return t
}

// CreateComment creates a new Comment node owned by d.
func (d *Document) CreateComment(data string) *Comment {
	c := NewComment(data)
	c.setOwnerDocument(d)
	return c
}

// CreateCDATASection creates a new CDATASection node owned by d.
func (d *Document) CreateCDATASection(data string) *CDATASection {
	c := NewCDATASection(data)
	c.setOwnerDocument(d)
	return c
}

// CreateProcessingInstruction creates a new ProcessingInstruction node
// owned by d.
func (d *Document) CreateProcessingInstruction(target, data string) *ProcessingInstruction {
	pi := NewProcessingInstruction(target, data)
	pi.setOwnerDocument(d)
	return pi
}

// CreateDocumentFragment creates a new DocumentFragment owned by d.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	df := NewDocumentFragment()
	df.setOwnerDocument(d)
	return df
}

// CreateAttribute creates a detached Attr node owned by d.
func (d *Document) CreateAttribute(name string) *Attr {
	a := NewAttr("", strings.ToLower(name), "")
	a.owner = d
	return a
}

// CreateAttributeNS creates a detached, namespaced Attr node owned by d.
func (d *Document) CreateAttributeNS(namespace, name string) *Attr {
	a := NewAttr(namespace, name, "")
	a.owner = d
	return a
}

// ImportNode clones node (optionally deep) into this document without
// removing it from its original location, per the adopt/clone split in
// the DOM Standard.
func (d *Document) ImportNode(node Node, deep bool) Node {
	clone := CloneNode(node, deep)
	markOwnerDeep(clone, d)
	return clone
}

// AdoptNode detaches node from its current parent and re-homes the whole
// subtree (including descendants) into this document.
func (d *Document) AdoptNode(node Node) error {
	return Adopt(node, d)
}

// CreateNodeIterator creates a NodeIterator rooted at root.
func (d *Document) CreateNodeIterator(root Node, whatToShow uint32, filter NodeFilter) *NodeIterator {
	it := newNodeIterator(root, whatToShow, filter)
	d.iterators = append(d.iterators, it)
	return it
}

// CreateTreeWalker creates a TreeWalker rooted at root.
func (d *Document) CreateTreeWalker(root Node, whatToShow uint32, filter NodeFilter) *TreeWalker {
	return newTreeWalker(root, whatToShow, filter)
}

// CreateRange creates a collapsed Range at the start of the document.
func (d *Document) CreateRange() *Range {
	return &Range{StartContainer: d, StartOffset: 0, EndContainer: d, EndOffset: 0}
}

func markOwnerDeep(n Node, doc *Document) {
	n.setOwnerDocument(doc)
	for _, c := range n.Children() {
		markOwnerDeep(c, doc)
	}
}

func walkElements(e *Element, visit func(*Element) bool) {
	if !visit(e) {
		return
	}
	for _, c := range e.Children() {
		if child, ok := c.(*Element); ok {
			walkElements(child, visit)
		}
	}
}

// DocumentType represents a DOCTYPE declaration.
type DocumentType struct {
	parent Node
	owner  *Document

	// Name is the DOCTYPE name (usually "html").
	Name string

	// PublicID is the public identifier.
	PublicID string

	// SystemID is the system identifier.
	SystemID string
}

// NewDocumentType creates a new DOCTYPE node.
func NewDocumentType(name, publicID, systemID string) *DocumentType {
	return &DocumentType{
		Name:     name,
		PublicID: publicID,
		SystemID: systemID,
	}
}

// Type implements Node.
func (dt *DocumentType) Type() NodeType {
	return DoctypeNodeType
}

// OwnerDocument implements Node.
func (dt *DocumentType) OwnerDocument() *Document {
	return dt.owner
}

func (dt *DocumentType) setOwnerDocument(doc *Document) {
	dt.owner = doc
}

// Parent implements Node.
func (dt *DocumentType) Parent() Node {
	return dt.parent
}

// SetParent implements Node.
func (dt *DocumentType) SetParent(parent Node) {
	dt.parent = parent
}

// Children implements Node (DOCTYPE nodes have no children).
func (dt *DocumentType) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for DOCTYPE nodes).
func (dt *DocumentType) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for DOCTYPE nodes).
func (dt *DocumentType) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for DOCTYPE nodes).
func (dt *DocumentType) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for DOCTYPE nodes).
func (dt *DocumentType) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node.
func (dt *DocumentType) HasChildNodes() bool { return false }

// Clone implements Node.
func (dt *DocumentType) Clone(_ bool) Node {
	return &DocumentType{
		Name:     dt.Name,
		PublicID: dt.PublicID,
		SystemID: dt.SystemID,
	}
}

// DocumentFragment represents a document fragment: a transparent container
// node used for template content and for batch insertion (PreInsert treats
// a fragment's children as the group being inserted, per spec).
type DocumentFragment struct {
	baseNode
}

// NewDocumentFragment creates a new document fragment.
func NewDocumentFragment() *DocumentFragment {
	df := &DocumentFragment{}
	df.baseNode.init(df)
	return df
}

// Type implements Node.
func (df *DocumentFragment) Type() NodeType {
	return DocumentFragmentNodeType
}

// Clone implements Node.
func (df *DocumentFragment) Clone(deep bool) Node {
	clone := &DocumentFragment{}
	clone.baseNode.init(clone)

	if deep {
		for _, child := range df.children {
			clonedChild := child.Clone(true)
			clone.AppendChild(clonedChild)
		}
	}

	return clone
}

// AppendChild adds a child node, properly setting the parent.
func (df *DocumentFragment) AppendChild(child Node) {
	child.SetParent(df)
	df.children = append(df.children, child)
}
