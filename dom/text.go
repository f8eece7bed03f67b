package dom

// Text represents a text node, including the contents of CDATA sections
// once parsed into the HTML tree (CDATASection below models a standalone
// <![CDATA[ ]]> node for XML-coercion/fragment use cases; adjacent text in
// an HTML tree is always merged into a single Text node by the tree
// constructor, per the DOM Standard's "child text content" note).
type Text struct {
	parent Node
	owner  *Document

	// Data is the text content.
	Data string
}

// NewText creates a new text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// Type implements Node.
func (t *Text) Type() NodeType {
	return TextNodeType
}

// OwnerDocument implements Node.
func (t *Text) OwnerDocument() *Document {
	return t.owner
}

func (t *Text) setOwnerDocument(doc *Document) {
	t.owner = doc
}

// Parent implements Node.
func (t *Text) Parent() Node {
	return t.parent
}

// SetParent implements Node.
func (t *Text) SetParent(parent Node) {
	t.parent = parent
}

// Children implements Node (text nodes have no children).
func (t *Text) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for text nodes).
func (t *Text) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for text nodes).
func (t *Text) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for text nodes).
func (t *Text) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for text nodes).
func (t *Text) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node.
func (t *Text) HasChildNodes() bool { return false }

// Clone implements Node.
func (t *Text) Clone(_ bool) Node {
	return &Text{Data: t.Data}
}

// SplitText splits this text node into two text nodes at offset, returning
// the new node holding the data after offset. The new node is not inserted
// into the tree; callers insert it themselves (typically right after t via
// Insert), matching the DOM Standard's Text.splitText algorithm split
// between data manipulation and tree mutation.
func (t *Text) SplitText(offset int) *Text {
	if offset < 0 || offset > len(t.Data) {
		offset = len(t.Data)
	}
	rest := t.Data[offset:]
	t.Data = t.Data[:offset]
	newNode := NewText(rest)
	newNode.owner = t.owner
	return newNode
}

// Comment represents a comment node.
type Comment struct {
	parent Node
	owner  *Document

	// Data is the comment content (without <!-- and -->).
	Data string
}

// NewComment creates a new comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

// Type implements Node.
func (c *Comment) Type() NodeType {
	return CommentNodeType
}

// OwnerDocument implements Node.
func (c *Comment) OwnerDocument() *Document {
	return c.owner
}

func (c *Comment) setOwnerDocument(doc *Document) {
	c.owner = doc
}

// Parent implements Node.
func (c *Comment) Parent() Node {
	return c.parent
}

// SetParent implements Node.
func (c *Comment) SetParent(parent Node) {
	c.parent = parent
}

// Children implements Node (comment nodes have no children).
func (c *Comment) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for comment nodes).
func (c *Comment) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for comment nodes).
func (c *Comment) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for comment nodes).
func (c *Comment) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for comment nodes).
func (c *Comment) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node.
func (c *Comment) HasChildNodes() bool { return false }

// Clone implements Node.
func (c *Comment) Clone(_ bool) Node {
	return &Comment{Data: c.Data}
}

// CDATASection represents a CDATA section node. HTML parsing never
// produces one directly (a CDATA section appearing in an HTML document is
// a parse error handled as a bogus comment), but the XML-coercion
// tokenizer mode and programmatic tree construction can create one.
type CDATASection struct {
	parent Node
	owner  *Document

	// Data is the section's character data.
	Data string
}

// NewCDATASection creates a new CDATA section node.
func NewCDATASection(data string) *CDATASection {
	return &CDATASection{Data: data}
}

// Type implements Node.
func (c *CDATASection) Type() NodeType {
	return CDATASectionNodeType
}

// OwnerDocument implements Node.
func (c *CDATASection) OwnerDocument() *Document {
	return c.owner
}

func (c *CDATASection) setOwnerDocument(doc *Document) {
	c.owner = doc
}

// Parent implements Node.
func (c *CDATASection) Parent() Node {
	return c.parent
}

// SetParent implements Node.
func (c *CDATASection) SetParent(parent Node) {
	c.parent = parent
}

// Children implements Node (CDATA sections have no children).
func (c *CDATASection) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for CDATA section nodes).
func (c *CDATASection) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for CDATA section nodes).
func (c *CDATASection) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for CDATA section nodes).
func (c *CDATASection) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for CDATA section nodes).
func (c *CDATASection) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node.
func (c *CDATASection) HasChildNodes() bool { return false }

// Clone implements Node.
func (c *CDATASection) Clone(_ bool) Node {
	return &CDATASection{Data: c.Data}
}

// ProcessingInstruction represents a processing instruction node, e.g.
// <?xml-stylesheet ... ?>. Like CDATASection, this never arises from HTML
// parsing (a "<?" is a parse error handled as a bogus comment) but is part
// of the DOM core node model for programmatic and XML-coercion use.
type ProcessingInstruction struct {
	parent Node
	owner  *Document

	// Target is the instruction target, e.g. "xml-stylesheet".
	Target string

	// Data is the instruction's content after the target.
	Data string
}

// NewProcessingInstruction creates a new processing instruction node.
func NewProcessingInstruction(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{Target: target, Data: data}
}

// Type implements Node.
func (p *ProcessingInstruction) Type() NodeType {
	return ProcessingInstructionNodeType
}

// OwnerDocument implements Node.
func (p *ProcessingInstruction) OwnerDocument() *Document {
	return p.owner
}

func (p *ProcessingInstruction) setOwnerDocument(doc *Document) {
	p.owner = doc
}

// Parent implements Node.
func (p *ProcessingInstruction) Parent() Node {
	return p.parent
}

// SetParent implements Node.
func (p *ProcessingInstruction) SetParent(parent Node) {
	p.parent = parent
}

// Children implements Node (processing instructions have no children).
func (p *ProcessingInstruction) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for processing instruction nodes).
func (p *ProcessingInstruction) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for processing instruction nodes).
func (p *ProcessingInstruction) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for processing instruction nodes).
func (p *ProcessingInstruction) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for processing instruction nodes).
func (p *ProcessingInstruction) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node.
func (p *ProcessingInstruction) HasChildNodes() bool { return false }

// Clone implements Node.
func (p *ProcessingInstruction) Clone(_ bool) Node {
	return &ProcessingInstruction{Target: p.Target, Data: p.Data}
}
