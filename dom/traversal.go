package dom

// NodeFilter is called by NodeIterator/TreeWalker to decide whether to
// accept, reject, or skip a candidate node, mirroring the DOM Standard's
// NodeFilter callback interface. A nil filter accepts every node.
type NodeFilter func(Node) FilterResult

// FilterResult is the outcome of a NodeFilter call.
type FilterResult int

// Filter results. The names follow the DOM Standard's NodeFilter constants;
// the numeric values do not (FilterAccept is 0 here, 1 in the standard).
const (
	FilterAccept FilterResult = iota
	FilterReject
	FilterSkip
)

// What-to-show bitmask values, matching the subset of the DOM Standard's
// NodeFilter.SHOW_* constants this package's node kinds can produce.
const (
	ShowAll                   uint32 = 0xFFFFFFFF
	ShowElement               uint32 = 1 << 0
	ShowText                  uint32 = 1 << 2
	ShowCDATASection          uint32 = 1 << 3
	ShowComment               uint32 = 1 << 7
	ShowDocument              uint32 = 1 << 8
	ShowDocumentFragment      uint32 = 1 << 10
	ShowProcessingInstruction uint32 = 1 << 6
)

func whatToShowBit(n Node) uint32 {
	switch n.(type) {
	case *Element:
		return ShowElement
	case *Text:
		return ShowText
	case *CDATASection:
		return ShowCDATASection
	case *Comment:
		return ShowComment
	case *Document:
		return ShowDocument
	case *DocumentFragment:
		return ShowDocumentFragment
	case *ProcessingInstruction:
		return ShowProcessingInstruction
	default:
		return 0
	}
}

func filterNode(n Node, whatToShow uint32, filter NodeFilter) FilterResult {
	if whatToShow != ShowAll && whatToShow&whatToShowBit(n) == 0 {
		return FilterSkip
	}
	if filter == nil {
		return FilterAccept
	}
	return filter(n)
}

// NodeIterator walks a subtree in document order, pruned by a NodeFilter.
// Unlike a plain recursive walk, it survives mutation: Remove() notifies
// every live NodeIterator so a removed reference node's iterator position
// is re-anchored to a surviving neighbor, per the DOM Standard's
// NodeIterator pre-removing steps.
type NodeIterator struct {
	root                       Node
	whatToShow                 uint32
	filter                     NodeFilter
	reference                  Node
	pointerBeforeReferenceNode bool
}

func newNodeIterator(root Node, whatToShow uint32, filter NodeFilter) *NodeIterator {
	return &NodeIterator{
		root:                       root,
		whatToShow:                 whatToShow,
		filter:                     filter,
		reference:                  root,
		pointerBeforeReferenceNode: true,
	}
}

// Root returns the node this iterator was created over.
func (it *NodeIterator) Root() Node {
	return it.root
}

// NextNode advances the iterator and returns the next accepted node, or
// nil if the traversal is exhausted.
func (it *NodeIterator) NextNode() Node {
	node := it.reference
	beforeNode := it.pointerBeforeReferenceNode

	for {
		if !beforeNode {
			next := firstChildOrNextInOrder(it.root, node)
			if next == nil {
				return nil
			}
			node = next
		}
		beforeNode = false

		if filterNode(node, it.whatToShow, it.filter) == FilterAccept {
			it.reference = node
			it.pointerBeforeReferenceNode = false
			return node
		}
	}
}

// PreviousNode moves the iterator backward and returns the previous
// accepted node, or nil if already at the start.
func (it *NodeIterator) PreviousNode() Node {
	node := it.reference
	beforeNode := it.pointerBeforeReferenceNode

	for {
		if beforeNode {
			return nil
		}
		prev := previousInOrder(it.root, node)
		if prev == nil {
			return nil
		}
		node = prev
		beforeNode = true

		if filterNode(node, it.whatToShow, it.filter) == FilterAccept {
			it.reference = node
			it.pointerBeforeReferenceNode = true
			return node
		}
	}
}

// nodeWillBeRemoved implements the NodeIterator pre-removing steps: if
// toBeRemoved is (or contains) the iterator's reference node, re-anchor the
// iterator to a node that will still be present after removal.
func (it *NodeIterator) nodeWillBeRemoved(toBeRemoved Node) {
	if !IsAncestorOrSelf(toBeRemoved, it.reference) {
		return
	}

	if it.pointerBeforeReferenceNode {
		for anchor := NextSibling(toBeRemoved); anchor != nil; anchor = firstChildOrNextInOrder(it.root, anchor) {
			if IsAncestorOrSelf(toBeRemoved, anchor) {
				continue
			}
			it.reference = anchor
			return
		}
		it.reference = toBeRemoved.Parent()
		it.pointerBeforeReferenceNode = false
		return
	}

	if prevSibling := PreviousSibling(toBeRemoved); prevSibling != nil {
		it.reference = lastDescendantOrSelf(prevSibling)
		return
	}
	it.reference = toBeRemoved.Parent()
}

func lastDescendantOrSelf(n Node) Node {
	children := n.Children()
	if len(children) == 0 {
		return n
	}
	return lastDescendantOrSelf(children[len(children)-1])
}

// firstChildOrNextInOrder returns the document-order successor of n within
// root's subtree: n's first child if any, otherwise the first ancestor's
// (up to root) next sibling.
func firstChildOrNextInOrder(root, n Node) Node {
	children := n.Children()
	if len(children) > 0 {
		return children[0]
	}
	for cur := n; cur != nil && cur != root; cur = cur.Parent() {
		if sib := NextSibling(cur); sib != nil {
			return sib
		}
	}
	return nil
}

// previousInOrder returns the document-order predecessor of n within
// root's subtree.
func previousInOrder(root, n Node) Node {
	if n == root {
		return nil
	}
	if sib := PreviousSibling(n); sib != nil {
		return lastDescendantOrSelf(sib)
	}
	parent := n.Parent()
	if parent == root || parent == nil {
		if parent == root {
			return root
		}
		return nil
	}
	return parent
}

// TreeWalker is a NodeFilter-pruned view of a subtree that supports moving
// to parent/sibling/child nodes, not just forward/backward in document
// order.
type TreeWalker struct {
	root       Node
	whatToShow uint32
	filter     NodeFilter
	current    Node
}

func newTreeWalker(root Node, whatToShow uint32, filter NodeFilter) *TreeWalker {
	return &TreeWalker{root: root, whatToShow: whatToShow, filter: filter, current: root}
}

// CurrentNode returns the walker's current position.
func (w *TreeWalker) CurrentNode() Node {
	return w.current
}

// SetCurrentNode moves the walker's position without filtering.
func (w *TreeWalker) SetCurrentNode(n Node) {
	w.current = n
}

// ParentNode moves to the nearest accepted ancestor within root, or
// returns nil without moving if none exists.
func (w *TreeWalker) ParentNode() Node {
	node := w.current
	for node != w.root {
		parent := node.Parent()
		if parent == nil {
			return nil
		}
		node = parent
		if filterNode(node, w.whatToShow, w.filter) == FilterAccept {
			w.current = node
			return node
		}
	}
	return nil
}

// FirstChild moves to the first accepted child of the current node.
func (w *TreeWalker) FirstChild() Node {
	return w.traverseChildren(true)
}

// LastChild moves to the last accepted child of the current node.
func (w *TreeWalker) LastChild() Node {
	return w.traverseChildren(false)
}

func (w *TreeWalker) traverseChildren(forward bool) Node {
	children := w.current.Children()
	if !forward {
		for i := len(children) - 1; i >= 0; i-- {
			if result := w.acceptOrDescend(children[i], forward); result != nil {
				return result
			}
		}
		return nil
	}
	for _, c := range children {
		if result := w.acceptOrDescend(c, forward); result != nil {
			return result
		}
	}
	return nil
}

func (w *TreeWalker) acceptOrDescend(n Node, forward bool) Node {
	switch filterNode(n, w.whatToShow, w.filter) {
	case FilterAccept:
		w.current = n
		return n
	case FilterSkip:
		grandchildren := n.Children()
		if forward {
			for _, gc := range grandchildren {
				if result := w.acceptOrDescend(gc, forward); result != nil {
					return result
				}
			}
		} else {
			for i := len(grandchildren) - 1; i >= 0; i-- {
				if result := w.acceptOrDescend(grandchildren[i], forward); result != nil {
					return result
				}
			}
		}
	}
	return nil
}

// NextSibling moves to the next accepted sibling of the current node.
func (w *TreeWalker) NextSibling() Node {
	return w.traverseSibling(true)
}

// PreviousSibling moves to the previous accepted sibling of the current node.
func (w *TreeWalker) PreviousSibling() Node {
	return w.traverseSibling(false)
}

func (w *TreeWalker) traverseSibling(forward bool) Node {
	node := w.current
	if node == w.root {
		return nil
	}
	for {
		var sib Node
		if forward {
			sib = NextSibling(node)
		} else {
			sib = PreviousSibling(node)
		}
		for sib != nil {
			switch filterNode(sib, w.whatToShow, w.filter) {
			case FilterAccept:
				w.current = sib
				return sib
			case FilterSkip:
				if child := w.traverseChildrenOf(sib, forward); child != nil {
					return child
				}
			}
			if forward {
				sib = NextSibling(sib)
			} else {
				sib = PreviousSibling(sib)
			}
		}
		node = node.Parent()
		if node == nil || node == w.root {
			return nil
		}
		if filterNode(node, w.whatToShow, w.filter) != FilterSkip {
			return nil
		}
	}
}

func (w *TreeWalker) traverseChildrenOf(n Node, forward bool) Node {
	saved := w.current
	w.current = n
	result := w.traverseChildren(forward)
	if result == nil {
		w.current = saved
	}
	return result
}

// NextNode moves forward in document order to the next accepted node.
func (w *TreeWalker) NextNode() Node {
	node := w.current
	for {
		next := firstChildOrNextInOrder(w.root, node)
		if next == nil {
			return nil
		}
		node = next
		switch filterNode(node, w.whatToShow, w.filter) {
		case FilterAccept:
			w.current = node
			return node
		case FilterReject:
			continue
		}
	}
}

// Range models a contiguous span within the tree between a start and end
// boundary point, per the DOM Standard's Range interface. htmldom's Range
// is a plain value holder for boundary points used by selection-style
// callers; it does not implement the full content-extraction surface.
type Range struct {
	StartContainer Node
	StartOffset    int
	EndContainer   Node
	EndOffset      int
}

// Collapsed reports whether the range's start and end boundary points are
// identical.
func (r *Range) Collapsed() bool {
	return r.StartContainer == r.EndContainer && r.StartOffset == r.EndOffset
}

// SetStart sets the range's start boundary point.
func (r *Range) SetStart(container Node, offset int) {
	r.StartContainer = container
	r.StartOffset = offset
}

// SetEnd sets the range's end boundary point.
func (r *Range) SetEnd(container Node, offset int) {
	r.EndContainer = container
	r.EndOffset = offset
}

// adjustForRemoval implements the Range pre-removal boundary-point fixup:
// a boundary point inside or after toBeRemoved is rehomed to toBeRemoved's
// parent at toBeRemoved's former index, per the DOM Standard's "removing
// steps" for Range.
func (r *Range) adjustForRemoval(toBeRemoved Node) {
	parent := toBeRemoved.Parent()
	if parent == nil {
		return
	}
	idx := indexIn(parent, toBeRemoved)

	adjust := func(container *Node, offset *int) {
		if IsAncestorOrSelf(toBeRemoved, *container) {
			*container = parent
			*offset = idx
			return
		}
		if *container == parent && *offset > idx {
			*offset--
		}
	}

	adjust(&r.StartContainer, &r.StartOffset)
	adjust(&r.EndContainer, &r.EndOffset)
}
