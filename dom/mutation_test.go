package dom

import (
	"errors"
	"testing"

	htmlerrors "github.com/corewell/htmldom/errors"
)

func TestPreInsertSetsOwnerDocument(t *testing.T) {
	doc := NewDocument()
	html := NewElement("html")
	if err := PreInsert(doc, html, nil); err != nil {
		t.Fatalf("PreInsert: %v", err)
	}
	if html.OwnerDocument() != doc {
		t.Fatalf("html.OwnerDocument() = %v, want doc", html.OwnerDocument())
	}

	body := NewElement("body")
	text := NewText("hi")
	body.AppendChild(text)
	if err := PreInsert(html, body, nil); err != nil {
		t.Fatalf("PreInsert body: %v", err)
	}
	if text.OwnerDocument() != doc {
		t.Fatal("descendant text node did not inherit owner document")
	}
}

func TestPreInsertRejectsAncestorCycle(t *testing.T) {
	doc := NewDocument()
	html := NewElement("html")
	body := NewElement("body")
	doc.AppendChild(html)
	html.AppendChild(body)

	err := PreInsert(body, html, nil)
	if err == nil {
		t.Fatal("expected HierarchyRequestError, got nil")
	}
	var domErr *htmlerrors.DOMError
	if !errors.As(err, &domErr) || domErr.Kind != htmlerrors.HierarchyRequestError {
		t.Fatalf("err = %v, want HierarchyRequestError", err)
	}
	if body.Parent() != html {
		t.Fatal("tree was mutated despite rejected insertion")
	}
}

func TestPreInsertRejectsSecondDocumentElement(t *testing.T) {
	doc := NewDocument()
	doc.AppendChild(NewElement("html"))

	err := PreInsert(doc, NewElement("html"), nil)
	if err == nil {
		t.Fatal("expected HierarchyRequestError for second document element")
	}
}

func TestPreInsertRejectsRefChildNotAChild(t *testing.T) {
	doc := NewDocument()
	html := NewElement("html")
	notAChild := NewElement("body")

	err := PreInsert(doc, html, notAChild)
	var domErr *htmlerrors.DOMError
	if !errors.As(err, &domErr) || domErr.Kind != htmlerrors.NotFoundError {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestAdoptMovesSubtreeAndOwner(t *testing.T) {
	doc1 := NewDocument()
	doc2 := NewDocument()

	html := NewElement("html")
	span := NewElement("span")
	html.AppendChild(span)
	doc1.AppendChild(html)
	SetOwnerDocumentDeep(html, doc1)

	if err := Adopt(html, doc2); err != nil {
		t.Fatalf("Adopt: %v", err)
	}
	if html.Parent() != nil {
		t.Fatal("adopted node should be detached from its old parent")
	}
	if html.OwnerDocument() != doc2 || span.OwnerDocument() != doc2 {
		t.Fatal("adopt did not propagate owner document through subtree")
	}
}

func TestAdoptRefusesDocument(t *testing.T) {
	doc1 := NewDocument()
	doc2 := NewDocument()
	if err := Adopt(doc1, doc2); err == nil {
		t.Fatal("expected NotSupportedError adopting a document")
	}
}

func TestRemoveRunsIteratorPreRemovalAdjustment(t *testing.T) {
	doc := NewDocument()
	html := NewElement("html")
	a := NewElement("a")
	b := NewElement("b")
	doc.AppendChild(html)
	html.AppendChild(a)
	html.AppendChild(b)
	SetOwnerDocumentDeep(html, doc)

	it := doc.CreateNodeIterator(html, ShowAll, nil)
	it.NextNode() // html
	it.NextNode() // a
	if it.reference != Node(a) {
		t.Fatalf("iterator reference = %v, want a", it.reference)
	}

	if err := Remove(a); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if it.reference == Node(a) {
		t.Fatal("iterator still references the removed node")
	}
}

func TestNormalizeMergesAdjacentText(t *testing.T) {
	div := NewElement("div")
	div.AppendChild(NewText("foo"))
	div.AppendChild(NewText(""))
	div.AppendChild(NewText("bar"))
	div.AppendChild(NewElement("span"))

	Normalize(div)

	children := div.Children()
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	text, ok := children[0].(*Text)
	if !ok || text.Data != "foobar" {
		t.Fatalf("children[0] = %+v, want merged text \"foobar\"", children[0])
	}
}

func TestCloneNodeDeepCopiesSubtree(t *testing.T) {
	div := NewElement("div")
	div.AppendChild(NewText("hello"))

	clone := CloneNode(div, true).(*Element)
	if clone == div {
		t.Fatal("clone returned the same pointer")
	}
	if len(clone.Children()) != 1 {
		t.Fatalf("clone children = %d, want 1", len(clone.Children()))
	}
	if clone.Children()[0].(*Text).Data != "hello" {
		t.Fatal("clone did not copy text data")
	}
}

func TestImportNodeLeavesOriginalInPlace(t *testing.T) {
	doc1 := NewDocument()
	doc2 := NewDocument()
	html := NewElement("html")
	doc1.AppendChild(html)
	SetOwnerDocumentDeep(html, doc1)

	imported := doc2.ImportNode(html, true)
	if html.Parent() != doc1 {
		t.Fatal("ImportNode should not detach the original node")
	}
	if imported.OwnerDocument() != doc2 {
		t.Fatal("imported node should be owned by the importing document")
	}
}
