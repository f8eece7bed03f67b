package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildListDoc() (*Document, *Element) {
	doc := NewDocument()
	html := NewElement("html")
	body := NewElement("body")
	doc.AppendChild(html)
	html.AppendChild(body)

	for i := 0; i < 3; i++ {
		li := NewElement("li")
		li.SetAttr("class", "item")
		body.AppendChild(li)
	}
	return doc, body
}

func TestHTMLCollectionLiveAfterInsertion(t *testing.T) {
	doc, body := buildListDoc()

	items := doc.GetElementsByTagName("li")
	if items.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", items.Len())
	}

	newLi := NewElement("li")
	body.AppendChild(newLi)

	if items.Len() != 4 {
		t.Fatalf("Len() after insertion = %d, want 4 (collection should be live)", items.Len())
	}
	if items.Item(3) != newLi {
		t.Fatal("Item(3) should be the newly appended li")
	}
}

func TestHTMLCollectionByClassName(t *testing.T) {
	doc, body := buildListDoc()
	other := NewElement("li")
	other.SetAttr("class", "item special")
	body.AppendChild(other)

	items := doc.GetElementsByClassName("item special")
	if items.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", items.Len())
	}
	if items.Item(0) != other {
		t.Fatal("unexpected element matched by class name")
	}
}

func TestNodeListReflectsChildNodes(t *testing.T) {
	_, body := buildListDoc()
	list := NewNodeList(body)
	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}

	extra := NewText("trailing")
	body.AppendChild(extra)
	if list.Len() != 4 {
		t.Fatalf("Len() after append = %d, want 4", list.Len())
	}
	if list.Item(3) != Node(extra) {
		t.Fatal("Item(3) should be the newly appended text node")
	}
}

func TestGetElementByID(t *testing.T) {
	doc, body := buildListDoc()
	target := body.Children()[1].(*Element)
	target.SetAttr("id", "target")

	found := doc.GetElementByID("target")
	if found != target {
		t.Fatalf("GetElementByID = %v, want target element", found)
	}

	if doc.GetElementByID("missing") != nil {
		t.Fatal("GetElementByID should return nil for a missing id")
	}
}

func TestHTMLCollectionPreservesDocumentOrder(t *testing.T) {
	doc, body := buildListDoc()
	other := NewElement("span")
	body.AppendChild(other)
	last := NewElement("li")
	last.SetAttr("class", "item")
	body.AppendChild(last)

	items := doc.GetElementsByTagName("li")
	var gotIDs []string
	for i := 0; i < items.Len(); i++ {
		gotIDs = append(gotIDs, items.Item(i).TagName)
	}
	want := []string{"li", "li", "li", "li"}
	if diff := cmp.Diff(want, gotIDs); diff != "" {
		t.Fatalf("tag names mismatch (-want +got):\n%s", diff)
	}
}
