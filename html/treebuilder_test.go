package html

import (
	"tinybrowser/dom"
	"testing"
)

func findChild(n *dom.Node, tag string) *dom.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == dom.ElementNode && c.Tag == tag {
			return c
		}
	}
	return nil
}

// TestParseFullDocument covers S1: a complete html/head/body document.
func TestParseFullDocument(t *testing.T) {
	doc := Parse(`<html><head></head><body><p>hi</p></body></html>`)

	htmlNode := findChild(doc, "html")
	if htmlNode == nil {
		t.Fatal("expected <html> child of document")
	}
	body := findChild(htmlNode, "body")
	if body == nil {
		t.Fatal("expected <body> child of <html>")
	}
	p := findChild(body, "p")
	if p == nil {
		t.Fatal("expected <p> child of <body>")
	}
	if p.FirstChild == nil || p.FirstChild.Type != dom.TextNode || p.FirstChild.Text != "hi" {
		t.Fatalf("expected text leaf \"hi\", got %+v", p.FirstChild)
	}
}

// TestParseSynthesizesMissingTags covers S2: a bare <p> synthesizes
// html/head/body and yields the same tree as a full document.
func TestParseSynthesizesMissingTags(t *testing.T) {
	doc := Parse(`<p>hi</p>`)

	htmlNode := findChild(doc, "html")
	if htmlNode == nil {
		t.Fatal("expected synthesized <html>")
	}
	if findChild(htmlNode, "head") == nil {
		t.Fatal("expected synthesized <head>")
	}
	body := findChild(htmlNode, "body")
	if body == nil {
		t.Fatal("expected synthesized <body>")
	}
	p := findChild(body, "p")
	if p == nil || p.FirstChild == nil || p.FirstChild.Text != "hi" {
		t.Fatalf("expected <p>hi</p> under synthesized body, got %+v", body)
	}
}

func TestParseTreeInvariants(t *testing.T) {
	doc := Parse(`<body><p>a</p><p>b</p></body>`)
	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Parent != n {
				t.Errorf("child %+v has Parent %v, want %v", c, c.Parent, n)
			}
			if c == n.FirstChild && c.PrevSibling != nil {
				t.Errorf("first child has non-nil PrevSibling")
			}
			if c == n.LastChild && c.NextSibling != nil {
				t.Errorf("last child has non-nil NextSibling")
			}
			walk(c)
		}
	}
	walk(doc)
}

func TestParseIgnoresUnknownTags(t *testing.T) {
	doc := Parse(`<body><bogus>x</bogus></body>`)
	htmlNode := findChild(doc, "html")
	body := findChild(htmlNode, "body")
	if findChild(body, "bogus") != nil {
		t.Error("did not expect an element for an unrecognized tag")
	}
}

func TestParseScriptRawText(t *testing.T) {
	doc := Parse(`<head><script>if (a<b) {}</script></head><body></body>`)
	htmlNode := findChild(doc, "html")
	head := findChild(htmlNode, "head")
	script := findChild(head, "script")
	if script == nil {
		t.Fatal("expected <script> element")
	}
	if script.FirstChild == nil || script.FirstChild.Text != "if (a<b) {}" {
		t.Fatalf("script content = %+v, want raw text", script.FirstChild)
	}
}

func TestParseDeterminism(t *testing.T) {
	const input = `<html><body><p class="x">hello</p><a href="/y">link</a></body></html>`
	a := Parse(input)
	b := Parse(input)

	var count func(n *dom.Node) int
	count = func(n *dom.Node) int {
		c := 1
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			c += count(ch)
		}
		return c
	}
	if count(a) != count(b) {
		t.Errorf("node counts differ across identical parses: %d vs %d", count(a), count(b))
	}
}
