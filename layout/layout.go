// Package layout builds the layout tree from a DOM subtree and a
// stylesheet, sizes and positions it, and paints it to a flat display
// list.
//
// Spec references:
// - CSS 2.1 §10 Visual formatting model details: https://www.w3.org/TR/CSS21/visudet.html
package layout

import (
	"tinybrowser/css"
	"tinybrowser/dom"
	"tinybrowser/runtime"
	"tinybrowser/style"
)

// Kind is the box kind of a LayoutObject.
type Kind int

const (
	// Block lays out as a block-level box.
	Block Kind = iota
	// Inline lays out as an inline-level box.
	Inline
	// Text is a leaf holding rendered text.
	Text
)

// Point is an integer 2D position.
type Point struct {
	X, Y int64
}

// Size is an integer 2D extent.
type Size struct {
	W, H int64
}

// Object is a node in the layout tree. Child links are owning
// (FirstChild, NextSibling); Parent is a non-owning back-reference.
// There is no LastChild/PrevSibling in the layout tree, unlike dom.Node
// — the layout tree is built once, front-to-back, and never needs
// reverse traversal.
type Object struct {
	Kind  Kind
	Node  *dom.Node
	Style style.ComputedStyle

	Parent     *Object
	FirstChild *Object
	NextSibling *Object

	Point Point
	Size  Size

	// Text holds the raw (unwrapped) text content for Kind == Text.
	Text string
	// lines holds the word-wrapped content computed by ComputeSize,
	// consumed by Paint.
	lines []string
}

func (o *Object) appendChild(child *Object) {
	child.Parent = o
	if o.FirstChild == nil {
		o.FirstChild = child
		return
	}
	last := o.FirstChild
	for last.NextSibling != nil {
		last = last.NextSibling
	}
	last.NextSibling = child
}

// Build constructs the layout tree rooted at body, the DOM element
// mapped from <body>. Document and <html>/<head> never appear in the
// result. Elements whose resolved display is DisplayNone — and their
// entire subtree — are excluded.
//
// Creating a layout object for a Document node, or for a node whose
// resolved display is DisplayNone, is a fatal precondition violation
// per §7; Build itself never does either, since it is only ever asked
// to build from <body> down and skips DisplayNone subtrees before
// recursing.
func Build(body *dom.Node, sheet *css.Stylesheet) *Object {
	if body == nil {
		return nil
	}
	if body.Type == dom.DocumentNode {
		runtime.Raise("layout.Build", "cannot create a layout object for a Document node")
	}
	return buildNode(body, sheet, nil)
}

func buildNode(n *dom.Node, sheet *css.Stylesheet, parentStyle *style.ComputedStyle) *Object {
	st := style.Resolve(n, sheet, parentStyle)
	if n.Type == dom.ElementNode && st.Display == style.DisplayNone {
		return nil
	}

	var kind Kind
	switch {
	case n.Type == dom.TextNode:
		kind = Text
	case st.Display == style.DisplayInline:
		kind = Inline
	default:
		kind = Block
	}

	obj := &Object{Kind: kind, Node: n, Style: st}
	if n.Type == dom.TextNode {
		obj.Text = n.Text
		return obj
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child := buildNode(c, sheet, &st)
		if child == nil {
			continue
		}
		obj.appendChild(child)
	}
	return obj
}
