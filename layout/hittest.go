package layout

import "tinybrowser/dom"

// HitTest reports the first Element whose layout rectangle contains
// (x, y), and — if that element's DOM parent is <a> with an href
// attribute — the href to navigate to. Click routing (core → UI),
// per §6.
func HitTest(root *Object, x, y int64) (elementID string, href string, ok bool) {
	obj := hitTest(root, x, y)
	if obj == nil {
		return "", "", false
	}
	id := ""
	if el := nearestElement(obj); el != nil {
		id = el.Node.ID()
	}
	if obj.Node != nil && obj.Node.Parent != nil && obj.Node.Parent.Tag == "a" {
		if h := obj.Node.Parent.GetAttribute("href"); h != "" {
			return id, h, true
		}
	}
	return id, "", true
}

// nearestElement walks from o up through Parent to the nearest Object
// (o itself, or an ancestor) whose DOM node is an Element — Text
// objects never carry an "id" attribute, so a hit on one resolves to
// its enclosing element per §6's "first Element" wording.
func nearestElement(o *Object) *Object {
	for ; o != nil; o = o.Parent {
		if o.Node != nil && o.Node.Type == dom.ElementNode {
			return o
		}
	}
	return nil
}

func hitTest(o *Object, x, y int64) *Object {
	if o == nil {
		return nil
	}
	// Search children first: later (and deeper) content paints over
	// its ancestor's rectangle, so the most specific hit wins.
	for c := o.FirstChild; c != nil; c = c.NextSibling {
		if found := hitTest(c, x, y); found != nil {
			return found
		}
	}
	if contains(o, x, y) {
		return o
	}
	return nil
}

func contains(o *Object, x, y int64) bool {
	return x >= o.Point.X && x < o.Point.X+o.Size.W &&
		y >= o.Point.Y && y < o.Point.Y+o.Size.H
}
