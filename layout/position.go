package layout

// ComputePosition runs the pre-order positioning pass described in
// §4.8. origin is the position assigned to root itself (the window
// padding offset for the <body> root).
func ComputePosition(root *Object, origin Point) {
	if root == nil {
		return
	}
	root.Point = origin
	positionChildren(root)
}

func positionChildren(parent *Object) {
	var prev *Object
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		c.Point = childPosition(parent, c, prev)
		positionChildren(c)
		prev = c
	}
}

// childPosition places c, the current child being positioned, given
// parent and the previously positioned sibling (nil if c is first).
func childPosition(parent, c, prev *Object) Point {
	if c.Kind == Text {
		return parent.Point
	}
	if c.Kind == Block || (prev != nil && prev.Kind == Block) {
		if prev == nil {
			return parent.Point
		}
		return Point{X: parent.Point.X, Y: prev.Point.Y + prev.Size.H}
	}
	// Both c and prev are Inline: continue on the same line.
	if prev == nil {
		return parent.Point
	}
	return Point{X: prev.Point.X + prev.Size.W, Y: prev.Point.Y}
}
