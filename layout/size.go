package layout

import "tinybrowser/constants"

// ComputeSize runs the post-order sizing pass described in §4.8.
// containingWidth is the width available to root (CONTENT_AREA_WIDTH
// for the <body> root).
func ComputeSize(root *Object, containingWidth int64) {
	if root == nil {
		return
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		ComputeSize(c, containingWidth)
	}

	switch root.Kind {
	case Block:
		root.Size.W = containingWidth
		root.Size.H = blockChildrenHeight(root)
	case Inline:
		var w, h int64
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			w += c.Size.W
			h += c.Size.H
		}
		root.Size.W = w
		root.Size.H = h
	case Text:
		sizeText(root)
	}
}

// blockChildrenHeight sums child heights where either the child or
// the previous child is Block — consecutive Inline children on the
// same visual line contribute only once, via the first in the run.
func blockChildrenHeight(root *Object) int64 {
	var h int64
	var prev *Object
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == Block || prev == nil || prev.Kind == Block {
			h += c.Size.H
		}
		prev = c
	}
	return h
}

func sizeText(o *Object) {
	ratio := o.Style.FontSize.Ratio()
	textLen := int64(len([]rune(normalizeWhitespace(o.Text))))
	width := constants.CharWidth * ratio * textLen
	if width > constants.ContentAreaWidth {
		o.Size.W = constants.ContentAreaWidth
		lines := (width + constants.ContentAreaWidth - 1) / constants.ContentAreaWidth
		o.Size.H = constants.CharHeightWithPadding * ratio * lines
	} else {
		o.Size.W = width
		o.Size.H = constants.CharHeightWithPadding * ratio
	}
	o.lines = wrapLines(o.Text, ratio)
}
