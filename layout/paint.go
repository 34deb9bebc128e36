package layout

import (
	"strings"

	"tinybrowser/constants"
	"tinybrowser/style"
)

// ItemKind distinguishes the two DisplayItem variants.
type ItemKind int

const (
	// RectItem paints a filled rectangle.
	RectItem ItemKind = iota
	// TextItem paints one line of text.
	TextItem
)

// DisplayItem is one paint primitive. Consumed by an external painter
// in the order it appears in the Display list — document order is
// load-bearing, since later items paint over earlier ones.
type DisplayItem struct {
	Kind  ItemKind
	Style style.ComputedStyle
	Point Point
	Size  Size
	Text  string
}

// Paint walks root depth-first and emits its display list. A Block root
// (the <body> box) emits no Rect of its own; only its descendants are
// painted.
func Paint(root *Object) []DisplayItem {
	var out []DisplayItem
	if root == nil {
		return out
	}
	if root.Kind != Block {
		paintInto(root, &out)
		return out
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		paintInto(c, &out)
	}
	return out
}

func paintInto(o *Object, out *[]DisplayItem) {
	if o == nil {
		return
	}
	switch o.Kind {
	case Block:
		*out = append(*out, DisplayItem{Kind: RectItem, Style: o.Style, Point: o.Point, Size: o.Size})
	case Text:
		ratio := o.Style.FontSize.Ratio()
		lineHeight := constants.CharHeightWithPadding * ratio
		for i, line := range o.lines {
			*out = append(*out, DisplayItem{
				Kind:  TextItem,
				Style: o.Style,
				Point: Point{X: o.Point.X, Y: o.Point.Y + int64(i)*lineHeight},
				Text:  line,
			})
		}
	}
	for c := o.FirstChild; c != nil; c = c.NextSibling {
		paintInto(c, out)
	}
}

// normalizeWhitespace replaces newlines with spaces, collapses runs of
// whitespace to a single space, and trims the result.
func normalizeWhitespace(s string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || r == ' ' {
			if !inSpace {
				sb.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}

// wrapLines splits normalized text into lines no wider than
// CONTENT_AREA_WIDTH at the given font-size ratio, breaking at the
// rightmost whitespace at or before the limit; if no whitespace exists
// in the current slice, it hard-splits at the limit.
func wrapLines(text string, ratio int64) []string {
	normalized := normalizeWhitespace(text)
	if normalized == "" {
		return nil
	}
	runes := []rune(normalized)
	maxChars := int(constants.ContentAreaWidth / (constants.CharWidth * ratio))
	if maxChars <= 0 {
		maxChars = 1
	}

	var lines []string
	for len(runes) > 0 {
		if len(runes) <= maxChars {
			lines = append(lines, string(runes))
			break
		}
		breakAt := maxChars
		for i := maxChars; i > 0; i-- {
			if runes[i] == ' ' {
				breakAt = i
				break
			}
		}
		lines = append(lines, string(runes[:breakAt]))
		rest := runes[breakAt:]
		// Drop a single separating space, if that's what we split on.
		if len(rest) > 0 && rest[0] == ' ' {
			rest = rest[1:]
		}
		runes = rest
	}
	return lines
}
