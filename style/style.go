// Package style resolves the computed style for a DOM element: the
// CSS cascade followed by defaulting (initial values + inheritance).
//
// Spec references:
// - CSS 2.1 §6 Assigning property values, Cascading, and Inheritance: https://www.w3.org/TR/CSS21/cascade.html
package style

import (
	"tinybrowser/css"
	"tinybrowser/dom"
)

// Display is the resolved display value.
type Display int

const (
	// DisplayBlock lays an element out as a block box.
	DisplayBlock Display = iota
	// DisplayInline lays an element out as an inline box.
	DisplayInline
	// DisplayNone excludes an element from the layout tree.
	DisplayNone
)

// FontSize is the resolved font-size keyword.
type FontSize int

const (
	// Medium is the default font size, ratio 1.
	Medium FontSize = iota
	// XLarge is ratio 2.
	XLarge
	// XXLarge is ratio 3.
	XXLarge
)

// Ratio returns the character-cell scale factor for sizing (§4.8).
func (f FontSize) Ratio() int64 {
	switch f {
	case XLarge:
		return 2
	case XXLarge:
		return 3
	default:
		return 1
	}
}

// TextDecoration is the resolved text-decoration value.
type TextDecoration int

const (
	// NoTextDecoration applies no decoration.
	NoTextDecoration TextDecoration = iota
	// Underline applies an underline.
	Underline
)

// ComputedStyle holds the five properties the layout builder consults.
type ComputedStyle struct {
	BackgroundColor css.RGB
	Color           css.RGB
	Display         Display
	FontSize        FontSize
	TextDecoration  TextDecoration
}

var defaultBackground = css.RGB{R: 255, G: 255, B: 255}
var defaultColor = css.RGB{R: 0, G: 0, B: 0}

// matches reports whether sel selects node, per §4.7: TypeSelector
// compares the tag, ClassSelector checks the class attribute,
// IDSelector checks the id attribute. UnknownSelector never matches.
func matches(sel css.Selector, node *dom.Node) bool {
	switch sel.Kind {
	case css.TypeSelector:
		return node.Tag == sel.Value
	case css.ClassSelector:
		return node.HasClass(sel.Value)
	case css.IDSelector:
		return node.ID() == sel.Value
	default:
		return false
	}
}

// cascade applies every matching rule's declarations in rule order,
// keeping only the three properties §4.7 honors.
func cascade(sheet *css.Stylesheet, node *dom.Node) map[string]css.Token {
	values := make(map[string]css.Token)
	if sheet == nil {
		return values
	}
	for _, rule := range sheet.Rules {
		if !matches(rule.Selector, node) {
			continue
		}
		for _, decl := range rule.Declarations {
			switch decl.Property {
			case "background-color", "color", "display":
				values[decl.Property] = decl.Value
			}
		}
	}
	return values
}

// initial returns the per-tag initial values §4.7 specifies before
// inheritance is applied: <h1>/<h2> are block with an enlarged font
// and an underline (matching the anchor-link convention carried over
// from the source's link styling); <a> is inline with an underline;
// <body>/<p>/<div> are block.
func initial(tag string) ComputedStyle {
	s := ComputedStyle{
		BackgroundColor: defaultBackground,
		Color:           defaultColor,
		Display:         DisplayBlock,
		FontSize:        Medium,
		TextDecoration:  NoTextDecoration,
	}
	switch tag {
	case "h1":
		s.FontSize = XXLarge
		s.TextDecoration = Underline
	case "h2":
		s.FontSize = XLarge
		s.TextDecoration = Underline
	case "a":
		s.Display = DisplayInline
		s.TextDecoration = Underline
	case "body", "p", "div":
		s.Display = DisplayBlock
	}
	return s
}

// Resolve computes node's ComputedStyle: cascade, then defaulting
// (initial values, then inheritance from parent for color, font-size,
// and text-decoration when still unset by cascade or initial value).
// parent is nil for the root.
func Resolve(node *dom.Node, sheet *css.Stylesheet, parent *ComputedStyle) ComputedStyle {
	if node.Type == dom.TextNode {
		s := initial("")
		if parent != nil {
			s.Color = parent.Color
			s.FontSize = parent.FontSize
			s.TextDecoration = parent.TextDecoration
		}
		return s
	}

	values := cascade(sheet, node)
	s := initial(node.Tag)

	if tok, ok := values["background-color"]; ok {
		s.BackgroundColor = css.ParseColor(tok, defaultBackground)
	}
	if tok, ok := values["color"]; ok {
		s.Color = css.ParseColor(tok, defaultColor)
	} else if parent != nil {
		s.Color = parent.Color
	}
	if tok, ok := values["display"]; ok {
		s.Display = parseDisplay(tok)
	}
	if parent != nil {
		s.FontSize = parent.FontSize
		s.TextDecoration = parent.TextDecoration
	}
	// Re-apply tag-specific initial values after inheritance so, e.g.,
	// an <h1> under a plain-font ancestor still gets its own enlarged
	// size and underline unless cascade overrode display.
	tagDefault := initial(node.Tag)
	if _, ok := values["display"]; !ok {
		s.Display = tagDefault.Display
	}
	if tagDefault.FontSize != Medium {
		s.FontSize = tagDefault.FontSize
	}
	if tagDefault.TextDecoration != NoTextDecoration {
		s.TextDecoration = tagDefault.TextDecoration
	}
	return s
}

// parseDisplay maps a display Token to a Display value. Unknown values
// fall back to DisplayNone, per §4.7.
func parseDisplay(tok css.Token) Display {
	if tok.Type != css.IdentToken {
		return DisplayNone
	}
	switch tok.Value {
	case "block":
		return DisplayBlock
	case "inline":
		return DisplayInline
	case "none":
		return DisplayNone
	default:
		return DisplayNone
	}
}
