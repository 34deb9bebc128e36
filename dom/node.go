// Package dom provides the Document Object Model tree structure.
// It represents the parsed HTML document as a tree of nodes.
//
// Spec references:
// - DOM Level 2 Core: https://www.w3.org/TR/DOM-Level-2-Core/
//
// Child links are owning (FirstChild, NextSibling); parent-ward and
// tail links are non-owning back-references (Parent, LastChild,
// PrevSibling). This mirrors the strong-refs-down / weak-refs-up
// discipline of the source implementation without needing reference
// counting: (i) there is exactly one Document root; (ii) for every
// child c of parent p, c.Parent == p; (iii) siblings form a doubly
// linked list whose head is p.FirstChild and whose tail is p.LastChild;
// (iv) Text nodes are leaves.
package dom

// NodeType represents the type of a DOM node.
type NodeType int

const (
	// DocumentNode represents the root document node.
	DocumentNode NodeType = iota
	// ElementNode represents an HTML element (e.g. <p>, <a>).
	ElementNode
	// TextNode represents text content within an element.
	TextNode
)

// Attribute is a (name, value) pair built incrementally by the tokenizer.
type Attribute struct {
	Name  string
	Value string
}

// Node represents a node in the DOM tree.
type Node struct {
	Type NodeType

	// Tag holds the element tag name; unused for Document and Text nodes.
	Tag string
	// Text holds the text content; unused for Document and Element nodes.
	Text string

	Attributes []Attribute

	Parent      *Node // non-owning
	FirstChild  *Node // owning
	LastChild   *Node // non-owning
	PrevSibling *Node // non-owning
	NextSibling *Node // owning
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return &Node{Type: DocumentNode}
}

// NewElement creates a new element node with the given tag name.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: tag}
}

// NewText creates a new text node with the given content.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// AppendChild adds child as the new last child of n, fixing up all
// four sibling/parent links per the tree invariants in the package doc.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.PrevSibling = nil
	child.NextSibling = nil

	if n.FirstChild == nil {
		n.FirstChild = child
		n.LastChild = child
		return
	}

	last := n.LastChild
	last.NextSibling = child
	child.PrevSibling = last
	n.LastChild = child
}

// Children returns the node's children in source order. It exists for
// callers that want to range without walking sibling links by hand;
// it allocates and is not used on any hot path.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// GetAttribute returns the value of an attribute, or "" if not present.
func (n *Node) GetAttribute(name string) string {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the attribute is present, distinguishing
// a present-but-empty value from an absent one.
func (n *Node) HasAttribute(name string) bool {
	for _, a := range n.Attributes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute on this node, overwriting any existing
// value for the same name.
func (n *Node) SetAttribute(name, value string) {
	for i, a := range n.Attributes {
		if a.Name == name {
			n.Attributes[i].Value = value
			return
		}
	}
	n.Attributes = append(n.Attributes, Attribute{Name: name, Value: value})
}

// ID returns the element's id attribute.
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// HasClass reports whether the element's space-separated class
// attribute contains name.
func (n *Node) HasClass(name string) bool {
	class := n.GetAttribute("class")
	start := 0
	for i := 0; i <= len(class); i++ {
		if i == len(class) || class[i] == ' ' {
			if class[start:i] == name && i > start {
				return true
			}
			start = i + 1
		}
	}
	return false
}
