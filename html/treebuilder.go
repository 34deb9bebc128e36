package html

import (
	"tinybrowser/dom"
	"tinybrowser/runtime"
)

// insertionMode is one of the tree builder's states.
type insertionMode int

const (
	modeInitial insertionMode = iota
	modeBeforeHTML
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText
	modeAfterBody
	modeAfterAfterBody
)

// elementKinds is the closed set of tags the tree builder will
// construct elements for. Any other tag is tokenized but produces no
// element.
var elementKinds = map[string]bool{
	"html": true, "head": true, "style": true, "script": true,
	"body": true, "p": true, "h1": true, "h2": true, "a": true,
}

// treeBuilder consumes a Token stream and constructs a dom.Node tree,
// tracking a stack of open elements and the current insertion mode.
type treeBuilder struct {
	tokenizer *Tokenizer
	doc       *dom.Node
	mode      insertionMode
	original  insertionMode // saved mode used when entering Text
	stack     []*dom.Node   // LIFO, stack[0] is the bottommost open element

	// pending holds a token reconsumed by a mode that delegated to the
	// next mode without consuming it.
	pending    Token
	hasPending bool
}

// Parse tokenizes and parses input into a Document node.
func Parse(input string) *dom.Node {
	b := &treeBuilder{
		tokenizer: NewTokenizer(input),
		doc:       dom.NewDocument(),
		mode:      modeInitial,
	}
	b.run()
	return b.doc
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (b *treeBuilder) nextToken() Token {
	if b.hasPending {
		b.hasPending = false
		return b.pending
	}
	return b.tokenizer.Next()
}

// reconsume requests that tok be processed again under the new mode
// already assigned by the caller.
func (b *treeBuilder) reconsume(tok Token) {
	b.pending = tok
	b.hasPending = true
}

func (b *treeBuilder) currentNode() *dom.Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// insertElement creates an element for tag, appends it as the last
// child of the current node (or Document if the stack is empty), and
// pushes it onto the stack. It returns nil for tags outside the
// closed element set.
func (b *treeBuilder) insertElement(tok Token) *dom.Node {
	if !elementKinds[tok.Tag] {
		return nil
	}
	elem := dom.NewElement(tok.Tag)
	elem.Attributes = append(elem.Attributes, tok.Attributes...)
	if cur := b.currentNode(); cur != nil {
		cur.AppendChild(elem)
	} else {
		b.doc.AppendChild(elem)
	}
	b.stack = append(b.stack, elem)
	return elem
}

// insertChar implements §4.2 "Character insertion": appended to an
// existing trailing Text node, or starts a new one when the character
// is non-whitespace.
func (b *treeBuilder) insertChar(c rune) {
	cur := b.currentNode()
	if cur == nil {
		return
	}
	if last := cur.LastChild; last != nil && last.Type == dom.TextNode {
		last.Text += string(c)
		return
	}
	if isWhitespace(c) {
		return
	}
	cur.AppendChild(dom.NewText(string(c)))
}

// insertCharAlways appends unconditionally, even for whitespace; used
// by InHead and AfterHead, which retain whitespace while
// BeforeHead/BeforeHtml discard it, and by Text for raw script/style
// content.
func (b *treeBuilder) insertCharAlways(c rune) {
	cur := b.currentNode()
	if cur == nil {
		return
	}
	if last := cur.LastChild; last != nil && last.Type == dom.TextNode {
		last.Text += string(c)
		return
	}
	cur.AppendChild(dom.NewText(string(c)))
}

// popUntil pops the stack, discarding elements, until one with the
// given tag has been popped (inclusive). Popping past an empty stack
// without finding tag is a fatal condition.
func (b *treeBuilder) popUntil(tag string) {
	for {
		if len(b.stack) == 0 {
			runtime.Raise("popUntil", "no open element with tag "+tag)
		}
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		if top.Tag == tag {
			return
		}
	}
}

// hasOnStack reports whether tag is present anywhere in the open
// element stack.
func (b *treeBuilder) hasOnStack(tag string) bool {
	for _, n := range b.stack {
		if n.Tag == tag {
			return true
		}
	}
	return false
}

func (b *treeBuilder) run() {
	for {
		tok := b.nextToken()
		done := b.dispatch(tok)
		if done {
			return
		}
	}
}

// dispatch processes one token under the current mode and returns
// true once the document is complete (Eof reached in a mode that
// returns the DOM).
func (b *treeBuilder) dispatch(tok Token) bool {
	switch b.mode {
	case modeInitial:
		if tok.Type == CharToken {
			return false // ignored
		}
		b.mode = modeBeforeHTML
		b.reconsume(tok)
		return false

	case modeBeforeHTML:
		if tok.Type == CharToken && isWhitespace(tok.Char) {
			return false
		}
		if tok.Type == StartTagToken && tok.Tag == "html" {
			b.insertElement(tok)
			b.mode = modeBeforeHead
			return false
		}
		if tok.Type == EOFToken {
			return true
		}
		b.insertElement(Token{Type: StartTagToken, Tag: "html"})
		b.mode = modeBeforeHead
		b.reconsume(tok)
		return false

	case modeBeforeHead:
		if tok.Type == CharToken && isWhitespace(tok.Char) {
			return false
		}
		if tok.Type == StartTagToken && tok.Tag == "head" {
			b.insertElement(tok)
			b.mode = modeInHead
			return false
		}
		if tok.Type == EOFToken {
			return true
		}
		b.insertElement(Token{Type: StartTagToken, Tag: "head"})
		b.mode = modeInHead
		b.reconsume(tok)
		return false

	case modeInHead:
		if tok.Type == CharToken {
			if isWhitespace(tok.Char) {
				b.insertCharAlways(tok.Char)
			}
			return false
		}
		if tok.Type == StartTagToken && (tok.Tag == "style" || tok.Tag == "script") {
			b.insertElement(tok)
			b.original = modeInHead
			b.mode = modeText
			return false
		}
		if tok.Type == StartTagToken && tok.Tag == "body" {
			b.popUntil("head")
			b.mode = modeAfterHead
			return false
		}
		if tok.Type == EndTagToken && tok.Tag == "head" {
			b.popUntil("head")
			b.mode = modeAfterHead
			return false
		}
		if tok.Type == EOFToken {
			return true
		}
		if tok.Type == StartTagToken && elementKinds[tok.Tag] {
			b.popUntil("head")
			b.mode = modeAfterHead
			b.reconsume(tok)
			return false
		}
		return false // unknown tokens consumed and ignored

	case modeAfterHead:
		if tok.Type == CharToken {
			if isWhitespace(tok.Char) {
				b.insertCharAlways(tok.Char)
			}
			return false
		}
		if tok.Type == StartTagToken && tok.Tag == "body" {
			b.insertElement(tok)
			b.mode = modeInBody
			return false
		}
		if tok.Type == EOFToken {
			return true
		}
		b.insertElement(Token{Type: StartTagToken, Tag: "body"})
		b.mode = modeInBody
		b.reconsume(tok)
		return false

	case modeInBody:
		if tok.Type == EndTagToken && tok.Tag == "body" {
			if b.hasOnStack("body") {
				b.popUntil("body")
				b.mode = modeAfterBody
			}
			return false
		}
		if tok.Type == EndTagToken && tok.Tag == "html" {
			if b.hasOnStack("body") {
				b.popUntil("body")
			}
			b.mode = modeAfterBody
			b.reconsume(Token{Type: EndTagToken, Tag: "html"})
			return false
		}
		if tok.Type == EndTagToken {
			// Any other end tag closes the matching open element; an end
			// tag with no matching open element is consumed without action.
			if elementKinds[tok.Tag] && b.hasOnStack(tok.Tag) {
				b.popUntil(tok.Tag)
			}
			return false
		}
		if tok.Type == StartTagToken {
			b.insertElement(tok)
			return false
		}
		if tok.Type == CharToken {
			b.insertChar(tok.Char)
			return false
		}
		if tok.Type == EOFToken {
			return true
		}
		return false

	case modeText:
		if tok.Type == EndTagToken {
			b.popUntil(tok.Tag)
			b.mode = b.original
			return false
		}
		if tok.Type == CharToken {
			b.insertCharAlways(tok.Char)
			return false
		}
		if tok.Type == EOFToken {
			return true
		}
		return false

	case modeAfterBody:
		if tok.Type == CharToken {
			return false
		}
		if tok.Type == EndTagToken && tok.Tag == "html" {
			b.mode = modeAfterAfterBody
			return false
		}
		if tok.Type == EOFToken {
			return true
		}
		return false

	case modeAfterAfterBody:
		if tok.Type == CharToken {
			return false
		}
		if tok.Type == EOFToken {
			return true
		}
		b.mode = modeInBody
		b.reconsume(tok)
		return false
	}
	return false
}
