package css

// SelectorKind identifies which of the four supported selector shapes
// a Selector is.
type SelectorKind int

const (
	// TypeSelector matches an element's tag name.
	TypeSelector SelectorKind = iota
	// ClassSelector matches an element whose class attribute contains
	// the given name.
	ClassSelector
	// IDSelector matches an element whose id attribute equals the
	// given name.
	IDSelector
	// UnknownSelector is used for preludes the parser cannot classify
	// (and for at-rules); it matches nothing during cascade.
	UnknownSelector
)

// Selector is one of the four variants in §3's CSSOM. Value holds the
// tag, class, or id name for the first three kinds; it is empty for
// UnknownSelector.
type Selector struct {
	Kind  SelectorKind
	Value string
}

// Declaration is (property, component-value). Multi-value declarations
// are not supported: only the first token after the colon is kept.
type Declaration struct {
	Property string
	Value    Token
}

// QualifiedRule is one selector plus its ordered declaration list.
type QualifiedRule struct {
	Selector     Selector
	Declarations []Declaration
}

// Stylesheet owns an ordered list of QualifiedRules. Order matters:
// later rules override earlier ones for the same property on the same
// element (rule order is the only precedence rule — there is no
// specificity calculation).
type Stylesheet struct {
	Rules []QualifiedRule
}

// Parser implements the W3C "parse a stylesheet" skeleton, simplified
// per the package doc.
type Parser struct {
	t   *Tokenizer
	buf []Token
}

// NewParser creates a Parser over input.
func NewParser(input string) *Parser {
	return &Parser{t: NewTokenizer(input)}
}

// Parse tokenizes and parses input into a Stylesheet.
func Parse(input string) *Stylesheet {
	return NewParser(input).ParseStylesheet()
}

// next returns the next significant (non-whitespace) token.
func (p *Parser) next() Token {
	if len(p.buf) > 0 {
		tok := p.buf[len(p.buf)-1]
		p.buf = p.buf[:len(p.buf)-1]
		return tok
	}
	for {
		tok := p.t.Next()
		if tok.Type != WhitespaceToken {
			return tok
		}
	}
}

func (p *Parser) pushback(tok Token) {
	p.buf = append(p.buf, tok)
}

// ParseStylesheet consumes the whole input, producing a Stylesheet.
func (p *Parser) ParseStylesheet() *Stylesheet {
	sheet := &Stylesheet{}
	for {
		tok := p.next()
		if tok.Type == EOFToken {
			return sheet
		}
		if tok.Type == AtKeywordToken {
			p.skipAtRule()
			continue
		}
		rule, ok := p.parseQualifiedRule(tok)
		if ok {
			sheet.Rules = append(sheet.Rules, rule)
		}
	}
}

// skipAtRule discards an at-rule: either everything up to a ';' that
// comes before any '{', or everything up to the rule's opening '{' plus
// its whole block, which skipToCloseCurly consumes while balancing
// nested braces.
func (p *Parser) skipAtRule() {
	for {
		tok := p.next()
		if tok.Type == EOFToken {
			return
		}
		if tok.Type == OpenCurlyToken {
			p.skipToCloseCurly()
			return
		}
		if tok.Type == SemiColonToken {
			return
		}
	}
}

func (p *Parser) skipToCloseCurly() {
	depth := 1
	for depth > 0 {
		tok := p.next()
		if tok.Type == EOFToken {
			return
		}
		if tok.Type == OpenCurlyToken {
			depth++
		}
		if tok.Type == CloseCurlyToken {
			depth--
		}
	}
}

// parseQualifiedRule parses a selector prelude (already holding its
// first token) through '{', then a declaration list through '}'.
func (p *Parser) parseQualifiedRule(first Token) (QualifiedRule, bool) {
	sel := p.parseSelector(first)
	decls := p.parseDeclarations()
	return QualifiedRule{Selector: sel, Declarations: decls}, true
}

// parseSelector classifies the prelude's first token per §4.3 and
// discards the remainder of the prelude up to '{'.
func (p *Parser) parseSelector(first Token) Selector {
	var sel Selector
	switch {
	case first.Type == HashToken:
		sel = Selector{Kind: IDSelector, Value: first.Value}
	case first.Type == DelimToken && first.Value == ".":
		next := p.next()
		if next.Type == IdentToken {
			sel = Selector{Kind: ClassSelector, Value: next.Value}
		} else {
			sel = Selector{Kind: UnknownSelector}
		}
	case first.Type == IdentToken:
		sel = Selector{Kind: TypeSelector, Value: first.Value}
	default:
		sel = Selector{Kind: UnknownSelector}
	}

	// Consume the remainder of the prelude up to '{'. A ':' anywhere
	// in the prelude means a pseudo-class is present; the type
	// selector already captured is retained and everything else in
	// the prelude is discarded (pseudo-classes are not supported).
	for {
		tok := p.next()
		if tok.Type == OpenCurlyToken || tok.Type == EOFToken {
			return sel
		}
	}
}

// parseDeclarations parses the declaration list following '{': each
// entry is Ident Colon component-value, separated by ';', ending at
// '}'. A malformed entry (missing colon, missing value) is skipped
// silently — this is parse-time, non-fatal.
func (p *Parser) parseDeclarations() []Declaration {
	var decls []Declaration
	for {
		tok := p.next()
		if tok.Type == CloseCurlyToken || tok.Type == EOFToken {
			return decls
		}
		if tok.Type == SemiColonToken {
			continue
		}
		if tok.Type != IdentToken {
			continue
		}
		property := tok.Value
		colon := p.next()
		if colon.Type != ColonToken {
			p.pushback(colon)
			continue
		}
		value := p.next()
		decls = append(decls, Declaration{Property: property, Value: value})
		// Multi-value declarations are not supported: discard
		// everything else in this declaration up to ';' or '}'.
		for {
			tok := p.next()
			if tok.Type == SemiColonToken || tok.Type == CloseCurlyToken || tok.Type == EOFToken {
				if tok.Type != SemiColonToken {
					p.pushback(tok)
				}
				break
			}
		}
	}
}
