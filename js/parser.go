package js

import "tinybrowser/runtime"

// Parser is a recursive-descent parser over the grammar given rule by
// rule on its parse methods below. It tracks one token of lookahead.
type Parser struct {
	l         *Lexer
	curToken  Token
	peekToken Token
}

// NewParser creates a Parser over source.
func NewParser(source string) *Parser {
	p := &Parser{l: NewLexer(source)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(t TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t TokenType) bool { return p.peekToken.Type == t }

// expect advances past an expected token type, raising a fault if the
// current token doesn't match.
func (p *Parser) expect(t TokenType) Token {
	if !p.curIs(t) {
		runtime.Raise("Parser.expect", "expected "+string(t)+", got "+string(p.curToken.Type))
	}
	tok := p.curToken
	p.advance()
	return tok
}

// Parse parses the full input into a Program.
func Parse(source string) *Program {
	return NewParser(source).ParseProgram()
}

// ParseProgram implements Program := SourceElement*.
func (p *Parser) ParseProgram() *Program {
	prog := &Program{}
	for !p.curIs(EOF) {
		prog.Body = append(prog.Body, p.parseSourceElement())
	}
	return prog
}

// parseSourceElement implements SourceElement := FunctionDeclaration | Statement.
func (p *Parser) parseSourceElement() Statement {
	if p.curIs(FUNCTION) {
		return p.parseFunctionDeclaration()
	}
	return p.parseStatement()
}

// parseFunctionDeclaration implements:
//
//	FunctionDeclaration := "function" Identifier "(" (Identifier ("," Identifier)*)? ")" "{" SourceElement* "}"
func (p *Parser) parseFunctionDeclaration() *FunctionDeclaration {
	tok := p.expect(FUNCTION)
	nameTok := p.expect(IDENT)
	fn := &FunctionDeclaration{Token: tok, ID: &Identifier{Token: nameTok, Name: nameTok.Literal}}

	p.expect(LPAREN)
	if !p.curIs(RPAREN) {
		paramTok := p.expect(IDENT)
		fn.Params = append(fn.Params, &Identifier{Token: paramTok, Name: paramTok.Literal})
		for p.curIs(COMMA) {
			p.advance()
			paramTok := p.expect(IDENT)
			fn.Params = append(fn.Params, &Identifier{Token: paramTok, Name: paramTok.Literal})
		}
	}
	p.expect(RPAREN)

	fn.Body = p.parseBlock()
	return fn
}

func (p *Parser) parseBlock() *BlockStatement {
	tok := p.expect(LBRACE)
	block := &BlockStatement{Token: tok}
	for !p.curIs(RBRACE) && !p.curIs(EOF) {
		block.Body = append(block.Body, p.parseSourceElement())
	}
	p.expect(RBRACE)
	return block
}

// parseStatement implements Statement := VariableStatement | ReturnStatement | ExpressionStatement.
func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case VAR:
		return p.parseVariableStatement()
	case RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVariableStatement implements:
//
//	VariableStatement := "var" Identifier ("=" AssignmentExpression)? ";"?
func (p *Parser) parseVariableStatement() *VariableDeclaration {
	tok := p.expect(VAR)
	nameTok := p.expect(IDENT)
	decl := &VariableDeclarator{Token: nameTok, ID: &Identifier{Token: nameTok, Name: nameTok.Literal}}
	if p.curIs(ASSIGN) {
		p.advance()
		decl.Init = p.parseAssignmentExpression()
	}
	if p.curIs(SEMICOLON) {
		p.advance()
	}
	return &VariableDeclaration{Token: tok, Declarations: []*VariableDeclarator{decl}}
}

// parseReturnStatement implements:
//
//	ReturnStatement := "return" AssignmentExpression ";"?
func (p *Parser) parseReturnStatement() *ReturnStatement {
	tok := p.expect(RETURN)
	arg := p.parseAssignmentExpression()
	if p.curIs(SEMICOLON) {
		p.advance()
	}
	return &ReturnStatement{Token: tok, Argument: arg}
}

// parseExpressionStatement implements:
//
//	ExpressionStatement := AssignmentExpression ";"?
func (p *Parser) parseExpressionStatement() *ExpressionStatement {
	tok := p.curToken
	expr := p.parseAssignmentExpression()
	if p.curIs(SEMICOLON) {
		p.advance()
	}
	return &ExpressionStatement{Token: tok, Expression: expr}
}

// parseAssignmentExpression implements:
//
//	AssignmentExpression := AdditiveExpression ("=" AssignmentExpression)?
//
// Right-associative: the right side recurses into
// parseAssignmentExpression, not the additive level.
func (p *Parser) parseAssignmentExpression() Expression {
	left := p.parseAdditiveExpression()
	if p.curIs(ASSIGN) {
		tok := p.curToken
		p.advance()
		right := p.parseAssignmentExpression()
		return &AssignmentExpression{Token: tok, Operator: "=", Left: left, Right: right}
	}
	return left
}

// parseAdditiveExpression implements:
//
//	AdditiveExpression := LeftHandSide (("+"|"-") AssignmentExpression)?
//
// Right-recursive per the grammar (source behavior, not left-recursive
// precedence climbing): "1 + 2 + 3" parses as 1 + (2 + 3).
func (p *Parser) parseAdditiveExpression() Expression {
	left := p.parseLeftHandSideExpression()
	if p.curIs(PLUS) || p.curIs(MINUS) {
		tok := p.curToken
		op := string(p.curToken.Type)
		p.advance()
		right := p.parseAssignmentExpression()
		return &AdditiveExpression{Token: tok, Operator: op, Left: left, Right: right}
	}
	return left
}

// parseLeftHandSideExpression implements:
//
//	LeftHandSide := MemberExpression ("(" Arguments ")")?
func (p *Parser) parseLeftHandSideExpression() Expression {
	member := p.parseMemberExpression()
	if p.curIs(LPAREN) {
		tok := p.curToken
		args := p.parseArguments()
		return &CallExpression{Token: tok, Callee: member, Arguments: args}
	}
	return member
}

// parseArguments implements:
//
//	Arguments := (AssignmentExpression ("," AssignmentExpression)*)?
func (p *Parser) parseArguments() []Expression {
	p.expect(LPAREN)
	var args []Expression
	if !p.curIs(RPAREN) {
		args = append(args, p.parseAssignmentExpression())
		for p.curIs(COMMA) {
			p.advance()
			args = append(args, p.parseAssignmentExpression())
		}
	}
	p.expect(RPAREN)
	return args
}

// parseMemberExpression implements:
//
//	MemberExpression := PrimaryExpression ("." Identifier)?
//
// A single step, not chained: "a.b.c" parses "a.b" as the object and
// leaves the trailing ".c" for an enclosing call to handle, per §4.5.
func (p *Parser) parseMemberExpression() Expression {
	obj := p.parsePrimaryExpression()
	if p.curIs(DOT) {
		tok := p.curToken
		p.advance()
		propTok := p.expect(IDENT)
		return &MemberExpression{Token: tok, Object: obj, Property: &Identifier{Token: propTok, Name: propTok.Literal}}
	}
	return obj
}

// parsePrimaryExpression implements:
//
//	PrimaryExpression := Identifier | StringLiteral | Number
func (p *Parser) parsePrimaryExpression() Expression {
	switch p.curToken.Type {
	case IDENT:
		tok := p.curToken
		p.advance()
		return &Identifier{Token: tok, Name: tok.Literal}
	case STRING:
		tok := p.curToken
		p.advance()
		return &StringLiteral{Token: tok, Value: tok.Literal}
	case NUMBER:
		tok := p.curToken
		p.advance()
		return &NumericLiteral{Token: tok, Value: parseUint(tok.Literal)}
	default:
		runtime.Raise("Parser.parsePrimaryExpression", "unexpected token "+string(p.curToken.Type))
		return nil
	}
}

func parseUint(s string) uint64 {
	var n uint64
	for _, c := range s {
		n = n*10 + uint64(c-'0')
	}
	return n
}
